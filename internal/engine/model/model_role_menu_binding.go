// Copyright 2025 Staffly Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

// RoleMenuBinding 角色菜单授权表（授予角色查看某菜单项的权限）
// 注意：同一角色对同一菜单只能有一条记录
type RoleMenuBinding struct {
	BaseModel
	RoleMenuId string `gorm:"column:role_menu_id;not null;uniqueIndex" json:"roleMenuId"` // 关联唯一标识
	RoleId     string `gorm:"column:role_id;not null;index" json:"roleId"`                // 角色ID（引用 t_role 表）
	MenuId     string `gorm:"column:menu_id;not null;index" json:"menuId"`                // 菜单ID（引用 t_menu 表）
	CanView    int    `gorm:"column:can_view;default:1" json:"canView"`                   // 是否可见：0-不可见，1-可见
}

func (RoleMenuBinding) TableName() string {
	return "t_role_menu_binding"
}

// 角色菜单可见性常量
const (
	RoleMenuCanView    = 1 // 可见
	RoleMenuCannotView = 0 // 不可见
)

// GrantMenuReq request for granting menu visibility to a role
type GrantMenuReq struct {
	RoleId  string `json:"roleId"`
	MenuId  string `json:"menuId"`
	CanView *int   `json:"canView"`
}
