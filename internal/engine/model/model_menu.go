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

// Menu 菜单表
type Menu struct {
	BaseModel
	MenuId    string `gorm:"column:menu_id;not null;uniqueIndex" json:"menuId"` // 菜单唯一标识
	ParentId  string `gorm:"column:parent_id;index" json:"parentId"`            // 父菜单ID（为空表示顶级菜单）
	Name      string `gorm:"column:name;not null" json:"name"`                  // 菜单名称
	Slug      string `gorm:"column:slug;index" json:"slug"`                     // 菜单标识符
	Route     string `gorm:"column:route" json:"route"`                         // 路由名称（可为空）
	Icon      string `gorm:"column:icon" json:"icon"`                           // 图标
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sortOrder"`      // 排序（数值越小越靠前）
	IsActive  int    `gorm:"column:is_active;default:1" json:"isActive"`        // 是否启用：0-停用，1-启用
}

func (Menu) TableName() string {
	return "t_menu"
}

// 菜单启用状态常量
const (
	MenuActive   = 1 // 启用
	MenuInactive = 0 // 停用
)

// MenuNode 解析后的菜单节点（按角色裁剪出的树，非持久化）
type MenuNode struct {
	MenuId      string     `json:"menuId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Route       string     `json:"route"`
	Icon        string     `json:"icon"`
	ParentId    string     `json:"parentId"`
	SortOrder   int        `json:"sortOrder"`
	Children    []MenuNode `json:"children"`
	HasChildren bool       `json:"hasChildren"`
}

// CreateMenuReq request for creating menu item
type CreateMenuReq struct {
	ParentId  string `json:"parentId"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Route     string `json:"route"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *int   `json:"isActive"`
}

// UpdateMenuReq request for updating menu item
type UpdateMenuReq struct {
	ParentId  *string `json:"parentId,omitempty"`
	Name      *string `json:"name,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Route     *string `json:"route,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
	IsActive  *int    `json:"isActive,omitempty"`
}
