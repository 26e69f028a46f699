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

// UserRoleBinding 用户角色绑定表
type UserRoleBinding struct {
	BaseModel
	BindingId string  `gorm:"column:binding_id;not null;uniqueIndex" json:"bindingId"` // 绑定唯一标识
	UserId    string  `gorm:"column:user_id;not null;index" json:"userId"`             // 用户ID
	RoleId    string  `gorm:"column:role_id;not null;index" json:"roleId"`             // 角色ID
	RoleName  string  `gorm:"column:role_name;not null;index" json:"roleName"`         // 角色名称（冗余，避免逐条联查）
	GrantedBy *string `gorm:"column:granted_by" json:"grantedBy"`                      // 授权人ID（可为空）
}

func (UserRoleBinding) TableName() string {
	return "t_user_role_binding"
}
