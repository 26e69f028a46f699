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

// Role 角色表
type Role struct {
	BaseModel
	RoleId      string `gorm:"column:role_id;not null;uniqueIndex" json:"roleId"`
	Name        string `gorm:"column:name;not null;uniqueIndex" json:"name"`          // 角色名称
	DisplayName string `gorm:"column:display_name" json:"displayName"`                // 显示名称
	Description string `gorm:"column:description" json:"description"`                 // 角色描述
	IsEnabled   int    `gorm:"column:is_enabled;not null;default:1" json:"isEnabled"` // 0: disabled, 1: enabled
}

func (Role) TableName() string {
	return "t_role"
}

// RoleName 内置角色的封闭集合，未知角色使用 RoleUnknown 显式表示
type RoleName string

const (
	RoleDeveloper  RoleName = "developer"
	RoleSuperAdmin RoleName = "superadmin"
	RoleAdmin      RoleName = "admin"
	RoleSupervisor RoleName = "supervisor"
	RoleEmployee   RoleName = "employee"
	RoleUnknown    RoleName = ""
)

// ParseRoleName 将角色名字符串解析为内置角色，未知角色返回 RoleUnknown
func ParseRoleName(name string) RoleName {
	switch RoleName(name) {
	case RoleDeveloper, RoleSuperAdmin, RoleAdmin, RoleSupervisor, RoleEmployee:
		return RoleName(name)
	default:
		return RoleUnknown
	}
}

// CoveredRoles 返回角色覆盖的角色集合（含自身），优先级从高到低。
// 未知角色只覆盖自身，不产生越权。
func CoveredRoles(name string) []string {
	switch ParseRoleName(name) {
	case RoleDeveloper:
		return []string{"developer", "superadmin", "admin", "supervisor", "employee"}
	case RoleSuperAdmin:
		return []string{"superadmin", "admin", "supervisor", "employee"}
	case RoleAdmin:
		return []string{"admin", "supervisor", "employee"}
	case RoleSupervisor:
		return []string{"supervisor", "employee"}
	case RoleEmployee:
		return []string{"employee"}
	default:
		return []string{name}
	}
}

// RoleCovers 判断角色 role 是否覆盖 required
func RoleCovers(role, required string) bool {
	for _, covered := range CoveredRoles(role) {
		if covered == required {
			return true
		}
	}
	return false
}

// AnyRoleCovers 判断角色集合中是否存在覆盖 required 的角色
func AnyRoleCovers(roles []string, required string) bool {
	for _, role := range roles {
		if RoleCovers(role, required) {
			return true
		}
	}
	return false
}

// CreateRoleReq request for creating role
type CreateRoleReq struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	IsEnabled   *int   `json:"isEnabled"`
}

// UpdateRoleReq request for updating role
type UpdateRoleReq struct {
	DisplayName *string `json:"displayName,omitempty"`
	Description *string `json:"description,omitempty"`
	IsEnabled   *int    `json:"isEnabled,omitempty"`
}
