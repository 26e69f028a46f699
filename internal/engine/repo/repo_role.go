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

package repo

import (
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/database"
)

type IRoleRepository interface {
	GetRole(roleId string) (*model.Role, error)
	GetRoleByName(name string) (*model.Role, error)
	ListRoles() ([]model.Role, error)
	CreateRole(role *model.Role) error
	UpdateRole(role *model.Role) error
	DeleteRole(roleId string) error
	CountRoles() (int64, error)
}

type RoleRepo struct {
	database.IDatabase
}

func NewRoleRepo(db database.IDatabase) IRoleRepository {
	return &RoleRepo{
		IDatabase: db,
	}
}

// GetRole 获取角色
func (r *RoleRepo) GetRole(roleId string) (*model.Role, error) {
	var role model.Role
	err := r.Database().Where("role_id = ?", roleId).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRoleByName 根据名称获取角色
func (r *RoleRepo) GetRoleByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.Database().Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles 列出所有角色
func (r *RoleRepo) ListRoles() ([]model.Role, error) {
	var roles []model.Role
	err := r.Database().Order("id ASC").Find(&roles).Error
	return roles, err
}

// CreateRole 创建角色
func (r *RoleRepo) CreateRole(role *model.Role) error {
	return r.Database().Create(role).Error
}

// UpdateRole 更新角色
func (r *RoleRepo) UpdateRole(role *model.Role) error {
	return r.Database().Model(&model.Role{}).Where("role_id = ?", role.RoleId).
		Select("display_name", "description", "is_enabled").
		Updates(role).Error
}

// DeleteRole 删除角色
func (r *RoleRepo) DeleteRole(roleId string) error {
	return r.Database().Where("role_id = ?", roleId).Delete(&model.Role{}).Error
}

// CountRoles 统计角色数
func (r *RoleRepo) CountRoles() (int64, error) {
	var count int64
	err := r.Database().Model(&model.Role{}).Count(&count).Error
	return count, err
}
