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

type IRoleMenuBindingRepository interface {
	GetRoleMenuBindings(roleId string) ([]model.RoleMenuBinding, error)
	GetBindingsByMenuIds(menuIds []string) ([]model.RoleMenuBinding, error)
	UpsertRoleMenuBinding(binding *model.RoleMenuBinding) error
	DeleteRoleMenuBinding(roleId, menuId string) error
	CountBindings() (int64, error)
}

type RoleMenuBindingRepo struct {
	database.IDatabase
}

func NewRoleMenuBindingRepo(db database.IDatabase) IRoleMenuBindingRepository {
	return &RoleMenuBindingRepo{
		IDatabase: db,
	}
}

// GetRoleMenuBindings 获取角色的所有菜单授权
func (r *RoleMenuBindingRepo) GetRoleMenuBindings(roleId string) ([]model.RoleMenuBinding, error) {
	var bindings []model.RoleMenuBinding
	err := r.Database().Select("id", "role_menu_id", "role_id", "menu_id", "can_view", "created_at", "updated_at").
		Where("role_id = ?", roleId).Find(&bindings).Error
	return bindings, err
}

// GetBindingsByMenuIds 获取一组菜单的全部授权记录（含 can_view = 0 的记录，
// 可见性判断需要区分"无授权记录"与"有记录但不可见"两种情况）
func (r *RoleMenuBindingRepo) GetBindingsByMenuIds(menuIds []string) ([]model.RoleMenuBinding, error) {
	if len(menuIds) == 0 {
		return []model.RoleMenuBinding{}, nil
	}
	var bindings []model.RoleMenuBinding
	err := r.Database().Select("id", "role_menu_id", "role_id", "menu_id", "can_view", "created_at", "updated_at").
		Where("menu_id IN ?", menuIds).Find(&bindings).Error
	return bindings, err
}

// UpsertRoleMenuBinding 创建或更新角色菜单授权
func (r *RoleMenuBindingRepo) UpsertRoleMenuBinding(binding *model.RoleMenuBinding) error {
	var existing model.RoleMenuBinding
	err := r.Database().Where("role_id = ? AND menu_id = ?", binding.RoleId, binding.MenuId).First(&existing).Error
	if err == nil {
		return r.Database().Model(&model.RoleMenuBinding{}).
			Where("role_id = ? AND menu_id = ?", binding.RoleId, binding.MenuId).
			Update("can_view", binding.CanView).Error
	}
	return r.Database().Create(binding).Error
}

// DeleteRoleMenuBinding 删除角色菜单授权
func (r *RoleMenuBindingRepo) DeleteRoleMenuBinding(roleId, menuId string) error {
	return r.Database().Where("role_id = ? AND menu_id = ?", roleId, menuId).Delete(&model.RoleMenuBinding{}).Error
}

// CountBindings 统计授权记录数
func (r *RoleMenuBindingRepo) CountBindings() (int64, error) {
	var count int64
	err := r.Database().Model(&model.RoleMenuBinding{}).Count(&count).Error
	return count, err
}
