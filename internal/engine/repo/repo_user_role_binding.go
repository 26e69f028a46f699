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

type IUserRoleBindingRepository interface {
	GetUserRoleBindings(userId string) ([]model.UserRoleBinding, error)
	GetRoleNamesByUser(userId string) ([]string, error)
	CreateUserRoleBinding(binding *model.UserRoleBinding) error
	DeleteUserRoleBinding(userId, roleId string) error
	DeleteUserRoleBindingsByUser(userId string) error
}

type UserRoleBindingRepo struct {
	database.IDatabase
}

func NewUserRoleBindingRepo(db database.IDatabase) IUserRoleBindingRepository {
	return &UserRoleBindingRepo{
		IDatabase: db,
	}
}

// GetUserRoleBindings 获取用户的所有角色绑定
func (r *UserRoleBindingRepo) GetUserRoleBindings(userId string) ([]model.UserRoleBinding, error) {
	var bindings []model.UserRoleBinding
	err := r.Database().Select("id", "binding_id", "user_id", "role_id", "role_name", "granted_by", "created_at", "updated_at").
		Where("user_id = ?", userId).Find(&bindings).Error
	return bindings, err
}

// GetRoleNamesByUser 获取用户绑定的角色名称集合
func (r *UserRoleBindingRepo) GetRoleNamesByUser(userId string) ([]string, error) {
	var names []string
	err := r.Database().Model(&model.UserRoleBinding{}).
		Where("user_id = ?", userId).Pluck("role_name", &names).Error
	return names, err
}

// CreateUserRoleBinding 创建用户角色绑定
func (r *UserRoleBindingRepo) CreateUserRoleBinding(binding *model.UserRoleBinding) error {
	return r.Database().Create(binding).Error
}

// DeleteUserRoleBinding 删除用户的指定角色绑定
func (r *UserRoleBindingRepo) DeleteUserRoleBinding(userId, roleId string) error {
	return r.Database().Where("user_id = ? AND role_id = ?", userId, roleId).Delete(&model.UserRoleBinding{}).Error
}

// DeleteUserRoleBindingsByUser 删除用户的所有角色绑定
func (r *UserRoleBindingRepo) DeleteUserRoleBindingsByUser(userId string) error {
	return r.Database().Where("user_id = ?", userId).Delete(&model.UserRoleBinding{}).Error
}
