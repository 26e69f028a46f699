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

type IUserRepository interface {
	GetUser(userId string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
}

type UserRepo struct {
	database.IDatabase
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{
		IDatabase: db,
	}
}

// GetUser 获取用户
func (r *UserRepo) GetUser(userId string) (*model.User, error) {
	var user model.User
	err := r.Database().Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 根据用户名获取用户
func (r *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.Database().Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 根据邮箱获取用户
func (r *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.Database().Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser 创建用户
func (r *UserRepo) CreateUser(user *model.User) error {
	return r.Database().Create(user).Error
}

// UpdateUser 更新用户
func (r *UserRepo) UpdateUser(user *model.User) error {
	return r.Database().Model(&model.User{}).Where("user_id = ?", user.UserId).
		Select("first_name", "last_name", "avatar", "email", "phone", "role", "is_enabled").
		Updates(user).Error
}
