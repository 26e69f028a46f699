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

package service

import (
	"errors"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already taken")
)

// UserService 用户查询与管理
type UserService struct {
	userRepo    repo.IUserRepository
	bindingRepo repo.IUserRoleBindingRepository
}

func NewUserService(userRepo repo.IUserRepository, bindingRepo repo.IUserRoleBindingRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		bindingRepo: bindingRepo,
	}
}

// GetUser 获取用户
func (s *UserService) GetUser(userId string) (*model.User, error) {
	user, err := s.userRepo.GetUser(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserInfo 获取用户展示信息
func (s *UserService) GetUserInfo(userId string) (*model.UserInfo, error) {
	user, err := s.GetUser(userId)
	if err != nil {
		return nil, err
	}
	return &model.UserInfo{
		UserId:    user.UserId,
		CompanyId: user.CompanyId,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
		Email:     user.Email,
		Phone:     user.Phone,
	}, nil
}

// Roles 返回用户的角色名集合。无角色绑定时回落到历史遗留的单角色字段
func (s *UserService) Roles(userId string) ([]string, error) {
	names, err := s.bindingRepo.GetRoleNamesByUser(userId)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return names, nil
	}
	user, err := s.userRepo.GetUser(userId)
	if err != nil {
		return nil, err
	}
	if user.Role != "" {
		return []string{user.Role}, nil
	}
	return []string{}, nil
}

// AddUser 管理员添加用户
func (s *UserService) AddUser(req *model.AddUserReq) (*model.User, error) {
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, ErrUserExists
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = string(model.RoleEmployee)
	}
	user := &model.User{
		UserId:    id.GetUUIDWithoutDashes(),
		CompanyId: req.CompanyId,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		IsEnabled: req.IsEnabled,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 更新用户资料
func (s *UserService) UpdateUser(user *model.User) error {
	return s.userRepo.UpdateUser(user)
}
