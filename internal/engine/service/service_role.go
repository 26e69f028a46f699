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
	"context"
	"errors"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/id"
)

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleExists   = errors.New("role name already exists")
)

// RoleService 角色管理与用户角色绑定
type RoleService struct {
	roleRepo    repo.IRoleRepository
	bindingRepo repo.IUserRoleBindingRepository
	menuService *MenuService
}

func NewRoleService(roleRepo repo.IRoleRepository, bindingRepo repo.IUserRoleBindingRepository,
	menuService *MenuService) *RoleService {
	return &RoleService{
		roleRepo:    roleRepo,
		bindingRepo: bindingRepo,
		menuService: menuService,
	}
}

// GetRole 获取角色
func (s *RoleService) GetRole(roleId string) (*model.Role, error) {
	role, err := s.roleRepo.GetRole(roleId)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

// ListRoles 列出所有角色
func (s *RoleService) ListRoles() ([]model.Role, error) {
	return s.roleRepo.ListRoles()
}

// CreateRole 创建角色，名称唯一
func (s *RoleService) CreateRole(req *model.CreateRoleReq) (*model.Role, error) {
	if _, err := s.roleRepo.GetRoleByName(req.Name); err == nil {
		return nil, ErrRoleExists
	}
	isEnabled := 1
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}
	role := &model.Role{
		RoleId:      id.GetUUIDWithoutDashes(),
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		IsEnabled:   isEnabled,
	}
	if err := s.roleRepo.CreateRole(role); err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole 更新角色展示信息（名称不可变，避免破坏层级表和菜单缓存 key）
func (s *RoleService) UpdateRole(roleId string, req *model.UpdateRoleReq) error {
	role, err := s.roleRepo.GetRole(roleId)
	if err != nil {
		return ErrRoleNotFound
	}
	if req.DisplayName != nil {
		role.DisplayName = *req.DisplayName
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.IsEnabled != nil {
		role.IsEnabled = *req.IsEnabled
	}
	return s.roleRepo.UpdateRole(role)
}

// DeleteRole 删除角色并清空菜单缓存
func (s *RoleService) DeleteRole(ctx context.Context, roleId string) error {
	if _, err := s.roleRepo.GetRole(roleId); err != nil {
		return ErrRoleNotFound
	}
	if err := s.roleRepo.DeleteRole(roleId); err != nil {
		return err
	}
	s.menuService.ClearCache(ctx)
	return nil
}

// AssignRole 给用户绑定角色
func (s *RoleService) AssignRole(userId, roleId string, grantedBy *string) error {
	role, err := s.roleRepo.GetRole(roleId)
	if err != nil {
		return ErrRoleNotFound
	}
	bindings, err := s.bindingRepo.GetUserRoleBindings(userId)
	if err != nil {
		return err
	}
	for _, b := range bindings {
		if b.RoleId == roleId {
			return nil // 已绑定，幂等
		}
	}
	binding := &model.UserRoleBinding{
		BindingId: id.GetUUIDWithoutDashes(),
		UserId:    userId,
		RoleId:    roleId,
		RoleName:  role.Name,
		GrantedBy: grantedBy,
	}
	return s.bindingRepo.CreateUserRoleBinding(binding)
}

// RevokeRole 解除用户的角色绑定
func (s *RoleService) RevokeRole(userId, roleId string) error {
	return s.bindingRepo.DeleteUserRoleBinding(userId, roleId)
}
