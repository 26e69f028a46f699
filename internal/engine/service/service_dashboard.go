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
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/log"
)

// 登录后落地路由，按角色优先级排列
const (
	DashboardDeveloper  = "/developer/dashboard"
	DashboardSuperAdmin = "/superadmin/dashboard"
	DashboardAdmin      = "/admin/dashboard"
	DashboardEmployee   = "/employee/dashboard"
	DashboardDefault    = "/dashboard"
)

// DashboardService 登录后落地路由解析
type DashboardService struct {
	prefRepo repo.IDashboardPreferenceRepository
}

func NewDashboardService(prefRepo repo.IDashboardPreferenceRepository) *DashboardService {
	return &DashboardService{
		prefRepo: prefRepo,
	}
}

// Resolve 解析落地路由：存储偏好无条件优先，其次按角色优先级，否则通用路由。
// 偏好查询失败按无偏好处理，不影响登录流程。
func (s *DashboardService) Resolve(userId string, roles []string) string {
	pref, err := s.prefRepo.GetByUser(userId)
	if err == nil && pref.Route != "" {
		return pref.Route
	}

	held := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		held[r] = struct{}{}
	}
	if _, ok := held["developer"]; ok {
		return DashboardDeveloper
	}
	if _, ok := held["superadmin"]; ok {
		return DashboardSuperAdmin
	}
	if _, ok := held["admin"]; ok {
		return DashboardAdmin
	}
	if _, ok := held["employee"]; ok {
		return DashboardEmployee
	}
	return DashboardDefault
}

// SetPreference 设置用户落地路由偏好，空路由等同清除
func (s *DashboardService) SetPreference(userId, route string) error {
	if route == "" {
		return s.prefRepo.DeleteByUser(userId)
	}
	pref := &model.DashboardPreference{
		UserId: userId,
		Route:  route,
	}
	if err := s.prefRepo.Upsert(pref); err != nil {
		log.Errorw("save dashboard preference failed", "userId", userId, "err", err)
		return err
	}
	return nil
}

// ClearPreference 清除用户落地路由偏好
func (s *DashboardService) ClearPreference(userId string) error {
	return s.prefRepo.DeleteByUser(userId)
}
