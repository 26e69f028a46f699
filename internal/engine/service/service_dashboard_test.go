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
	"testing"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/stretchr/testify/assert"
)

type fakePrefRepo struct {
	prefs map[string]string
}

func (f *fakePrefRepo) GetByUser(userId string) (*model.DashboardPreference, error) {
	route, ok := f.prefs[userId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &model.DashboardPreference{UserId: userId, Route: route}, nil
}

func (f *fakePrefRepo) Upsert(pref *model.DashboardPreference) error {
	f.prefs[pref.UserId] = pref.Route
	return nil
}

func (f *fakePrefRepo) DeleteByUser(userId string) error {
	delete(f.prefs, userId)
	return nil
}

func newDashboardFixture() *DashboardService {
	return NewDashboardService(&fakePrefRepo{prefs: map[string]string{
		"u-pref": "/custom/route",
	}})
}

func TestResolvePreferenceWins(t *testing.T) {
	svc := newDashboardFixture()

	// 存储偏好无条件优先，与角色无关
	assert.Equal(t, "/custom/route", svc.Resolve("u-pref", []string{"admin"}))
	assert.Equal(t, "/custom/route", svc.Resolve("u-pref", nil))
}

func TestResolveRolePriority(t *testing.T) {
	svc := newDashboardFixture()

	assert.Equal(t, DashboardAdmin, svc.Resolve("u1", []string{"admin"}))
	assert.Equal(t, DashboardDeveloper, svc.Resolve("u1", []string{"developer", "employee"}))
	assert.Equal(t, DashboardSuperAdmin, svc.Resolve("u1", []string{"employee", "superadmin"}))
	assert.Equal(t, DashboardEmployee, svc.Resolve("u1", []string{"employee"}))
}

func TestResolveFallsBackToGeneric(t *testing.T) {
	svc := newDashboardFixture()

	// supervisor 没有专属仪表盘，回落到通用路由
	assert.Equal(t, DashboardDefault, svc.Resolve("u1", []string{"supervisor"}))
	assert.Equal(t, DashboardDefault, svc.Resolve("u1", []string{"editor"}))
	assert.Equal(t, DashboardDefault, svc.Resolve("u1", nil))
}

func TestSetPreference(t *testing.T) {
	repo := &fakePrefRepo{prefs: map[string]string{}}
	svc := NewDashboardService(repo)

	assert.NoError(t, svc.SetPreference("u1", "/my/route"))
	assert.Equal(t, "/my/route", svc.Resolve("u1", []string{"admin"}))

	// 空路由等同清除偏好
	assert.NoError(t, svc.SetPreference("u1", ""))
	assert.Equal(t, DashboardAdmin, svc.Resolve("u1", []string{"admin"}))
}
