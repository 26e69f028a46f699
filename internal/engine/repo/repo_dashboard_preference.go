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

type IDashboardPreferenceRepository interface {
	GetByUser(userId string) (*model.DashboardPreference, error)
	Upsert(pref *model.DashboardPreference) error
	DeleteByUser(userId string) error
}

type DashboardPreferenceRepo struct {
	database.IDatabase
}

func NewDashboardPreferenceRepo(db database.IDatabase) IDashboardPreferenceRepository {
	return &DashboardPreferenceRepo{
		IDatabase: db,
	}
}

// GetByUser 获取用户的仪表盘偏好
func (r *DashboardPreferenceRepo) GetByUser(userId string) (*model.DashboardPreference, error) {
	var pref model.DashboardPreference
	err := r.Database().Where("user_id = ?", userId).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert 创建或更新仪表盘偏好
func (r *DashboardPreferenceRepo) Upsert(pref *model.DashboardPreference) error {
	var existing model.DashboardPreference
	err := r.Database().Where("user_id = ?", pref.UserId).First(&existing).Error
	if err == nil {
		return r.Database().Model(&model.DashboardPreference{}).
			Where("user_id = ?", pref.UserId).
			Update("route", pref.Route).Error
	}
	return r.Database().Create(pref).Error
}

// DeleteByUser 删除用户的仪表盘偏好
func (r *DashboardPreferenceRepo) DeleteByUser(userId string) error {
	return r.Database().Where("user_id = ?", userId).Delete(&model.DashboardPreference{}).Error
}
