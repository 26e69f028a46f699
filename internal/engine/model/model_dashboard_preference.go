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

// DashboardPreference 用户自选的登录后落地路由，优先于角色推导
type DashboardPreference struct {
	BaseModel
	UserId string `gorm:"column:user_id;not null;uniqueIndex" json:"userId"` // 用户ID
	Route  string `gorm:"column:route" json:"route"`                        // 落地路由，可为空
}

func (DashboardPreference) TableName() string {
	return "t_dashboard_preference"
}
