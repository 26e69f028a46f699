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

import "time"

// Attendance 考勤记录表（每人每天一条）
type Attendance struct {
	BaseModel
	AttendanceId  string     `gorm:"column:attendance_id;not null;uniqueIndex" json:"attendanceId"`
	UserId        string     `gorm:"column:user_id;not null;index:idx_user_day" json:"userId"`
	CompanyId     string     `gorm:"column:company_id;index" json:"companyId"`
	WorkDay       string     `gorm:"column:work_day;not null;index:idx_user_day" json:"workDay"` // 格式 2006-01-02
	ClockInAt     time.Time  `gorm:"column:clock_in_at" json:"clockInAt"`
	ClockOutAt    *time.Time `gorm:"column:clock_out_at" json:"clockOutAt"`
	WorkedMinutes int        `gorm:"column:worked_minutes;default:0" json:"workedMinutes"` // 扣除休息后的工作分钟数
	Status        string     `gorm:"column:status;default:open" json:"status"`             // open / closed / auto_closed
}

func (Attendance) TableName() string {
	return "t_attendance"
}

// 考勤状态常量
const (
	AttendanceOpen       = "open"
	AttendanceClosed     = "closed"
	AttendanceAutoClosed = "auto_closed"
)

// BreakRecord 休息记录表（隶属于一条考勤记录）
type BreakRecord struct {
	BaseModel
	BreakId      string     `gorm:"column:break_id;not null;uniqueIndex" json:"breakId"`
	AttendanceId string     `gorm:"column:attendance_id;not null;index" json:"attendanceId"`
	StartAt      time.Time  `gorm:"column:start_at" json:"startAt"`
	EndAt        *time.Time `gorm:"column:end_at" json:"endAt"`
}

func (BreakRecord) TableName() string {
	return "t_break_record"
}

// AttendanceDay 当日考勤视图（含休息明细）
type AttendanceDay struct {
	Attendance Attendance    `json:"attendance"`
	Breaks     []BreakRecord `json:"breaks"`
}
