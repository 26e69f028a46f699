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

type IAttendanceRepository interface {
	GetByUserAndDay(userId, workDay string) (*model.Attendance, error)
	ListByUserRange(userId, fromDay, toDay string) ([]model.Attendance, error)
	ListOpenBefore(workDay string) ([]model.Attendance, error)
	CreateAttendance(att *model.Attendance) error
	UpdateAttendance(att *model.Attendance) error

	GetBreaks(attendanceId string) ([]model.BreakRecord, error)
	GetOpenBreak(attendanceId string) (*model.BreakRecord, error)
	CreateBreak(br *model.BreakRecord) error
	UpdateBreak(br *model.BreakRecord) error
}

type AttendanceRepo struct {
	database.IDatabase
}

func NewAttendanceRepo(db database.IDatabase) IAttendanceRepository {
	return &AttendanceRepo{
		IDatabase: db,
	}
}

// GetByUserAndDay 获取用户某天的考勤记录
func (r *AttendanceRepo) GetByUserAndDay(userId, workDay string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.Database().Where("user_id = ? AND work_day = ?", userId, workDay).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// ListByUserRange 获取用户一段时间内的考勤记录
func (r *AttendanceRepo) ListByUserRange(userId, fromDay, toDay string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.Database().Where("user_id = ? AND work_day >= ? AND work_day <= ?", userId, fromDay, toDay).
		Order("work_day ASC").Find(&atts).Error
	return atts, err
}

// ListOpenBefore 获取指定日期之前仍未打下班卡的记录（夜间自动关闭用）
func (r *AttendanceRepo) ListOpenBefore(workDay string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.Database().Where("status = ? AND work_day < ?", model.AttendanceOpen, workDay).
		Find(&atts).Error
	return atts, err
}

// CreateAttendance 创建考勤记录
func (r *AttendanceRepo) CreateAttendance(att *model.Attendance) error {
	return r.Database().Create(att).Error
}

// UpdateAttendance 更新考勤记录
func (r *AttendanceRepo) UpdateAttendance(att *model.Attendance) error {
	return r.Database().Model(&model.Attendance{}).Where("attendance_id = ?", att.AttendanceId).
		Select("clock_out_at", "worked_minutes", "status").
		Updates(att).Error
}

// GetBreaks 获取考勤记录下的所有休息记录
func (r *AttendanceRepo) GetBreaks(attendanceId string) ([]model.BreakRecord, error) {
	var breaks []model.BreakRecord
	err := r.Database().Where("attendance_id = ?", attendanceId).
		Order("start_at ASC").Find(&breaks).Error
	return breaks, err
}

// GetOpenBreak 获取进行中的休息记录
func (r *AttendanceRepo) GetOpenBreak(attendanceId string) (*model.BreakRecord, error) {
	var br model.BreakRecord
	err := r.Database().Where("attendance_id = ? AND end_at IS NULL", attendanceId).First(&br).Error
	if err != nil {
		return nil, err
	}
	return &br, nil
}

// CreateBreak 创建休息记录
func (r *AttendanceRepo) CreateBreak(br *model.BreakRecord) error {
	return r.Database().Create(br).Error
}

// UpdateBreak 更新休息记录
func (r *AttendanceRepo) UpdateBreak(br *model.BreakRecord) error {
	return r.Database().Model(&model.BreakRecord{}).Where("break_id = ?", br.BreakId).
		Update("end_at", br.EndAt).Error
}
