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
	"time"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/id"
	"github.com/go-staffly/staffly/pkg/log"
)

var (
	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNotClockedIn     = errors.New("no open attendance record")
	ErrBreakAlreadyOpen = errors.New("a break is already open")
	ErrNoOpenBreak      = errors.New("no open break")
)

const workDayLayout = "2006-01-02"

// AttendanceService 考勤打卡与休息记录
type AttendanceService struct {
	attRepo repo.IAttendanceRepository
}

func NewAttendanceService(attRepo repo.IAttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attRepo: attRepo,
	}
}

// ClockIn 上班打卡，每人每天一条记录
func (s *AttendanceService) ClockIn(user *model.User, now time.Time) (*model.Attendance, error) {
	workDay := now.Format(workDayLayout)
	if existing, err := s.attRepo.GetByUserAndDay(user.UserId, workDay); err == nil && existing.Status == model.AttendanceOpen {
		return nil, ErrAlreadyClockedIn
	}
	att := &model.Attendance{
		AttendanceId: id.GetULID(),
		UserId:       user.UserId,
		CompanyId:    user.CompanyId,
		WorkDay:      workDay,
		ClockInAt:    now,
		Status:       model.AttendanceOpen,
	}
	if err := s.attRepo.CreateAttendance(att); err != nil {
		return nil, err
	}
	return att, nil
}

// ClockOut 下班打卡，结算工作分钟数（扣除休息）
func (s *AttendanceService) ClockOut(userId string, now time.Time) (*model.Attendance, error) {
	att, err := s.openAttendance(userId, now)
	if err != nil {
		return nil, err
	}
	breaks, err := s.attRepo.GetBreaks(att.AttendanceId)
	if err != nil {
		return nil, err
	}
	// 未结束的休息随下班一并结束
	for i := range breaks {
		if breaks[i].EndAt == nil {
			end := now
			breaks[i].EndAt = &end
			if err := s.attRepo.UpdateBreak(&breaks[i]); err != nil {
				return nil, err
			}
		}
	}
	att.ClockOutAt = &now
	att.WorkedMinutes = workedMinutes(att.ClockInAt, now, breaks)
	att.Status = model.AttendanceClosed
	if err := s.attRepo.UpdateAttendance(att); err != nil {
		return nil, err
	}
	return att, nil
}

// StartBreak 开始休息，同一时刻只能有一段进行中的休息
func (s *AttendanceService) StartBreak(userId string, now time.Time) (*model.BreakRecord, error) {
	att, err := s.openAttendance(userId, now)
	if err != nil {
		return nil, err
	}
	if _, err := s.attRepo.GetOpenBreak(att.AttendanceId); err == nil {
		return nil, ErrBreakAlreadyOpen
	}
	br := &model.BreakRecord{
		BreakId:      id.GetULID(),
		AttendanceId: att.AttendanceId,
		StartAt:      now,
	}
	if err := s.attRepo.CreateBreak(br); err != nil {
		return nil, err
	}
	return br, nil
}

// EndBreak 结束进行中的休息
func (s *AttendanceService) EndBreak(userId string, now time.Time) (*model.BreakRecord, error) {
	att, err := s.openAttendance(userId, now)
	if err != nil {
		return nil, err
	}
	br, err := s.attRepo.GetOpenBreak(att.AttendanceId)
	if err != nil {
		return nil, ErrNoOpenBreak
	}
	br.EndAt = &now
	if err := s.attRepo.UpdateBreak(br); err != nil {
		return nil, err
	}
	return br, nil
}

// MyDay 当日考勤视图（含休息明细）
func (s *AttendanceService) MyDay(userId string, day time.Time) (*model.AttendanceDay, error) {
	att, err := s.attRepo.GetByUserAndDay(userId, day.Format(workDayLayout))
	if err != nil {
		return nil, ErrNotClockedIn
	}
	breaks, err := s.attRepo.GetBreaks(att.AttendanceId)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceDay{
		Attendance: *att,
		Breaks:     breaks,
	}, nil
}

// Range 查询一段时间内的考勤记录
func (s *AttendanceService) Range(userId, fromDay, toDay string) ([]model.Attendance, error) {
	return s.attRepo.ListByUserRange(userId, fromDay, toDay)
}

// AutoClose 关闭历史遗留的未下班记录，按工作日结束时刻结算。
// 由夜间定时任务调用，返回关闭的记录数。
func (s *AttendanceService) AutoClose(now time.Time) (int, error) {
	open, err := s.attRepo.ListOpenBefore(now.Format(workDayLayout))
	if err != nil {
		return 0, err
	}
	closed := 0
	for i := range open {
		att := &open[i]
		dayEnd, err := time.ParseInLocation(workDayLayout, att.WorkDay, now.Location())
		if err != nil {
			log.Warnw("skip attendance with bad work day", "attendanceId", att.AttendanceId, "workDay", att.WorkDay)
			continue
		}
		end := dayEnd.Add(24*time.Hour - time.Minute)
		breaks, err := s.attRepo.GetBreaks(att.AttendanceId)
		if err != nil {
			return closed, err
		}
		for j := range breaks {
			if breaks[j].EndAt == nil {
				breaks[j].EndAt = &end
				if err := s.attRepo.UpdateBreak(&breaks[j]); err != nil {
					return closed, err
				}
			}
		}
		att.ClockOutAt = &end
		att.WorkedMinutes = workedMinutes(att.ClockInAt, end, breaks)
		att.Status = model.AttendanceAutoClosed
		if err := s.attRepo.UpdateAttendance(att); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

func (s *AttendanceService) openAttendance(userId string, now time.Time) (*model.Attendance, error) {
	att, err := s.attRepo.GetByUserAndDay(userId, now.Format(workDayLayout))
	if err != nil || att.Status != model.AttendanceOpen {
		return nil, ErrNotClockedIn
	}
	return att, nil
}

// workedMinutes 打卡区间减去休息区间，负值归零
func workedMinutes(clockIn, clockOut time.Time, breaks []model.BreakRecord) int {
	total := int(clockOut.Sub(clockIn).Minutes())
	for _, br := range breaks {
		if br.EndAt == nil {
			continue
		}
		total -= int(br.EndAt.Sub(br.StartAt).Minutes())
	}
	if total < 0 {
		return 0
	}
	return total
}
