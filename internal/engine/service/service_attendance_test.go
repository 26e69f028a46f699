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
	"time"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	atts   []model.Attendance
	breaks []model.BreakRecord
}

func (f *fakeAttendanceRepo) GetByUserAndDay(userId, workDay string) (*model.Attendance, error) {
	for i := range f.atts {
		if f.atts[i].UserId == userId && f.atts[i].WorkDay == workDay {
			return &f.atts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeAttendanceRepo) ListByUserRange(userId, fromDay, toDay string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range f.atts {
		if a.UserId == userId && a.WorkDay >= fromDay && a.WorkDay <= toDay {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(workDay string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range f.atts {
		if a.Status == model.AttendanceOpen && a.WorkDay < workDay {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CreateAttendance(att *model.Attendance) error {
	f.atts = append(f.atts, *att)
	return nil
}

func (f *fakeAttendanceRepo) UpdateAttendance(att *model.Attendance) error {
	for i := range f.atts {
		if f.atts[i].AttendanceId == att.AttendanceId {
			f.atts[i] = *att
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeAttendanceRepo) GetBreaks(attendanceId string) ([]model.BreakRecord, error) {
	var out []model.BreakRecord
	for _, b := range f.breaks {
		if b.AttendanceId == attendanceId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetOpenBreak(attendanceId string) (*model.BreakRecord, error) {
	for i := range f.breaks {
		if f.breaks[i].AttendanceId == attendanceId && f.breaks[i].EndAt == nil {
			return &f.breaks[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeAttendanceRepo) CreateBreak(br *model.BreakRecord) error {
	f.breaks = append(f.breaks, *br)
	return nil
}

func (f *fakeAttendanceRepo) UpdateBreak(br *model.BreakRecord) error {
	for i := range f.breaks {
		if f.breaks[i].BreakId == br.BreakId {
			f.breaks[i] = *br
			return nil
		}
	}
	return errors.New("record not found")
}

var testUser = &model.User{UserId: "u1", CompanyId: "c1"}

func TestClockInTwiceSameDay(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.ClockIn(testUser, now)
	require.NoError(t, err)
	_, err = svc.ClockIn(testUser, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestClockOutComputesWorkedMinutes(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})
	clockIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.ClockIn(testUser, clockIn)
	require.NoError(t, err)

	// 12:00-12:30 休息
	_, err = svc.StartBreak("u1", clockIn.Add(3*time.Hour))
	require.NoError(t, err)
	_, err = svc.EndBreak("u1", clockIn.Add(3*time.Hour+30*time.Minute))
	require.NoError(t, err)

	att, err := svc.ClockOut("u1", clockIn.Add(8*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceClosed, att.Status)
	// 8 小时在岗减 30 分钟休息
	assert.Equal(t, 450, att.WorkedMinutes)
	require.NotNil(t, att.ClockOutAt)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.ClockOut("u1", time.Now())
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestClockOutClosesOpenBreak(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})
	clockIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.ClockIn(testUser, clockIn)
	require.NoError(t, err)
	_, err = svc.StartBreak("u1", clockIn.Add(6*time.Hour))
	require.NoError(t, err)

	// 未结束的休息随下班一并结束，休息时长算到下班时刻
	att, err := svc.ClockOut("u1", clockIn.Add(7*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 360, att.WorkedMinutes)
}

func TestBreakStateMachine(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, err := svc.StartBreak("u1", now)
	assert.ErrorIs(t, err, ErrNotClockedIn)

	_, err = svc.ClockIn(testUser, now)
	require.NoError(t, err)

	_, err = svc.EndBreak("u1", now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrNoOpenBreak)

	_, err = svc.StartBreak("u1", now.Add(time.Hour))
	require.NoError(t, err)
	_, err = svc.StartBreak("u1", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrBreakAlreadyOpen)

	_, err = svc.EndBreak("u1", now.Add(2*time.Hour))
	require.NoError(t, err)
}

func TestAutoCloseLeftOpenRecords(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo)
	yesterday := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	_, err := svc.ClockIn(testUser, yesterday)
	require.NoError(t, err)
	_, err = svc.ClockIn(&model.User{UserId: "u2", CompanyId: "c1"}, yesterday)
	require.NoError(t, err)

	today := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)
	closed, err := svc.AutoClose(today)
	require.NoError(t, err)
	assert.Equal(t, 2, closed)

	for _, a := range repo.atts {
		assert.Equal(t, model.AttendanceAutoClosed, a.Status)
		require.NotNil(t, a.ClockOutAt)
	}

	// 再跑一遍没有可关的记录
	closed, err = svc.AutoClose(today)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}
