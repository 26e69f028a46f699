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
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves []model.LeaveRequest
}

func (f *fakeLeaveRepo) GetLeave(leaveId string) (*model.LeaveRequest, error) {
	for i := range f.leaves {
		if f.leaves[i].LeaveId == leaveId {
			return &f.leaves[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeLeaveRepo) ListByUser(userId string) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	for _, l := range f.leaves {
		if l.UserId == userId {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPendingByCompany(companyId string) ([]model.LeaveRequest, error) {
	var out []model.LeaveRequest
	for _, l := range f.leaves {
		if l.CompanyId == companyId && l.Status == model.LeavePending {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CreateLeave(leave *model.LeaveRequest) error {
	f.leaves = append(f.leaves, *leave)
	return nil
}

func (f *fakeLeaveRepo) UpdateLeaveStatus(leave *model.LeaveRequest) error {
	for i := range f.leaves {
		if f.leaves[i].LeaveId == leave.LeaveId {
			f.leaves[i] = *leave
			return nil
		}
	}
	return errors.New("record not found")
}

func TestSubmitLeaveCountsDaysInclusive(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	leave, err := svc.Submit(testUser, &model.SubmitLeaveReq{
		Type:      "annual",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-06",
		Reason:    "vacation",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, leave.Days)
	assert.Equal(t, model.LeavePending, leave.Status)

	// 单日请假算一天
	leave, err = svc.Submit(testUser, &model.SubmitLeaveReq{
		Type:      "sick",
		StartDate: "2025-06-09",
		EndDate:   "2025-06-09",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, leave.Days)
}

func TestSubmitLeaveRejectsBadRange(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	_, err := svc.Submit(testUser, &model.SubmitLeaveReq{
		Type:      "annual",
		StartDate: "2025-06-06",
		EndDate:   "2025-06-02",
	})
	assert.ErrorIs(t, err, ErrLeaveInvalidRange)

	_, err = svc.Submit(testUser, &model.SubmitLeaveReq{
		Type:      "annual",
		StartDate: "not-a-date",
		EndDate:   "2025-06-02",
	})
	assert.ErrorIs(t, err, ErrLeaveInvalidRange)
}

func TestReviewLeave(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo)

	leave, err := svc.Submit(testUser, &model.SubmitLeaveReq{
		Type:      "annual",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-03",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(leave.LeaveId, "supervisor-1", &model.ReviewLeaveReq{Approve: true, Note: "enjoy"})
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "supervisor-1", *reviewed.ReviewedBy)

	// 已审批的申请不可再审批
	_, err = svc.Review(leave.LeaveId, "supervisor-2", &model.ReviewLeaveReq{Approve: false})
	assert.ErrorIs(t, err, ErrLeaveNotReviewable)

	_, err = svc.Review("missing", "supervisor-1", &model.ReviewLeaveReq{Approve: true})
	assert.ErrorIs(t, err, ErrLeaveNotFound)

	pending, err := svc.PendingQueue("c1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}
