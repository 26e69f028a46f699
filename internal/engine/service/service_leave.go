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
)

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrLeaveInvalidRange  = errors.New("invalid leave date range")
	ErrLeaveNotReviewable = errors.New("leave request is not pending")
)

// LeaveService 请假申请与审批
type LeaveService struct {
	leaveRepo repo.ILeaveRepository
}

func NewLeaveService(leaveRepo repo.ILeaveRepository) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
	}
}

// Submit 提交请假申请，日期区间闭区间计天数
func (s *LeaveService) Submit(user *model.User, req *model.SubmitLeaveReq) (*model.LeaveRequest, error) {
	start, err := time.Parse(workDayLayout, req.StartDate)
	if err != nil {
		return nil, ErrLeaveInvalidRange
	}
	end, err := time.Parse(workDayLayout, req.EndDate)
	if err != nil {
		return nil, ErrLeaveInvalidRange
	}
	if end.Before(start) {
		return nil, ErrLeaveInvalidRange
	}
	days := int(end.Sub(start).Hours()/24) + 1

	leave := &model.LeaveRequest{
		LeaveId:   id.GetUUIDWithoutDashes(),
		UserId:    user.UserId,
		CompanyId: user.CompanyId,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      days,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}
	if err := s.leaveRepo.CreateLeave(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// ListMine 查询自己的请假申请
func (s *LeaveService) ListMine(userId string) ([]model.LeaveRequest, error) {
	return s.leaveRepo.ListByUser(userId)
}

// PendingQueue 公司内待审批队列
func (s *LeaveService) PendingQueue(companyId string) ([]model.LeaveRequest, error) {
	return s.leaveRepo.ListPendingByCompany(companyId)
}

// Review 审批请假申请，仅 pending 状态可审批
func (s *LeaveService) Review(leaveId, reviewerId string, req *model.ReviewLeaveReq) (*model.LeaveRequest, error) {
	leave, err := s.leaveRepo.GetLeave(leaveId)
	if err != nil {
		return nil, ErrLeaveNotFound
	}
	if leave.Status != model.LeavePending {
		return nil, ErrLeaveNotReviewable
	}
	if req.Approve {
		leave.Status = model.LeaveApproved
	} else {
		leave.Status = model.LeaveRejected
	}
	leave.ReviewedBy = &reviewerId
	leave.ReviewNote = req.Note
	if err := s.leaveRepo.UpdateLeaveStatus(leave); err != nil {
		return nil, err
	}
	return leave, nil
}
