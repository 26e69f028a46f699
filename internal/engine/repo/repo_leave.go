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

type ILeaveRepository interface {
	GetLeave(leaveId string) (*model.LeaveRequest, error)
	ListByUser(userId string) ([]model.LeaveRequest, error)
	ListPendingByCompany(companyId string) ([]model.LeaveRequest, error)
	CreateLeave(leave *model.LeaveRequest) error
	UpdateLeaveStatus(leave *model.LeaveRequest) error
}

type LeaveRepo struct {
	database.IDatabase
}

func NewLeaveRepo(db database.IDatabase) ILeaveRepository {
	return &LeaveRepo{
		IDatabase: db,
	}
}

// GetLeave 获取请假申请
func (r *LeaveRepo) GetLeave(leaveId string) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.Database().Where("leave_id = ?", leaveId).First(&leave).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// ListByUser 获取用户的请假申请
func (r *LeaveRepo) ListByUser(userId string) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.Database().Where("user_id = ?", userId).
		Order("id DESC").Find(&leaves).Error
	return leaves, err
}

// ListPendingByCompany 获取公司内待审批的请假申请
func (r *LeaveRepo) ListPendingByCompany(companyId string) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.Database().Where("company_id = ? AND status = ?", companyId, model.LeavePending).
		Order("id ASC").Find(&leaves).Error
	return leaves, err
}

// CreateLeave 创建请假申请
func (r *LeaveRepo) CreateLeave(leave *model.LeaveRequest) error {
	return r.Database().Create(leave).Error
}

// UpdateLeaveStatus 更新请假审批状态
func (r *LeaveRepo) UpdateLeaveStatus(leave *model.LeaveRequest) error {
	return r.Database().Model(&model.LeaveRequest{}).Where("leave_id = ?", leave.LeaveId).
		Select("status", "reviewed_by", "review_note").
		Updates(leave).Error
}
