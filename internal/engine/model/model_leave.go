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

// LeaveRequest 请假申请表
type LeaveRequest struct {
	BaseModel
	LeaveId    string  `gorm:"column:leave_id;not null;uniqueIndex" json:"leaveId"`
	UserId     string  `gorm:"column:user_id;not null;index" json:"userId"`
	CompanyId  string  `gorm:"column:company_id;index" json:"companyId"`
	Type       string  `gorm:"column:type;not null" json:"type"`                 // annual / sick / unpaid / other
	StartDate  string  `gorm:"column:start_date;not null" json:"startDate"`      // 格式 2006-01-02
	EndDate    string  `gorm:"column:end_date;not null" json:"endDate"`          // 格式 2006-01-02
	Days       int     `gorm:"column:days;default:0" json:"days"`                // 天数（含首尾）
	Reason     string  `gorm:"column:reason" json:"reason"`                      // 请假原因
	Status     string  `gorm:"column:status;default:pending;index" json:"status"` // pending / approved / rejected
	ReviewedBy *string `gorm:"column:reviewed_by" json:"reviewedBy"`             // 审批人ID
	ReviewNote string  `gorm:"column:review_note" json:"reviewNote"`             // 审批备注
}

func (LeaveRequest) TableName() string {
	return "t_leave_request"
}

// 请假状态常量
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// SubmitLeaveReq request for submitting a leave request
type SubmitLeaveReq struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// ReviewLeaveReq request for approving or rejecting a leave request
type ReviewLeaveReq struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}
