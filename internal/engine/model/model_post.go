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

// Post 博客文章表
type Post struct {
	BaseModel
	PostId      string     `gorm:"column:post_id;not null;uniqueIndex" json:"postId"`
	CompanyId   string     `gorm:"column:company_id;index" json:"companyId"`
	AuthorId    string     `gorm:"column:author_id;not null;index" json:"authorId"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Slug        string     `gorm:"column:slug;uniqueIndex" json:"slug"`
	Summary     string     `gorm:"column:summary" json:"summary"`
	Body        string     `gorm:"column:body;type:text" json:"body"`
	IsPublished int        `gorm:"column:is_published;default:0;index" json:"isPublished"` // 0: 草稿，1: 已发布
	PublishedAt *time.Time `gorm:"column:published_at" json:"publishedAt"`
}

func (Post) TableName() string {
	return "t_post"
}

// 文章发布状态常量
const (
	PostPublished = 1
	PostDraft     = 0
)

// CreatePostReq request for creating post
type CreatePostReq struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
	Publish bool   `json:"publish"`
}

// UpdatePostReq request for updating post
type UpdatePostReq struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
	Body    *string `json:"body,omitempty"`
	Publish *bool   `json:"publish,omitempty"`
}
