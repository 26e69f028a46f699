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

type IPostRepository interface {
	GetPost(postId string) (*model.Post, error)
	GetPostBySlug(slug string) (*model.Post, error)
	ListPublished(companyId string) ([]model.Post, error)
	ListAll(companyId string) ([]model.Post, error)
	CreatePost(post *model.Post) error
	UpdatePost(post *model.Post) error
	DeletePost(postId string) error
}

type PostRepo struct {
	database.IDatabase
}

func NewPostRepo(db database.IDatabase) IPostRepository {
	return &PostRepo{
		IDatabase: db,
	}
}

// GetPost 获取文章
func (r *PostRepo) GetPost(postId string) (*model.Post, error) {
	var post model.Post
	err := r.Database().Where("post_id = ?", postId).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostBySlug 根据 slug 获取文章
func (r *PostRepo) GetPostBySlug(slug string) (*model.Post, error) {
	var post model.Post
	err := r.Database().Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPublished 获取已发布文章，按发布时间倒序
func (r *PostRepo) ListPublished(companyId string) ([]model.Post, error) {
	var posts []model.Post
	err := r.Database().Where("company_id = ? AND is_published = ?", companyId, model.PostPublished).
		Order("published_at DESC").Find(&posts).Error
	return posts, err
}

// ListAll 获取公司全部文章（含草稿）
func (r *PostRepo) ListAll(companyId string) ([]model.Post, error) {
	var posts []model.Post
	err := r.Database().Where("company_id = ?", companyId).
		Order("id DESC").Find(&posts).Error
	return posts, err
}

// CreatePost 创建文章
func (r *PostRepo) CreatePost(post *model.Post) error {
	return r.Database().Create(post).Error
}

// UpdatePost 更新文章
func (r *PostRepo) UpdatePost(post *model.Post) error {
	return r.Database().Model(&model.Post{}).Where("post_id = ?", post.PostId).
		Select("title", "slug", "summary", "body", "is_published", "published_at").
		Updates(post).Error
}

// DeletePost 删除文章
func (r *PostRepo) DeletePost(postId string) error {
	return r.Database().Where("post_id = ?", postId).Delete(&model.Post{}).Error
}
