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
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/pkg/id"
)

var ErrPostNotFound = errors.New("post not found")

// PostService 公司博客
type PostService struct {
	postRepo repo.IPostRepository
}

func NewPostService(postRepo repo.IPostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// Create 创建文章，slug 由标题生成，冲突时追加短后缀
func (s *PostService) Create(author *model.User, req *model.CreatePostReq) (*model.Post, error) {
	postId := id.GetUUIDWithoutDashes()
	slug := slugify(req.Title)
	if slug == "" {
		slug = postId[:8]
	}
	if _, err := s.postRepo.GetPostBySlug(slug); err == nil {
		slug = fmt.Sprintf("%s-%s", slug, postId[:8])
	}

	post := &model.Post{
		PostId:    postId,
		CompanyId: author.CompanyId,
		AuthorId:  author.UserId,
		Title:     req.Title,
		Slug:      slug,
		Summary:   req.Summary,
		Body:      req.Body,
	}
	if req.Publish {
		now := time.Now()
		post.IsPublished = model.PostPublished
		post.PublishedAt = &now
	}
	if err := s.postRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update 更新文章，发布状态切换时维护发布时间
func (s *PostService) Update(postId string, req *model.UpdatePostReq) error {
	post, err := s.postRepo.GetPost(postId)
	if err != nil {
		return ErrPostNotFound
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Summary != nil {
		post.Summary = *req.Summary
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Publish != nil {
		if *req.Publish && post.IsPublished != model.PostPublished {
			now := time.Now()
			post.IsPublished = model.PostPublished
			post.PublishedAt = &now
		} else if !*req.Publish {
			post.IsPublished = model.PostDraft
			post.PublishedAt = nil
		}
	}
	return s.postRepo.UpdatePost(post)
}

// Delete 删除文章
func (s *PostService) Delete(postId string) error {
	if _, err := s.postRepo.GetPost(postId); err != nil {
		return ErrPostNotFound
	}
	return s.postRepo.DeletePost(postId)
}

// GetBySlug 按 slug 获取已发布文章
func (s *PostService) GetBySlug(slug string) (*model.Post, error) {
	post, err := s.postRepo.GetPostBySlug(slug)
	if err != nil || post.IsPublished != model.PostPublished {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ListPublished 公司已发布文章列表
func (s *PostService) ListPublished(companyId string) ([]model.Post, error) {
	return s.postRepo.ListPublished(companyId)
}

// ListAll 公司全部文章（含草稿），管理端使用
func (s *PostService) ListAll(companyId string) ([]model.Post, error) {
	return s.postRepo.ListAll(companyId)
}

// slugify 标题转 slug：小写、非字母数字折叠为连字符
func slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
