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

type fakePostRepo struct {
	posts []model.Post
}

func (f *fakePostRepo) GetPost(postId string) (*model.Post, error) {
	for i := range f.posts {
		if f.posts[i].PostId == postId {
			return &f.posts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakePostRepo) GetPostBySlug(slug string) (*model.Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakePostRepo) ListPublished(companyId string) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.CompanyId == companyId && p.IsPublished == model.PostPublished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListAll(companyId string) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.CompanyId == companyId {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) CreatePost(post *model.Post) error {
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) UpdatePost(post *model.Post) error {
	for i := range f.posts {
		if f.posts[i].PostId == post.PostId {
			f.posts[i] = *post
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakePostRepo) DeletePost(postId string) error {
	for i := range f.posts {
		if f.posts[i].PostId == postId {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

func TestCreatePostSlug(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	post, err := svc.Create(testUser, &model.CreatePostReq{Title: "Q3 All-Hands: What's Next!"})
	require.NoError(t, err)
	assert.Equal(t, "q3-all-hands-what-s-next", post.Slug)
	assert.Equal(t, model.PostDraft, post.IsPublished)
	assert.Nil(t, post.PublishedAt)

	// 同标题再次创建，slug 冲突时追加短后缀
	dup, err := svc.Create(testUser, &model.CreatePostReq{Title: "Q3 All-Hands: What's Next!"})
	require.NoError(t, err)
	assert.NotEqual(t, post.Slug, dup.Slug)
	assert.Contains(t, dup.Slug, "q3-all-hands-what-s-next-")
}

func TestCreatePostPublishSetsTimestamp(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	post, err := svc.Create(testUser, &model.CreatePostReq{Title: "Welcome", Publish: true})
	require.NoError(t, err)
	assert.Equal(t, model.PostPublished, post.IsPublished)
	require.NotNil(t, post.PublishedAt)
}

func TestUpdatePostPublishToggle(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	post, err := svc.Create(testUser, &model.CreatePostReq{Title: "Holiday Schedule"})
	require.NoError(t, err)

	publish := true
	require.NoError(t, svc.Update(post.PostId, &model.UpdatePostReq{Publish: &publish}))
	got, err := repo.GetPost(post.PostId)
	require.NoError(t, err)
	assert.Equal(t, model.PostPublished, got.IsPublished)
	require.NotNil(t, got.PublishedAt)

	// 撤回发布后清空发布时间
	unpublish := false
	require.NoError(t, svc.Update(post.PostId, &model.UpdatePostReq{Publish: &unpublish}))
	got, err = repo.GetPost(post.PostId)
	require.NoError(t, err)
	assert.Equal(t, model.PostDraft, got.IsPublished)
	assert.Nil(t, got.PublishedAt)
}

func TestGetBySlugOnlyPublished(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	draft, err := svc.Create(testUser, &model.CreatePostReq{Title: "Draft Only"})
	require.NoError(t, err)

	_, err = svc.GetBySlug(draft.Slug)
	assert.ErrorIs(t, err, ErrPostNotFound)

	published, err := svc.Create(testUser, &model.CreatePostReq{Title: "Live Post", Publish: true})
	require.NoError(t, err)

	got, err := svc.GetBySlug(published.Slug)
	require.NoError(t, err)
	assert.Equal(t, published.PostId, got.PostId)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", slugify("Hello, World"))
	assert.Equal(t, "2024-review", slugify("  2024 Review  "))
	assert.Equal(t, "", slugify("!!!"))
}
