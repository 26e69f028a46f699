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

package router

import (
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) postRouter(r fiber.Router, auth fiber.Handler) {
	admin := middleware.RequireRole(rt.UserService, "admin")

	postGroup := r.Group("/post")
	{
		// 公开：已发布文章
		postGroup.Get("/list", rt.listPosts)
		postGroup.Get("/slug/:slug", rt.getPostBySlug)

		// 管理端
		postGroup.Get("/all", auth, admin, rt.listAllPosts)
		postGroup.Post("/add", auth, admin, rt.createPost)
		postGroup.Put("/:postId", auth, admin, rt.updatePost)
		postGroup.Delete("/:postId", auth, admin, rt.deletePost)
	}
}

func (rt *Router) listPosts(c *fiber.Ctx) error {
	companyId := c.Query("companyId")
	if companyId == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "companyId is required", c.Path())
	}
	posts, err := rt.PostService.ListPublished(companyId)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, posts)
}

func (rt *Router) getPostBySlug(c *fiber.Ctx) error {
	post, err := rt.PostService.GetBySlug(c.Params("slug"))
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, post)
}

func (rt *Router) listAllPosts(c *fiber.Ctx) error {
	user, err := rt.UserService.GetUser(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	posts, err := rt.PostService.ListAll(user.CompanyId)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, posts)
}

func (rt *Router) createPost(c *fiber.Ctx) error {
	var req model.CreatePostReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.Title == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "post title is required", c.Path())
	}

	author, err := rt.UserService.GetUser(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	post, err := rt.PostService.Create(author, &req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"postId": post.PostId, "slug": post.Slug})
}

func (rt *Router) updatePost(c *fiber.Ctx) error {
	var req model.UpdatePostReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.PostService.Update(c.Params("postId"), &req); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deletePost(c *fiber.Ctx) error {
	if err := rt.PostService.Delete(c.Params("postId")); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}
