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

func (rt *Router) userRouter(r fiber.Router, auth, menus fiber.Handler) {
	userGroup := r.Group("/user")
	{
		userGroup.Get("/getUserInfo", auth, menus, rt.getUserInfo)
		userGroup.Get("/dashboard", auth, rt.getDashboard)
		userGroup.Put("/dashboard", auth, rt.setDashboard)
		userGroup.Post("/invite", auth, middleware.RequireRole(rt.UserService, "admin"), rt.addUser)
	}
}

// getUserInfo 返回用户信息、角色、可见菜单树与落地路由
func (rt *Router) getUserInfo(c *fiber.Ctx) error {
	userId := currentUserId(c)
	info, err := rt.UserService.GetUserInfo(userId)
	if err != nil {
		return bizError(c, err)
	}

	roles, _ := c.Locals("roles").([]string)
	menuItems, ok := c.Locals("menuItems").([]model.MenuNode)
	if !ok {
		menuItems = []model.MenuNode{}
	}

	return http.WithRepJSON(c, fiber.Map{
		"userInfo":  info,
		"roles":     roles,
		"menuItems": menuItems,
		"dashboard": rt.DashService.Resolve(userId, roles),
	})
}

func (rt *Router) getDashboard(c *fiber.Ctx) error {
	userId := currentUserId(c)
	roles, err := rt.UserService.Roles(userId)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"dashboard": rt.DashService.Resolve(userId, roles)})
}

func (rt *Router) setDashboard(c *fiber.Ctx) error {
	var req struct {
		Route string `json:"route"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if err := rt.DashService.SetPreference(currentUserId(c), req.Route); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) addUser(c *fiber.Ctx) error {
	var req model.AddUserReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.Username == "" || req.Password == "" {
		return http.WithRepErrMsg(c, http.UsernameArePasswordIsRequired.Code, http.UsernameArePasswordIsRequired.Msg, c.Path())
	}

	// 邀请人所在公司即新用户所在公司
	inviter, err := rt.UserService.GetUser(currentUserId(c))
	if err == nil && req.CompanyId == "" {
		req.CompanyId = inviter.CompanyId
	}

	user, err := rt.UserService.AddUser(&req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"userId": user.UserId})
}
