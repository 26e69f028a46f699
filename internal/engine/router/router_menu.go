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

func (rt *Router) menuRouter(r fiber.Router, auth fiber.Handler) {
	admin := middleware.RequireRole(rt.UserService, "superadmin")

	menuGroup := r.Group("/menu")
	{
		// 当前用户可见的菜单树
		menuGroup.Get("/resolved", auth, rt.getResolvedMenu)

		menuGroup.Post("/add", auth, admin, rt.createMenu)
		menuGroup.Put("/:menuId", auth, admin, rt.updateMenu)
		menuGroup.Delete("/:menuId", auth, admin, rt.deleteMenu)

		menuGroup.Post("/grant", auth, admin, rt.grantMenu)
		menuGroup.Delete("/grant", auth, admin, rt.revokeMenu)

		menuGroup.Post("/clearCache", auth, admin, rt.clearMenuCache)
	}
}

func (rt *Router) getResolvedMenu(c *fiber.Ctx) error {
	roles, err := rt.UserService.Roles(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, rt.MenuService.GetMenuForRoles(c.UserContext(), roles))
}

func (rt *Router) createMenu(c *fiber.Ctx) error {
	var req model.CreateMenuReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.Name == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "menu name is required", c.Path())
	}

	menu, err := rt.MenuService.CreateMenu(c.UserContext(), &req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"menuId": menu.MenuId})
}

func (rt *Router) updateMenu(c *fiber.Ctx) error {
	var req model.UpdateMenuReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.MenuService.UpdateMenu(c.UserContext(), c.Params("menuId"), &req); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteMenu(c *fiber.Ctx) error {
	if err := rt.MenuService.DeleteMenu(c.UserContext(), c.Params("menuId")); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) grantMenu(c *fiber.Ctx) error {
	var req model.GrantMenuReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.MenuService.GrantMenu(c.UserContext(), &req); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) revokeMenu(c *fiber.Ctx) error {
	roleId := c.Query("roleId")
	menuId := c.Query("menuId")
	if roleId == "" || menuId == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "roleId and menuId are required", c.Path())
	}

	if err := rt.MenuService.RevokeMenu(c.UserContext(), roleId, menuId); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) clearMenuCache(c *fiber.Ctx) error {
	rt.MenuService.ClearCache(c.UserContext())
	return http.WithRepNotDetail(c)
}
