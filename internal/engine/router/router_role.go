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

func (rt *Router) roleRouter(r fiber.Router, auth fiber.Handler) {
	admin := middleware.RequireRole(rt.UserService, "superadmin")

	roleGroup := r.Group("/role", auth, admin)
	{
		roleGroup.Get("/list", rt.listRoles)
		roleGroup.Post("/add", rt.createRole)
		roleGroup.Put("/:roleId", rt.updateRole)
		roleGroup.Delete("/:roleId", rt.deleteRole)

		roleGroup.Post("/assign", rt.assignRole)
		roleGroup.Delete("/assign", rt.revokeRole)
	}
}

func (rt *Router) listRoles(c *fiber.Ctx) error {
	roles, err := rt.RoleService.ListRoles()
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, roles)
}

func (rt *Router) createRole(c *fiber.Ctx) error {
	var req model.CreateRoleReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.Name == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "role name is required", c.Path())
	}

	role, err := rt.RoleService.CreateRole(&req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"roleId": role.RoleId})
}

func (rt *Router) updateRole(c *fiber.Ctx) error {
	var req model.UpdateRoleReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.RoleService.UpdateRole(c.Params("roleId"), &req); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteRole(c *fiber.Ctx) error {
	if err := rt.RoleService.DeleteRole(c.UserContext(), c.Params("roleId")); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) assignRole(c *fiber.Ctx) error {
	var req struct {
		UserId string `json:"userId"`
		RoleId string `json:"roleId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	grantedBy := currentUserId(c)
	if err := rt.RoleService.AssignRole(req.UserId, req.RoleId, &grantedBy); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) revokeRole(c *fiber.Ctx) error {
	userId := c.Query("userId")
	roleId := c.Query("roleId")
	if userId == "" || roleId == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "userId and roleId are required", c.Path())
	}

	if err := rt.RoleService.RevokeRole(userId, roleId); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}
