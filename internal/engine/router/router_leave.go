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

func (rt *Router) leaveRouter(r fiber.Router, auth fiber.Handler) {
	supervisor := middleware.RequireRole(rt.UserService, "supervisor")

	leaveGroup := r.Group("/leave", auth)
	{
		leaveGroup.Post("/submit", rt.submitLeave)
		leaveGroup.Get("/mine", rt.myLeaves)

		leaveGroup.Get("/pending", supervisor, rt.pendingLeaves)
		leaveGroup.Post("/:leaveId/review", supervisor, rt.reviewLeave)
	}
}

func (rt *Router) submitLeave(c *fiber.Ctx) error {
	var req model.SubmitLeaveReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	user, err := rt.UserService.GetUser(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	leave, err := rt.LeaveService.Submit(user, &req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, leave)
}

func (rt *Router) myLeaves(c *fiber.Ctx) error {
	leaves, err := rt.LeaveService.ListMine(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, leaves)
}

func (rt *Router) pendingLeaves(c *fiber.Ctx) error {
	user, err := rt.UserService.GetUser(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	leaves, err := rt.LeaveService.PendingQueue(user.CompanyId)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, leaves)
}

func (rt *Router) reviewLeave(c *fiber.Ctx) error {
	var req model.ReviewLeaveReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	leave, err := rt.LeaveService.Review(c.Params("leaveId"), currentUserId(c), &req)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, leave)
}
