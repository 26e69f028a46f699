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
	"time"

	"github.com/go-staffly/staffly/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) attendanceRouter(r fiber.Router, auth fiber.Handler) {
	attGroup := r.Group("/attendance", auth)
	{
		attGroup.Post("/clockIn", rt.clockIn)
		attGroup.Post("/clockOut", rt.clockOut)
		attGroup.Post("/break/start", rt.startBreak)
		attGroup.Post("/break/end", rt.endBreak)
		attGroup.Get("/today", rt.myDay)
		attGroup.Get("/range", rt.attendanceRange)
	}
}

func (rt *Router) clockIn(c *fiber.Ctx) error {
	user, err := rt.UserService.GetUser(currentUserId(c))
	if err != nil {
		return bizError(c, err)
	}
	att, err := rt.AttService.ClockIn(user, time.Now())
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, att)
}

func (rt *Router) clockOut(c *fiber.Ctx) error {
	att, err := rt.AttService.ClockOut(currentUserId(c), time.Now())
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, att)
}

func (rt *Router) startBreak(c *fiber.Ctx) error {
	br, err := rt.AttService.StartBreak(currentUserId(c), time.Now())
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, br)
}

func (rt *Router) endBreak(c *fiber.Ctx) error {
	br, err := rt.AttService.EndBreak(currentUserId(c), time.Now())
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, br)
}

func (rt *Router) myDay(c *fiber.Ctx) error {
	day, err := rt.AttService.MyDay(currentUserId(c), time.Now())
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, day)
}

func (rt *Router) attendanceRange(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "from and to are required", c.Path())
	}

	atts, err := rt.AttService.Range(currentUserId(c), from, to)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, atts)
}
