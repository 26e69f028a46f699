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

package middleware

import (
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/internal/engine/service"
	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/http/jwt"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// RequireRole 角色校验中间件
// 要求角色 required 的路由，对持有覆盖该角色的任一角色的用户放行。
// 层级表外的角色只覆盖自身，不产生越权。
func RequireRole(userService *service.UserService, required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*jwt.AuthClaims)
		if !ok || claims == nil {
			return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
		}

		roles, err := userService.Roles(claims.UserId)
		if err != nil {
			log.Errorf("fetch roles for user %s failed: %v", claims.UserId, err)
			return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
		}
		if !model.AnyRoleCovers(roles, required) {
			return http.WithRepErrMsg(c, http.PermissionDenied.Code, http.PermissionDenied.Msg, c.Path())
		}

		c.Locals("roles", roles)
		return c.Next()
	}
}
