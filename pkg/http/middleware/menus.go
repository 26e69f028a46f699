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
	"github.com/go-staffly/staffly/pkg/http/jwt"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// MenuInjection 请求级菜单注入
// 对已认证请求解析可见菜单树并放入 Locals，供 userinfo 等处理器取用。
// 解析失败不影响请求（服务内部已降级），角色查询失败时注入空列表。
func MenuInjection(userService *service.UserService, menuService *service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*jwt.AuthClaims)
		if !ok || claims == nil {
			return c.Next()
		}

		roles, err := userService.Roles(claims.UserId)
		if err != nil {
			log.Warnw("fetch roles for menu injection failed", "userId", claims.UserId, "err", err)
			c.Locals("menuItems", []model.MenuNode{})
			return c.Next()
		}

		c.Locals("menuItems", menuService.GetMenuForRoles(c.UserContext(), roles))
		c.Locals("roles", roles)
		return c.Next()
	}
}
