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
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-staffly/staffly/internal/engine/service"
	"github.com/go-staffly/staffly/pkg/cache"
	httpx "github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/http/jwt"
	"github.com/go-staffly/staffly/pkg/http/middleware"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/go-staffly/staffly/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

type Router struct {
	Http         *httpx.Http
	Rdb          cache.ICache
	AuthService  *service.AuthService
	UserService  *service.UserService
	MenuService  *service.MenuService
	RoleService  *service.RoleService
	DashService  *service.DashboardService
	AttService   *service.AttendanceService
	LeaveService *service.LeaveService
	PostService  *service.PostService
}

func NewRouter(httpConf *httpx.Http, rdb cache.ICache,
	authService *service.AuthService, userService *service.UserService,
	menuService *service.MenuService, roleService *service.RoleService,
	dashService *service.DashboardService, attService *service.AttendanceService,
	leaveService *service.LeaveService, postService *service.PostService) *Router {
	return &Router{
		Http:         httpConf,
		Rdb:          rdb,
		AuthService:  authService,
		UserService:  userService,
		MenuService:  menuService,
		RoleService:  roleService,
		DashService:  dashService,
		AttService:   attService,
		LeaveService: leaveService,
		PostService:  postService,
	}
}

func (rt *Router) Router() *fiber.App {

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
	})

	app.Use(middleware.CorsMiddleware())
	app.Use(middleware.ExceptionMiddleware)
	app.Use(middleware.MetricsMiddleware)

	if rt.Http.AccessLog {
		app.Use(httpx.AccessLogFormat(log.GetLogger().Desugar()))
	}

	if rt.Http.PProf {
		app.Use(pprof.New(pprof.Config{Prefix: "/debug"}))
	}

	if rt.Http.ExposeMetrics {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get("/metrics", func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Rdb)
	menus := middleware.MenuInjection(rt.UserService, rt.MenuService)

	api := app.Group(rt.Http.ContextPath)
	{
		rt.authRouter(api, auth)
		rt.userRouter(api, auth, menus)
		rt.menuRouter(api, auth)
		rt.roleRouter(api, auth)
		rt.attendanceRouter(api, auth)
		rt.leaveRouter(api, auth)
		rt.postRouter(api, auth)
	}

	return app
}

// currentUserId 从认证中间件写入的 claims 中取用户ID
func currentUserId(c *fiber.Ctx) string {
	claims, ok := c.Locals("claims").(*jwt.AuthClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.UserId
}

// bizError 服务层错误到业务码的统一映射
func bizError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		return httpx.WithRepErrMsg(c, httpx.MenuNotExist.Code, httpx.MenuNotExist.Msg, c.Path())
	case errors.Is(err, service.ErrMenuParentNotFound):
		return httpx.WithRepErrMsg(c, httpx.MenuParentNotExist.Code, httpx.MenuParentNotExist.Msg, c.Path())
	case errors.Is(err, service.ErrMenuParentCycle):
		return httpx.WithRepErrMsg(c, httpx.MenuParentCycle.Code, httpx.MenuParentCycle.Msg, c.Path())
	case errors.Is(err, service.ErrRoleNotFound):
		return httpx.WithRepErrMsg(c, httpx.RoleNotExist.Code, httpx.RoleNotExist.Msg, c.Path())
	case errors.Is(err, service.ErrUserNotFound):
		return httpx.WithRepErrMsg(c, httpx.UserNotExist.Code, httpx.UserNotExist.Msg, c.Path())
	case errors.Is(err, service.ErrUserExists):
		return httpx.WithRepErrMsg(c, httpx.UserAlreadyExist.Code, httpx.UserAlreadyExist.Msg, c.Path())
	case errors.Is(err, service.ErrBadCredentials):
		return httpx.WithRepErrMsg(c, httpx.UserIncorrectPassword.Code, httpx.UserIncorrectPassword.Msg, c.Path())
	case errors.Is(err, service.ErrAlreadyClockedIn):
		return httpx.WithRepErrMsg(c, httpx.AlreadyClockedIn.Code, httpx.AlreadyClockedIn.Msg, c.Path())
	case errors.Is(err, service.ErrNotClockedIn):
		return httpx.WithRepErrMsg(c, httpx.NotClockedIn.Code, httpx.NotClockedIn.Msg, c.Path())
	case errors.Is(err, service.ErrBreakAlreadyOpen):
		return httpx.WithRepErrMsg(c, httpx.BreakAlreadyOpen.Code, httpx.BreakAlreadyOpen.Msg, c.Path())
	case errors.Is(err, service.ErrNoOpenBreak):
		return httpx.WithRepErrMsg(c, httpx.NoOpenBreak.Code, httpx.NoOpenBreak.Msg, c.Path())
	case errors.Is(err, service.ErrLeaveInvalidRange):
		return httpx.WithRepErrMsg(c, httpx.LeaveInvalidDateRange.Code, httpx.LeaveInvalidDateRange.Msg, c.Path())
	case errors.Is(err, service.ErrLeaveNotReviewable):
		return httpx.WithRepErrMsg(c, httpx.LeaveNotReviewable.Code, httpx.LeaveNotReviewable.Msg, c.Path())
	case errors.Is(err, service.ErrLeaveNotFound), errors.Is(err, service.ErrPostNotFound):
		return httpx.WithRepErrMsg(c, httpx.NotFound.Code, httpx.NotFound.Msg, c.Path())
	default:
		return httpx.WithRepErrMsg(c, httpx.Failed.Code, err.Error(), c.Path())
	}
}
