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
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) authRouter(r fiber.Router, auth fiber.Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.Post("/register", rt.register)
		authGroup.Post("/login", rt.login)
		authGroup.Get("/oauth/:provider", rt.oauthAuthorize)
		authGroup.Get("/oauth/:provider/callback", rt.oauthCallback)

		authGroup.Post("/logout", auth, rt.logout)
		authGroup.Get("/refresh", auth, rt.refresh)
	}
}

func (rt *Router) register(c *fiber.Ctx) error {
	var register model.Register
	if err := c.BodyParser(&register); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if register.Username == "" || register.Password == "" {
		return http.WithRepErrMsg(c, http.UsernameArePasswordIsRequired.Code, http.UsernameArePasswordIsRequired.Msg, c.Path())
	}

	if err := rt.AuthService.Register(&register); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login model.Login
	if err := c.BodyParser(&login); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}
	if login.Username == "" && login.Email == "" {
		return http.WithRepErrMsg(c, http.UsernameArePasswordIsRequired.Code, http.UsernameArePasswordIsRequired.Msg, c.Path())
	}

	resp, err := rt.AuthService.Login(c.UserContext(), &login)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) logout(c *fiber.Ctx) error {
	if err := rt.AuthService.Logout(c.UserContext(), currentUserId(c)); err != nil {
		return bizError(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) refresh(c *fiber.Ctx) error {
	refreshToken := c.Query("refreshToken")
	if refreshToken == "" {
		return http.WithRepErrMsg(c, http.InvalidToken.Code, http.InvalidToken.Msg, c.Path())
	}

	token, err := rt.AuthService.Refresh(c.UserContext(), currentUserId(c), refreshToken)
	if err != nil {
		return bizError(c, err)
	}
	return http.WithRepJSON(c, token)
}

func (rt *Router) oauthAuthorize(c *fiber.Ctx) error {
	url, err := rt.AuthService.OauthAuthorizeURL(c.UserContext(), c.Params("provider"))
	if err != nil {
		return http.WithRepErrMsg(c, http.UnsupportedProviders.Code, http.UnsupportedProviders.Msg, c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"authorizeUrl": url})
}

func (rt *Router) oauthCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		return http.WithRepErrMsg(c, http.InvalidStatusParameter.Code, http.InvalidStatusParameter.Msg, c.Path())
	}

	resp, err := rt.AuthService.OauthCallback(c.UserContext(), c.Params("provider"), state, code)
	if err != nil {
		return http.WithRepErrMsg(c, http.AuthenticationFailed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, resp)
}
