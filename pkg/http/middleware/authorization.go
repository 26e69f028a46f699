package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/go-staffly/staffly/internal/engine/consts"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/http/jwt"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"
)

// AuthorizationMiddleware 认证中间件
// 校验 Bearer JWT，并确认 redis 中的 token 记录仍然有效。
// This function is used as the middleware of fiber.
func AuthorizationMiddleware(secretKey string, rdb cache.ICache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return http.WithRepErrMsg(c, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
		}

		// 按空格分割
		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErrMsg(c, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErrMsg(c, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
			}
			log.Errorf("parse token failed: %v", err)
			return http.WithRepErrMsg(c, http.InvalidToken.Code, http.InvalidToken.Msg, c.Path())
		}

		// 登出或过期后 redis 记录被删除，JWT 即使未过期也拒绝
		tokenKey := consts.UserTokenKey + claims.UserId
		exists, err := rdb.Exists(context.Background(), tokenKey).Result()
		if err != nil {
			log.Errorf("redis check token exists failed: %v", err)
			return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
		}
		if exists == 0 {
			return http.WithRepErrMsg(c, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
		}

		ttl, err := rdb.TTL(context.Background(), tokenKey).Result()
		if err != nil {
			log.Errorf("redis check token TTL failed: %v", err)
			return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
		}
		if ttl <= 0 {
			log.Warnf("token has expired in redis for user: %s", claims.UserId)
			return http.WithRepErrMsg(c, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
