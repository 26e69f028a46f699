package middleware

import (
	"runtime/debug"

	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ExceptionMiddleware 异常中间件
// 捕获 panic 错误，返回 500 状态码和错误信息
// This function is used as the middleware of fiber.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			_ = http.WithRepErr(c, http.InternalError.Code, errorToString(err), c.Path())
			log.Errorf("panic: %v", err)
		}
	}()

	return c.Next()
}

func errorToString(err any) string {
	switch v := err.(type) {
	case error:
		// 一律返回服务器错误，避免堆栈泄露给客户端
		log.Errorf("panic: %v\n%s", v, debug.Stack())
		return http.InternalError.Msg
	default:
		if errMsg, ok := v.(string); ok {
			return errMsg
		}
		return http.InternalError.Msg
	}
}
