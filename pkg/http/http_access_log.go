package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func AccessLogFormat(log *zap.Logger) fiber.Handler {
	sugar := log.Sugar()
	// tips: 这里的路径是不需要记录日志的路径
	excludedPaths := map[string]bool{
		"/health":  true,
		"/metrics": true,
	}

	return func(c *fiber.Ctx) error {
		if excludedPaths[c.Path()] {
			return c.Next()
		}

		start := time.Now()

		err := c.Next()

		latency := time.Since(start)

		query := c.Context().QueryArgs().String()
		queryStr := ""
		if query != "" {
			queryStr = "?" + query
		}

		sugar.Infow("HTTP request",
			"method", c.Method(),
			"path", c.Path(),
			"query", queryStr,
			"status", c.Response().StatusCode(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
			"latency", latency.String(),
		)

		return err
	}
}
