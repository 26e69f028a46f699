package http

import (
	"time"
)

// Http holds HTTP server configuration.
type Http struct {
	Host            string
	Port            int
	ContextPath     string
	PProf           bool
	ExposeMetrics   bool
	AccessLog       bool
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	Auth            Auth
}

// Auth token 相关配置
type Auth struct {
	SecretKey      string
	AccessExpire   time.Duration // 单位：分钟
	RefreshExpire  time.Duration // 单位：分钟
	RedisKeyPrefix string
}
