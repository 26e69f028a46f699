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

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-staffly/staffly/internal/engine/conf"
	"github.com/go-staffly/staffly/internal/engine/repo"
	"github.com/go-staffly/staffly/internal/engine/router"
	"github.com/go-staffly/staffly/internal/engine/service"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/go-staffly/staffly/pkg/cron"
	"github.com/go-staffly/staffly/pkg/database"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/go-staffly/staffly/pkg/safe"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	HttpApp   *fiber.App
	Scheduler *cron.Scheduler
	Logger    *zap.Logger
	AppConf   conf.AppConfig

	MenuService *service.MenuService
}

// Bootstrap 装配全部组件，返回 App 与清理函数
func Bootstrap(configFile string) (*App, func(), error) {
	appConf := conf.NewConf(configFile)

	logger, err := log.NewLog(&appConf.Log)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		return nil, nil, err
	}
	dbClient, err := database.NewDatabase(appConf.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	db := database.NewGormDB(dbClient)
	redisCache := cache.NewRedisCache(redisClient)

	// 菜单缓存：默认进程内 fastcache，配置 redis 时共享失效
	var menuStore cache.Store
	if appConf.Cache.Driver == "redis" {
		menuStore = cache.NewRedisStore(redisCache, appConf.Cache.Prefix)
	} else {
		menuStore = cache.NewFastStore(appConf.Cache.MaxBytes)
	}
	menuTTL := appConf.Cache.TTL
	if menuTTL <= 0 {
		menuTTL = 10 * time.Minute
	}

	// repos
	userRepo := repo.NewUserRepo(db)
	roleRepo := repo.NewRoleRepo(db)
	menuRepo := repo.NewMenuRepo(db)
	bindingRepo := repo.NewRoleMenuBindingRepo(db)
	userRoleRepo := repo.NewUserRoleBindingRepo(db)
	prefRepo := repo.NewDashboardPreferenceRepo(db)
	attRepo := repo.NewAttendanceRepo(db)
	leaveRepo := repo.NewLeaveRepo(db)
	postRepo := repo.NewPostRepo(db)
	oauthRepo := repo.NewOauthProviderRepo(db)

	// services
	menuService := service.NewMenuService(menuRepo, bindingRepo, roleRepo, menuStore, menuTTL)
	userService := service.NewUserService(userRepo, userRoleRepo)
	dashService := service.NewDashboardService(prefRepo)
	roleService := service.NewRoleService(roleRepo, userRoleRepo, menuService)
	authService := service.NewAuthService(userRepo, oauthRepo, userService, dashService, redisCache, &appConf.Http.Auth)
	attService := service.NewAttendanceService(attRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	postService := service.NewPostService(postRepo)

	rt := router.NewRouter(&appConf.Http, redisCache,
		authService, userService, menuService, roleService,
		dashService, attService, leaveService, postService)

	scheduler := cron.NewScheduler()
	if err := scheduler.AddFunc(appConf.Cron.AttendanceAutoClose, "attendance-auto-close", func() {
		closed, err := attService.AutoClose(time.Now())
		if err != nil {
			log.Errorw("attendance auto close failed", "err", err)
			return
		}
		if closed > 0 {
			log.Infow("attendance auto close finished", "closed", closed)
		}
	}); err != nil {
		return nil, nil, fmt.Errorf("register attendance auto close job: %w", err)
	}

	cleanup := func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		scheduler.Stop(stopCtx)

		if sqlDB, err := dbClient.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = redisClient.Close()
	}

	app := &App{
		HttpApp:     rt.Router(),
		Scheduler:   scheduler,
		Logger:      logger,
		AppConf:     appConf,
		MenuService: menuService,
	}
	return app, cleanup, nil
}

// Run 启动 HTTP 服务与调度器，等待退出信号后优雅关闭
func Run(app *App, cleanup func()) {
	logger := app.Logger
	appConf := app.AppConf

	app.Scheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	safe.Go(func() {
		addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
		logger.Sugar().Infow("HTTP listener started", "address", addr)
		if err := app.HttpApp.Listen(addr); err != nil {
			logger.Sugar().Errorw("HTTP listener failed", "address", addr, "error", err)
		}
	})

	sig := <-quit
	logger.Sugar().Infof("received signal: %v, shutting down gracefully...", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Sugar().Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	cleanup()

	logger.Info("server shutdown complete")
}
