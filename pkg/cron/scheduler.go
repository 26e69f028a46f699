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

package cron

import (
	"context"
	"time"

	"github.com/go-staffly/staffly/pkg/log"
	"github.com/robfig/cron/v3"
)

// Scheduler 定时任务调度器，封装 robfig/cron，任务 panic 只记录不传播
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cronLogger{}))),
	}
}

// AddFunc 按 cron 表达式注册任务
func (s *Scheduler) AddFunc(spec, name string, fn func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		fn()
		log.Debugw("cron job finished", "job", name, "elapsed", time.Since(start).String())
	})
	if err != nil {
		return err
	}
	log.Infow("cron job registered", "job", name, "spec", spec)
	return nil
}

// Start 启动调度器
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度器并等待运行中的任务结束
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		log.Warnf("cron stop timed out: %v", ctx.Err())
	}
}

// cronLogger 适配 robfig/cron 的日志接口到 zap
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Infow(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Errorw(msg, append([]any{"err", err}, keysAndValues...)...)
}
