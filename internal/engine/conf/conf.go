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

package conf

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-staffly/staffly/pkg/cache"
	"github.com/go-staffly/staffly/pkg/database"
	"github.com/go-staffly/staffly/pkg/http"
	"github.com/go-staffly/staffly/pkg/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Cache    cache.StoreConf // 菜单缓存
	Cron     Cron
}

// Cron 定时任务配置
type Cron struct {
	AttendanceAutoClose string // cron 表达式，默认每天 03:00
}

var (
	cfg  AppConfig
	once sync.Once
)

func NewConf(confDir string) AppConfig {
	once.Do(func() {
		var err error
		cfg, err = LoadConfigFile(confDir)
		if err != nil {
			panic(fmt.Sprintf("load conf file error: %s", err))
		}
	})
	return cfg
}

// LoadConfigFile load conf file
func LoadConfigFile(confDir string) (AppConfig, error) {

	config := viper.New()
	config.SetConfigFile(confDir)
	config.AddConfigPath("./conf.d")
	config.SetConfigName("config")
	config.SetConfigType("toml")
	if err := config.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read configuration file: %v", err)
	}

	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, reloading: %s", e.Name)
		if err := config.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := config.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	if cfg.Cron.AttendanceAutoClose == "" {
		cfg.Cron.AttendanceAutoClose = "0 3 * * *"
	}

	return cfg, nil
}
