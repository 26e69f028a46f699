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

package main

import (
	"flag"
	"fmt"

	"github.com/go-staffly/staffly/internal/bootstrap"
	"github.com/go-staffly/staffly/pkg/runner"
	"github.com/go-staffly/staffly/pkg/version"
)

var (
	configFile string
)

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()
	printRunner()

	app, cleanup, err := bootstrap.Bootstrap(configFile)
	if err != nil {
		panic(err)
	}

	bootstrap.Run(app, cleanup)
}

func printRunner() {
	fmt.Println("runner.pwd:", runner.Pwd)
	fmt.Println("runner.hostname:", runner.Hostname)
	fmt.Println("runner.version:", version.GetVersion().Version)
}
