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
	"context"
	"fmt"
	"strings"

	"github.com/go-staffly/staffly/internal/bootstrap"
	"github.com/go-staffly/staffly/internal/engine/model"
	"github.com/go-staffly/staffly/pkg/version"
	"github.com/spf13/cobra"
)

var (
	configFile string

	menuShowRole   string
	menuSync       bool
	menuSyncRoutes string
	menuClear      bool
)

var rootCmd = &cobra.Command{
	Use:   "staffly-cli",
	Short: "staffly-cli is a command line tool for operating a staffly deployment",
	Long:  "staffly-cli is a command line tool for operating a staffly deployment",
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			return
		}
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Inspect and maintain the navigation menu registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := bootstrap.Bootstrap(configFile)
		if err != nil {
			return err
		}
		defer cleanup()

		menus := app.MenuService

		switch {
		case menuClear:
			menus.ClearCache(context.Background())
			fmt.Println("menu cache cleared")

		case menuSync:
			var registered []string
			for _, r := range strings.Split(menuSyncRoutes, ",") {
				if r = strings.TrimSpace(r); r != "" {
					registered = append(registered, r)
				}
			}
			results, err := menus.SyncRoutes(context.Background(), registered)
			if err != nil {
				return err
			}
			for _, res := range results {
				state := "ok"
				if !res.OK {
					state = "fail"
				}
				fmt.Printf("%-4s %-24s %-32s %s\n", state, res.Name, res.Route, res.Detail)
			}

		case menuShowRole != "":
			tree := menus.GetMenuForRoles(context.Background(), []string{menuShowRole})
			printMenuTree(tree, 0)

		default:
			stats, err := menus.Stats()
			if err != nil {
				return err
			}
			fmt.Printf("total: %d\nactive: %d\nrouted: %d\nunrouted: %d\nroles: %d\ngrants: %d\n",
				stats.Total, stats.Active, stats.Routed, stats.Unrouted, stats.Roles, stats.Grants)
		}
		return nil
	},
}

func printMenuTree(nodes []model.MenuNode, depth int) {
	for _, n := range nodes {
		fmt.Printf("%s- %s (%s)\n", strings.Repeat("  ", depth), n.Name, n.Route)
		printMenuTree(n.Children, depth+1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path")

	menuCmd.Flags().StringVar(&menuShowRole, "show", "", "print the resolved menu tree for a role")
	menuCmd.Flags().BoolVar(&menuSync, "sync", false, "assign routes to unrouted menu items and validate existing ones")
	menuCmd.Flags().StringVar(&menuSyncRoutes, "routes", "", "comma separated registered routes used by --sync validation")
	menuCmd.Flags().BoolVar(&menuClear, "clear", false, "invalidate all cached menu trees")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(version.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
