// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Adamkhalifa2/linked-list/cmd/subcmd"
	"github.com/Adamkhalifa2/linked-list/config"
	"github.com/Adamkhalifa2/linked-list/internal/utils"
	"github.com/Adamkhalifa2/linked-list/pkg/version"

	"github.com/urfave/cli/v2"
)

var (
	authors = []*cli.Author{
		{Name: "Adamkhalifa2"},
	}
	copyright = func() string {
		yearRange := "2024"
		nowYear := time.Now().Year()
		if nowYear > 2024 {
			yearRange = fmt.Sprintf("2024-%d", nowYear)
		}
		return fmt.Sprintf("Copyright (C) %s Adamkhalifa2", yearRange)
	}
)

func main() {
	app := cli.NewApp()
	app.Name = config.AppName
	app.Usage = "A singly linked list you can drive from the terminal"
	app.Version = version.Version
	app.HideVersion = true // self control version flag to ensure help massage style is consistent
	app.Authors = authors
	app.Copyright = copyright()
	app.EnableBashCompletion = true
	app.UseShortOptionHandling = true
	app.HideHelp = true
	app.Suggest = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:               "help",
			Aliases:            []string{"?"},
			Usage:              "Show help information",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "Print the version",
			DisableDefaultText: true,
		},
	}
	app.Flags = append(app.Flags, subcmd.GlobalFlags()...)
	app.Flags = append(app.Flags, subcmd.ShellFlags...)
	app.Commands = subcmd.GetSubCmds().Values()

	app.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowAppHelp(c)
		}
		if c.Bool("version") {
			fmt.Println(version.GetVersionDetail())
			return nil
		}
		return subcmd.ShellAction(c)
	}
	if err := app.Run(os.Args); err != nil {
		utils.PrintError(err)
		os.Exit(1)
	}
}
