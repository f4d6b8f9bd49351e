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

package subcmd

import (
	"github.com/Adamkhalifa2/linked-list/config"
	"github.com/Adamkhalifa2/linked-list/internal/logger"
	"github.com/Adamkhalifa2/linked-list/internal/orderedmap"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var subcmds = orderedmap.NewOrderedMap[string, *cli.Command]()

func init() {
	subcmds.Set("shell", newShellCmd())
	subcmds.Set("run", newRunCmd())
	subcmds.Set("demo", newDemoCmd())
	subcmds.Set("version", newVersionCmd())
}

func GetSubCmds() *orderedmap.OrderedMap[string, *cli.Command] {
	return subcmds
}

type globalOptions struct {
	ConfigFile string
	LogLevel   string
	Silence    bool
	NoColor    bool
	Display    config.Display
}

var (
	globalOpts  = &globalOptions{}
	globalFlags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			EnvVars:     []string{"CHAINLIST_CONFIG"},
			Destination: &globalOpts.ConfigFile,
			Usage:       "Config file, defaults to <config dir>/chainlist/config",
		},
		&cli.StringFlag{
			Name:        "log-level",
			EnvVars:     []string{"CHAINLIST_LOG_LEVEL"},
			Destination: &globalOpts.LogLevel,
			Usage:       "One of DEBUG, INFO, WARN, ERROR, FATAL",
		},
		&cli.BoolFlag{
			Name:        "silence",
			Destination: &globalOpts.Silence,
			Usage:       "Mute log output",
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Destination: &globalOpts.NoColor,
			Usage:       "Disable colored output",
		},
		&cli.StringFlag{
			Name:        "separator",
			Aliases:     []string{"s"},
			Destination: &globalOpts.Display.Separator,
			Usage:       "Separator placed between elements",
		},
		&cli.StringFlag{
			Name:        "empty-message",
			Destination: &globalOpts.Display.EmptyMessage,
			Usage:       "Text shown for an empty list",
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Destination: &globalOpts.Display.Format,
			Usage:       "Display format: chain or table",
			Action: func(ctx *cli.Context, v string) error {
				if v != config.FormatChain && v != config.FormatTable {
					return errors.Errorf("flag format value %q must be %q or %q", v, config.FormatChain, config.FormatTable)
				}
				return nil
			},
		},
	}
)

// GlobalFlags are accepted before any subcommand.
func GlobalFlags() []cli.Flag {
	return globalFlags
}

// setup loads the config file and applies the global flags on top of it.
func setup() (*config.Config, error) {
	var err error
	if globalOpts.ConfigFile != "" {
		err = config.Load(globalOpts.ConfigFile)
	} else {
		err = config.Init()
	}
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	cfg.Display.Merge(&globalOpts.Display)
	if globalOpts.LogLevel != "" {
		cfg.LogLevel = globalOpts.LogLevel
	}
	if globalOpts.Silence {
		cfg.Silence = true
	}
	if globalOpts.NoColor {
		cfg.Color = false
	}

	if cfg.Silence {
		logger.MuteLogger()
	} else {
		logger.SetLogLevelByString(cfg.LogLevel)
	}
	if !cfg.Color {
		color.NoColor = true
	}
	logger.Debug("config loaded: %v", config.GetConfigMap())
	return cfg, nil
}

// newDefaultCmd creates a new cli.Command with default settings.
//
// It returns a pointer to a new cli.Command with the following settings:
//   - HideHelp: true
//   - UseShortOptionHandling: true
//   - a "help, ?" flag
func newDefaultCmd() *cli.Command {
	cmd := &cli.Command{
		HideHelp:               true,
		UseShortOptionHandling: true,
	}
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:               "help",
		Aliases:            []string{"?"},
		Usage:              "Show help information",
		DisableDefaultText: true,
	})
	return cmd
}

// helpRequested shows the command help when --help was given.
func helpRequested(c *cli.Context) (bool, error) {
	if c.Bool("help") {
		return true, cli.ShowSubcommandHelp(c)
	}
	return false, nil
}
