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
	"os"

	"github.com/Adamkhalifa2/linked-list/pkg/shell"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var commandLines cli.StringSlice

// ShellFlags also apply to the root command, which starts a shell.
var ShellFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:        "command",
		Aliases:     []string{"c"},
		Destination: &commandLines,
		Usage:       "Run the given command (repeatable), then exit",
	},
}

func newShellCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "shell"
	cmd.Usage = "Edit a list of strings interactively"
	cmd.Flags = append(cmd.Flags, ShellFlags...)
	cmd.Action = ShellAction
	return cmd
}

func ShellAction(c *cli.Context) error {
	if ok, err := helpRequested(c); ok {
		return err
	}
	cfg, err := setup()
	if err != nil {
		return err
	}

	if lines := commandLines.Value(); len(lines) > 0 {
		s := shell.NewSession(cfg, os.Stdout)
		for _, line := range lines {
			if err := s.Exec(line); err != nil {
				if errors.Is(err, shell.ErrQuit) {
					return nil
				}
				return err
			}
		}
		return nil
	}

	sh, err := shell.New(cfg)
	if err != nil {
		return err
	}
	return sh.Run()
}
