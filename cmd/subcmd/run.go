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
	"io"
	"os"

	"github.com/Adamkhalifa2/linked-list/internal/render"
	"github.com/Adamkhalifa2/linked-list/pkg/shell"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func newRunCmd() *cli.Command {
	var stopOnError bool
	cmd := newDefaultCmd()
	cmd.Name = "run"
	cmd.Usage = "Execute shell commands from FILE, one per line (\"-\" reads stdin)"
	cmd.ArgsUsage = "FILE"
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:        "on-error-stop",
		Aliases:     []string{"e"},
		Destination: &stopOnError,
		Usage:       "Stop at the first failing command",
	}, &cli.BoolFlag{
		Name:  "show",
		Usage: "Print the list when the script ends",
	})
	cmd.Action = func(c *cli.Context) error {
		if ok, err := helpRequested(c); ok {
			return err
		}
		if c.NArg() != 1 {
			return errors.New("run expects exactly one FILE argument")
		}
		cfg, err := setup()
		if err != nil {
			return err
		}
		if stopOnError {
			cfg.OnErrorStop = true
		}

		var in io.Reader = os.Stdin
		if name := c.Args().First(); name != "-" {
			f, err := os.Open(name)
			if err != nil {
				return errors.Wrap(err, "open script")
			}
			defer f.Close()
			in = f
		}

		s := shell.NewSession(cfg, os.Stdout)
		if err := s.RunScript(in, os.Stderr); err != nil {
			return err
		}
		if c.Bool("show") {
			return render.Display(os.Stdout, s.List().All(), cfg.RenderOptions())
		}
		return nil
	}
	return cmd
}
