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

	"github.com/Adamkhalifa2/linked-list/pkg/demo"

	"github.com/urfave/cli/v2"
)

func newDemoCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "demo"
	cmd.Usage = "Walk an integer list through every operation"
	cmd.Action = func(c *cli.Context) error {
		if ok, err := helpRequested(c); ok {
			return err
		}
		cfg, err := setup()
		if err != nil {
			return err
		}
		return demo.Run(os.Stdout, cfg.RenderOptions())
	}
	return cmd
}
