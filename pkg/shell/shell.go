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

package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Adamkhalifa2/linked-list/config"
	"github.com/Adamkhalifa2/linked-list/internal/logger"
	"github.com/Adamkhalifa2/linked-list/internal/utils"
	"github.com/Adamkhalifa2/linked-list/pkg/version"

	"github.com/pkg/errors"
	"github.com/vimiix/go-prompt"
)

var dummyExecutor = func(string) {}

// Shell is the interactive front end of a Session.
type Shell struct {
	cfg     *config.Config
	session *Session
	prompt  *prompt.Prompt
	history *History
	out     io.Writer
}

func HistoryFile() string {
	return filepath.Join(config.DefaultLocation(), "history")
}

func New(cfg *config.Config) (*Shell, error) {
	history, err := NewHistory(HistoryFile(), cfg.MaxHistory)
	if err != nil {
		return nil, err
	}
	sh := &Shell{
		cfg:     cfg,
		session: NewSession(cfg, os.Stdout),
		history: history,
		out:     os.Stdout,
	}

	cc := &CmdCompleter{session: sh.session}
	sh.prompt = prompt.New(dummyExecutor,
		cc.Complete(),
		prompt.OptionTitle(config.AppName),
		prompt.OptionHistory(history.Records()),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionLivePrefix(sh.LivePrefix()),
	)
	return sh, nil
}

func (sh *Shell) LivePrefix() func() (string, bool) {
	return func() (string, bool) {
		return sh.cfg.ExpandPrompt(sh.session.PromptMacros()) + "> ", true
	}
}

// Run reads commands until exit, ctrl-D, or a prompt failure.
func (sh *Shell) Run() error {
	defer func() {
		if err := sh.history.Persist(); err != nil {
			logger.Warn("persist history: %v", err)
		}
	}()

	if !sh.cfg.LessChatty {
		fmt.Fprintf(sh.out, "%s %s\n", config.AppName, version.Version)
		fmt.Fprintln(sh.out, `Type "help" for more information.`)
		fmt.Fprintln(sh.out)
	}

	for {
		in, err := sh.prompt.Input()
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return nil
			}
			return err
		}
		if utils.EmptyStr(in) {
			continue
		}
		sh.history.Add(in)

		err = sh.session.Exec(in)
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrCommandNotFound):
			utils.PrintError(err)
			sh.session.PrintCommandNames()
		default:
			utils.PrintError(err)
		}
	}
}
