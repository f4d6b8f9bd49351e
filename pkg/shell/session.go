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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Adamkhalifa2/linked-list/config"
	"github.com/Adamkhalifa2/linked-list/internal/linkedlist"
	"github.com/Adamkhalifa2/linked-list/internal/logger"
	"github.com/Adamkhalifa2/linked-list/internal/render"
	"github.com/Adamkhalifa2/linked-list/internal/utils"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Session applies shell commands to a list of strings. It does no terminal
// handling of its own, so it also backs script mode.
type Session struct {
	cfg      *config.Config
	list     *linkedlist.LinkedList[string]
	registry *Registry
	out      io.Writer
}

func NewSession(cfg *config.Config, out io.Writer) *Session {
	s := &Session{
		cfg:      cfg,
		list:     linkedlist.NewLinkedList[string](),
		registry: NewRegistry(),
		out:      out,
	}
	s.registerDefaultCmds()
	return s
}

func (s *Session) List() *linkedlist.LinkedList[string] {
	return s.list
}

func (s *Session) Registry() *Registry {
	return s.registry
}

// PromptMacros feeds config.ExpandPrompt.
func (s *Session) PromptMacros() map[rune]string {
	head, _ := s.list.Get(0)
	return map[rune]string{
		'n': strconv.Itoa(s.list.Len()),
		'h': head,
	}
}

// Exec runs a single input line. Blank lines and lines starting with '#'
// are ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if utils.EmptyStr(line) || strings.HasPrefix(line, "#") {
		return nil
	}
	pc := ParseCommand(line)
	cmd, err := s.registry.Lookup(pc.Command)
	if err != nil {
		return err
	}
	if err := cmd.checkArgs(pc.Args); err != nil {
		return err
	}
	logger.Debug("apply: %s", line)
	return cmd.Handler(s, pc.Args)
}

// RunScript executes r line by line, reporting failures to errOut. With
// on_error_stop set, the first failure ends the script and is returned
// unreported, leaving the caller to print it.
func (s *Session) RunScript(r io.Reader, errOut io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		err := s.Exec(scanner.Text())
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			return nil
		}
		err = errors.Wrapf(err, "line %d", lineno)
		if s.cfg.OnErrorStop {
			return err
		}
		utils.FprintError(errOut, err)
	}
	return scanner.Err()
}

func (s *Session) registerDefaultCmds() {
	r := s.registry
	r.Register(Command{Name: "append", Handler: cmdAppend, Syntax: "append VALUE...",
		Description: "Add values at the end of the list", MinArgs: 1, MaxArgs: -1},
		WithAliases("push"))
	r.Register(Command{Name: "prepend", Handler: cmdPrepend, Syntax: "prepend VALUE...",
		Description: "Add values at the start of the list, one after another", MinArgs: 1, MaxArgs: -1})
	r.Register(Command{Name: "insert", Handler: cmdInsert, Syntax: "insert INDEX VALUE",
		Description: "Insert a value so it lands at INDEX", MinArgs: 2, MaxArgs: 2})
	r.Register(Command{Name: "delete", Handler: cmdDelete, Syntax: "delete INDEX",
		Description: "Delete the element at INDEX", MinArgs: 1, MaxArgs: 1},
		WithAliases("del"))
	r.Register(Command{Name: "remove", Handler: cmdRemove, Syntax: "remove VALUE",
		Description: "Delete the first element equal to VALUE", MinArgs: 1, MaxArgs: 1})
	r.Register(Command{Name: "search", Handler: cmdSearch, Syntax: "search VALUE",
		Description: "Print the index of the first element equal to VALUE, or -1", MinArgs: 1, MaxArgs: 1},
		WithAliases("find"))
	r.Register(Command{Name: "get", Handler: cmdGet, Syntax: "get INDEX",
		Description: "Print the element at INDEX", MinArgs: 1, MaxArgs: 1})
	r.Register(Command{Name: "show", Handler: cmdShow, Syntax: "show",
		Description: "Print the list in the configured format", MaxArgs: 0},
		WithAliases("display", "print"))
	r.Register(Command{Name: "table", Handler: cmdTable, Syntax: "table",
		Description: "Print the list as an index/value table", MaxArgs: 0})
	r.Register(Command{Name: "len", Handler: cmdLen, Syntax: "len",
		Description: "Print the number of elements", MaxArgs: 0})
	r.Register(Command{Name: "clear", Handler: cmdClear, Syntax: "clear",
		Description: "Remove every element", MaxArgs: 0})
	r.Register(Command{Name: "dump", Handler: cmdDump, Syntax: "dump",
		Description: "Print every element quoted, one per line", MaxArgs: 0},
		WithHidden(true))
	r.Register(Command{Name: "help", Handler: cmdHelp, Syntax: "help",
		Description: "Show commands", MaxArgs: 1},
		WithAliases(`\?`))
	r.Register(Command{Name: "exit", Handler: cmdQuit, Syntax: "exit",
		Description: "Leave the shell", MaxArgs: 0},
		WithAliases("quit", `\q`))
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid index %q", s)
	}
	return i, nil
}

func cmdAppend(s *Session, args []string) error {
	for _, v := range args {
		s.list.InsertAtEnd(v)
	}
	return nil
}

func cmdPrepend(s *Session, args []string) error {
	for _, v := range args {
		s.list.InsertAtStart(v)
	}
	return nil
}

func cmdInsert(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	return errors.WithMessagef(s.list.InsertAtIndex(i, args[1]), "insert %q", args[1])
}

func cmdDelete(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	return s.list.DeleteAtIndex(i)
}

func cmdRemove(s *Session, args []string) error {
	if !s.list.Remove(args[0]) {
		return errors.Errorf("value %q not found", args[0])
	}
	return nil
}

func cmdSearch(s *Session, args []string) error {
	_, err := fmt.Fprintln(s.out, s.list.Search(args[0]))
	return err
}

func cmdGet(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	v, err := s.list.Get(i)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, v)
	return err
}

func cmdShow(s *Session, _ []string) error {
	if s.cfg.Format == config.FormatTable {
		return cmdTable(s, nil)
	}
	return render.Display(s.out, s.list.All(), s.cfg.RenderOptions())
}

func cmdTable(s *Session, _ []string) error {
	if s.list.IsEmpty() {
		_, err := fmt.Fprintln(s.out, s.cfg.RenderOptions().EmptyMessage)
		return err
	}
	return render.Table(s.out, s.list.All(), s.cfg.PrintParams())
}

func cmdLen(s *Session, _ []string) error {
	_, err := fmt.Fprintln(s.out, s.list.Len())
	return err
}

func cmdClear(s *Session, _ []string) error {
	s.list.Clear()
	return nil
}

func cmdDump(s *Session, _ []string) error {
	for i, v := range s.list.Values() {
		if _, err := fmt.Fprintf(s.out, "%d\t%q\n", i, v); err != nil {
			return err
		}
	}
	return nil
}

func cmdHelp(s *Session, args []string) error {
	if len(args) == 1 {
		cmd, err := s.registry.Lookup(args[0])
		if err != nil {
			return err
		}
		printCommand(s.out, cmd)
		return nil
	}
	for _, cmd := range s.registry.Visible() {
		printCommand(s.out, cmd)
	}
	return nil
}

func cmdQuit(*Session, []string) error {
	return ErrQuit
}

func printCommand(w io.Writer, cmd *Command) {
	fmt.Fprintf(w, "%-30s: %s\n", color.GreenString(cmd.Syntax), cmd.Description)
}

// PrintCommandNames lists every command name in terminal-width columns.
func (s *Session) PrintCommandNames() {
	var names []string
	for _, cmd := range s.registry.Visible() {
		names = append(names, cmd.Name)
	}
	for _, row := range utils.Chunks(names) {
		fmt.Fprintln(s.out, strings.Join(row, "  "))
	}
}
