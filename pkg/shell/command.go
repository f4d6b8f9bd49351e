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
	"strings"

	"github.com/Adamkhalifa2/linked-list/internal/orderedmap"

	"github.com/pkg/errors"
)

var (
	ErrCommandNotFound = errors.New("command not found")
	// ErrQuit is returned by Exec when the input asks to leave the shell.
	ErrQuit = errors.New("quit")
)

// ParsedCmd is one input line split into a command word and its arguments.
type ParsedCmd struct {
	Command string
	Args    []string
}

func ParseCommand(line string) *ParsedCmd {
	fields := strings.Fields(line)
	c := &ParsedCmd{}
	if len(fields) == 0 {
		return c
	}
	c.Command = fields[0]
	c.Args = fields[1:]
	return c
}

type CmdHandler func(s *Session, args []string) error

type Command struct {
	Name          string
	Handler       CmdHandler
	Syntax        string
	Description   string
	MinArgs       int
	MaxArgs       int // -1 for unbounded
	Hidden        bool
	CaseSensitive bool
}

func (c *Command) checkArgs(args []string) error {
	if len(args) < c.MinArgs || (c.MaxArgs >= 0 && len(args) > c.MaxArgs) {
		return errors.Errorf("usage: %s", c.Syntax)
	}
	return nil
}

type Option struct {
	Hidden        bool
	CaseSensitive bool
	Aliases       []string
}

func NewOption() *Option {
	return &Option{
		CaseSensitive: false,
		Aliases:       []string{},
	}
}

type OptionFunc func(*Option)

func WithHidden(hidden bool) OptionFunc {
	return func(opt *Option) {
		opt.Hidden = hidden
	}
}

func WithCaseSensitive(caseSensitive bool) OptionFunc {
	return func(opt *Option) {
		opt.CaseSensitive = caseSensitive
	}
}

func WithAliases(aliases ...string) OptionFunc {
	return func(opt *Option) {
		opt.Aliases = aliases
	}
}

// Registry holds commands in registration order. Aliases share the
// primary command's handler but are hidden from listings.
type Registry struct {
	cmds *orderedmap.OrderedMap[string, *Command]
}

func NewRegistry() *Registry {
	return &Registry{cmds: orderedmap.NewOrderedMap[string, *Command]()}
}

func (r *Registry) Register(cmd Command, optFuncs ...OptionFunc) {
	opt := NewOption()
	for _, f := range optFuncs {
		f(opt)
	}
	key := func(s string) string {
		if opt.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	cmd.Hidden = opt.Hidden
	cmd.CaseSensitive = opt.CaseSensitive
	primary := cmd
	r.cmds.Set(key(cmd.Name), &primary)
	for _, alias := range opt.Aliases {
		aliased := cmd
		aliased.Hidden = true
		r.cmds.Set(key(alias), &aliased)
	}
}

func (r *Registry) Lookup(name string) (*Command, error) {
	if cmd, ok := r.cmds.Get(name); ok {
		return cmd, nil
	}
	cmd, ok := r.cmds.Get(strings.ToLower(name))
	if !ok || cmd.CaseSensitive {
		return nil, errors.Wrapf(ErrCommandNotFound, "%q", name)
	}
	return cmd, nil
}

// Visible returns the non-hidden commands in registration order.
func (r *Registry) Visible() []*Command {
	var rs []*Command
	for _, cmd := range r.cmds.All() {
		if !cmd.Hidden {
			rs = append(rs, cmd)
		}
	}
	return rs
}
