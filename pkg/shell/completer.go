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
	"strconv"
	"strings"

	"github.com/vimiix/go-prompt"
)

// CmdCompleter suggests command names for the first word and list
// contents for the arguments of value/index taking commands.
type CmdCompleter struct {
	session *Session
}

func (c *CmdCompleter) Complete() prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		before := d.TextBeforeCursor()
		words := strings.Fields(before)
		text := ""
		if len(words) > 0 && !strings.HasSuffix(before, " ") {
			text = words[len(words)-1]
			words = words[:len(words)-1]
		}
		return c.complete(words, text)
	}
}

func (c *CmdCompleter) complete(previousWords []string, text string) []prompt.Suggest {
	if len(previousWords) == 0 {
		if text == "" {
			return nil
		}
		return c.completeCommands(text)
	}
	cmd, err := c.session.registry.Lookup(previousWords[0])
	if err != nil || len(previousWords) > 1 {
		return nil
	}
	switch cmd.Name {
	case "search", "remove":
		return completeFromList(text, c.session.list.Values()...)
	case "delete", "get":
		idx := make([]string, 0, c.session.list.Len())
		for i := range c.session.list.Len() {
			idx = append(idx, strconv.Itoa(i))
		}
		return completeFromList(text, idx...)
	case "help":
		return c.completeCommands(text)
	}
	return nil
}

func (c *CmdCompleter) completeCommands(text string) []prompt.Suggest {
	var candidates []prompt.Suggest
	for _, cmd := range c.session.registry.Visible() {
		candidates = append(candidates, prompt.Suggest{Text: cmd.Name, Description: cmd.Description})
	}
	return filterHasPrefix(candidates, text)
}

func completeFromList(text string, options ...string) []prompt.Suggest {
	seen := make(map[string]bool, len(options))
	candidates := make([]prompt.Suggest, 0, len(options))
	for _, o := range options {
		if seen[o] {
			continue
		}
		seen[o] = true
		candidates = append(candidates, prompt.Suggest{Text: o})
	}
	return filterHasPrefix(candidates, text)
}

func filterHasPrefix(options []prompt.Suggest, text string) []prompt.Suggest {
	prefix := strings.ToLower(text)
	result := make([]prompt.Suggest, 0, len(options))
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o.Text), prefix) {
			result = append(result, o)
		}
	}
	return result
}
