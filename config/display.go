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

package config

import (
	"github.com/Adamkhalifa2/linked-list/internal/render"

	"github.com/pkg/errors"
)

const (
	FormatChain = "chain"
	FormatTable = "table"

	DefaultSeparator    = render.DefaultSeparator
	DefaultEmptyMessage = render.DefaultEmptyMessage
)

// Display controls how the list is shown.
type Display struct {
	Separator    string `ini:"separator,omitempty"`
	EmptyMessage string `ini:"empty_message,omitempty"`
	Format       string `ini:"format,omitempty"`
}

// Merge overrides fields with the non-empty fields of other.
func (d *Display) Merge(other *Display) {
	if other == nil {
		return
	}
	if other.Separator != "" {
		d.Separator = other.Separator
	}
	if other.EmptyMessage != "" {
		d.EmptyMessage = other.EmptyMessage
	}
	if other.Format != "" {
		d.Format = other.Format
	}
}

func (d *Display) Validate() error {
	switch d.Format {
	case FormatChain, FormatTable:
		return nil
	default:
		return errors.Errorf("unknown display format %q, want %q or %q", d.Format, FormatChain, FormatTable)
	}
}

func (d *Display) RenderOptions() render.Options {
	return render.Options{Separator: d.Separator, EmptyMessage: d.EmptyMessage}
}
