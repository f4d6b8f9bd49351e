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

// Package render turns list traversals into text.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	DefaultSeparator    = " -> "
	DefaultEmptyMessage = "Linked list is empty"
)

type Options struct {
	Separator    string
	EmptyMessage string
}

func (o *Options) tidy() {
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = DefaultEmptyMessage
	}
}

// Chain joins the values yielded by seq with sep. The bool is false when seq
// yields nothing.
func Chain[T any](seq iter.Seq[T], sep string) (string, bool) {
	var b strings.Builder
	n := 0
	for v := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
		n++
	}
	return b.String(), n > 0
}

// Display writes one line: the chain, or the empty message.
func Display[T any](w io.Writer, seq iter.Seq[T], opts Options) error {
	opts.tidy()
	s, ok := Chain(seq, opts.Separator)
	if !ok {
		s = opts.EmptyMessage
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
