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

package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
	"github.com/xo/tblfmt"
)

var tableColumns = []string{"index", "value"}

// listResultSet exposes a traversal as a two column result set so tblfmt
// can lay it out.
type listResultSet[T any] struct {
	next  func() (T, bool)
	stop  func()
	index int
	cur   T
}

func newListResultSet[T any](seq iter.Seq[T]) *listResultSet[T] {
	next, stop := iter.Pull(seq)
	return &listResultSet[T]{next: next, stop: stop, index: -1}
}

func (rs *listResultSet[T]) Next() bool {
	v, ok := rs.next()
	if !ok {
		return false
	}
	rs.cur = v
	rs.index++
	return true
}

func (rs *listResultSet[T]) Scan(dest ...any) error {
	if len(dest) != len(tableColumns) {
		return errors.Errorf("scan: expected %d destinations, got %d", len(tableColumns), len(dest))
	}
	vals := []any{rs.index, fmt.Sprint(rs.cur)}
	for i, d := range dest {
		switch p := d.(type) {
		case *any:
			*p = vals[i]
		case *string:
			*p = fmt.Sprint(vals[i])
		default:
			return errors.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func (rs *listResultSet[T]) Columns() ([]string, error) {
	return tableColumns, nil
}

func (rs *listResultSet[T]) Close() error {
	rs.stop()
	return nil
}

func (rs *listResultSet[T]) Err() error {
	return nil
}

func (rs *listResultSet[T]) NextResultSet() bool {
	return false
}

// Table writes the traversal as an index/value table. params are tblfmt
// print settings (format, border, footer, ...).
func Table[T any](w io.Writer, seq iter.Seq[T], params map[string]string) error {
	rs := newListResultSet(seq)
	defer rs.Close()
	return errors.Wrap(tblfmt.EncodeAll(w, rs, params), "render table")
}
