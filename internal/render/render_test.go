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
	"bytes"
	"testing"

	"github.com/Adamkhalifa2/linked-list/internal/linkedlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedList() *linkedlist.LinkedList[int] {
	l := linkedlist.NewLinkedList[int]()
	l.InsertAtEnd(10)
	l.InsertAtEnd(20)
	l.InsertAtStart(5)
	return l
}

func TestChain(t *testing.T) {
	s, ok := Chain(seedList().All(), DefaultSeparator)
	assert.True(t, ok)
	assert.Equal(t, "5 -> 10 -> 20", s)

	s, ok = Chain(linkedlist.NewLinkedList[string]().All(), ", ")
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestDisplay(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Display(buf, seedList().All(), Options{}))
	assert.Equal(t, "5 -> 10 -> 20\n", buf.String())

	buf.Reset()
	require.NoError(t, Display(buf, seedList().All(), Options{Separator: " | "}))
	assert.Equal(t, "5 | 10 | 20\n", buf.String())

	buf.Reset()
	empty := linkedlist.NewLinkedList[int]()
	require.NoError(t, Display(buf, empty.All(), Options{}))
	assert.Equal(t, DefaultEmptyMessage+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Display(buf, empty.All(), Options{EmptyMessage: "[]"}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestListResultSet(t *testing.T) {
	rs := newListResultSet(seedList().All())
	defer rs.Close()

	cols, err := rs.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "value"}, cols)

	var rows [][2]any
	for rs.Next() {
		var idx, val any
		require.NoError(t, rs.Scan(&idx, &val))
		rows = append(rows, [2]any{idx, val})
	}
	assert.Equal(t, [][2]any{{0, "5"}, {1, "10"}, {2, "20"}}, rows)
	assert.False(t, rs.NextResultSet())
	assert.Error(t, rs.Scan(new(any)))
}

func TestTable(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Table(buf, seedList().All(), map[string]string{"format": "aligned", "border": "1"})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "index")
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "20")
}
