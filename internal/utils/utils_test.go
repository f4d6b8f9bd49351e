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

package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	orig := getWindowSize
	t.Cleanup(func() { getWindowSize = orig })

	t.Run("Empty Input", func(t *testing.T) {
		vals := []string{}
		chunks := Chunks(vals)
		assert.Empty(t, chunks)
	})

	t.Run("Divides Without Remainder", func(t *testing.T) {
		vals := []string{"append", "delete", "insert", "search"}
		getWindowSize = func(int) (int, int, error) { return 16, 0, nil }
		chunks := Chunks(vals)
		expected := [][]string{{"append", "delete"}, {"insert", "search"}}
		assert.Equal(t, expected, chunks)
	})

	t.Run("Divides With Remainder", func(t *testing.T) {
		vals := []string{"len", "get", "show", "table", "prepend"}
		getWindowSize = func(int) (int, int, error) { return 27, 0, nil }
		chunks := Chunks(vals)
		expected := [][]string{{"len", "get", "show"}, {"table", "prepend"}}
		assert.Equal(t, expected, chunks)
	})

	t.Run("Terminal Error Falls Back", func(t *testing.T) {
		vals := []string{"a", "b"}
		getWindowSize = func(int) (int, int, error) { return 0, 0, errors.New("not a tty") }
		assert.Equal(t, [][]string{{"a", "b"}}, Chunks(vals))
	})
}

func TestGetenv(t *testing.T) {
	t.Setenv("CHAINLIST_TEST_B", "b")
	v, ok := Getenv("CHAINLIST_TEST_A", "CHAINLIST_TEST_B")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = Getenv("CHAINLIST_TEST_MISSING")
	assert.False(t, ok)
}

func TestEmptyStr(t *testing.T) {
	assert.True(t, EmptyStr(""))
	assert.True(t, EmptyStr(" \t\n"))
	assert.False(t, EmptyStr("  show "))
}

func TestFprintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	buf := &bytes.Buffer{}
	FprintError(buf, errors.New("index out of range"))
	assert.Equal(t, "error: index out of range\n", buf.String())
}
