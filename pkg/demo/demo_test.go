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

package demo

import (
	"bytes"
	"testing"

	"github.com/Adamkhalifa2/linked-list/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expected = `Inserting elements:
5 -> 10 -> 20

After inserting 7 at index 1:
5 -> 7 -> 10 -> 20

Searching for values:
Index of 10: 2
Index of 25: -1

After deleting element at index 2:
5 -> 7 -> 20
`

func TestRun(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Run(buf, render.Options{}))
	assert.Equal(t, expected, buf.String())
}

func TestRunSeparator(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Run(buf, render.Options{Separator: ", "}))
	assert.Contains(t, buf.String(), "5, 7, 20\n")
}
