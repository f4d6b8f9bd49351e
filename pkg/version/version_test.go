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

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionDetail(t *testing.T) {
	detail := GetVersionDetail()
	lines := strings.Split(detail, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "version:   "+Version, lines[0])
	assert.Equal(t, "commit:    unknown", lines[1])

	Commit = "abc1234"
	t.Cleanup(func() { Commit = "" })
	assert.Contains(t, GetVersionDetail(), "commit:    abc1234")
}
