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

package linkedlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is matched by every *IndexError via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

const (
	OpInsert = "insert"
	OpDelete = "delete"
	OpGet    = "get"
)

// IndexError reports an index that does not address an element, or a valid
// insertion slot, for the operation Op.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Op == OpDelete && e.Len == 0 {
		return "cannot delete from an empty list"
	}
	return fmt.Sprintf("%s at index %d: %v (length %d)", e.Op, e.Index, ErrIndexOutOfRange, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
