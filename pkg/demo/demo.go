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

// Package demo walks a list of integers through every list operation and
// prints the result of each step.
package demo

import (
	"fmt"
	"io"

	"github.com/Adamkhalifa2/linked-list/internal/linkedlist"
	"github.com/Adamkhalifa2/linked-list/internal/logger"
	"github.com/Adamkhalifa2/linked-list/internal/render"
)

func Run(w io.Writer, opts render.Options) error {
	l := linkedlist.NewLinkedList[int]()
	show := func(title string) error {
		if title != "" {
			fmt.Fprintln(w, title)
		}
		return render.Display(w, l.All(), opts)
	}

	l.InsertAtEnd(10)
	l.InsertAtEnd(20)
	l.InsertAtStart(5)
	if err := show("Inserting elements:"); err != nil {
		return err
	}

	if err := l.InsertAtIndex(1, 7); err != nil {
		return err
	}
	if err := show("\nAfter inserting 7 at index 1:"); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nSearching for values:")
	for _, v := range []int{10, 25} {
		fmt.Fprintf(w, "Index of %d: %d\n", v, l.Search(v))
	}

	if err := l.DeleteAtIndex(2); err != nil {
		return err
	}
	if err := show("\nAfter deleting element at index 2:"); err != nil {
		return err
	}
	logger.Debug("demo finished with %d elements", l.Len())
	return nil
}
