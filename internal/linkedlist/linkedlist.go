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

import "iter"

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list. Only the head is tracked, so
// appending walks the whole chain.
//
// A LinkedList is not safe for concurrent use.
type LinkedList[T comparable] struct {
	head *node[T]
	size int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of elements in the linked list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the linked list is empty.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// InsertAtEnd appends v as the new last element.
func (l *LinkedList[T]) InsertAtEnd(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.size++
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	l.size++
}

// InsertAtStart prepends v as the new first element.
func (l *LinkedList[T]) InsertAtStart(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// InsertAtIndex inserts v so that it ends up at position index. Valid
// positions are 0 through Len(); anything else returns an *IndexError and
// leaves the list untouched.
func (l *LinkedList[T]) InsertAtIndex(index int, v T) error {
	if index < 0 || index > l.size {
		return &IndexError{Op: OpInsert, Index: index, Len: l.size}
	}
	if index == 0 {
		l.InsertAtStart(v)
		return nil
	}
	prev := l.nodeAt(index - 1)
	prev.next = &node[T]{value: v, next: prev.next}
	l.size++
	return nil
}

// DeleteAtIndex removes the element at position index. It returns an
// *IndexError if the list is empty or index does not address an element.
func (l *LinkedList[T]) DeleteAtIndex(index int) error {
	if l.head == nil || index < 0 || index >= l.size {
		return &IndexError{Op: OpDelete, Index: index, Len: l.size}
	}
	var victim *node[T]
	if index == 0 {
		victim = l.head
		l.head = victim.next
	} else {
		prev := l.nodeAt(index - 1)
		victim = prev.next
		prev.next = victim.next
	}
	victim.next = nil
	l.size--
	return nil
}

// Search returns the position of the first element equal to v, or -1.
func (l *LinkedList[T]) Search(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// Get returns the element at position index.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Op: OpGet, Index: index, Len: l.size}
	}
	return l.nodeAt(index).value, nil
}

// All returns an iterator over the elements from first to last. Every call
// starts a fresh traversal from the head.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns all values in the linked list.
func (l *LinkedList[T]) Values() []T {
	rs := make([]T, 0, l.size)
	for v := range l.All() {
		rs = append(rs, v)
	}
	return rs
}

// Range calls the function f for each element in the linked list.
func (l *LinkedList[T]) Range(f func(T)) {
	for v := range l.All() {
		f(v)
	}
}

// Clear removes all elements from the linked list.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Remove removes the first occurrence of v and reports whether one was found.
func (l *LinkedList[T]) Remove(v T) bool {
	i := l.Search(v)
	if i < 0 {
		return false
	}
	return l.DeleteAtIndex(i) == nil
}

// nodeAt assumes 0 <= i < l.size.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}
