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

package orderedmap

import (
	"iter"

	"github.com/Adamkhalifa2/linked-list/internal/linkedlist"
)

// OrderedMap keeps keys in insertion order. Re-setting an existing key does
// not move it.
type OrderedMap[K comparable, V any] struct {
	keys *linkedlist.LinkedList[K]
	m    map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]V),
		keys: linkedlist.NewLinkedList[K](),
	}
}

// Keys returns the keys of the map in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys.Values()
}

// Values returns the values of the map in the order of the keys.
func (m *OrderedMap[K, V]) Values() []V {
	rs := make([]V, 0, m.keys.Len())
	for k := range m.keys.All() {
		rs = append(rs, m.m[k])
	}
	return rs
}

func (m *OrderedMap[K, V]) Len() int {
	return m.keys.Len()
}

// Set sets the value associated with the given key.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.m[k]; !ok {
		m.keys.InsertAtEnd(k)
	}
	m.m[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Index returns the insertion position of k, or -1.
func (m *OrderedMap[K, V]) Index(k K) int {
	if _, ok := m.m[k]; !ok {
		return -1
	}
	return m.keys.Search(k)
}

// Delete removes k and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	i := m.Index(k)
	if i < 0 {
		return false
	}
	if err := m.keys.DeleteAtIndex(i); err != nil {
		return false
	}
	delete(m.m, k)
	return true
}

// All iterates over key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k := range m.keys.All() {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Range calls f for each element in the map in the order of the keys.
func (m *OrderedMap[K, V]) Range(f func(k K, v V)) {
	for k, v := range m.All() {
		f(k, v)
	}
}

func (m *OrderedMap[K, V]) Clear() {
	m.keys.Clear()
	m.m = make(map[K]V)
}

func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}
