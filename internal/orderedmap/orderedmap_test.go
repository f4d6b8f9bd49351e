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
	"reflect"
	"testing"
)

func TestKeys(t *testing.T) {
	m := NewOrderedMap[string, int]()
	if keys := m.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want empty slice", keys)
	}

	m.Set("delete", 1)
	m.Set("append", 2)
	m.Set("search", 3)
	if keys := m.Keys(); !reflect.DeepEqual(keys, []string{"delete", "append", "search"}) {
		t.Errorf("Keys() = %v, want insertion order", keys)
	}
}

func TestOrderedMap_Values(t *testing.T) {
	m := NewOrderedMap[string, int]()
	if values := m.Values(); len(values) != 0 {
		t.Errorf("Expected empty slice, got %v", values)
	}

	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	if values := m.Values(); !reflect.DeepEqual(values, []int{3, 1, 2}) {
		t.Errorf("Expected [3, 1, 2], got %v", values)
	}
}

func TestSet(t *testing.T) {
	m := NewOrderedMap[string, string]()

	m.Set("key1", "value1")
	m.Set("key2", "value2")
	if value, _ := m.Get("key1"); value != "value1" {
		t.Errorf("Expected value %s, but got %s", "value1", value)
	}

	// updating keeps the original position
	m.Set("key1", "updatedValue")
	if value, _ := m.Get("key1"); value != "updatedValue" {
		t.Errorf("Expected value %s, but got %s", "updatedValue", value)
	}
	if m.Len() != 2 {
		t.Errorf("Expected length 2, but got %d", m.Len())
	}
	if i := m.Index("key1"); i != 0 {
		t.Errorf("Expected key1 at index 0, got %d", i)
	}
}

func TestIndex(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(10, "ten")
	m.Set(20, "twenty")
	if i := m.Index(20); i != 1 {
		t.Errorf("Index(20) = %d, want 1", i)
	}
	if i := m.Index(30); i != -1 {
		t.Errorf("Index(30) = %d, want -1", i)
	}
}

func TestDelete(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	m.Set(3, "three")

	if !m.Delete(2) {
		t.Error("Expected Delete(2) to report true")
	}
	if _, ok := m.Get(2); ok {
		t.Error("Expected key 2 to be deleted")
	}
	if keys := m.Keys(); !reflect.DeepEqual(keys, []int{1, 3}) {
		t.Errorf("Keys() = %v, want [1 3]", keys)
	}

	if m.Delete(4) {
		t.Error("Expected Delete(4) to report false")
	}
	if m.Len() != 2 {
		t.Errorf("Expected length 2, got %d", m.Len())
	}
}

func TestOrderedMap_All(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var keys []string
	var sum int
	for k, v := range m.All() {
		keys = append(keys, k)
		sum += v
		if k == "b" {
			break
		}
	}
	if !reflect.DeepEqual(keys, []string{"a", "b"}) || sum != 3 {
		t.Errorf("Unexpected iteration: keys=%v sum=%d", keys, sum)
	}

	var count int
	m.Range(func(k string, v int) {
		count++
	})
	if count != 3 {
		t.Errorf("Expected Range to visit 3 pairs, got %d", count)
	}
}

func TestClear(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("key1", 1)
	m.Set("key2", 2)

	m.Clear()

	if !m.IsEmpty() {
		t.Errorf("Expected length 0, but got %d", m.Len())
	}
	if m.keys.Len() != 0 {
		t.Errorf("Expected keys list empty, but got %d", m.keys.Len())
	}
	if len(m.m) != 0 {
		t.Errorf("Expected map empty, but got %d", len(m.m))
	}
}
