// Copyright 2025 The tcam Authors
// This file is part of tcam.
//
// tcam is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tcam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with tcam. If not, see <http://www.gnu.org/licenses/>.

// Package cfix stands in for the fixed-size, cuckoo-like associative
// container the core treats as an external collaborator: uint32 keys
// mapping to arbitrary values, O(1)-average insert/lookup/delete, iteration
// in unspecified order. The real container's growth/sizing policy is
// opaque to callers, so this stand-in is built directly on the Go runtime
// map, which already provides exactly that contract.
package cfix

import "iter"

// Map is the associative container contract of the spec's cfix collaborator,
// specialized to a value type V (uint32 counts in thist, tquad.Quad values
// in tkey).
type Map[V any] struct {
	m map[uint32]V
}

// New constructs an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{m: make(map[uint32]V)}
}

// Lookup reports whether k is present, writing its value through v when so.
func (c *Map[V]) Lookup(k uint32) (v V, ok bool) {
	v, ok = c.m[k]
	return v, ok
}

// Insert requires k is absent and sets c[k] = v.
func (c *Map[V]) Insert(k uint32, v V) {
	if _, ok := c.m[k]; ok {
		panic("cfix: insert of already-present key")
	}
	c.m[k] = v
}

// Update requires k is present and sets c[k] = v.
func (c *Map[V]) Update(k uint32, v V) {
	if _, ok := c.m[k]; !ok {
		panic("cfix: update of absent key")
	}
	c.m[k] = v
}

// Set inserts or overwrites c[k] = v regardless of prior presence. This is
// a convenience beyond the strict spec contract, used internally wherever
// callers would otherwise have to branch on Lookup before choosing Insert
// or Update.
func (c *Map[V]) Set(k uint32, v V) {
	c.m[k] = v
}

// Delete requires k is present and removes it.
func (c *Map[V]) Delete(k uint32) {
	if _, ok := c.m[k]; !ok {
		panic("cfix: delete of absent key")
	}
	delete(c.m, k)
}

// Keys returns the number of entries.
func (c *Map[V]) Keys() int {
	return len(c.m)
}

// Reset discards every entry, returning the map to the state New produces.
// It exists so a Map recycled through internal/pool can be handed back out
// clean rather than carrying over its previous holder's entries.
func (c *Map[V]) Reset() {
	c.m = make(map[uint32]V)
}

// All returns a pull-based lazy sequence over all entries, in unspecified
// order — the range-over-func replacement for a hand-rolled
// create/current/forward/destroy iterator cursor.
func (c *Map[V]) All() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		for k, v := range c.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
