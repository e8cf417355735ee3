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

package cfix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ternarydb/tcam/internal/cfix"
)

func TestInsertLookup(t *testing.T) {
	m := cfix.New[string]()
	m.Insert(1, "a")
	v, ok := m.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, ok = m.Lookup(2)
	require.False(t, ok)
}

func TestInsertDuplicatePanics(t *testing.T) {
	m := cfix.New[int]()
	m.Insert(1, 10)
	require.Panics(t, func() { m.Insert(1, 20) })
}

func TestUpdateAbsentPanics(t *testing.T) {
	m := cfix.New[int]()
	require.Panics(t, func() { m.Update(1, 20) })
}

func TestDeleteAbsentPanics(t *testing.T) {
	m := cfix.New[int]()
	require.Panics(t, func() { m.Delete(1) })
}

func TestKeysAndDelete(t *testing.T) {
	m := cfix.New[int]()
	m.Insert(1, 10)
	m.Insert(2, 20)
	require.Equal(t, 2, m.Keys())
	m.Delete(1)
	require.Equal(t, 1, m.Keys())
}

func TestAllIteratesEveryEntry(t *testing.T) {
	m := cfix.New[int]()
	want := map[uint32]int{1: 10, 2: 20, 3: 30}
	for k, v := range want {
		m.Insert(k, v)
	}
	got := map[uint32]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	require.Equal(t, want, got)
}

func TestAllEarlyStop(t *testing.T) {
	m := cfix.New[int]()
	m.Insert(1, 10)
	m.Insert(2, 20)
	m.Insert(3, 30)
	n := 0
	for range m.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}
