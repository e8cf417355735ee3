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

// Package tkey implements the sparse ternary key: a logical vector of
// L ternary bits represented as a sparse map from quad index to ternary
// quad, with explicit storage only where a position deviates from the key
// type's default bit.
package tkey

import (
	"fmt"

	"github.com/ternarydb/tcam/internal/cfix"
	"github.com/ternarydb/tcam/internal/pool"
	"github.com/ternarydb/tcam/internal/xlog"
	"github.com/ternarydb/tcam/tbit"
	"github.com/ternarydb/tcam/trel"
	"github.com/ternarydb/tcam/tquad"
	"github.com/ternarydb/tcam/ttype"
)

// mapPool recycles the sparse quad maps backing closed keys, so repeatedly
// opening and closing keys of the same type does not repeatedly allocate a
// fresh map.
var mapPool = pool.New(func() *cfix.Map[tquad.Quad] { return cfix.New[tquad.Quad]() })

// Key is a sparse ternary key over a shared *ttype.Type. The zero value is
// not usable; construct with New.
type Key struct {
	typ    *ttype.Type
	m      *cfix.Map[tquad.Quad]
	log    xlog.Logger
	closed bool
}

// defaultQuad returns the canonical quad filled entirely with t's default
// bit, the value every absent map entry represents.
func defaultQuad(t *ttype.Type) tquad.Quad {
	switch t.Default() {
	case tbit.One:
		return tquad.New(0xffffffff, 0xffffffff)
	case tbit.Zero:
		return tquad.New(0, 0xffffffff)
	default: // tbit.Star
		return tquad.New(0, 0)
	}
}

// New creates a key under t with every position defaulted; the map starts
// empty. Its backing storage comes from internal/pool where a previously
// closed key's map is available for reuse.
func New(t *ttype.Type) *Key {
	m := mapPool.Reuse()
	m.Reset()
	return &Key{typ: t, m: m, log: xlog.Nop}
}

// SetLogger overrides the key's fatal-assert logging sink; a key created by
// New uses xlog.Nop.
func (k *Key) SetLogger(l xlog.Logger) { k.log = l }

// Clone returns a new key, equal as a value to k, under the same type.
func (k *Key) Clone() *Key {
	c := New(k.typ)
	for qi, q := range k.m.All() {
		c.m.Insert(qi, q)
	}
	return c
}

// Close releases the key's storage back to internal/pool for reuse by a
// future key of any type. Closing an already-closed key is a programming
// error: it is logged and then panics.
func (k *Key) Close() {
	if k.closed {
		k.log.Error("tkey: double close")
		panic("tkey: double close")
	}
	k.closed = true
	mapPool.Recycle(k.m)
	k.m = nil
}

// Type returns the key's shared type.
func (k *Key) Type() *ttype.Type { return k.typ }

// Explicit returns a pull-based lazy sequence over the key's explicitly
// stored (quad index, quad) pairs — the quads that deviate from the type's
// default quad. Histogram bookkeeping walks this sequence rather than every
// logical position, since positions covered by no explicit quad are, by
// construction, all at the type's default.
func (k *Key) Explicit() func(func(uint32, tquad.Quad) bool) {
	return k.m.All()
}

func (k *Key) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	k.log.Error(msg)
	panic(msg)
}

func (k *Key) checkIndex(i uint32) {
	if i >= k.typ.Size() {
		k.fail("tkey: index %d out of range [0,%d)", i, k.typ.Size())
	}
}

// Get returns the ternary bit at position i.
func (k *Key) Get(i uint32) tbit.Bit {
	k.checkIndex(i)
	qi, bi := i/tquad.Width, int(i%tquad.Width)
	if q, ok := k.m.Lookup(qi); ok {
		return tquad.Get(q, bi)
	}
	return k.typ.Default()
}

// Put sets the ternary bit at position i to bit, maintaining the
// canonical-storage invariant: an entry equal to the type's default quad is
// never stored.
func (k *Key) Put(i uint32, bit tbit.Bit) {
	k.checkIndex(i)
	if !k.typ.Base().Allows(bit) {
		k.fail("tkey: bit %v not allowed under base %v", bit, k.typ.Base())
	}
	qi, bi := i/tquad.Width, int(i%tquad.Width)
	dq := defaultQuad(k.typ)

	q, ok := k.m.Lookup(qi)
	if !ok {
		if bit == k.typ.Default() {
			return
		}
		k.m.Insert(qi, tquad.Put(dq, bi, bit))
		return
	}
	if tquad.Get(q, bi) == bit {
		return
	}
	q = tquad.Put(q, bi, bit)
	if q == dq {
		k.m.Delete(qi)
	} else {
		k.m.Update(qi, q)
	}
}

// Quad returns the quad stored at quad index qi, or the default quad if qi
// is absent from the map. It reports an error if qi is out of range.
func (k *Key) Quad(qi uint32) (tquad.Quad, error) {
	if qi >= k.typ.Quads() {
		return 0, fmt.Errorf("tkey: quad index %d out of range [0,%d)", qi, k.typ.Quads())
	}
	if q, ok := k.m.Lookup(qi); ok {
		return q, nil
	}
	return defaultQuad(k.typ), nil
}

// String renders the key as length characters from position 0 upward.
func (k *Key) String() string {
	buf := make([]byte, k.typ.Size())
	for i := uint32(0); i < k.typ.Size(); i++ {
		buf[i] = k.Get(i).Byte()
	}
	return string(buf)
}

// Parse assigns positions 0..n-1 of k from s, where n is the number of
// characters successfully parsed before either s or k's length is
// exhausted or an invalid character is found. It returns n.
func (k *Key) Parse(s string) int {
	limit := int(k.typ.Size())
	if len(s) < limit {
		limit = len(s)
	}
	i := 0
	for ; i < limit; i++ {
		bit, err := tbit.Parse(s[i])
		if err != nil {
			break
		}
		k.Put(uint32(i), bit)
	}
	return i
}

// Relation computes the set relation between k1 and k2. Both keys must
// share the identical *ttype.Type; mismatched types are a programming
// error.
func Relation(k1, k2 *Key) trel.Relation {
	if k1 == k2 {
		return trel.Equal
	}
	if k1.typ != k2.typ {
		k1.fail("tkey: relation between keys of different types")
	}

	q := k1.typ.Quads()
	m1, m2 := k1.m.Keys(), k2.m.Keys()
	d1, d2 := k1.typ.Default(), k2.typ.Default()
	dq1, dq2 := defaultQuad(k1.typ), defaultQuad(k2.typ)

	if m1 == 0 && m2 == 0 {
		switch {
		case d1 == d2:
			return trel.Equal
		case d1 == tbit.Star:
			return trel.Superset
		case d2 == tbit.Star:
			return trel.Subset
		default:
			return trel.Disjoint
		}
	}

	r := trel.Equal

	if m1 == 0 || m2 == 0 {
		// Exactly one side is empty: its default quad stands in for every
		// quad of that side, explicit or not. k1's representative always
		// goes first and k2's always goes second into tquad.Relation,
		// regardless of which side is the empty one.
		var other *cfix.Map[tquad.Quad]
		var otherLen int
		var relate func(oq tquad.Quad) trel.Relation
		if m1 == 0 {
			other, otherLen = k2.m, m2
			relate = func(oq tquad.Quad) trel.Relation { return tquad.Relation(dq1, oq) }
		} else {
			other, otherLen = k1.m, m1
			relate = func(oq tquad.Quad) trel.Relation { return tquad.Relation(oq, dq2) }
		}
		if uint32(otherLen) < q {
			r = trel.Update(r, tquad.Relation(dq1, dq2))
			if r == trel.Disjoint {
				return r
			}
		}
		for _, oq := range other.All() {
			r = trel.Update(r, relate(oq))
			if r == trel.Disjoint {
				return r
			}
		}
		return r
	}

	var ee, ed, de uint32
	for qi, q1 := range k1.m.All() {
		if q2, ok := k2.m.Lookup(qi); ok {
			r = trel.Update(r, tquad.Relation(q1, q2))
			ee++
		} else {
			r = trel.Update(r, tquad.Relation(q1, dq2))
			ed++
		}
		if r == trel.Disjoint {
			return r
		}
	}
	for qi, q2 := range k2.m.All() {
		if _, ok := k1.m.Lookup(qi); ok {
			continue
		}
		r = trel.Update(r, tquad.Relation(dq1, q2))
		de++
		if r == trel.Disjoint {
			return r
		}
	}
	dd := q - ee - ed - de
	if dd > 0 {
		r = trel.Update(r, tquad.Relation(dq1, dq2))
	}
	return r
}
