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

// Package thist implements the ternary histogram: a running per-position
// count of non-default bit values over a multiset of keys, and the
// discriminating-position search used to decide where a set of keys can
// best be split in two.
package thist

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/ternarydb/tcam/internal/cfix"
	"github.com/ternarydb/tcam/internal/pool"
	"github.com/ternarydb/tcam/internal/xlog"
	"github.com/ternarydb/tcam/internal/xmath"
	"github.com/ternarydb/tcam/tbit"
	"github.com/ternarydb/tcam/tkey"
	"github.com/ternarydb/tcam/tquad"
	"github.com/ternarydb/tcam/ttype"
)

// countMapPool recycles the per-position count maps backing closed
// histograms, the same way internal/pool backs tkey's quad maps.
var countMapPool = pool.New(func() *cfix.Map[uint32] { return cfix.New[uint32]() })

// Hist accumulates, per bit position, how many of the keys added to it hold
// each non-default value. Only positions that ever hold a non-default value
// for at least one key occupy space; a position untouched by every added
// key is implied to be at the type's default for all of them.
type Hist struct {
	typ   *ttype.Type
	count uint64

	// map0/map1 store per-position counts of the two non-default bit values,
	// keyed by bit position. Which value lands in map0 vs map1 depends on
	// the type's default, matching the position-indexed dist/map convention
	// below.
	map0, map1 *cfix.Map[uint32]

	// explicit tracks the union of positions present in map0 or map1, so the
	// discriminating search can find the smallest position touched by
	// neither map without scanning the whole bit length.
	explicit *roaring.Bitmap

	log xlog.Logger
}

// New creates an empty histogram over t. Its count maps come from
// internal/pool where a previously closed histogram's maps are available
// for reuse.
func New(t *ttype.Type) *Hist {
	map0, map1 := countMapPool.Reuse(), countMapPool.Reuse()
	map0.Reset()
	map1.Reset()
	return &Hist{
		typ:      t,
		map0:     map0,
		map1:     map1,
		explicit: roaring.New(),
		log:      xlog.Nop,
	}
}

// SetLogger overrides the histogram's fatal-assert logging sink; a
// histogram created by New uses xlog.Nop.
func (h *Hist) SetLogger(l xlog.Logger) { h.log = l }

// Close releases the histogram's storage, returning its count maps to
// internal/pool for reuse by a future histogram.
func (h *Hist) Close() {
	countMapPool.Recycle(h.map0)
	countMapPool.Recycle(h.map1)
	h.map0 = nil
	h.map1 = nil
	h.explicit = nil
}

// Type returns the histogram's shared type.
func (h *Hist) Type() *ttype.Type { return h.typ }

// Count returns the number of keys currently added to the histogram.
func (h *Hist) Count() uint64 { return h.count }

// slot reports which counting map (0 or 1) a non-default bit value belongs
// in, given the type's default: with a Zero default, Star takes slot 0 and
// One slot 1; with a One default, Zero takes slot 0 and Star slot 1; with a
// Star default, Zero takes slot 0 and One slot 1.
func slot(def, bit tbit.Bit) int {
	switch def {
	case tbit.Zero:
		if bit == tbit.One {
			return 1
		}
		return 0 // bit == tbit.Star
	case tbit.One:
		if bit == tbit.Zero {
			return 0
		}
		return 1 // bit == tbit.Star
	default: // tbit.Star
		if bit == tbit.Zero {
			return 0
		}
		return 1 // bit == tbit.One
	}
}

// bump adjusts the stored count at position i in the given slot by delta,
// inserting or deleting the map entry to preserve canonical sparse storage
// (a position with a zero count in both maps is never stored), and keeping
// explicit in sync with map0 ∪ map1.
func (h *Hist) bump(i uint32, s int, delta int32) {
	m := h.map0
	if s == 1 {
		m = h.map1
	}
	c, ok := m.Lookup(i)
	var nc uint32
	if delta > 0 {
		nc = c + uint32(delta)
	} else {
		nc = c - uint32(-delta)
	}
	switch {
	case nc == 0 && ok:
		m.Delete(i)
	case nc != 0 && ok:
		m.Update(i, nc)
	case nc != 0 && !ok:
		m.Insert(i, nc)
	}
	if nc != 0 {
		h.explicit.Add(i)
	} else {
		other := h.map1
		if s == 1 {
			other = h.map0
		}
		if _, present := other.Lookup(i); !present {
			h.explicit.Remove(i)
		}
	}
}

// Add folds k into the histogram, incrementing the count of every position
// where k deviates from the type's default.
func (h *Hist) Add(k *tkey.Key) {
	if k.Type() != h.typ {
		h.log.Error("thist: add of key with mismatched type")
		panic("thist: add of key with mismatched type")
	}
	def := h.typ.Default()
	for qi, q := range k.Explicit() {
		base := qi * tquad.Width
		for b := 0; b < tquad.Width; b++ {
			i := base + uint32(b)
			if i >= h.typ.Size() {
				break
			}
			bit := tquad.Get(q, b)
			if bit == def {
				continue
			}
			h.bump(i, slot(def, bit), 1)
		}
	}
	sum, overflow := xmath.SafeAdd(h.count, 1)
	if overflow {
		h.log.Error("thist: count overflow on add")
		panic("thist: count overflow on add")
	}
	h.count = sum
}

// Del removes the contribution of k from the histogram. k must previously
// have been added; removing a key that was never added, or removing it
// twice, desynchronizes the counts and is a programming error the caller is
// responsible for avoiding.
func (h *Hist) Del(k *tkey.Key) {
	if k.Type() != h.typ {
		h.log.Error("thist: del of key with mismatched type")
		panic("thist: del of key with mismatched type")
	}
	if h.count == 0 {
		h.log.Error("thist: del from empty histogram")
		panic("thist: del from empty histogram")
	}
	def := h.typ.Default()
	for qi, q := range k.Explicit() {
		base := qi * tquad.Width
		for b := 0; b < tquad.Width; b++ {
			i := base + uint32(b)
			if i >= h.typ.Size() {
				break
			}
			bit := tquad.Get(q, b)
			if bit == def {
				continue
			}
			h.bump(i, slot(def, bit), -1)
		}
	}
	diff, underflow := xmath.SafeSub(h.count, 1)
	if underflow {
		h.log.Error("thist: count underflow on del")
		panic("thist: count underflow on del")
	}
	h.count = diff
}

// counts converts the raw (c0, c1) slot counts at a position into the
// (n0, n1, nstar) triple of how many added keys hold Zero, One and Star
// there, given n total keys and the type's default.
func counts(def tbit.Bit, c0, c1 uint32, n uint64) (n0, n1, nstar uint64) {
	switch def {
	case tbit.Zero:
		return n - uint64(c0) - uint64(c1), uint64(c1), uint64(c0)
	case tbit.One:
		return uint64(c0), n - uint64(c0) - uint64(c1), uint64(c1)
	default: // tbit.Star
		return uint64(c0), uint64(c1), n - uint64(c0) - uint64(c1)
	}
}

// Dist reports, for bit position i, how many of the histogram's keys hold
// each of Zero, One and Star there: out[0], out[1], out[2] respectively.
func (h *Hist) Dist(i uint32, out *[3]uint64) {
	c0, _ := h.map0.Lookup(i)
	c1, _ := h.map1.Lookup(i)
	n0, n1, nstar := counts(h.typ.Default(), c0, c1, h.count)
	out[0], out[1], out[2] = n0, n1, nstar
}

// cost is the discriminating-position score: lower is better. It favors
// positions that split the keys evenly between the two concrete values,
// penalizing a large star bucket and an uneven zero/one split.
func cost(n, n0, n1, nstar uint64) float64 {
	l, r, b := float64(n0), float64(n1), float64(nstar)
	n2 := float64(n) * float64(n)
	return b*b - l*r + 1/(l*r+1/n2)
}

// Discriminate searches for the bit position that best splits the
// histogram's keys into two non-empty concrete groups. It returns the
// position and true if such a position exists, or false if every position
// is degenerate — every key agrees (after accounting for Star) with every
// other, so no position can split the set.
//
// Equal-cost ties among positions present in map0 favor the smaller index;
// ties elsewhere favor whichever candidate was found first, matching the
// asymmetric tie-break of the original position enumeration this search is
// built on.
func (h *Hist) Discriminate() (uint32, bool) {
	if h.count == 0 {
		return 0, false
	}
	def := h.typ.Default()
	n := h.count

	bestCost := math.MaxFloat64
	var bestIndex uint32
	var bestN0, bestN1 uint64
	found := false

	for i, c0 := range h.map0.All() {
		c1, _ := h.map1.Lookup(i)
		n0, n1, nstar := counts(def, c0, c1, n)
		cc := cost(n, n0, n1, nstar)
		if !found || cc < bestCost || (cc == bestCost && i < bestIndex) {
			bestCost, bestIndex, bestN0, bestN1 = cc, i, n0, n1
			found = true
		}
	}

	for i, c1 := range h.map1.All() {
		if _, ok := h.map0.Lookup(i); ok {
			continue
		}
		n0, n1, nstar := counts(def, 0, c1, n)
		cc := cost(n, n0, n1, nstar)
		if !found || cc < bestCost {
			bestCost, bestIndex, bestN0, bestN1 = cc, i, n0, n1
			found = true
		}
	}

	if uint64(h.explicit.GetCardinality()) < uint64(h.typ.Size()) {
		i := smallestAbsent(h.explicit, h.typ.Size())
		n0, n1, nstar := counts(def, 0, 0, n)
		cc := cost(n, n0, n1, nstar)
		if !found || cc < bestCost {
			bestCost, bestIndex, bestN0, bestN1 = cc, i, n0, n1
			found = true
		}
	}

	if !found {
		return 0, false
	}
	return bestIndex, bestN0 > 0 && bestN1 > 0
}

// smallestAbsent returns the smallest index in [0, size) not set in b. It
// panics if no such index exists; callers must first confirm b's
// cardinality is less than size.
func smallestAbsent(b *roaring.Bitmap, size uint32) uint32 {
	full := roaring.New()
	full.AddRange(0, uint64(size))
	full.AndNot(b)
	if full.IsEmpty() {
		panic("thist: smallestAbsent called with no absent index")
	}
	return full.Minimum()
}
