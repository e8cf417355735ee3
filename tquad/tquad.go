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

// Package tquad implements the 64-bit packed ternary quad: 32 ternary
// positions encoded as a (bits, mask) pair, together with the set-relation
// algebra that is the inner loop of every key-to-key comparison.
//
// Quad is deliberately a transparent uint64-backed type rather than an
// opaque struct, matching the source's own rationale: it needs to be a
// cheap building block passed by value and stored directly in maps.
package tquad

import (
	"fmt"
	"math/bits"

	"github.com/ternarydb/tcam/tbit"
	"github.com/ternarydb/tcam/trel"
)

// Width is the number of ternary positions packed into one Quad.
const Width = 32

// Quad packs 32 ternary positions: the low 32 bits are the specified bit
// values ("bits"), the high 32 bits are the specification mask ("mask").
// Position i is Star iff mask bit i is 0; otherwise it is One or Zero per
// bits bit i. New and Put both maintain the canonical-form invariant
// bits & ^mask == 0.
type Quad uint64

func split(q Quad) (bits, mask uint32) {
	return uint32(q), uint32(q >> 32)
}

func join(bits, mask uint32) Quad {
	return Quad(bits) | Quad(mask)<<32
}

// New constructs a quad from raw bits and mask, canonicalizing by clearing
// any bit of bits whose corresponding mask bit is 0.
func New(bits, mask uint32) Quad {
	return join(bits&mask, mask)
}

// Get returns the ternary bit at position i in [0, Width).
func Get(q Quad, i int) tbit.Bit {
	if i < 0 || i >= Width {
		panic(fmt.Sprintf("tquad: index %d out of range [0,%d)", i, Width))
	}
	bits, mask := split(q)
	if (mask>>uint(i))&1 == 0 {
		return tbit.Star
	}
	if (bits>>uint(i))&1 == 1 {
		return tbit.One
	}
	return tbit.Zero
}

// Put returns a copy of q with position i set to bit.
func Put(q Quad, i int, bit tbit.Bit) Quad {
	if i < 0 || i >= Width {
		panic(fmt.Sprintf("tquad: index %d out of range [0,%d)", i, Width))
	}
	b, mask := split(q)
	sel := uint32(1) << uint(i)
	switch bit {
	case tbit.Zero:
		b &^= sel
		mask |= sel
	case tbit.One:
		b |= sel
		mask |= sel
	case tbit.Star:
		b &^= sel
		mask &^= sel
	default:
		panic(fmt.Sprintf("tquad: invalid bit value %d", byte(bit)))
	}
	return join(b, mask)
}

// Member reports whether x matches the pattern q represents.
func Member(q Quad, x uint32) bool {
	b, mask := split(q)
	return x&mask == b
}

// Cardinality returns the number of 32-bit words matching q: 2^popcount(^mask).
func Cardinality(q Quad) uint64 {
	_, mask := split(q)
	return uint64(1) << uint(bits.OnesCount32(^mask))
}

// String renders q as a 32-character MSB-first string over {0,1,*}.
func (q Quad) String() string {
	buf := make([]byte, Width)
	for i := 0; i < Width; i++ {
		buf[Width-1-i] = Get(q, i).Byte()
	}
	return string(buf)
}

// Parse reads a 32-character MSB-first string over {0,1,*} into a Quad. It
// fails if s is shorter than Width characters or contains an invalid
// character; on failure the returned Quad is the zero value.
func Parse(s string) (Quad, error) {
	if len(s) < Width {
		return 0, fmt.Errorf("tquad: string %q shorter than %d characters", s, Width)
	}
	var q Quad
	for i := 0; i < Width; i++ {
		bit, err := tbit.Parse(s[Width-1-i])
		if err != nil {
			return 0, fmt.Errorf("tquad: %w", err)
		}
		q = Put(q, i, bit)
	}
	return q, nil
}

// Relation computes the set relation between q1 and q2, viewing each quad
// as the set of uint32 words it matches. Disjoint is returned as soon as it
// is established, matching the source's early-termination behavior at the
// quad level.
func Relation(q1, q2 Quad) trel.Relation {
	if q1 == q2 {
		return trel.Equal
	}
	bits1, mask1 := split(q1)
	bits2, mask2 := split(q2)

	if mask1 == mask2 {
		// Same positions specified, different values: disjoint.
		return trel.Disjoint
	}
	if mask1 == mask1&mask2 {
		// q1 is less specified than q2: q1 superset of q2, or disjoint.
		if bits1 == bits2&mask1 {
			return trel.Superset
		}
		return trel.Disjoint
	}
	if mask2 == mask1&mask2 {
		// Symmetric case: q1 subset of q2, or disjoint.
		if bits2 == bits1&mask2 {
			return trel.Subset
		}
		return trel.Disjoint
	}
	disc := mask1 & mask2
	if bits1&disc == bits2&disc {
		return trel.Intersect
	}
	return trel.Disjoint
}
