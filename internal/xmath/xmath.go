// Copyright 2017 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
// Copyright 2025 The tcam Authors
// (further modifications)
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

// Package xmath carries the small set of overflow-checked integer helpers
// the key-type and histogram packages build on, adapted from the teacher's
// erigon-lib/common/math integer helpers.
package xmath

import "math/bits"

// CeilDiv returns ceil(x/y), or 0 if y == 0. Used to compute the number of
// 32-bit quads needed to cover a key type's bit length.
func CeilDiv(x, y uint32) uint32 {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}

// SafeAdd returns x+y and reports whether the addition overflowed a
// uint64. Used by the histogram to guard count increments.
func SafeAdd(x, y uint64) (uint64, bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut != 0
}

// SafeSub returns x-y and reports whether the subtraction underflowed.
// Used by the histogram to guard count decrements on Del.
func SafeSub(x, y uint64) (uint64, bool) {
	diff, borrowOut := bits.Sub64(x, y, 0)
	return diff, borrowOut != 0
}
