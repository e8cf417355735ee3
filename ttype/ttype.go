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

// Package ttype defines the immutable key type descriptor shared by
// reference among every sparse key and histogram built on it.
package ttype

import (
	"fmt"

	"github.com/ternarydb/tcam/internal/xmath"
	"github.com/ternarydb/tcam/tbit"
)

// NameMaxLen is the maximum number of characters a type name may hold.
const NameMaxLen = 31

// Type is an immutable descriptor of a key's base, bit length, default bit
// and name. All keys and histograms built over the same logical key space
// reference one *Type by pointer; set-algebra operations between two keys
// require the keys to reference the identical *Type.
type Type struct {
	base   tbit.Base
	length uint32
	def    tbit.Bit
	name   string
}

// New validates and constructs a key type. It returns an error if dflt is
// not allowed under base, if length is zero, or if name exceeds NameMaxLen
// characters.
//
// Invariant: if dflt == tbit.Star then base must be tbit.Ternary.
func New(base tbit.Base, length uint32, dflt tbit.Bit, name string) (*Type, error) {
	if length == 0 {
		return nil, fmt.Errorf("ttype: length must be positive")
	}
	if len(name) > NameMaxLen {
		return nil, fmt.Errorf("ttype: name %q exceeds %d characters", name, NameMaxLen)
	}
	if !base.Allows(dflt) {
		return nil, fmt.Errorf("ttype: default bit %v not allowed under base %v", dflt, base)
	}
	return &Type{base: base, length: length, def: dflt, name: name}, nil
}

// Size returns the number of bits addressed by the type.
func (t *Type) Size() uint32 { return t.length }

// Default returns the implicit bit value of every unstored position.
func (t *Type) Default() tbit.Bit { return t.def }

// Name returns the type's name.
func (t *Type) Name() string { return t.name }

// Base returns the type's base.
func (t *Type) Base() tbit.Base { return t.base }

// Quads returns the number of 32-bit quads needed to cover Size() bits.
func (t *Type) Quads() uint32 {
	return xmath.CeilDiv(t.length, 32)
}
