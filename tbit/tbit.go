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

// Package tbit defines the three-valued ternary bit and the binary/ternary
// base used to validate key type construction.
package tbit

import "fmt"

// Bit is a three-valued symbol over {0, 1, *}.
type Bit byte

const (
	Zero Bit = iota
	One
	Star
)

// Byte returns the character codec for bit: '0', '1' or '*'.
func (b Bit) Byte() byte {
	switch b {
	case Zero:
		return '0'
	case One:
		return '1'
	case Star:
		return '*'
	default:
		panic(fmt.Sprintf("tbit: invalid Bit value %d", byte(b)))
	}
}

func (b Bit) String() string {
	return string(b.Byte())
}

// Parse converts a character to a Bit. It reports an error for any
// character other than '0', '1' or '*'.
func Parse(c byte) (Bit, error) {
	switch c {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	case '*':
		return Star, nil
	default:
		return 0, fmt.Errorf("tbit: invalid character %q", c)
	}
}

// Base restricts which bits a key type may contain.
type Base byte

const (
	// Binary key types may only contain Zero or One.
	Binary Base = iota
	// Ternary key types may contain Zero, One or Star.
	Ternary
)

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Ternary:
		return "ternary"
	default:
		return fmt.Sprintf("base(%d)", byte(b))
	}
}

// Allows reports whether base permits bit.
func (b Base) Allows(bit Bit) bool {
	if b == Ternary {
		return bit == Zero || bit == One || bit == Star
	}
	return bit == Zero || bit == One
}
