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

package tquad_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ternarydb/tcam/tbit"
	"github.com/ternarydb/tcam/trel"
	"github.com/ternarydb/tcam/tquad"
)

func TestNewCanonicalizesBits(t *testing.T) {
	q := tquad.New(0xffffffff, 0x0000000f)
	require.Equal(t, uint32(0x0000000f), uint32(q))
}

func TestGetPutRoundTrip(t *testing.T) {
	var q tquad.Quad
	q = tquad.Put(q, 0, tbit.One)
	q = tquad.Put(q, 1, tbit.Zero)
	q = tquad.Put(q, 2, tbit.Star)
	require.Equal(t, tbit.One, tquad.Get(q, 0))
	require.Equal(t, tbit.Zero, tquad.Get(q, 1))
	require.Equal(t, tbit.Star, tquad.Get(q, 2))
	require.Equal(t, tbit.Star, tquad.Get(q, 3))
}

func TestStringParseRoundTrip(t *testing.T) {
	var q tquad.Quad
	q = tquad.Put(q, 0, tbit.One)
	q = tquad.Put(q, 31, tbit.Zero)
	s := q.String()
	require.Len(t, s, tquad.Width)

	q2, err := tquad.Parse(s)
	require.NoError(t, err)
	require.Equal(t, q, q2)
}

func TestParseRejectsShortString(t *testing.T) {
	_, err := tquad.Parse("01*")
	require.Error(t, err)
}

func TestParseRejectsInvalidChar(t *testing.T) {
	_, err := tquad.Parse(string(make([]byte, tquad.Width)))
	require.Error(t, err)
}

func TestMemberAllStar(t *testing.T) {
	q := tquad.New(0, 0)
	for _, x := range []uint32{0, 1, 0xffffffff, 0xdeadbeef} {
		require.True(t, tquad.Member(q, x))
	}
}

func TestCardinality(t *testing.T) {
	require.Equal(t, uint64(1)<<32, tquad.Cardinality(tquad.New(0, 0)))
	require.Equal(t, uint64(1), tquad.Cardinality(tquad.New(0xffffffff, 0xffffffff)))
	require.Equal(t, uint64(2), tquad.Cardinality(tquad.New(0, 0xfffffffe)))
}

func TestRelationIdentityIsEqual(t *testing.T) {
	q := tquad.New(0b101, 0b111)
	require.Equal(t, trel.Equal, tquad.Relation(q, q))
}

func TestRelationSubsetSuperset(t *testing.T) {
	wildcard := tquad.New(0, 0)
	specific := tquad.New(1, 1)
	require.Equal(t, trel.Superset, tquad.Relation(wildcard, specific))
	require.Equal(t, trel.Subset, tquad.Relation(specific, wildcard))
}

func TestRelationDisjointSameMask(t *testing.T) {
	a := tquad.New(0b1, 0b1)
	b := tquad.New(0b0, 0b1)
	require.Equal(t, trel.Disjoint, tquad.Relation(a, b))
}

func TestRelationIntersect(t *testing.T) {
	// Two quads whose specified positions partially overlap and agree where
	// they do, so their matching sets intersect without either containing
	// the other.
	c := tquad.New(0b001, 0b011) // bits 0,1 specified: 1,0
	d := tquad.New(0b101, 0b110) // bits 1,2 specified: 0,1
	require.Equal(t, trel.Intersect, tquad.Relation(c, d))
}

// randomQuad generates a canonical Quad via rapid, by drawing independent
// bits and mask words.
func randomQuad(t *rapid.T) tquad.Quad {
	bits := rapid.Uint32().Draw(t, "bits")
	mask := rapid.Uint32().Draw(t, "mask")
	return tquad.New(bits, mask)
}

func TestRelationMatchesMemberSets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q1 := randomQuad(t)
		q2 := randomQuad(t)
		x := rapid.Uint32().Draw(t, "x")

		r := tquad.Relation(q1, q2)
		m1, m2 := tquad.Member(q1, x), tquad.Member(q2, x)

		switch r {
		case trel.Equal:
			require.Equal(t, m1, m2)
		case trel.Subset:
			if m1 {
				require.True(t, m2)
			}
		case trel.Superset:
			if m2 {
				require.True(t, m1)
			}
		case trel.Disjoint:
			require.False(t, m1 && m2)
		}
	})
}

func TestRelationSymmetricUnderSwap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q1 := randomQuad(t)
		q2 := randomQuad(t)
		require.Equal(t, trel.Swap(tquad.Relation(q1, q2)), tquad.Relation(q2, q1))
	})
}

func TestStringParseRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := randomQuad(t)
		q2, err := tquad.Parse(q.String())
		require.NoError(t, err)
		require.Equal(t, q, q2)
	})
}
