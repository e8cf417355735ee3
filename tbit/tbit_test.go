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

package tbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ternarydb/tcam/tbit"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		c   byte
		bit tbit.Bit
	}{
		{'0', tbit.Zero},
		{'1', tbit.One},
		{'*', tbit.Star},
	}
	for _, c := range cases {
		bit, err := tbit.Parse(c.c)
		require.NoError(t, err)
		require.Equal(t, c.bit, bit)
		require.Equal(t, string(c.c), bit.String())
	}
}

func TestParseInvalid(t *testing.T) {
	for _, c := range []byte{'2', 'x', ' ', 0} {
		_, err := tbit.Parse(c)
		require.Error(t, err)
	}
}

func TestBaseAllows(t *testing.T) {
	require.True(t, tbit.Binary.Allows(tbit.Zero))
	require.True(t, tbit.Binary.Allows(tbit.One))
	require.False(t, tbit.Binary.Allows(tbit.Star))

	require.True(t, tbit.Ternary.Allows(tbit.Zero))
	require.True(t, tbit.Ternary.Allows(tbit.One))
	require.True(t, tbit.Ternary.Allows(tbit.Star))
}

func TestBaseString(t *testing.T) {
	require.Equal(t, "binary", tbit.Binary.String())
	require.Equal(t, "ternary", tbit.Ternary.String())
}
