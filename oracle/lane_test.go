// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oracle

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaneModel(t *testing.T) {
	tests := []struct {
		width     int
		mask      string
		signedMin string
		signedMax string
		lanes     int
		name      string
	}{
		{8, "255", "-128", "127", 16, "i8x16"},
		{16, "65535", "-32768", "32767", 8, "i16x8"},
		{32, "4294967295", "-2147483648", "2147483647", 4, "i32x4"},
		{64, "18446744073709551615", "-9223372036854775808", "9223372036854775807", 2, "i64x2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewLaneModel(tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.width, m.Width())
			assert.Equal(t, tt.mask, m.Mask().String())
			assert.Equal(t, tt.signedMin, m.SignedMin().String())
			assert.Equal(t, tt.signedMax, m.SignedMax().String())
			assert.Equal(t, tt.lanes, m.Lanes())
			assert.Equal(t, tt.name, m.String())

			mod := new(big.Int).Add(m.Mask(), big.NewInt(1))
			assert.Equal(t, 0, mod.Cmp(m.Modulus()))
			assert.True(t, m.SignedMin().Cmp(m.SignedMax()) <= 0)
			assert.True(t, m.SignedMax().Cmp(m.Mask()) < 0)
			assert.True(t, m.Mask().Cmp(m.Modulus()) < 0)
		})
	}
}

func TestNewLaneModelUnsupported(t *testing.T) {
	for _, w := range []int{0, 1, 7, 12, 128, -8} {
		_, err := NewLaneModel(w)
		assert.ErrorIs(t, err, ErrUnsupportedLaneWidth, "width %d", w)
	}
	assert.Panics(t, func() { MustLaneModel(24) })
}

func TestLaneModelAccessorsCopy(t *testing.T) {
	m := MustLaneModel(8)
	m.Mask().SetInt64(0)
	m.SignedMax().SetInt64(0)
	assert.Equal(t, "255", m.Mask().String())
	assert.Equal(t, "127", MustLaneModel(8).SignedMax().String())
}

func TestNormalizeRangeAndCongruence(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, w := range []int{8, 16, 32, 64} {
		m := MustLaneModel(w)
		for range 500 {
			// Values well outside the lane range in both directions.
			v := new(big.Int).Lsh(big.NewInt(rng.Int64()), uint(rng.IntN(80)))
			if rng.IntN(2) == 0 {
				v.Neg(v)
			}

			s := Normalize(v, m, true)
			u := Normalize(v, m, false)
			require.True(t, s.Cmp(m.SignedMin()) >= 0 && s.Cmp(m.SignedMax()) <= 0, "signed %s -> %s (w=%d)", v, s, w)
			require.True(t, u.Sign() >= 0 && u.Cmp(m.Mask()) <= 0, "unsigned %s -> %s (w=%d)", v, u, w)

			mod := m.Modulus()
			want := new(big.Int).Mod(v, mod)
			require.Equal(t, 0, new(big.Int).Mod(s, mod).Cmp(want), "signed congruence %s (w=%d)", v, w)
			require.Equal(t, 0, new(big.Int).Mod(u, mod).Cmp(want), "unsigned congruence %s (w=%d)", v, w)
		}
	}
}

func TestNormalize(t *testing.T) {
	m := MustLaneModel(8)
	tests := []struct {
		v        int64
		signed   bool
		expected int64
	}{
		{255, true, -1},
		{255, false, 255},
		{128, true, -128},
		{-1, false, 255},
		{-129, true, 127},
		{256, true, 0},
		{0x17f, false, 0x7f},
	}
	for _, tt := range tests {
		got := Normalize(big.NewInt(tt.v), m, tt.signed)
		if got.Int64() != tt.expected {
			t.Errorf("Normalize(%d, signed=%v) = %s, want %d", tt.v, tt.signed, got, tt.expected)
		}
	}
}
