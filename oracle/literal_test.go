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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		text  string
		base  int
		neg   bool
		value string
	}{
		{"0", 10, false, "0"},
		{"127", 10, false, "127"},
		{"-128", 10, true, "-128"},
		{"+5", 10, false, "5"},
		{"0x7f", 16, false, "127"},
		{"0X7F", 16, false, "127"},
		{"-0x80", 16, true, "-128"},
		{"0xffffffffffffffff", 16, false, "18446744073709551615"},
		{"007", 10, false, "7"},
	}
	for _, tt := range tests {
		l, err := ParseInt(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.base, l.Base, tt.text)
		assert.Equal(t, tt.neg, l.Neg, tt.text)
		assert.Equal(t, tt.value, l.Value().String(), tt.text)
		assert.Equal(t, tt.text, l.Text)
		assert.Equal(t, tt.base == 16, l.IsHex())
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		text  string
		class FloatClass
		neg   bool
		value float64
	}{
		{"0x0p+0", ClassFinite, false, 0},
		{"-0x0p+0", ClassFinite, true, 0},
		{"0x1p-149", ClassFinite, false, math.SmallestNonzeroFloat32},
		{"0x1.fffffep+127", ClassFinite, false, math.MaxFloat32},
		{"0x1", ClassFinite, false, 1},
		{"1.125", ClassFinite, false, 1.125},
		{"-0.25", ClassFinite, true, -0.25},
		{"inf", ClassInf, false, math.Inf(1)},
		{"-inf", ClassInf, true, math.Inf(-1)},
		{"nan", ClassNaN, false, 0},
		{"-nan", ClassNaN, true, 0},
		{"+nan", ClassNaN, false, 0},
	}
	for _, tt := range tests {
		l, err := ParseFloat(tt.text, 32)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.class, l.Class, tt.text)
		assert.Equal(t, tt.neg, l.Neg, tt.text)
		if !l.IsNaN() {
			assert.Equal(t, tt.value, l.Value, tt.text)
		}
	}
}

func TestParseFloatPayload(t *testing.T) {
	l, err := ParseFloat("-nan:0x200000", 32)
	require.NoError(t, err)
	assert.Equal(t, ClassPayloadNaN, l.Class)
	assert.True(t, l.Neg)
	assert.Equal(t, uint64(0x200000), l.Payload)

	l, err = ParseFloat("nan:0x8000000000000", 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000000000000), l.Payload)

	for _, bad := range []string{"nan:0x0", "nan:0x800000", "nan:123", "nan:0x", "nan:"} {
		_, err := ParseFloat(bad, 32)
		assert.ErrorIs(t, err, ErrMalformedLiteral, bad)
	}
}

func TestParseFloatMalformed(t *testing.T) {
	for _, bad := range []string{"", "-", "NaN", "Inf", "infinity", ".5", "0x1p+128", "1e39", "abc", "1.0.0"} {
		_, err := ParseFloat(bad, 32)
		assert.ErrorIs(t, err, ErrMalformedLiteral, bad)
	}
	_, err := ParseFloat("1", 16)
	assert.ErrorIs(t, err, ErrUnsupportedLaneWidth)
}

func TestNaNClassifiers(t *testing.T) {
	assert.True(t, IsArithmeticNaN("nan:0x200000"))
	assert.True(t, IsArithmeticNaN("-nan:0x1"))
	assert.False(t, IsArithmeticNaN("nan"))
	assert.False(t, IsArithmeticNaN("0x1p+0"))

	assert.True(t, IsNaNLiteral("nan"))
	assert.True(t, IsNaNLiteral("-nan"))
	assert.True(t, IsNaNLiteral("-nan:0x1"))
	assert.False(t, IsNaNLiteral("inf"))
}

func TestFormatHexFloat(t *testing.T) {
	tests := []struct {
		v        float64
		bits     int
		expected string
	}{
		{0, 32, "0x0p+0"},
		{math.Copysign(0, -1), 32, "-0x0p+0"},
		{1, 32, "0x1p+0"},
		{0.5, 32, "0x1p-1"},
		{math.SmallestNonzeroFloat32, 32, "0x1p-149"},
		{math.MaxFloat32, 32, "0x1.fffffep+127"},
		{float64(float32(math.Pi * 2)), 32, "0x1.921fb6p+2"},
		{math.Inf(1), 32, "inf"},
		{math.Inf(-1), 64, "-inf"},
		{math.NaN(), 64, "nan"},
		{1024, 64, "0x1p+10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatHexFloat(tt.v, tt.bits), "%v", tt.v)
	}
}
