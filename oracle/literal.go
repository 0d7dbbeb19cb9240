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
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// IntLiteral is an integer operand together with the text it was parsed from.
// Comparisons use the parsed value; selections hand back Text.
type IntLiteral struct {
	Text      string
	Base      int // 10 or 16
	Neg       bool
	Magnitude *big.Int
}

// ParseInt parses an optionally signed decimal or 0x-prefixed hexadecimal
// integer. The base is taken from the prefix alone.
func ParseInt(text string) (IntLiteral, error) {
	s := text
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return IntLiteral{}, malformed(text, "no digits")
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i], base) {
			return IntLiteral{}, malformed(text, "invalid digit "+strconv.QuoteRune(rune(s[i])))
		}
	}

	mag, ok := new(big.Int).SetString(s, base)
	if !ok {
		return IntLiteral{}, malformed(text, "not an integer")
	}
	return IntLiteral{Text: text, Base: base, Neg: neg, Magnitude: mag}, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Value returns the signed value as a new big.Int.
func (l IntLiteral) Value() *big.Int {
	v := new(big.Int).Set(l.Magnitude)
	if l.Neg {
		v.Neg(v)
	}
	return v
}

// IsHex reports whether the literal was written with a 0x prefix.
func (l IntLiteral) IsHex() bool { return l.Base == 16 }

// formatInt renders v in decimal, or as lowercase 0x hex when hex is set.
func formatInt(v *big.Int, hex bool) string {
	if !hex {
		return v.String()
	}
	if v.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(v).Text(16)
	}
	return "0x" + v.Text(16)
}

// FloatClass distinguishes the kinds of floating-point literals.
type FloatClass int

const (
	// ClassFinite is a decimal or hexfloat number.
	ClassFinite FloatClass = iota
	// ClassInf is inf or -inf.
	ClassInf
	// ClassNaN is a plain nan or -nan.
	ClassNaN
	// ClassPayloadNaN is nan:0x... or -nan:0x...
	ClassPayloadNaN
)

// FloatLiteral is a floating-point operand together with its text.
type FloatLiteral struct {
	Text    string
	Class   FloatClass
	Neg     bool
	Value   float64 // rounded to the lane precision; zero for NaNs
	Payload uint64  // only for ClassPayloadNaN
}

// ParseFloat parses a float lane literal for a 32 or 64-bit lane.
func ParseFloat(text string, bits int) (FloatLiteral, error) {
	if bits != 32 && bits != 64 {
		return FloatLiteral{}, ErrUnsupportedLaneWidth
	}

	s := text
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	switch {
	case s == "nan":
		return FloatLiteral{Text: text, Class: ClassNaN, Neg: neg}, nil
	case strings.HasPrefix(s, "nan:"):
		payload, err := parsePayload(s[len("nan:"):], bits)
		if err != nil {
			return FloatLiteral{}, malformed(text, err.Error())
		}
		return FloatLiteral{Text: text, Class: ClassPayloadNaN, Neg: neg, Payload: payload}, nil
	case s == "inf":
		v := math.Inf(1)
		if neg {
			v = math.Inf(-1)
		}
		return FloatLiteral{Text: text, Class: ClassInf, Neg: neg, Value: v}, nil
	case s == "" || s[0] < '0' || s[0] > '9':
		return FloatLiteral{}, malformed(text, "not a number")
	}

	num := s
	if isHexPrefixed(num) && !strings.ContainsAny(num, "pP") {
		num += "p+0"
	}
	if neg {
		num = "-" + num
	}
	v, err := strconv.ParseFloat(num, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return FloatLiteral{}, malformed(text, "constant out of range")
		}
		return FloatLiteral{}, malformed(text, "not a number")
	}
	return FloatLiteral{Text: text, Class: ClassFinite, Neg: math.Signbit(v), Value: v}, nil
}

func isHexPrefixed(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func parsePayload(s string, bits int) (uint64, error) {
	if !isHexPrefixed(s) {
		return 0, errors.New("NaN payload must be hexadecimal")
	}
	p, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, errors.New("invalid NaN payload")
	}
	mantBits := 23
	if bits == 64 {
		mantBits = 52
	}
	if p == 0 || p >= 1<<mantBits {
		return 0, errors.New("NaN payload out of range")
	}
	return p, nil
}

// IsNaN reports whether the literal is any kind of NaN.
func (l FloatLiteral) IsNaN() bool {
	return l.Class == ClassNaN || l.Class == ClassPayloadNaN
}

// IsArithmeticNaN reports whether text is a payload NaN (nan:0x... or
// -nan:0x...). Such operands only have arithmetic-NaN results and must be
// asserted with a NaN-equivalence check instead of an exact value.
func IsArithmeticNaN(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, "+-"), "nan:")
}

// IsNaNLiteral reports whether text spells any NaN.
func IsNaNLiteral(text string) bool {
	s := strings.TrimLeft(text, "+-")
	return s == "nan" || strings.HasPrefix(s, "nan:")
}

// FormatHexFloat renders v in the shortest hexfloat form for a 32 or 64-bit
// lane: 0x1.921fb6p+2, 0x1p-149, -0x0p+0, inf, -inf, nan.
func FormatHexFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	// strconv pads the exponent to two digits ("p+02"); the text format
	// does not.
	s := strconv.FormatFloat(v, 'x', -1, bits)
	p := strings.IndexByte(s, 'p')
	if p < 0 || p+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[p+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:p+2] + exp
}
