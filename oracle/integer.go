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

import "math/big"

// This file computes expected results of wrapping and saturating integer lane
// operations. Operands arrive as literal text and results leave as decimal
// text; only abs keeps the radix of its operand.

// Normalize reduces v to the lane width. The result is in [0, Mask] when
// signed is false and in [SignedMin, SignedMax] when it is true; either way
// it is congruent to v modulo 2^width.
func Normalize(v *big.Int, m LaneModel, signed bool) *big.Int {
	// big.Int.And uses two's complement for negative operands.
	r := new(big.Int).And(v, m.mask)
	if signed {
		if r.Cmp(m.signedMax) > 0 {
			r.Sub(r, m.modulus)
		} else if r.Cmp(m.signedMin) < 0 {
			r.Add(r, m.modulus)
		}
	}
	return r
}

// Unary evaluates neg or abs on one lane.
//
// For abs, a non-negative lane returns p untouched. A negative lane returns
// its magnitude, in hex if p was written in hex.
func Unary(op UnaryOp, p string, m LaneModel) (string, error) {
	if !op.valid() {
		return "", unknownOp(op.String())
	}
	lit, err := ParseInt(p)
	if err != nil {
		return "", err
	}

	switch op {
	case OpNeg:
		v := lit.Value()
		return Normalize(v.Neg(v), m, true).String(), nil
	case OpAbs:
		r := Normalize(lit.Value(), m, true)
		if r.Sign() >= 0 {
			return p, nil
		}
		return formatInt(r.Neg(r), lit.IsHex()), nil
	}
	return "", unknownOp(op.String())
}

// Binary evaluates a wrapping add, sub or mul and renders the signed lane
// value in decimal.
func Binary(op ArithOp, p1, p2 string, m LaneModel) (string, error) {
	if !op.valid() {
		return "", unknownOp(op.String())
	}
	v1, v2, err := parseIntPair(p1, p2)
	if err != nil {
		return "", err
	}

	raw := new(big.Int)
	switch op {
	case OpAdd:
		raw.Add(v1, v2)
	case OpSub:
		raw.Sub(v1, v2)
	case OpMul:
		raw.Mul(v1, v2)
	}
	return Normalize(raw, m, true).String(), nil
}

// Saturating evaluates a saturating add or sub. Out-of-range results clamp
// to the nearest bound of the signed or unsigned lane range; they never wrap.
func Saturating(op SatOp, p1, p2 string, m LaneModel) (string, error) {
	if !op.valid() {
		return "", unknownOp(op.String())
	}
	v1, v2, err := parseIntPair(p1, p2)
	if err != nil {
		return "", err
	}

	var lo, hi *big.Int
	switch op {
	case OpAddSatS, OpSubSatS:
		// Reinterpret unsigned spellings such as 0xff as negative lanes.
		for _, v := range []*big.Int{v1, v2} {
			if v.Cmp(m.signedMax) > 0 {
				v.Sub(v, m.modulus)
			}
		}
		lo, hi = m.signedMin, m.signedMax
	case OpAddSatU, OpSubSatU:
		for _, v := range []*big.Int{v1, v2} {
			if v.Sign() < 0 {
				v.Add(v, m.modulus)
			}
		}
		lo, hi = new(big.Int), m.mask
	}

	raw := new(big.Int)
	if op == OpAddSatS || op == OpAddSatU {
		raw.Add(v1, v2)
	} else {
		raw.Sub(v1, v2)
	}
	return clamp(raw, lo, hi).String(), nil
}

func clamp(v, lo, hi *big.Int) *big.Int {
	switch {
	case v.Cmp(lo) < 0:
		return new(big.Int).Set(lo)
	case v.Cmp(hi) > 0:
		return new(big.Int).Set(hi)
	}
	return v
}

func parseIntPair(p1, p2 string) (*big.Int, *big.Int, error) {
	l1, err := ParseInt(p1)
	if err != nil {
		return nil, nil, err
	}
	l2, err := ParseInt(p2)
	if err != nil {
		return nil, nil, err
	}
	return l1.Value(), l2.Value(), nil
}
