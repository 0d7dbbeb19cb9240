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

// MinMaxSigned returns whichever operand literal holds the smaller (min_s)
// or larger (max_s) signed lane value. When both lanes are equal the first
// operand is returned.
func MinMaxSigned(op MinMaxOp, p1, p2 string, m LaneModel) (string, error) {
	if op != OpMinS && op != OpMaxS {
		return "", unknownOp(op.String())
	}
	return selectInt(op == OpMinS, p1, p2, m, true)
}

// MinMaxUnsigned is MinMaxSigned for min_u and max_u.
func MinMaxUnsigned(op MinMaxOp, p1, p2 string, m LaneModel) (string, error) {
	if op != OpMinU && op != OpMaxU {
		return "", unknownOp(op.String())
	}
	return selectInt(op == OpMinU, p1, p2, m, false)
}

func selectInt(wantMin bool, p1, p2 string, m LaneModel, signed bool) (string, error) {
	v1, v2, err := parseIntPair(p1, p2)
	if err != nil {
		return "", err
	}
	c := Normalize(v1, m, signed).Cmp(Normalize(v2, m, signed))
	if wantMin {
		if c <= 0 {
			return p1, nil
		}
		return p2, nil
	}
	if c >= 0 {
		return p1, nil
	}
	return p2, nil
}

// AvgrU computes the unsigned rounding average (a + b + 1) / 2. The result
// is written in hex when either operand was.
func AvgrU(p1, p2 string, m LaneModel) (string, error) {
	l1, err := ParseInt(p1)
	if err != nil {
		return "", err
	}
	l2, err := ParseInt(p2)
	if err != nil {
		return "", err
	}
	sum := new(big.Int).Add(Normalize(l1.Value(), m, false), Normalize(l2.Value(), m, false))
	sum.Add(sum, big.NewInt(1))
	sum.Rsh(sum, 1)
	return formatInt(sum, l1.IsHex() || l2.IsHex()), nil
}
