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

import "math"

// FloatAbs returns the magnitude of p as a hexfloat literal. NaN operands,
// with or without payload, are returned unchanged.
func FloatAbs(p string, bits int) (string, error) {
	l, err := ParseFloat(p, bits)
	if err != nil {
		return "", err
	}
	if l.IsNaN() {
		return p, nil
	}
	return FormatHexFloat(math.Abs(l.Value), bits), nil
}

// FloatMinMax evaluates min or max on two float lanes.
//
// NaNs win over numbers: a nan/-nan pair returns p1, otherwise any nan gives
// "nan" and any -nan gives "-nan". Between numbers -0 is below +0. When no
// NaN is involved the literal text of the selected operand is returned, and
// equal operands select p1.
//
// Payload NaNs fail with ErrArithmeticNaN; their result is only defined up
// to NaN equivalence.
func FloatMinMax(op FloatOp, p1, p2 string, bits int) (string, error) {
	if op != OpFMin && op != OpFMax {
		return "", unknownOp(op.String())
	}
	l1, err := ParseFloat(p1, bits)
	if err != nil {
		return "", err
	}
	l2, err := ParseFloat(p2, bits)
	if err != nil {
		return "", err
	}
	for _, l := range []FloatLiteral{l1, l2} {
		if l.Class == ClassPayloadNaN {
			return "", &LiteralError{Text: l.Text, Reason: "needs an arithmetic NaN check", Err: ErrArithmeticNaN}
		}
	}

	nan1, nan2 := l1.Class == ClassNaN, l2.Class == ClassNaN
	switch {
	case nan1 && nan2 && l1.Neg != l2.Neg:
		return p1, nil
	case nan1 && !l1.Neg, nan2 && !l2.Neg:
		return "nan", nil
	case nan1 || nan2:
		return "-nan", nil
	}

	v1, v2 := l1.Value, l2.Value
	if v1 == 0 && v2 == 0 && l1.Neg != l2.Neg {
		if (op == OpFMin) == l1.Neg {
			return p1, nil
		}
		return p2, nil
	}
	if op == OpFMin {
		if v2 < v1 {
			return p2, nil
		}
		return p1, nil
	}
	if v2 > v1 {
		return p2, nil
	}
	return p1, nil
}
