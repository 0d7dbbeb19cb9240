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

import "fmt"

// Evaluate computes the expected lane result of opName applied to operands.
//
// opName is either a bare operation ("add", "min_s", "min") or is prefixed
// with a shape ("i16x8.add", "f32x4.abs"). Bare names resolve to integer
// operations first, so a bare "abs" is the integer abs; float lanes need the
// shape prefix for abs. laneWidth may be 0 when a shape prefix supplies it,
// and defaults to 32 for bare float operations.
func Evaluate(opName string, operands []string, laneWidth int) (string, error) {
	shape, name, prefixed, err := splitShape(opName)
	if err != nil {
		return "", err
	}

	var op Operation
	if prefixed {
		if laneWidth != 0 && laneWidth != shape.LaneBits() {
			return "", fmt.Errorf("%w: %s on %d-bit lanes", ErrUnsupportedLaneWidth, opName, laneWidth)
		}
		laneWidth = shape.LaneBits()
		op, err = LookupOp(name, shape.IsFloat())
	} else {
		op, err = LookupOp(name, false)
		if err != nil {
			op, err = LookupOp(name, true)
		}
	}
	if err != nil {
		return "", err
	}
	return op.Eval(operands, laneWidth)
}

// Eval applies a resolved operation to operands on lanes of the given width.
func (o Operation) Eval(operands []string, laneWidth int) (string, error) {
	if len(operands) != o.Arity {
		return "", fmt.Errorf("%w: %s takes %d operands, got %d", ErrUnknownOperation, o.Name, o.Arity, len(operands))
	}

	if o.Family == FamilyFloat {
		if laneWidth == 0 {
			laneWidth = 32
		}
		if laneWidth != 32 && laneWidth != 64 {
			return "", fmt.Errorf("%w: %d-bit float lanes", ErrUnsupportedLaneWidth, laneWidth)
		}
		if o.Float() == OpFAbs {
			return FloatAbs(operands[0], laneWidth)
		}
		return FloatMinMax(o.Float(), operands[0], operands[1], laneWidth)
	}

	m, err := NewLaneModel(laneWidth)
	if err != nil {
		return "", err
	}
	switch o.Family {
	case FamilyUnary:
		return Unary(o.Unary(), operands[0], m)
	case FamilyArith:
		return Binary(o.Arith(), operands[0], operands[1], m)
	case FamilySaturating:
		return Saturating(o.Saturating(), operands[0], operands[1], m)
	case FamilyMinMax:
		switch o.MinMax() {
		case OpMinS, OpMaxS:
			return MinMaxSigned(o.MinMax(), operands[0], operands[1], m)
		case OpMinU, OpMaxU:
			return MinMaxUnsigned(o.MinMax(), operands[0], operands[1], m)
		case OpAvgrU:
			return AvgrU(operands[0], operands[1], m)
		}
	}
	return "", unknownOp(o.Name)
}
