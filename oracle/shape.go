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
	"fmt"
	"strings"
)

// Shape is one of the lane layouts of a 128-bit vector, as written in the
// text format (i8x16, f32x4, ...).
type Shape int

const (
	ShapeI8x16 Shape = iota
	ShapeI16x8
	ShapeI32x4
	ShapeI64x2
	ShapeF32x4
	ShapeF64x2
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{ShapeI8x16, ShapeI16x8, ShapeI32x4, ShapeI64x2, ShapeF32x4, ShapeF64x2}

// String returns the text-format name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI8x16:
		return "i8x16"
	case ShapeI16x8:
		return "i16x8"
	case ShapeI32x4:
		return "i32x4"
	case ShapeI64x2:
		return "i64x2"
	case ShapeF32x4:
		return "f32x4"
	case ShapeF64x2:
		return "f64x2"
	default:
		return "unknown"
	}
}

// LaneBits returns the width of one lane in bits.
func (s Shape) LaneBits() int {
	switch s {
	case ShapeI8x16:
		return 8
	case ShapeI16x8:
		return 16
	case ShapeI32x4, ShapeF32x4:
		return 32
	case ShapeI64x2, ShapeF64x2:
		return 64
	default:
		return 0
	}
}

// Lanes returns the number of lanes in a 128-bit vector of this shape.
func (s Shape) Lanes() int {
	if b := s.LaneBits(); b > 0 {
		return VectorBits / b
	}
	return 0
}

// IsFloat reports whether the lanes hold floating-point values.
func (s Shape) IsFloat() bool {
	return s == ShapeF32x4 || s == ShapeF64x2
}

// ParseShape parses a shape name such as "i16x8".
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q", ErrUnsupportedLaneWidth, name)
}

// IntShape returns the integer shape with the given lane width.
func IntShape(width int) (Shape, error) {
	switch width {
	case 8:
		return ShapeI8x16, nil
	case 16:
		return ShapeI16x8, nil
	case 32:
		return ShapeI32x4, nil
	case 64:
		return ShapeI64x2, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedLaneWidth, width)
}

// splitShape splits "i8x16.add" into its shape and operation name.
func splitShape(opName string) (Shape, string, bool, error) {
	prefix, name, found := strings.Cut(opName, ".")
	if !found {
		return 0, opName, false, nil
	}
	s, err := ParseShape(prefix)
	if err != nil {
		return 0, "", false, err
	}
	return s, name, true, nil
}
