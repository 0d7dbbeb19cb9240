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

package wast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/simdoracle/oracle"
)

func TestV128Const(t *testing.T) {
	assert.Equal(t, "(v128.const f32x4 nan nan nan nan)", V128Const(oracle.ShapeF32x4, "nan"))
	assert.Equal(t, "(v128.const i64x2 1 2)", V128Const(oracle.ShapeI64x2, "1", "2"))
	assert.Equal(t, "(v128.const i8x16 "+strings.Repeat("0x7f ", 15)+"0x7f)", V128Const(oracle.ShapeI8x16, "0x7f"))
}

func TestKindKeyword(t *testing.T) {
	assert.Equal(t, "assert_return", KindReturn.Keyword(oracle.ShapeI8x16))
	assert.Equal(t, "assert_return_canonical_nan_f32x4", KindCanonicalNaN.Keyword(oracle.ShapeF32x4))
	assert.Equal(t, "assert_return_arithmetic_nan_f64x2", KindArithmeticNaN.Keyword(oracle.ShapeF64x2))
}

func TestFileBytes(t *testing.T) {
	f := &File{
		Title: "f32x4 [abs, min]",
		Shape: oracle.ShapeF32x4,
		Funcs: []Func{{Op: "abs", Arity: 1}, {Op: "min", Arity: 2}},
		Assertions: []Assertion{
			{Kind: KindReturn, Op: "abs", Args: []string{"-0x1p+0"}, Result: "0x1p+0"},
			{Kind: KindCanonicalNaN, Op: "min", Args: []string{"nan", "0x0p+0"}},
			{Kind: KindArithmeticNaN, Op: "min", Args: []string{"nan:0x200000", "0x0p+0"}},
		},
		Unknown: []UnknownOp{{Shape: oracle.ShapeI8x16, Op: "abs", Arity: 1}},
	}

	want := `;; Code generated by simdgen. DO NOT EDIT.
;; f32x4 [abs, min]

(module
  (func (export "f32x4.abs") (param v128) (result v128) (f32x4.abs (local.get 0)))
  (func (export "f32x4.min") (param v128 v128) (result v128) (f32x4.min (local.get 0) (local.get 1)))
)

(assert_return (invoke "f32x4.abs" (v128.const f32x4 -0x1p+0 -0x1p+0 -0x1p+0 -0x1p+0)) (v128.const f32x4 0x1p+0 0x1p+0 0x1p+0 0x1p+0))
(assert_return_canonical_nan_f32x4 (invoke "f32x4.min" (v128.const f32x4 nan nan nan nan) (v128.const f32x4 0x0p+0 0x0p+0 0x0p+0 0x0p+0)))
(assert_return_arithmetic_nan_f32x4 (invoke "f32x4.min" (v128.const f32x4 nan:0x200000 nan:0x200000 nan:0x200000 nan:0x200000) (v128.const f32x4 0x0p+0 0x0p+0 0x0p+0 0x0p+0)))

;; Unknown operators

(assert_malformed (module quote "(memory 1) (func (result v128) (i8x16.abs (v128.const i32x4 0 0 0 0)))") "unknown operator")
`
	assert.Equal(t, want, string(f.Bytes()))
}
