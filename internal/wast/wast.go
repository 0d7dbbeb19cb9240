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

// Package wast renders oracle results as text-format test scripts: a module
// exporting one function per operation, followed by assertions.
package wast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ajroetker/simdoracle/oracle"
)

// Kind selects the assertion form.
type Kind int

const (
	// KindReturn asserts an exact result.
	KindReturn Kind = iota
	// KindCanonicalNaN asserts that every lane is a canonical NaN.
	KindCanonicalNaN
	// KindArithmeticNaN asserts that every lane is an arithmetic NaN.
	KindArithmeticNaN
)

// Keyword returns the assertion keyword for shape s.
func (k Kind) Keyword(s oracle.Shape) string {
	switch k {
	case KindCanonicalNaN:
		return "assert_return_canonical_nan_" + s.String()
	case KindArithmeticNaN:
		return "assert_return_arithmetic_nan_" + s.String()
	default:
		return "assert_return"
	}
}

// Func is an exported test function wrapping one instruction.
type Func struct {
	Op    string // unprefixed operation name
	Arity int
}

// Assertion is one invoke of a Func with splatted operands.
type Assertion struct {
	Kind   Kind
	Op     string
	Args   []string
	Result string // only for KindReturn
}

// File is one generated script.
type File struct {
	Title      string
	Shape      oracle.Shape
	Funcs      []Func
	Assertions []Assertion
	// Unknown lists operations that must be rejected as unknown operators on
	// each of the given shapes.
	Unknown []UnknownOp
}

// UnknownOp is an operation spelled on a shape that does not define it.
type UnknownOp struct {
	Shape oracle.Shape
	Op    string
	Arity int
}

// FullName returns the instruction name, e.g. "i8x16.add".
func FullName(s oracle.Shape, op string) string {
	return s.String() + "." + op
}

// V128Const renders a v128.const with one literal per lane. A single literal
// is splatted across every lane.
func V128Const(s oracle.Shape, lanes ...string) string {
	if len(lanes) == 1 {
		lanes = splat(lanes[0], s.Lanes())
	}
	return fmt.Sprintf("(v128.const %s %s)", s, strings.Join(lanes, " "))
}

func splat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Bytes renders the file.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, ";; Code generated by simdgen. DO NOT EDIT.\n")
	if f.Title != "" {
		fmt.Fprintf(&buf, ";; %s\n", f.Title)
	}
	fmt.Fprintf(&buf, "\n(module\n")
	for _, fn := range f.Funcs {
		name := FullName(f.Shape, fn.Op)
		params := strings.TrimSpace(strings.Repeat(" v128", fn.Arity))
		locals := make([]string, fn.Arity)
		for i := range locals {
			locals[i] = fmt.Sprintf("(local.get %d)", i)
		}
		fmt.Fprintf(&buf, "  (func (export %q) (param %s) (result v128) (%s %s))\n",
			name, params, name, strings.Join(locals, " "))
	}
	fmt.Fprintf(&buf, ")\n\n")

	for _, a := range f.Assertions {
		buf.WriteString(f.assertion(a))
		buf.WriteByte('\n')
	}

	if len(f.Unknown) > 0 {
		fmt.Fprintf(&buf, "\n;; Unknown operators\n\n")
		for _, u := range f.Unknown {
			buf.WriteString(MalformedOp(u))
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

func (f *File) assertion(a Assertion) string {
	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		args[i] = V128Const(f.Shape, arg)
	}
	invoke := fmt.Sprintf("(invoke %q %s)", FullName(f.Shape, a.Op), strings.Join(args, " "))
	if a.Kind == KindReturn {
		return fmt.Sprintf("(%s %s %s)", a.Kind.Keyword(f.Shape), invoke, V128Const(f.Shape, a.Result))
	}
	return fmt.Sprintf("(%s %s)", a.Kind.Keyword(f.Shape), invoke)
}

// MalformedOp renders an assert_malformed case for an unknown operator.
func MalformedOp(u UnknownOp) string {
	args := make([]string, u.Arity)
	for i := range args {
		args[i] = V128Const(oracle.ShapeI32x4, "0")
	}
	return fmt.Sprintf("(assert_malformed (module quote \"(memory 1) (func (result v128) (%s %s))\") \"unknown operator\")",
		FullName(u.Shape, u.Op), strings.Join(args, " "))
}
