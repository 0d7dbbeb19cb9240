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

// Package oracle computes the expected results of lane-wise 128-bit SIMD
// operations from literal operand values.
//
// Every function is a pure value-level model: it parses operand literals,
// reduces them to the lane width described by a LaneModel, and renders the
// result back to literal text that can be embedded verbatim in conformance
// fixtures. Operations that select one of their operands (min, max, and abs
// of a non-negative lane) return that operand's original text.
//
// Basic usage:
//
//	m := oracle.MustLaneModel(8)
//	r, err := oracle.Saturating(oracle.OpAddSatS, "127", "1", m) // "127"
//
//	// or by name, the way a fixture generator calls it
//	r, err = oracle.Evaluate("i8x16.min_s", []string{"0x7f", "5"}, 0) // "5"
//	r, err = oracle.Evaluate("f32x4.min", []string{"0x0p+0", "-0x0p+0"}, 0) // "-0x0p+0"
//
// All functions are safe for concurrent use.
package oracle
