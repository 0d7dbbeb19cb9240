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
	"fmt"
)

var (
	// ErrUnsupportedLaneWidth is returned for lane widths other than 8, 16, 32
	// or 64 bits (32 or 64 for floating-point lanes).
	ErrUnsupportedLaneWidth = errors.New("unsupported lane width")

	// ErrUnknownOperation is returned when an operation name or enum value is
	// not handled by the oracle it was passed to.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMalformedLiteral is returned when an operand cannot be parsed.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrArithmeticNaN is returned when a payload NaN (nan:0x...) reaches an
	// exact comparison. It wraps ErrMalformedLiteral.
	ErrArithmeticNaN = fmt.Errorf("%w: payload NaN has no exact result", ErrMalformedLiteral)
)

// LiteralError records the literal text that failed to parse.
type LiteralError struct {
	Text   string
	Reason string
	Err    error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("literal %q: %s", e.Text, e.Reason)
}

func (e *LiteralError) Unwrap() error {
	if e.Err == nil {
		return ErrMalformedLiteral
	}
	return e.Err
}

func malformed(text, reason string) error {
	return &LiteralError{Text: text, Reason: reason}
}

func unknownOp(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
