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
	"math/big"
)

// VectorBits is the register width every lane shape divides.
const VectorBits = 128

// LaneModel holds the range facts of one integer lane width.
//
// The big.Int fields are shared between all callers and must be treated as
// read-only. Use the accessor methods to get private copies.
type LaneModel struct {
	width     int
	mask      *big.Int
	modulus   *big.Int
	signedMax *big.Int
	signedMin *big.Int
}

// laneModels are built once; LaneModel is immutable so sharing is safe.
var laneModels = map[int]LaneModel{
	8:  buildLaneModel(8),
	16: buildLaneModel(16),
	32: buildLaneModel(32),
	64: buildLaneModel(64),
}

func buildLaneModel(width int) LaneModel {
	one := big.NewInt(1)
	modulus := new(big.Int).Lsh(one, uint(width))
	half := new(big.Int).Lsh(one, uint(width-1))
	return LaneModel{
		width:     width,
		mask:      new(big.Int).Sub(modulus, one),
		modulus:   modulus,
		signedMax: new(big.Int).Sub(half, one),
		signedMin: new(big.Int).Neg(half),
	}
}

// NewLaneModel returns the model for an 8, 16, 32 or 64-bit lane.
func NewLaneModel(width int) (LaneModel, error) {
	m, ok := laneModels[width]
	if !ok {
		return LaneModel{}, fmt.Errorf("%w: %d", ErrUnsupportedLaneWidth, width)
	}
	return m, nil
}

// MustLaneModel is like NewLaneModel but panics on an unsupported width.
// It is meant for package-level tables and tests.
func MustLaneModel(width int) LaneModel {
	m, err := NewLaneModel(width)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the lane width in bits.
func (m LaneModel) Width() int { return m.width }

// Lanes returns how many lanes of this width fit in a 128-bit vector.
func (m LaneModel) Lanes() int { return VectorBits / m.width }

// Mask returns 2^width - 1.
func (m LaneModel) Mask() *big.Int { return new(big.Int).Set(m.mask) }

// Modulus returns 2^width.
func (m LaneModel) Modulus() *big.Int { return new(big.Int).Set(m.modulus) }

// SignedMax returns 2^(width-1) - 1.
func (m LaneModel) SignedMax() *big.Int { return new(big.Int).Set(m.signedMax) }

// SignedMin returns -2^(width-1).
func (m LaneModel) SignedMin() *big.Int { return new(big.Int).Set(m.signedMin) }

// String returns e.g. "i8x16".
func (m LaneModel) String() string {
	if m.width == 0 {
		return "invalid"
	}
	return fmt.Sprintf("i%dx%d", m.width, m.Lanes())
}
