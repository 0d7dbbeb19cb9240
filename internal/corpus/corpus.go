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

// Package corpus holds the operand literals fed through the oracle when
// fixtures are generated: integer boundary values per lane width, the float
// boundary values, and plain and payload NaNs.
package corpus

import (
	"fmt"
	"math/big"
	"os"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/simdoracle/oracle"
)

// Corpus maps a lane width to the literals used for that width.
type Corpus struct {
	Int   map[int][]string `yaml:"int"`
	Float map[int][]string `yaml:"float"`
	NaN   map[int][]string `yaml:"nan"`
}

var defaultFloat32 = []string{
	"0x0p+0", "-0x0p+0", "0x1p-149", "-0x1p-149", "0x1p-126", "-0x1p-126",
	"0x1p-1", "-0x1p-1", "0x1p+0", "-0x1p+0", "0x1.921fb6p+2", "-0x1.921fb6p+2",
	"0x1.fffffep+127", "-0x1.fffffep+127", "inf", "-inf",
}

var defaultFloat64 = []string{
	"0x0p+0", "-0x0p+0", "0x1p-1074", "-0x1p-1074", "0x1p-1022", "-0x1p-1022",
	"0x1p-1", "-0x1p-1", "0x1p+0", "-0x1p+0", "0x1.921fb54442d18p+2", "-0x1.921fb54442d18p+2",
	"0x1.fffffffffffffp+1023", "-0x1.fffffffffffffp+1023", "inf", "-inf",
}

// Default returns the built-in corpus.
func Default() *Corpus {
	c := &Corpus{
		Int: map[int][]string{},
		Float: map[int][]string{
			32: slices.Clone(defaultFloat32),
			64: slices.Clone(defaultFloat64),
		},
		NaN: map[int][]string{
			32: {"nan", "-nan", "nan:0x200000", "-nan:0x200000"},
			64: {"nan", "-nan", "nan:0x4000000000000", "-nan:0x4000000000000"},
		},
	}
	for _, w := range []int{8, 16, 32, 64} {
		c.Int[w] = IntBoundaries(oracle.MustLaneModel(w))
	}
	return c
}

// IntBoundaries returns the boundary values of an integer lane, in decimal
// and in hex spellings, without duplicates.
func IntBoundaries(m oracle.LaneModel) []string {
	one := big.NewInt(1)
	sMax, sMin := m.SignedMax(), m.SignedMin()
	dec := []*big.Int{
		big.NewInt(0), one, big.NewInt(-1),
		sMax, sMin,
		new(big.Int).Sub(sMax, one), new(big.Int).Add(sMin, one),
	}
	hex := []*big.Int{sMax, new(big.Int).Neg(sMin), m.Mask()}

	values := lo.Map(dec, func(v *big.Int, _ int) string { return v.String() })
	values = append(values, lo.Map(hex, func(v *big.Int, _ int) string { return "0x" + v.Text(16) })...)
	return lo.Uniq(values)
}

// Ints returns the integer literals for a lane width.
func (c *Corpus) Ints(width int) []string { return c.Int[width] }

// Floats returns the non-NaN float literals for a 32 or 64-bit lane.
func (c *Corpus) Floats(bits int) []string { return c.Float[bits] }

// NaNs returns the NaN literals for a 32 or 64-bit lane.
func (c *Corpus) NaNs(bits int) []string { return c.NaN[bits] }

// Load reads a YAML corpus file and lays it over the defaults. Widths absent
// from the file keep their default literals.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse is Load for in-memory YAML.
func Parse(data []byte) (*Corpus, error) {
	var override Corpus
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}

	c := Default()
	for w, lits := range override.Int {
		c.Int[w] = lo.Uniq(lits)
	}
	for w, lits := range override.Float {
		c.Float[w] = lo.Uniq(lits)
	}
	for w, lits := range override.NaN {
		c.NaN[w] = lo.Uniq(lits)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every literal parses for its lane width.
func (c *Corpus) Validate() error {
	for w, lits := range c.Int {
		if _, err := oracle.NewLaneModel(w); err != nil {
			return fmt.Errorf("int corpus: %w", err)
		}
		for _, lit := range lits {
			if _, err := oracle.ParseInt(lit); err != nil {
				return fmt.Errorf("int corpus for %d-bit lanes: %w", w, err)
			}
		}
	}
	for w, lits := range c.Float {
		for _, lit := range lits {
			l, err := oracle.ParseFloat(lit, w)
			if err != nil {
				return fmt.Errorf("float corpus for %d-bit lanes: %w", w, err)
			}
			if l.IsNaN() {
				return fmt.Errorf("float corpus for %d-bit lanes: %q belongs in the nan list: %w", w, lit, oracle.ErrMalformedLiteral)
			}
		}
	}
	for w, lits := range c.NaN {
		for _, lit := range lits {
			l, err := oracle.ParseFloat(lit, w)
			if err != nil {
				return fmt.Errorf("nan corpus for %d-bit lanes: %w", w, err)
			}
			if !l.IsNaN() {
				return fmt.Errorf("nan corpus for %d-bit lanes: %q is not a NaN: %w", w, lit, oracle.ErrMalformedLiteral)
			}
		}
	}
	return nil
}
