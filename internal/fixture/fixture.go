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

// Package fixture turns operand corpora into evaluated assertion lists. It
// decides which assertion form each case needs, evaluates the exact ones
// through the oracle on a worker pool, and assembles wast files.
package fixture

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/simdoracle/internal/corpus"
	"github.com/ajroetker/simdoracle/internal/wast"
	"github.com/ajroetker/simdoracle/internal/workerpool"
	"github.com/ajroetker/simdoracle/oracle"
)

// Case is one operation applied to one tuple of operands.
type Case struct {
	Op     oracle.Operation
	Args   []string
	Kind   wast.Kind
	Result string

	// eval is false for cases whose assertion form is fixed up front.
	eval bool
}

// Generator builds wast files from a corpus.
type Generator struct {
	Pool   *workerpool.Pool
	Corpus *corpus.Corpus
	Logger *zap.Logger
}

// New returns a Generator. A nil logger is replaced by a no-op logger.
func New(pool *workerpool.Pool, c *corpus.Corpus, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Pool: pool, Corpus: c, Logger: logger}
}

// ResolveOps looks up operation names for a shape. An empty list selects
// every operation the shape supports.
func ResolveOps(shape oracle.Shape, names []string) ([]oracle.Operation, error) {
	if len(names) == 0 {
		names = oracle.OpNames(shape.IsFloat())
	}
	ops := make([]oracle.Operation, 0, len(names))
	for _, name := range names {
		op, err := oracle.LookupOp(name, shape.IsFloat())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", shape, err)
		}
		ops = append(ops, op)
	}
	return lo.UniqBy(ops, func(op oracle.Operation) string { return op.Name }), nil
}

// Plan lists the cases for ops on shape in output order.
//
// Integer operations take every operand (unary) or every ordered operand
// pair (binary) from the corpus. Float operations follow the NaN routing of
// the conformance suite: pairs of ordinary numbers are evaluated, pairs
// involving a plain NaN are evaluated and land in the canonical-NaN form,
// and any payload NaN goes to the arithmetic-NaN form in both argument
// orders without evaluation.
func Plan(shape oracle.Shape, ops []oracle.Operation, c *corpus.Corpus) []Case {
	var cases []Case
	for _, op := range ops {
		if !shape.IsFloat() {
			cases = append(cases, intCases(op, c.Ints(shape.LaneBits()))...)
			continue
		}
		cases = append(cases, floatCases(op, c.Floats(shape.LaneBits()), c.NaNs(shape.LaneBits()))...)
	}
	return cases
}

func intCases(op oracle.Operation, lits []string) []Case {
	var cases []Case
	if op.Arity == 1 {
		for _, p := range lits {
			cases = append(cases, Case{Op: op, Args: []string{p}, eval: true})
		}
		return cases
	}
	for _, p1 := range lits {
		for _, p2 := range lits {
			cases = append(cases, Case{Op: op, Args: []string{p1, p2}, eval: true})
		}
	}
	return cases
}

func floatCases(op oracle.Operation, nums, nans []string) []Case {
	var cases []Case
	if op.Arity == 1 {
		for _, p := range nums {
			cases = append(cases, Case{Op: op, Args: []string{p}, eval: true})
		}
		return cases
	}

	pair := func(p1, p2 string) Case {
		if oracle.IsArithmeticNaN(p1) || oracle.IsArithmeticNaN(p2) {
			return Case{Op: op, Args: []string{p1, p2}, Kind: wast.KindArithmeticNaN}
		}
		return Case{Op: op, Args: []string{p1, p2}, eval: true}
	}

	for _, p1 := range nums {
		for _, p2 := range nums {
			cases = append(cases, pair(p1, p2))
		}
	}
	for _, p1 := range nans {
		for _, p2 := range nums {
			cases = append(cases, pair(p1, p2), pair(p2, p1))
		}
		for _, p2 := range nans {
			cases = append(cases, pair(p1, p2))
		}
	}
	return cases
}

// Evaluate fills in the results of cases in place on the pool. Results are
// written to each case's own slot, so output order is the plan order. The
// first oracle error stops the batch and is returned.
func Evaluate(ctx context.Context, pool *workerpool.Pool, shape oracle.Shape, cases []Case) error {
	return pool.ParallelForErr(ctx, len(cases), func(i int) error {
		c := &cases[i]
		if !c.eval {
			return nil
		}
		r, err := c.Op.Eval(c.Args, shape.LaneBits())
		if err != nil {
			return fmt.Errorf("%s %s: %w", wast.FullName(shape, c.Op.Name), strings.Join(c.Args, " "), err)
		}
		c.Result = r
		c.Kind = wast.KindReturn
		if shape.IsFloat() && oracle.IsNaNLiteral(r) {
			c.Kind = wast.KindCanonicalNaN
			c.Result = ""
		}
		return nil
	})
}

// File plans, evaluates and assembles the script for one shape.
func (g *Generator) File(ctx context.Context, shape oracle.Shape, opNames []string) (*wast.File, error) {
	ops, err := ResolveOps(shape, opNames)
	if err != nil {
		return nil, err
	}

	cases := Plan(shape, ops, g.Corpus)
	g.Logger.Debug("planned cases",
		zap.Stringer("shape", shape),
		zap.Int("ops", len(ops)),
		zap.Int("cases", len(cases)))

	if err := Evaluate(ctx, g.Pool, shape, cases); err != nil {
		return nil, err
	}

	names := lo.Map(ops, func(op oracle.Operation, _ int) string { return op.Name })
	f := &wast.File{
		Title: fmt.Sprintf("%s [%s]", shape, strings.Join(names, ", ")),
		Shape: shape,
		Funcs: lo.Map(ops, func(op oracle.Operation, _ int) wast.Func {
			return wast.Func{Op: op.Name, Arity: op.Arity}
		}),
		Assertions: lo.Map(cases, func(c Case, _ int) wast.Assertion {
			return wast.Assertion{Kind: c.Kind, Op: c.Op.Name, Args: c.Args, Result: c.Result}
		}),
	}
	if shape.IsFloat() {
		f.Unknown = unknownOps(ops)
	}

	counts := lo.CountValuesBy(cases, func(c Case) wast.Kind { return c.Kind })
	g.Logger.Info("generated fixture",
		zap.Stringer("shape", shape),
		zap.Int("assert_return", counts[wast.KindReturn]),
		zap.Int("canonical_nan", counts[wast.KindCanonicalNaN]),
		zap.Int("arithmetic_nan", counts[wast.KindArithmeticNaN]))
	return f, nil
}

// unknownOps spells float-only operations on the narrower integer shapes,
// where they must be rejected. Names that integer shapes also define are
// skipped.
func unknownOps(ops []oracle.Operation) []wast.UnknownOp {
	var out []wast.UnknownOp
	for _, s := range []oracle.Shape{oracle.ShapeI8x16, oracle.ShapeI16x8, oracle.ShapeI32x4} {
		for _, op := range ops {
			if _, err := oracle.LookupOp(op.Name, false); err == nil {
				continue
			}
			out = append(out, wast.UnknownOp{Shape: s, Op: op.Name, Arity: op.Arity})
		}
	}
	return out
}
