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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/simdoracle/internal/corpus"
	"github.com/ajroetker/simdoracle/internal/fixture"
	"github.com/ajroetker/simdoracle/internal/hostcpu"
	"github.com/ajroetker/simdoracle/internal/workerpool"
	"github.com/ajroetker/simdoracle/oracle"
)

type genOptions struct {
	out        string
	shapes     []string
	ops        []string
	corpusPath string
	workers    int
}

func newGenCmd() *cobra.Command {
	var opts genOptions
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate conformance scripts",
		Long: `Writes one simd_<shape>_oracle.wast file per shape into --out.

--op restricts each shape to the listed operations it defines; shapes that
define none of them are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "output directory (required)")
	f.StringSliceVarP(&opts.shapes, "shape", "s", nil, "shapes to generate (default all)")
	f.StringSliceVar(&opts.ops, "op", nil, "operations to generate (default all)")
	f.StringVar(&opts.corpusPath, "corpus", "", "YAML operand corpus laid over the built-in one")
	f.IntVarP(&opts.workers, "workers", "j", 0, "evaluation workers (default $"+workerpool.WorkersEnv+" or GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runGen(cmd *cobra.Command, opts genOptions) error {
	shapes, err := parseShapes(opts.shapes)
	if err != nil {
		return err
	}
	plan, err := shapeOps(shapes, opts.ops)
	if err != nil {
		return err
	}

	c := corpus.Default()
	if opts.corpusPath != "" {
		if c, err = corpus.Load(opts.corpusPath); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	workers := opts.workers
	if workers <= 0 {
		workers = workerpool.DefaultWorkers()
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	host := hostcpu.Detect()
	logger.Info("generating",
		zap.Strings("shapes", lo.Map(shapes, func(s oracle.Shape, _ int) string { return s.String() })),
		zap.Int("workers", pool.NumWorkers()),
		zap.Stringer("host_simd", host.Level),
		zap.Strings("host_features", host.Features))

	gen := fixture.New(pool, c, logger)
	g, ctx := errgroup.WithContext(cmd.Context())
	for _, s := range shapes {
		ops, ok := plan[s]
		if !ok {
			logger.Debug("skipping shape", zap.Stringer("shape", s))
			continue
		}
		g.Go(func() error {
			f, err := gen.File(ctx, s, ops)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.out, fileName(s))
			if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", s, err)
			}
			logger.Info("wrote fixture", zap.String("path", path), zap.Int("assertions", len(f.Assertions)))
			return nil
		})
	}
	return g.Wait()
}

func fileName(s oracle.Shape) string {
	return "simd_" + s.String() + "_oracle.wast"
}

func parseShapes(names []string) ([]oracle.Shape, error) {
	if len(names) == 0 {
		return oracle.Shapes, nil
	}
	shapes := make([]oracle.Shape, 0, len(names))
	for _, name := range lo.Uniq(names) {
		s, err := oracle.ParseShape(name)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// shapeOps maps each shape to the requested operations it defines. A nil
// slice means all operations. Shapes defining none of them are left out,
// and an operation no shape defines is an error.
func shapeOps(shapes []oracle.Shape, names []string) (map[oracle.Shape][]string, error) {
	out := make(map[oracle.Shape][]string, len(shapes))
	if len(names) == 0 {
		for _, s := range shapes {
			out[s] = nil
		}
		return out, nil
	}

	used := map[string]bool{}
	for _, s := range shapes {
		defined := lo.Filter(names, func(name string, _ int) bool {
			_, err := oracle.LookupOp(name, s.IsFloat())
			return err == nil
		})
		if len(defined) == 0 {
			continue
		}
		out[s] = defined
		for _, name := range defined {
			used[name] = true
		}
	}
	for _, name := range names {
		if !used[name] {
			return nil, fmt.Errorf("no selected shape defines %q: %w", name, oracle.ErrUnknownOperation)
		}
	}
	return out, nil
}
