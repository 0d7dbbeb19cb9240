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

// Command simdgen evaluates 128-bit SIMD lane operations and generates
// conformance scripts from the results.
//
// Usage:
//
//	simdgen eval i8x16.add_sat_s 127 1        # prints 127
//	simdgen eval f32x4.min nan 0x1p+0         # prints nan
//	simdgen gen --out testdata --shape i8x16,f32x4
//	simdgen ops
//	simdgen cpuinfo
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/simdoracle/cmd/simdgen gen --out .
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simdgen",
		Short: "Lane-wise SIMD oracle and conformance script generator",
		Long: `simdgen computes the exact result of 128-bit SIMD lane operations on
literal operands and renders them as assertion scripts.

Integer shapes: i8x16, i16x8, i32x4, i64x2. Float shapes: f32x4, f64x2.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newEvalCmd(), newGenCmd(), newOpsCmd(), newCPUInfoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "simdgen:", err)
		os.Exit(1)
	}
}
