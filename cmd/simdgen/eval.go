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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/simdoracle/oracle"
)

func newEvalCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "eval <op> <operand>...",
		Short: "Evaluate one operation on literal operands",
		Long: `Evaluates one lane operation. The operation may carry a shape prefix
(i16x8.sub_sat_u, f64x2.max); without one, --width selects the lane width.
Flags go before the operation so that negative operands read as operands:

  simdgen eval --width 16 add -1 0x8000`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("evaluating",
				zap.String("op", args[0]),
				zap.Strings("operands", args[1:]),
				zap.Int("width", width))
			r, err := oracle.Evaluate(args[0], args[1:], width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVarP(&width, "width", "w", 0, "lane width in bits for unprefixed operations")
	return cmd
}
