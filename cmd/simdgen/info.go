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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/simdoracle/internal/hostcpu"
	"github.com/ajroetker/simdoracle/oracle"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, float := range []bool{false, true} {
				ops := lo.Map(oracle.OpNames(float), func(name string, _ int) oracle.Operation {
					op, _ := oracle.LookupOp(name, float)
					return op
				})
				for _, group := range lo.PartitionBy(ops, func(op oracle.Operation) oracle.Family { return op.Family }) {
					names := lo.Map(group, func(op oracle.Operation, _ int) string { return op.Name })
					if _, err := fmt.Fprintf(w, "%-10s %s\n", group[0].Family, strings.Join(names, " ")); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the host SIMD level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := hostcpu.Detect()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "level: %s\nfeatures: %s\n", info.Level, strings.Join(info.Features, " "))
			return err
		},
	}
}
