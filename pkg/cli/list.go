// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the constant functions",
	Long: `
List the constant functions along with their return type, category and
whether the optimizer folds them in local and distributed plans.
`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmdContext(cmd)
	evalCtx, err := makeEvalContext(ctx)
	if err != nil {
		return err
	}
	local, distributed := *evalCtx, *evalCtx
	local.Distribution = eval.LocalPlan
	distributed.Distribution = eval.FullyDistributedPlan

	w := cmd.OutOrStdout()
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"name", "returns", "category", "aliases", "folded (local)", "folded (distributed)"})
	for _, name := range builtins.AllBuiltinNames {
		props, ok := builtins.GetBuiltinProperties(name)
		if !ok {
			return errors.AssertionFailedf("no properties for builtin %s", name)
		}
		var folded [2]string
		for i, c := range []*eval.Context{&local, &distributed} {
			fn, err := builtins.Resolve(ctx, c, name, 0)
			if err != nil {
				return err
			}
			folded[i] = strconv.FormatBool(fn.IsSuitableForConstantFolding())
		}
		table.Append([]string{
			name, props.ReturnType.SQLString(), props.Category,
			strings.Join(props.Aliases, ", "), folded[0], folded[1],
		})
	}
	table.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(builtins.AllBuiltinNames))
	return nil
}
