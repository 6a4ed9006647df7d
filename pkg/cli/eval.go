// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/colconst/pkg/cli/cliflags"
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/colexec"
	"github.com/cockroachdb/colconst/pkg/sql/opt/norm"
	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/util/humanizeutil"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <function> [<function>...]",
	Short: "evaluate constant functions over a number of rows",
	Long: `
Resolve the given functions for the requested plan distribution, normalize
them the way the optimizer does and run the resulting projection over the
requested number of rows. For each function, the output shows whether it was
folded into a literal, its value and the memory footprint of the produced
column compared to a fully materialized one.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

// columnStats accumulates what the projection produced for one column.
type columnStats struct {
	value        string
	batches      int
	size         int64
	materialized int64
}

func runEval(cmd *cobra.Command, args []string) error {
	if cliCtx.rows < 1 {
		return &flagError{cause: errors.Newf("--%s must be positive, got %d", cliflags.Rows.Name, cliCtx.rows)}
	}
	ctx := cmdContext(cmd)
	evalCtx, err := makeEvalContext(ctx)
	if err != nil {
		return err
	}

	fns := make([]tree.Function, len(args))
	for i, name := range args {
		if fns[i], err = builtins.Resolve(ctx, evalCtx, name, 0); err != nil {
			return err
		}
	}
	exprs, folded := norm.Normalize(ctx, evalCtx, fns)

	op, err := colexec.NewProjection(colexec.NewRowCountSource(cliCtx.rows), 0, exprs)
	if err != nil {
		return err
	}
	stats := make([]columnStats, len(exprs))
	if err := colexec.Run(ctx, op, func(b coldata.Batch) error {
		for i := range stats {
			vec := b.ColVec(i)
			if stats[i].batches == 0 {
				stats[i].value = vec.PrettyValueAt(0)
			}
			stats[i].batches++
			stats[i].size += vec.Size()
			stats[i].materialized += coldata.Flatten(vec).Size()
		}
		return nil
	}); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"function", "type", "folded", "value", "batches", "size", "materialized"})
	for i, expr := range exprs {
		_, isConst := expr.(*norm.ConstExpr)
		table.Append([]string{
			fns[i].Name() + "()",
			expr.DataType().SQLString(),
			strconv.FormatBool(isConst),
			stats[i].value,
			strconv.Itoa(stats[i].batches),
			humanizeutil.IBytes(stats[i].size),
			humanizeutil.IBytes(stats[i].materialized),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%s rows, %d of %d functions folded, %s plan\n",
		humanizeutil.Count(int64(cliCtx.rows)), folded, len(exprs), evalCtx.Distribution)
	return nil
}
