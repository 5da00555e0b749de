package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/latex"
)

func newGridCmd() *cobra.Command {
	var vars int
	cmd := &cobra.Command{
		Use:     "grid",
		Short:   "Print the index stored at every cell",
		Example: `  kvmap grid --vars 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grid, err := kmap.NewGrid(vars)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), gridTable(grid))
			return nil
		},
	}
	cmd.Flags().IntVarP(&vars, "vars", "n", 4, "number of variables")
	return cmd
}

func gridTable(grid kmap.Grid) string {
	headers := make([]string, 0, grid.Width+1)
	headers = append(headers, `y\x`)
	for x := 0; x < grid.Width; x++ {
		headers = append(headers, strconv.Itoa(x))
	}
	rows := make([][]string, grid.Height)
	for y := range rows {
		row := make([]string, 0, grid.Width+1)
		row = append(row, strconv.Itoa(y))
		for x := 0; x < grid.Width; x++ {
			row = append(row, strconv.Itoa(kmap.CoordinateToIndex(x, y)))
		}
		rows[y] = row
	}
	return FormatTable(headers, rows)
}

func newBlocksCmd() *cobra.Command {
	var (
		vars    int
		indices []int
	)
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Print the islands of a group with their open and closed sides",
		Long: "blocks splits a group into the rectangles it covers on the drawn map and\n" +
			"reports which sides continue across the map edge (open) and which are drawn\n" +
			"(closed), together with the LaTeX oval each rectangle exports to.",
		Example: `  kvmap blocks --vars 4 --indices 0,4,8,12`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			grid, err := kmap.NewGrid(vars)
			if err != nil {
				return err
			}
			if err := kmap.Validate(indices, vars); err != nil {
				if errors.Is(err, kmap.ErrIndexRange) {
					return err
				}
				// still informative for hand-drawn sets
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), blocksTable(grid, indices, cliCtx.Config.Latex.OvalShrink))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&vars, "vars", "n", 4, "number of variables")
	f.IntSliceVarP(&indices, "indices", "i", nil, "comma separated cell indices")
	_ = cmd.MarkFlagRequired("indices")
	return cmd
}

func blocksTable(grid kmap.Grid, indices []int, shrink float64) string {
	var rows [][]string
	for _, b := range grid.Classify(indices) {
		rows = append(rows, []string{
			fmt.Sprintf("(%d,%d)-(%d,%d)", b.X1, b.Y1, b.X2, b.Y2),
			b.Open.String(),
			b.Closed().String(),
			latex.Oval(b, grid.Height, shrink),
		})
	}
	return FormatTable([]string{"rect", "open", "closed", "oval"}, rows)
}
