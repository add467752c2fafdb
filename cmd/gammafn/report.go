package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgamma/accuracy"
)

func makeReportCommand(a *app) *cobra.Command {
	points := accuracy.DefaultGridSize
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare evaluation strategies and print relative error statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if points < 2 {
				return errors.Newf("--points=%d must be >= 2", points)
			}
			sums, err := accuracy.Report(a.ev.Tables, points)
			if err != nil {
				return err
			}

			w := tablewriter.NewWriter(cmd.OutOrStdout())
			w.SetHeader([]string{"comparison", "points", "failures", "max rel", "mean rel", "p99 rel"})
			w.SetAutoFormatHeaders(false)
			w.SetAutoWrapText(false)
			for _, s := range sums {
				w.Append([]string{
					s.Name,
					strconv.Itoa(s.Count),
					strconv.Itoa(s.Failures),
					strconv.FormatFloat(s.MaxRel, 'e', 2, 64),
					strconv.FormatFloat(s.MeanRel, 'e', 2, 64),
					strconv.FormatFloat(s.P99Rel, 'e', 2, 64),
				})
			}
			w.Render()

			return nil
		},
	}
	cmd.Flags().IntVar(&points, "points", points, "grid points per comparison")

	return cmd
}
