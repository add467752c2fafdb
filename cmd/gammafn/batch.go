package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgamma/batch"
	"github.com/katalvlaran/lvgamma/numerr"
)

func makeBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML request file concurrently",
		Long: `Evaluate a YAML request file concurrently.

The file lists requests:

    requests:
      - {id: median, fn: pinv, args: [2, 0.5]}
      - {id: g5, fn: gamma, args: [5]}

Failed requests are reported in the table; the command fails only when the
file cannot be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := batch.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			r, err := batch.NewRunner(a.ev, batch.WithWorkers(a.cfg.Workers), batch.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.Info("batch started", zap.Int("requests", len(reqs)), zap.Int("workers", r.Workers()))

			res, err := r.Run(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			w := tablewriter.NewWriter(cmd.OutOrStdout())
			w.SetHeader([]string{"id", "fn", "args", "value"})
			w.SetAutoFormatHeaders(false)
			failed := 0
			for _, x := range res {
				value := formatValue(x.Value, a.cfg.Digits)
				if x.Err != nil {
					failed++
					value = "error: " + numerr.Classify(x.Err).String()
				}
				w.Append([]string{x.ID, x.Fn, joinArgs(x.Args, a.cfg.Digits), value})
			}
			w.Render()
			a.log.Info("batch finished", zap.Int("failed", failed))

			return nil
		},
	}
}

func joinArgs(args []float64, digits int) string {
	parts := make([]string, len(args))
	for i, v := range args {
		parts[i] = formatValue(v, digits)
	}

	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
