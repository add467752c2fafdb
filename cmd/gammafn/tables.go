package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgamma/lanczos"
	"github.com/katalvlaran/lvgamma/matrix"
)

func makeTablesCommand(a *app) *cobra.Command {
	var withMatrices bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the Lanczos coefficients for the configured g, n and scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab := a.ev.Tables
			p := tab.Parameters()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "g=%g n=%d scale=%d precision=%d\n", p.G, p.N, p.Scale, tab.Precision())

			w := tablewriter.NewWriter(out)
			w.SetHeader([]string{"k", "float64", "decimal"})
			w.SetAutoFormatHeaders(false)
			w.SetAlignment(tablewriter.ALIGN_RIGHT)
			precise := tab.PreciseCoefficients()
			for k, c := range tab.Coefficients() {
				w.Append([]string{strconv.Itoa(k), formatValue(c, a.cfg.Digits), precise[k]})
			}
			w.Render()

			if withMatrices {
				return printMatrices(out, tab, a.cfg.Digits)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&withMatrices, "matrices", false, "also print B, C, the diagonal of D and Fᵀ")

	return cmd
}

// printMatrices writes the derivation factors rounded to digits significant digits.
func printMatrices(out io.Writer, tab *lanczos.Tables, digits int) error {
	round := func(d *apd.Decimal) string { return formatDecimal(d, digits) }

	fmt.Fprintf(out, "\nB =\n%s", matrix.Map(tab.B(), round))
	fmt.Fprintf(out, "\nC =\n%s", matrix.Map(tab.C(), round))

	d := tab.D()
	diag := make([]string, d.Rows())
	for i := range diag {
		v, err := d.At(i, i)
		if err != nil {
			return err
		}
		diag[i] = round(v)
	}
	fmt.Fprintf(out, "\ndiag(D) =\n[%s]\n", strings.Join(diag, ", "))

	ft, err := matrix.Transpose(tab.F())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nFᵀ =\n%s", matrix.Map(ft, round))

	return nil
}

// formatDecimal rounds d to digits significant digits.
func formatDecimal(d *apd.Decimal, digits int) string {
	var r apd.Decimal
	if _, err := apd.BaseContext.WithPrecision(uint32(digits)).Round(&r, d); err != nil {
		return d.Text('g')
	}

	return r.Text('g')
}
