package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgamma/batch"
	"github.com/katalvlaran/lvgamma/numerr"
)

var usages = map[string]struct{ args, short string }{
	"gamma":    {"X", "Gamma function Γ(x)"},
	"lgamma":   {"X", "natural log of Γ(x) for x > 0"},
	"nemes":    {"X", "Gergő Nemes approximation of Γ(x)"},
	"digamma":  {"X", "digamma ψ(x)"},
	"trigamma": {"X", "trigamma ψ1(x)"},
	"p":        {"S X", "regularized lower incomplete Gamma P(s, x)"},
	"q":        {"S X", "regularized upper incomplete Gamma Q(s, x)"},
	"lower":    {"S X", "lower incomplete Gamma γ(s, x)"},
	"upper":    {"S X", "upper incomplete Gamma Γ(s, x)"},
	"pinv":     {"S U", "x such that P(s, x) = u"},
}

func makeFunctionCommand(a *app, fn string) *cobra.Command {
	u := usages[fn]
	arity, _ := batch.Arity(fn)

	return &cobra.Command{
		Use:   fn + " " + u.args,
		Short: u.short,
		Args:  cobra.ExactArgs(arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			v, err := batch.Evaluate(a.ev, fn, xs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatValue(v, a.cfg.Digits))

			return err
		},
	}
}

// parseArgs accepts Go float syntax plus inf and nan in any case. Malformed
// numbers are domain errors.
func parseArgs(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, numerr.Tag(errors.Wrapf(err, "argument %d", i+1), numerr.ErrDomain)
		}
		xs[i] = v
	}

	return xs, nil
}

func formatValue(v float64, digits int) string {
	return strconv.FormatFloat(v, 'g', digits, 64)
}
