// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvgamma/batch"
	"github.com/katalvlaran/lvgamma/config"
	"github.com/katalvlaran/lvgamma/lanczos"
)

// app is the state shared by every subcommand once the root pre-run hook has
// resolved configuration.
type app struct {
	fs    afero.Fs
	flags flagValues
	cfg   config.Config
	log   *zap.Logger
	ev    *batch.Evaluators
}

type flagValues struct {
	configPath string
	g          float64
	n          int
	scale      int
	precision  string
	logLevel   string
	workers    int
	digits     int
}

func bindFlags(fl *pflag.FlagSet, v *flagValues) {
	def := config.Default()
	fl.StringVar(&v.configPath, "config", "", "YAML or TOML configuration file")
	fl.Float64Var(&v.g, "g", def.Lanczos.G, "Lanczos free parameter g")
	fl.IntVar(&v.n, "n", def.Lanczos.N, "number of Lanczos coefficients")
	fl.IntVar(&v.scale, "scale", def.Lanczos.Scale, "decimal digits of the precise path")
	fl.StringVar(&v.precision, "precision", def.Precision, "log-Gamma path: quick or precise")
	fl.StringVar(&v.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	fl.IntVar(&v.workers, "workers", def.Workers, "concurrent evaluations in batch mode")
	fl.IntVar(&v.digits, "digits", def.Digits, "significant digits printed")
}

// overlay copies explicitly set flags over cfg.
func overlay(fl *pflag.FlagSet, v flagValues, cfg *config.Config) {
	fl.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "g":
			cfg.Lanczos.G = v.g
		case "n":
			cfg.Lanczos.N = v.n
		case "scale":
			cfg.Lanczos.Scale = v.scale
		case "precision":
			cfg.Precision = v.precision
		case "log-level":
			cfg.LogLevel = v.logLevel
		case "workers":
			cfg.Workers = v.workers
		case "digits":
			cfg.Digits = v.digits
		}
	})
}

// setup resolves configuration, the logger and the evaluators.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.Load(a.fs, a.flags.configPath); err != nil {
			return err
		}
	}
	overlay(cmd.Flags(), a.flags, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	a.log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	))

	tables, err := lanczos.NewFromParameters(cfg.Lanczos)
	if err != nil {
		return errors.Wrap(err, "lanczos tables")
	}
	mode, _ := cfg.PrecisionMode()
	if a.ev, err = batch.NewEvaluators(tables, mode, cfg.IncGammaOptions()...); err != nil {
		return err
	}
	a.log.Debug("configured",
		zap.Float64("g", cfg.Lanczos.G),
		zap.Int("n", cfg.Lanczos.N),
		zap.Int("scale", cfg.Lanczos.Scale),
		zap.Stringer("precision", mode))

	return nil
}

func makeRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	root := &cobra.Command{
		Use:   "gammafn [command] (flags)",
		Short: "gammafn evaluates Gamma, polygamma and incomplete Gamma functions.",
		Long: `gammafn evaluates Gamma-family special functions.

Typical usage:
    gammafn gamma 4.5
    gammafn pinv 2 0.5 --digits 10
    gammafn digamma -- -0.5
    gammafn batch requests.yaml --workers 8
    gammafn tables --n 9 --g 5
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	bindFlags(root.PersistentFlags(), &a.flags)

	for _, fn := range batch.Functions() {
		root.AddCommand(makeFunctionCommand(a, fn))
	}
	root.AddCommand(makeTablesCommand(a))
	root.AddCommand(makeBatchCommand(a))
	root.AddCommand(makeReportCommand(a))

	return root
}
