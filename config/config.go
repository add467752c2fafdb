// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgamma/gamma"
	"github.com/katalvlaran/lvgamma/incgamma"
	"github.com/katalvlaran/lvgamma/lanczos"
	"github.com/katalvlaran/lvgamma/numerr"
)

const (
	// DefaultWorkers is the batch concurrency.
	DefaultWorkers = 4

	// DefaultLogLevel is the zap level name.
	DefaultLogLevel = "info"

	// DefaultDigits is the number of significant digits printed.
	DefaultDigits = 17
)

// IncGamma mirrors incgamma.Options.
type IncGamma struct {
	SeriesTolerance      float64 `yaml:"series_tolerance" toml:"series_tolerance"`
	MaxIterations        int     `yaml:"max_iterations" toml:"max_iterations"`
	UnderflowCutoff      float64 `yaml:"underflow_cutoff" toml:"underflow_cutoff"`
	InverseTolerance     float64 `yaml:"inverse_tolerance" toml:"inverse_tolerance"`
	InverseMaxIterations int     `yaml:"inverse_max_iterations" toml:"inverse_max_iterations"`
}

// Config is the complete gammafn configuration.
type Config struct {
	Precision string             `yaml:"precision" toml:"precision"`
	Workers   int                `yaml:"workers" toml:"workers"`
	LogLevel  string             `yaml:"log_level" toml:"log_level"`
	Digits    int                `yaml:"digits" toml:"digits"`
	Lanczos   lanczos.Parameters `yaml:"lanczos" toml:"lanczos"`
	IncGamma  IncGamma           `yaml:"incgamma" toml:"incgamma"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	inc := incgamma.DefaultOptions()

	return Config{
		Precision: gamma.DefaultPrecision.String(),
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		Digits:    DefaultDigits,
		Lanczos:   lanczos.DefaultParameters(),
		IncGamma: IncGamma{
			SeriesTolerance:      inc.SeriesTolerance,
			MaxIterations:        inc.MaxIterations,
			UnderflowCutoff:      inc.UnderflowCutoff,
			InverseTolerance:     inc.InverseTolerance,
			InverseMaxIterations: inc.InverseMaxIterations,
		},
	}
}

// Load reads path from fs over the defaults and validates the result.
// The format follows the extension: .yaml/.yml or .toml.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config.Load(%s)", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		err = errors.Wrapf(ErrUnsupportedFormat, "extension %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "config.Load(%s)", path)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config.Load(%s)", path)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		if strings.Contains(err.Error(), "not found in type") {
			return numerr.Tag(err, ErrUnknownKey)
		}

		return err
	}

	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return errors.Wrapf(ErrUnknownKey, "%s", strings.Join(keys, ", "))
	}

	return nil
}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if err := c.Lanczos.Validate(); err != nil {
		return numerr.Tag(err, ErrInvalid)
	}
	if _, err := c.PrecisionMode(); err != nil {
		return numerr.Tag(err, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}

	inc := c.IncGamma
	switch {
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalid, "workers=%d must be >= 1", c.Workers)
	case c.Digits < 1 || c.Digits > 17:
		return errors.Wrapf(ErrInvalid, "digits=%d must be in [1, 17]", c.Digits)
	case !(inc.SeriesTolerance > 0 && inc.SeriesTolerance < 1):
		return errors.Wrapf(ErrInvalid, "incgamma.series_tolerance=%g must be in (0, 1)", inc.SeriesTolerance)
	case inc.MaxIterations < 1:
		return errors.Wrapf(ErrInvalid, "incgamma.max_iterations=%d must be >= 1", inc.MaxIterations)
	case !(inc.UnderflowCutoff > 0):
		return errors.Wrapf(ErrInvalid, "incgamma.underflow_cutoff=%g must be > 0", inc.UnderflowCutoff)
	case !(inc.InverseTolerance > 0 && inc.InverseTolerance < 1):
		return errors.Wrapf(ErrInvalid, "incgamma.inverse_tolerance=%g must be in (0, 1)", inc.InverseTolerance)
	case inc.InverseMaxIterations < 1:
		return errors.Wrapf(ErrInvalid, "incgamma.inverse_max_iterations=%d must be >= 1", inc.InverseMaxIterations)
	}

	return nil
}

// PrecisionMode parses Precision.
func (c Config) PrecisionMode() (gamma.PrecisionMode, error) {
	return gamma.ParsePrecisionMode(c.Precision)
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// IncGammaOptions converts the incgamma section into options. Call Validate first.
func (c Config) IncGammaOptions() []incgamma.Option {
	inc := c.IncGamma

	return []incgamma.Option{
		incgamma.WithSeriesTolerance(inc.SeriesTolerance),
		incgamma.WithMaxIterations(inc.MaxIterations),
		incgamma.WithUnderflowCutoff(inc.UnderflowCutoff),
		incgamma.WithInverseTolerance(inc.InverseTolerance),
		incgamma.WithInverseMaxIterations(inc.InverseMaxIterations),
	}
}
