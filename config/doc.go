// Package config loads gammafn settings from YAML or TOML files through an
// afero.Fs, so tests can run against an in-memory filesystem.
//
// File layout (YAML shown; TOML uses the same keys):
//
//	precision: precise      # quick | precise
//	workers: 8
//	log_level: info
//	digits: 17
//	lanczos:
//	  g: 4.7421875
//	  n: 15
//	  scale: 30
//	incgamma:
//	  series_tolerance: 1e-15
//	  max_iterations: 100000
//	  underflow_cutoff: 1e8
//	  inverse_tolerance: 1e-16
//	  inverse_max_iterations: 50
//
// Keys not listed above are rejected. Omitted keys keep their defaults.
package config
