// 19 Oct 2026

// Package config holds the settings for a run. Everything has a
// default, a yaml file can change some of them, and the command line
// has the last word.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/mutation"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

// DefaultOutput is written in the current directory.
const DefaultOutput = "mutation_energy_heatmap_selected.html"

// Config is one run's worth of settings.
type Config struct {
	Input    string `yaml:"input"`     // predictions, "-" for stdin
	Output   string `yaml:"output"`    // html file
	Exclude  string `yaml:"exclude"`   // mutant residues to drop
	Ranges   string `yaml:"ranges"`    // positions to keep, "28-35,49-67"
	Digits   int    `yaml:"digits"`    // decimal places in the matrix
	NStop    int    `yaml:"nstop"`     // colours taken from each palette
	Title    string `yaml:"title"`     // plot title
	PNG      string `yaml:"png"`       // also write a png here
	CSV      string `yaml:"csv"`       // also write the matrix here
	Open     bool   `yaml:"open"`      // try to show the result
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Default gives the settings we use when told nothing.
func Default() *Config {
	return &Config{
		Output:   DefaultOutput,
		Exclude:  mutation.DefaultExclude,
		Ranges:   mutation.DefaultRanges.String(),
		Digits:   scoremat.DefaultDigits,
		NStop:    colorscale.DefaultNStop,
		Open:     true,
		LogLevel: "info",
	}
}

// Load reads a yaml file on top of the defaults. Keys which are not
// in the file keep their default values. Unknown keys are an error,
// since they are usually typing mistakes.
func Load(fname string) (*Config, error) {
	cfg := Default()
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer fp.Close()
	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "config file %s", fname)
	}
	return cfg, nil
}

// ParsedRanges turns the Ranges string into something usable.
func (cfg *Config) ParsedRanges() (mutation.Ranges, error) {
	return mutation.ParseRanges(cfg.Ranges)
}

// Check looks for settings which cannot work.
func (cfg *Config) Check() error {
	if cfg.Input == "" {
		return errors.New("no input file")
	}
	if cfg.Output == "" {
		return errors.New("no output file")
	}
	if _, err := cfg.ParsedRanges(); err != nil {
		return err
	}
	if cfg.Digits < 0 {
		return errors.Errorf("digits must not be negative, got %d", cfg.Digits)
	}
	if cfg.NStop < 2 {
		return errors.Wrapf(colorscale.ErrNStop, "nstop %d", cfg.NStop)
	}
	return nil
}
