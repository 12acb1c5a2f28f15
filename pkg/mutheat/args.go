// 19 Oct 2026

package mutheat

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/andrew-torda/mutheat/pkg/config"
)

// ErrUsage means the command line did not make sense. The usage
// message has already been printed.
var ErrUsage = errors.New("usage")

// ParseArgs reads the command line, not including the program name.
// Settings come from the defaults, then the config file if there is
// one, then any flags which were given.
func ParseArgs(name string, args []string, stderr io.Writer) (*config.Config, error) {
	var (
		cfgFile, output, exclude, ranges string
		title, png, csv                  string
		digits                           int
		noOpen, verbose                  bool
	)
	dflt := config.Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage:", name, "[options] predictions.txt")
		fs.PrintDefaults()
	}
	fs.StringVarP(&cfgFile, "config", "c", "", "yaml file with settings")
	fs.StringVarP(&output, "output", "o", dflt.Output, "html output file")
	fs.StringVarP(&exclude, "exclude", "x", dflt.Exclude, "mutant residues to leave out")
	fs.StringVarP(&ranges, "ranges", "r", dflt.Ranges, "positions to keep, like 28-35,49-67")
	fs.IntVarP(&digits, "digits", "d", dflt.Digits, "decimal places for scores")
	fs.StringVar(&title, "title", "", "plot title")
	fs.StringVar(&png, "png", "", "also write a png picture to this file")
	fs.StringVar(&csv, "csv", "", "also write the matrix as csv to this file")
	fs.BoolVar(&noOpen, "no-open", false, "do not try to show the result")
	fs.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrUsage
		}
		return nil, errors.Wrap(ErrUsage, err.Error())
	}

	cfg := dflt
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}
	switch fs.NArg() {
	case 0:
		if cfg.Input == "" {
			fs.Usage()
			return nil, ErrUsage
		}
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errors.Wrapf(ErrUsage, "got %d input files, expected 1", fs.NArg())
	}

	changed := fs.Changed
	if changed("output") {
		cfg.Output = output
	}
	if changed("exclude") {
		cfg.Exclude = exclude
	}
	if changed("ranges") {
		cfg.Ranges = ranges
	}
	if changed("digits") {
		cfg.Digits = digits
	}
	if changed("title") {
		cfg.Title = title
	}
	if changed("png") {
		cfg.PNG = png
	}
	if changed("csv") {
		cfg.CSV = csv
	}
	if noOpen {
		cfg.Open = false
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
