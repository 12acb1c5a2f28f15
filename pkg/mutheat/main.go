// 19 Oct 2026

// Package mutheat runs the whole job: read predictions, keep the
// selected positions, pivot into a matrix, build the colour scale and
// draw the heatmap.
package mutheat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/common"
	"github.com/andrew-torda/mutheat/pkg/config"
	"github.com/andrew-torda/mutheat/pkg/heatmap"
	"github.com/andrew-torda/mutheat/pkg/mutation"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

// openFn is swapped out in testing so we do not start viewers.
var openFn = heatmap.Open

// writeFile creates fname and hands it to wrt.
func writeFile(fname string, logger *log.Logger, wrt func(io.Writer) error) error {
	if common.Exists(fname) {
		logger.Warn("trashing old version", "file", fname)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "output file")
	}
	if err := wrt(fp); err != nil {
		fp.Close()
		return errors.Wrapf(err, "writing %s", fname)
	}
	return errors.Wrapf(fp.Close(), "closing %s", fname)
}

// build goes from the settings to a matrix and its colour scale.
func build(cfg *config.Config, logger *log.Logger) (*scoremat.Matrix, *colorscale.Scale, error) {
	set, err := mutation.Readfile(cfg.Input, &mutation.Options{Exclude: cfg.Exclude})
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading predictions")
	}
	logger.Info("read predictions", "file", cfg.Input, "lines", set.NLine,
		"records", len(set.Records), "skipped", set.Skipped, "excluded", set.Excluded)

	ranges, err := cfg.ParsedRanges()
	if err != nil {
		return nil, nil, err
	}
	sel, err := set.Select(ranges)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("selected positions", "ranges", ranges, "kept", len(sel.Order), "of", len(set.Order))

	m, err := scoremat.Build(sel, cfg.Digits)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "nothing to plot in ranges %s", ranges)
	}
	min, max, err := m.MinMax()
	if err != nil {
		return nil, nil, err
	}
	nrow, ncol := m.Size()
	logger.Info("matrix", "rows", nrow, "cols", ncol, "cells", m.NCell(), "min", min, "max", max)

	s, err := colorscale.Build(min, max, cfg.NStop)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("colour scale", "zero_pos", s.ZeroPos)
	for _, st := range s.Stops {
		logger.Debug("stop", "pos", st.Pos, "color", colorscale.RGB(st.Color))
	}
	return m, s, nil
}

// Mymain is the top level, after the command line has been read.
// The path of the html file is printed on stdout.
func Mymain(cfg *config.Config, logger *log.Logger, stdout io.Writer) error {
	if err := cfg.Check(); err != nil {
		return err
	}
	m, s, err := build(cfg, logger)
	if err != nil {
		return err
	}
	opts := heatmap.DefaultOptions()
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}

	outpath, err := filepath.Abs(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "output path")
	}
	err = writeFile(outpath, logger, func(w io.Writer) error { return heatmap.WriteHTML(w, m, s, opts) })
	if err != nil {
		return err
	}
	if cfg.PNG != "" {
		err = writeFile(cfg.PNG, logger, func(w io.Writer) error { return heatmap.WritePNG(w, m, s, opts) })
		if err != nil {
			return err
		}
		logger.Info("wrote png", "file", cfg.PNG)
	}
	if cfg.CSV != "" {
		if err = writeFile(cfg.CSV, logger, m.WriteCSV); err != nil {
			return err
		}
		logger.Info("wrote csv", "file", cfg.CSV)
	}

	fmt.Fprintln(stdout, "heatmap written to", outpath)
	if cfg.Open {
		if err := openFn(outpath); err != nil {
			logger.Warn("could not open a viewer", "err", err)
		}
	}
	return nil
}
