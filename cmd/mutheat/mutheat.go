// 19 Oct 2026
// Read mutation energy predictions and draw a heatmap.

package main

import (
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	. "github.com/andrew-torda/mutheat/pkg/common"
	"github.com/andrew-torda/mutheat/pkg/mutheat"
)

func main() {
	name := path.Base(os.Args[0])
	cfg, err := mutheat.ParseArgs(name, os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, mutheat.ErrUsage) {
			os.Exit(ExitUsageError)
		}
		log.Error(err)
		os.Exit(ExitFailure)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          name,
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
	} else {
		logger.SetLevel(level)
	}

	if err := mutheat.Mymain(cfg, logger, os.Stdout); err != nil {
		logger.Error(err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
