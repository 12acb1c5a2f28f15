// 19 Oct 2026

package mutheat

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/common"
	"github.com/andrew-torda/mutheat/pkg/config"
	"github.com/andrew-torda/mutheat/pkg/scoremat"
)

var scenario = `A31D -1.5
A31E 2.0
A40G 3.0
A40D 0.5
`

// setup writes the predictions and gives back settings which write
// into a scratch directory.
func setup(t *testing.T, preds string) (*config.Config, *log.Logger) {
	fname, err := common.WrtTemp(preds)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(fname) })
	cfg := config.Default()
	cfg.Input = fname
	cfg.Output = filepath.Join(t.TempDir(), config.DefaultOutput)
	cfg.Open = false
	return cfg, log.New(io.Discard)
}

func TestScenario(t *testing.T) {
	cfg, logger := setup(t, scenario)
	m, _, err := build(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"A31"}, m.Cols, "40 is outside every range")
	assert.Equal(t, []byte("DE"), m.Rows)
	v, ok := m.Get('D', "A31")
	require.True(t, ok)
	assert.Equal(t, float32(-1.5), v)
}

func TestScenarioWideRange(t *testing.T) {
	cfg, logger := setup(t, scenario)
	cfg.Ranges = "28-45"
	m, _, err := build(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"A31", "A40"}, m.Cols)
	assert.Equal(t, []byte("DE"), m.Rows, "G is excluded")
	v, ok := m.Get('D', "A40")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), v)
	_, ok = m.Get('E', "A40")
	assert.False(t, ok)
}

func TestMymain(t *testing.T) {
	cfg, logger := setup(t, scenario)
	dir := filepath.Dir(cfg.Output)
	cfg.PNG = filepath.Join(dir, "heat.png")
	cfg.CSV = filepath.Join(dir, "heat.csv")
	cfg.Open = true
	var opened string
	old := openFn
	openFn = func(p string) error { opened = p; return errors.New("no desktop here") }
	defer func() { openFn = old }()

	var stdout bytes.Buffer
	require.NoError(t, Mymain(cfg, logger, &stdout))
	assert.Equal(t, "heatmap written to "+cfg.Output+"\n", stdout.String())
	assert.Equal(t, cfg.Output, opened, "a failing viewer is not fatal")

	html, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(html), ">-1.5<")
	csv, err := os.ReadFile(cfg.CSV)
	require.NoError(t, err)
	assert.Equal(t, "mutant,A31\nD,-1.5\nE,2\n", string(csv))
	fi, err := os.Stat(cfg.PNG)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(100))
}

func TestMymainNoOpen(t *testing.T) {
	cfg, logger := setup(t, scenario)
	old := openFn
	openFn = func(string) error { t.Fatal("should not open"); return nil }
	defer func() { openFn = old }()
	require.NoError(t, Mymain(cfg, logger, io.Discard))
}

func TestMymainErrors(t *testing.T) {
	cfg, logger := setup(t, "K40D 1\nK41E 2\n")
	err := Mymain(cfg, logger, io.Discard)
	assert.True(t, errors.Is(err, scoremat.ErrEmpty), "nothing inside the ranges")

	cfg, logger = setup(t, "A31D 1\nA32E 1\n")
	err = Mymain(cfg, logger, io.Discard)
	assert.True(t, errors.Is(err, colorscale.ErrFlatRange))

	cfg, logger = setup(t, "")
	cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
	err = Mymain(cfg, logger, io.Discard)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	_, err = os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(err), "no output on failure")
}

func TestMymainLogs(t *testing.T) {
	cfg, _ := setup(t, scenario+"junk\n")
	var logbuf bytes.Buffer
	logger := log.New(&logbuf)
	logger.SetLevel(log.DebugLevel)
	require.NoError(t, Mymain(cfg, logger, io.Discard))
	out := logbuf.String()
	assert.Contains(t, out, "skipped=1")
	assert.Contains(t, out, "excluded=1")
	assert.True(t, strings.Contains(out, "zero_pos"))
}
