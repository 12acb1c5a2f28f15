// 19 Oct 2026

package config_test

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/mutheat/pkg/colorscale"
	"github.com/andrew-torda/mutheat/pkg/common"
	. "github.com/andrew-torda/mutheat/pkg/config"
	"github.com/andrew-torda/mutheat/pkg/mutation"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "mutation_energy_heatmap_selected.html", cfg.Output)
	assert.Equal(t, "CGP", cfg.Exclude)
	assert.Equal(t, 2, cfg.Digits)
	assert.Equal(t, 5, cfg.NStop)
	assert.True(t, cfg.Open)
	rr, err := cfg.ParsedRanges()
	require.NoError(t, err)
	assert.Equal(t, mutation.DefaultRanges, rr)
}

func TestLoad(t *testing.T) {
	fname, err := common.WrtTempSfx("ranges: 1-10\ndigits: 1\nopen: false\n", ".yaml")
	require.NoError(t, err)
	defer os.Remove(fname)
	cfg, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, "1-10", cfg.Ranges)
	assert.Equal(t, 1, cfg.Digits)
	assert.False(t, cfg.Open)
	assert.Equal(t, "CGP", cfg.Exclude, "not in file, keeps default")
	assert.Equal(t, 5, cfg.NStop)
}

func TestLoadEmpty(t *testing.T) {
	fname, err := common.WrtTempSfx("", ".yaml")
	require.NoError(t, err)
	defer os.Remove(fname)
	cfg, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadBad(t *testing.T) {
	fname, err := common.WrtTempSfx("rangez: 1-10\n", ".yaml")
	require.NoError(t, err)
	defer os.Remove(fname)
	_, err = Load(fname)
	assert.Error(t, err, "unknown key")

	_, err = Load("/no/such/config.yaml")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Check(), "no input")
	cfg.Input = "preds.txt"
	assert.NoError(t, cfg.Check())

	cfg.Ranges = "9-1"
	assert.Error(t, cfg.Check())
	cfg.Ranges = "1-9"

	cfg.NStop = 1
	assert.True(t, errors.Is(cfg.Check(), colorscale.ErrNStop))
	cfg.NStop = 5

	cfg.Digits = -1
	assert.Error(t, cfg.Check())
}
