// 19 Oct 2026

package mutheat

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/mutheat/pkg/common"
	"github.com/andrew-torda/mutheat/pkg/config"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs("mutheat", []string{"preds.txt"}, io.Discard)
	require.NoError(t, err)
	want := config.Default()
	want.Input = "preds.txt"
	assert.Equal(t, want, cfg)
}

func TestParseArgsFlags(t *testing.T) {
	args := []string{"-o", "x.html", "-x", "CP", "-r", "1-5", "-d", "1",
		"--png", "x.png", "--csv", "x.csv", "--no-open", "-v", "--title", "KRAS", "preds.txt"}
	cfg, err := ParseArgs("mutheat", args, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "x.html", cfg.Output)
	assert.Equal(t, "CP", cfg.Exclude)
	assert.Equal(t, "1-5", cfg.Ranges)
	assert.Equal(t, 1, cfg.Digits)
	assert.Equal(t, "x.png", cfg.PNG)
	assert.Equal(t, "x.csv", cfg.CSV)
	assert.Equal(t, "KRAS", cfg.Title)
	assert.False(t, cfg.Open)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseArgsConfigFile(t *testing.T) {
	fname, err := common.WrtTempSfx("input: from_file.txt\nranges: 1-9\ndigits: 3\n", ".yaml")
	require.NoError(t, err)
	defer os.Remove(fname)

	cfg, err := ParseArgs("mutheat", []string{"-c", fname}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "from_file.txt", cfg.Input)
	assert.Equal(t, "1-9", cfg.Ranges)
	assert.Equal(t, 3, cfg.Digits)

	cfg, err = ParseArgs("mutheat", []string{"-c", fname, "-d", "2", "other.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.Input, "command line wins")
	assert.Equal(t, 2, cfg.Digits)
	assert.Equal(t, "1-9", cfg.Ranges)
}

func TestParseArgsUsage(t *testing.T) {
	var stderr bytes.Buffer
	_, err := ParseArgs("mutheat", nil, &stderr)
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, stderr.String(), "usage: mutheat")

	_, err = ParseArgs("mutheat", []string{"a", "b"}, io.Discard)
	assert.True(t, errors.Is(err, ErrUsage))

	_, err = ParseArgs("mutheat", []string{"--bogus", "a"}, io.Discard)
	assert.True(t, errors.Is(err, ErrUsage))

	_, err = ParseArgs("mutheat", []string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, ErrUsage))
}
