package common_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/mutheat/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrtTemp(t *testing.T) {
	fname, err := WrtTemp("A31D -1.23\n")
	require.NoError(t, err)
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "A31D -1.23\n", string(b))
	assert.True(t, Exists(fname))
}

func TestWrtTempSfx(t *testing.T) {
	fname, err := WrtTempSfx("x", ".yaml")
	require.NoError(t, err)
	defer os.Remove(fname)
	assert.True(t, strings.HasSuffix(fname, ".yaml"))
}

func TestExistsMissing(t *testing.T) {
	assert.False(t, Exists("/this/should/not/exist/at/all"))
}
