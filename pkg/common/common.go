// 29 Apr 2020
// 19 Oct 2026 moved out of seq, now shared by the heatmap packages

package common

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempSfx(s, "")
}

// WrtTempSfx is WrtTemp, but the file name ends in sfx, so callers
// can get something like "x.gz" or "x.yaml".
func WrtTempSfx(s, sfx string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing*"+sfx)
	if err != nil {
		return "", errors.Wrap(err, "tempfile fail")
	}
	defer fTmp.Close()
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", errors.Wrapf(err, "writing string to temp file %v", fTmp.Name())
	}
	return fTmp.Name(), nil
}

// Exists reports if fname is already there, so the caller can warn
// before trashing it.
func Exists(fname string) bool {
	_, err := os.Stat(fname)
	return err == nil
}
