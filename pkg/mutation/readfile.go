// 19 Oct 2026
// Getting the bytes off disk. Plain files are mapped, compressed
// files are streamed through gzip and "-" is standard input.

package mutation

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Readfile reads the records from the file called fname.
func Readfile(fname string, opts *Options) (*Set, error) {
	if fname == "-" || fname == "" {
		return Parse(os.Stdin, opts)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "opening predictions")
	}
	defer fp.Close()

	var set *Set
	if strings.HasSuffix(fname, ".gz") {
		set, err = byGzip(fp, opts)
	} else {
		set, err = byMmap(fp, opts)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", fname)
	}
	return set, nil
}

// byMmap maps the whole file and parses it in place. The mapping
// is gone by the time we return, but Parse copies everything it keeps.
func byMmap(fp *os.File, opts *Options) (*Set, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap refuses empty files
		return Parse(bytes.NewReader(nil), opts)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "mapping")
	}
	defer mm.Unmap()
	return Parse(bytes.NewReader(mm), opts)
}

// byGzip
func byGzip(rdr io.Reader, opts *Options) (*Set, error) {
	zr, err := gzip.NewReader(rdr)
	if err != nil {
		return nil, errors.Wrap(err, "gzip header")
	}
	defer zr.Close()
	return Parse(zr, opts)
}
