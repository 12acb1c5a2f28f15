// brokenio wraps an io.Reader so that reads fail on demand.
// Typical use in a test: you have a strings.Reader with some records,
// you write
//   rdr := brokenio.NewReader(strings.NewReader(s))
//   rdr.SetFailAfter(20)
// and hand rdr to the code being tested. The first 20 bytes come
// through and then every read returns ErrInjected.

package brokenio

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInjected is returned by reads we have chosen to break.
var ErrInjected = errors.New("brokenio: injected read failure")

// Reader counts the data that goes through and breaks reads either
// after a fixed number of bytes or at random.
type Reader struct {
	rdrOrig   io.Reader
	failAfter int     // fail once this many bytes have gone through, -1 for never
	probFail  float32 // probability that any one read fails
	rnd       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader returns a wrapper around rIn which does not fail until told to.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter makes reads fail once n bytes have been delivered.
// A read which would cross the limit is cut short at the limit.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetProbFail sets the probability of a read failing. The seed makes
// the sequence of failures repeatable.
func (r *Reader) SetProbFail(prob float32, seed int64) {
	r.probFail = prob
	r.rnd = rand.New(rand.NewSource(seed))
}

// NByte is the amount of data delivered so far.
func (r *Reader) NByte() int { return r.nByte }

// NCalled is the number of calls to Read.
func (r *Reader) NCalled() int { return r.nCalled }

// Read wraps the original reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.nCalled++
	if len(p) == 0 {
		return 0, nil
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrInjected
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.rnd != nil && r.rnd.Float32() < r.probFail {
		return 0, ErrInjected
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}
