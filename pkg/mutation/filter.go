// 19 Oct 2026

package mutation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoDigits is for a label with no position number in it.
var ErrNoDigits = errors.New("no digits in position label")

// Range is a stretch of residue numbers, inclusive at both ends.
type Range struct {
	Lo, Hi int
}

// Ranges is a set of Range. A position is selected if any of them
// contains it.
type Ranges []Range

// DefaultRanges are the regions we usually look at.
var DefaultRanges = Ranges{{28, 35}, {49, 67}, {100, 111}}

// Contains is true if n lies in r.
func (r Range) Contains(n int) bool { return n >= r.Lo && n <= r.Hi }

// Contains is true if any of the ranges contains n.
func (rr Ranges) Contains(n int) bool {
	for _, r := range rr {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// String gives back the form ParseRanges reads.
func (rr Ranges) String() string {
	s := make([]string, len(rr))
	for i, r := range rr {
		s[i] = fmt.Sprintf("%d-%d", r.Lo, r.Hi)
	}
	return strings.Join(s, ",")
}

// ParseRanges reads something like "28-35,49-67,100-111".
// A single number "40" is the range 40-40.
func ParseRanges(s string) (Ranges, error) {
	var rr Ranges
	for _, piece := range strings.Split(s, ",") {
		if piece = strings.TrimSpace(piece); piece == "" {
			continue
		}
		lo, hi, found := strings.Cut(piece, "-")
		var r Range
		var err error
		if r.Lo, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
			return nil, errors.Wrapf(err, "range %q", piece)
		}
		r.Hi = r.Lo
		if found {
			if r.Hi, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, errors.Wrapf(err, "range %q", piece)
			}
		}
		if r.Hi < r.Lo {
			return nil, errors.Errorf("range %q runs backwards", piece)
		}
		rr = append(rr, r)
	}
	if len(rr) == 0 {
		return nil, errors.Errorf("no ranges in %q", s)
	}
	return rr, nil
}

// PosNum pulls all the digits out of a label, keeping their order,
// and reads them as a number. "A31" gives 31.
func PosNum(label string) (int, error) {
	digits := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		if c := label[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0, errors.Wrapf(ErrNoDigits, "%q", label)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, errors.Wrapf(err, "position in %q", label)
	}
	return n, nil
}

// Select returns a new set holding only the positions inside ranges.
// Records at other positions are dropped, not hidden. The order of
// positions and of records is kept.
func (set *Set) Select(ranges Ranges) (*Set, error) {
	keep := make(map[string]bool, len(set.Order))
	out := &Set{
		NLine:    set.NLine,
		Skipped:  set.Skipped,
		Excluded: set.Excluded,
	}
	for _, label := range set.Order {
		n, err := PosNum(label)
		if err != nil {
			return nil, err
		}
		if ranges.Contains(n) {
			keep[label] = true
			out.Order = append(out.Order, label)
		}
	}
	for _, rec := range set.Records {
		if keep[rec.Label] {
			out.Records = append(out.Records, rec)
		}
	}
	return out, nil
}
