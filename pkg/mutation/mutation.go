// 19 Oct 2026

// Package mutation reads point mutation predictions. Each line of
// input looks like
//   A31D -1.23
// where A is the wildtype residue, 31 the position, D the mutant
// residue and -1.23 the predicted energy change.
package mutation

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/andrew-torda/mutheat/pkg/white"
)

// Errors for lines we cannot make sense of. Lines with the wrong
// number of fields are not errors. They are skipped.
var (
	ErrBadCode  = errors.New("mutation code too short")
	ErrBadScore = errors.New("score is not a number")
)

// DefaultExclude are the mutant residues we throw away.
const DefaultExclude = "CGP"

// Record is one decoded line.
type Record struct {
	Label  string  // wildtype + position, "A31"
	Pos    string  // position digits as written, "31"
	Wild   byte    // wildtype residue
	Mutant byte    // mutant residue
	Score  float64 // predicted energy change
}

// Set is what we get from reading a file.
type Set struct {
	Records  []Record
	Order    []string // distinct labels in the order first seen
	NLine    int      // lines read
	Skipped  int      // lines without exactly two fields
	Excluded int      // records dropped for their mutant residue
}

// Options controls reading.
type Options struct {
	Exclude string // mutant residues to drop, DefaultExclude if empty
}

// excludeSet turns the string of residues into a lookup table.
func (opts *Options) excludeSet() (x [256]bool) {
	s := DefaultExclude
	if opts != nil && opts.Exclude != "" {
		s = opts.Exclude
	}
	for i := 0; i < len(s); i++ {
		x[s[i]] = true
	}
	return x
}

// Decode splits a mutation code like "A31D" into its parts.
// Anything shorter than three characters cannot hold a wildtype,
// a position and a mutant.
func Decode(code string) (wild byte, pos string, mutant byte, err error) {
	if len(code) < 3 {
		return 0, "", 0, errors.Wrapf(ErrBadCode, "%q", code)
	}
	return code[0], code[1 : len(code)-1], code[len(code)-1], nil
}

// add appends a record and remembers where its label first appeared.
func (set *Set) add(rec Record, seen map[string]bool) {
	set.Records = append(set.Records, rec)
	if !seen[rec.Label] {
		seen[rec.Label] = true
		set.Order = append(set.Order, rec.Label)
	}
}

// Parse reads records from r. Lines which do not have exactly two
// fields are skipped. Records whose mutant residue is in the exclude
// set are dropped before their position is noted, so a position only
// seen with excluded mutants never appears in Order.
func Parse(r io.Reader, opts *Options) (*Set, error) {
	exclude := opts.excludeSet()
	set := new(Set)
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var fields [][]byte
	for scanner.Scan() {
		set.NLine++
		if fields = white.ByteSlice(scanner.Bytes()).Fields(fields[:0]); len(fields) != 2 {
			set.Skipped++
			continue
		}
		rec, err := parseFields(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", set.NLine)
		}
		if exclude[rec.Mutant] {
			set.Excluded++
			continue
		}
		set.add(rec, seen)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading after line %d", set.NLine)
	}
	return set, nil
}

// parseFields turns the two fields of a line into a record.
func parseFields(fields [][]byte) (Record, error) {
	wild, pos, mutant, err := Decode(string(fields[0]))
	if err != nil {
		return Record{}, err
	}
	score, err := strconv.ParseFloat(string(fields[1]), 64)
	if err != nil {
		return Record{}, errors.Wrapf(ErrBadScore, "%q", fields[1])
	}
	return Record{
		Label:  string(wild) + pos,
		Pos:    pos,
		Wild:   wild,
		Mutant: mutant,
		Score:  score,
	}, nil
}
