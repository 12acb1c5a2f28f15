// 19 Oct 2026

// Package scoremat pivots mutation records into a table with one row
// per mutant residue and one column per position. Cells with no
// record are absent, not zero. We keep them as NaN in the matrix.
package scoremat

import (
	"math"
	"sort"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/pkg/errors"

	"github.com/andrew-torda/mutheat/pkg/mutation"
)

// DefaultDigits is the number of decimal places scores are rounded to.
const DefaultDigits = 2

// ErrEmpty means there is nothing left to plot after filtering.
var ErrEmpty = errors.New("no scores in matrix")

// Matrix holds the pivoted scores.
type Matrix struct {
	Rows   []byte   // mutant residues, ascending
	Cols   []string // position labels, in input order
	vals   *matrix.FMatrix2d
	rowNdx map[byte]int
	colNdx map[string]int
}

var missing = float32(math.NaN())

// Round rounds x to digits decimal places. It goes via the decimal
// string so halves come out the way printing does, and rounding a
// second time changes nothing.
func Round(x float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil { // FormatFloat output always parses
		return x
	}
	return r
}

// Build makes the matrix from set, which should already have been
// through Select. If two records land in the same cell, the later one wins.
func Build(set *mutation.Set, digits int) (*Matrix, error) {
	if len(set.Records) == 0 {
		return nil, ErrEmpty
	}
	m := &Matrix{
		Cols:   set.Order,
		rowNdx: make(map[byte]int),
		colNdx: make(map[string]int, len(set.Order)),
	}
	for i, label := range set.Order {
		m.colNdx[label] = i
	}
	for _, rec := range set.Records {
		if _, ok := m.rowNdx[rec.Mutant]; !ok {
			m.rowNdx[rec.Mutant] = -1
			m.Rows = append(m.Rows, rec.Mutant)
		}
	}
	sort.Slice(m.Rows, func(i, j int) bool { return m.Rows[i] < m.Rows[j] })
	for i, r := range m.Rows {
		m.rowNdx[r] = i
	}

	m.vals = matrix.NewFMatrix2d(len(m.Rows), len(m.Cols))
	for _, row := range m.vals.Mat {
		for j := range row {
			row[j] = missing
		}
	}
	for _, rec := range set.Records {
		j, ok := m.colNdx[rec.Label]
		if !ok {
			return nil, errors.Errorf("record at %s, but %s is not a column", rec.Label, rec.Label)
		}
		i := m.rowNdx[rec.Mutant]
		m.vals.Mat[i][j] = float32(Round(rec.Score, digits))
	}
	return m, nil
}

// Size returns the number of rows and columns.
func (m *Matrix) Size() (nrow, ncol int) { return len(m.Rows), len(m.Cols) }

// At returns the value in row i, column j and whether there is one.
func (m *Matrix) At(i, j int) (float32, bool) {
	v := m.vals.Mat[i][j]
	if v != v { // NaN
		return 0, false
	}
	return v, true
}

// Get looks a cell up by mutant residue and position label.
func (m *Matrix) Get(mutant byte, label string) (float32, bool) {
	i, ok := m.rowNdx[mutant]
	if !ok {
		return 0, false
	}
	j, ok := m.colNdx[label]
	if !ok {
		return 0, false
	}
	return m.At(i, j)
}

// NCell is the number of cells with a value.
func (m *Matrix) NCell() (n int) {
	for i := range m.Rows {
		for j := range m.Cols {
			if _, ok := m.At(i, j); ok {
				n++
			}
		}
	}
	return n
}

// MinMax returns the smallest and largest values, ignoring
// absent cells.
func (m *Matrix) MinMax() (min, max float64, err error) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := range m.Rows {
		for j := range m.Cols {
			if v, ok := m.At(i, j); ok {
				min = math.Min(min, float64(v))
				max = math.Max(max, float64(v))
			}
		}
	}
	if min > max {
		return 0, 0, ErrEmpty
	}
	return min, max, nil
}

// Label formats a cell value the way it should be printed. float32
// formatting keeps 1.23 from turning into 1.2300000190734863.
func Label(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
