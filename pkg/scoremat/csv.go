// 19 Oct 2026
// A plain table of the matrix, so the numbers can go into a
// spreadsheet or another plotting program.

package scoremat

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// WriteCSV writes a header of "mutant" followed by the position labels,
// then one line per mutant residue. Absent cells are left empty.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	rec := make([]string, len(m.Cols)+1)
	rec[0] = "mutant"
	copy(rec[1:], m.Cols)
	if err := cw.Write(rec); err != nil {
		return errors.Wrap(err, "csv header")
	}
	for i, r := range m.Rows {
		rec[0] = string(r)
		for j := range m.Cols {
			rec[j+1] = ""
			if v, ok := m.At(i, j); ok {
				rec[j+1] = Label(v)
			}
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "csv row %c", r)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "csv")
}
