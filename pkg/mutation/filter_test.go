// 19 Oct 2026

package mutation_test

import (
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/mutheat/pkg/mutation"
)

func TestPosNum(t *testing.T) {
	cases := map[string]int{"A31": 31, "K100": 100, "x1y2": 12, "G007": 7}
	for label, want := range cases {
		n, err := PosNum(label)
		require.NoError(t, err)
		assert.Equal(t, want, n, label)
	}
	_, err := PosNum("AB")
	assert.True(t, errors.Is(err, ErrNoDigits))
}

func TestRangesContains(t *testing.T) {
	for _, n := range []int{28, 30, 35, 49, 67, 100, 111} {
		assert.True(t, DefaultRanges.Contains(n), "%d", n)
	}
	for _, n := range []int{0, 27, 36, 40, 48, 68, 99, 112} {
		assert.False(t, DefaultRanges.Contains(n), "%d", n)
	}
}

func TestParseRanges(t *testing.T) {
	rr, err := ParseRanges("28-35, 49-67,100-111")
	require.NoError(t, err)
	assert.Equal(t, DefaultRanges, rr)
	assert.Equal(t, "28-35,49-67,100-111", rr.String())

	rr, err = ParseRanges("40")
	require.NoError(t, err)
	assert.Equal(t, Ranges{{40, 40}}, rr)

	for _, bad := range []string{"", "a-b", "10-5", "3-x", ","} {
		_, err := ParseRanges(bad)
		assert.Error(t, err, bad)
	}
}

func TestSelect(t *testing.T) {
	in := "K40D 1\nA31D -1.5\nK40E 2\nS29W 3\nA31E 2.0\nM105A 0.1\n"
	set, err := Parse(strings.NewReader(in), nil)
	require.NoError(t, err)
	sel, err := set.Select(DefaultRanges)
	require.NoError(t, err)
	assert.Equal(t, []string{"A31", "S29", "M105"}, sel.Order, "input order, not sorted")
	for _, rec := range sel.Records {
		assert.NotEqual(t, "K40", rec.Label)
	}
	assert.Len(t, sel.Records, 4)
	assert.Len(t, set.Records, 6, "original set untouched")
}

func TestSelectNothing(t *testing.T) {
	set, err := Parse(strings.NewReader("K40D 1\nK41E 2\n"), nil)
	require.NoError(t, err)
	sel, err := set.Select(DefaultRanges)
	require.NoError(t, err)
	assert.Empty(t, sel.Order)
	assert.Empty(t, sel.Records)
}

func ExampleSet_Select() {
	in := `A31D -1.5
A31E 2.0
A40G 3.0
A40D 0.5`
	set, err := Parse(strings.NewReader(in), nil)
	if err != nil {
		log.Fatal(err)
	}
	sel, err := set.Select(DefaultRanges)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(set.Order, sel.Order)
	for _, rec := range sel.Records {
		fmt.Printf("%s %c %g\n", rec.Label, rec.Mutant, rec.Score)
	}
	// Output:
	// [A31 A40] [A31]
	// A31 D -1.5
	// A31 E 2
}
