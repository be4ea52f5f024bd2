// Package well implements plate geometry and well-position handling:
// the supported plate sizes, the row-label alphabet, notation detection,
// and lossless conversion between the three position notations.
package well

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlateSize indicates a well count outside the supported set.
var ErrInvalidPlateSize = errors.New("invalid plate size")

// plateDims maps well count to {rows, cols} for the standard SBS sizes.
var plateDims = map[int][2]int{
	6:    {2, 3},
	12:   {3, 4},
	24:   {4, 6},
	48:   {6, 8},
	96:   {8, 12},
	384:  {16, 24},
	1536: {32, 48},
}

// Geometry is the row/column shape implied by a plate's well count.
// rows * cols == wells holds for every value Dimensions returns.
type Geometry struct {
	Wells int
	Rows  int
	Cols  int
}

// Dimensions resolves a well count to its plate geometry. Only the
// standard sizes 6, 12, 24, 48, 96, 384 and 1536 are recognized; any
// other count fails with ErrInvalidPlateSize.
func Dimensions(wells int) (Geometry, error) {
	d, ok := plateDims[wells]
	if !ok {
		return Geometry{}, fmt.Errorf("%w: %d (supported: 6, 12, 24, 48, 96, 384, 1536)", ErrInvalidPlateSize, wells)
	}
	return Geometry{Wells: wells, Rows: d[0], Cols: d[1]}, nil
}

// RowLabels returns the row-label sequence for the geometry: A through
// Z, then AA through AF, truncated to the plate's row count. The
// extension past Z exists because 1536-well plates have 32 rows.
func (g Geometry) RowLabels() []string {
	labels := make([]string, g.Rows)
	for i := range labels {
		labels[i], _ = g.RowLabel(i + 1)
	}
	return labels
}

// RowLabel returns the label of the 1-based row number: 1 is "A",
// 27 is "AA". Numbers outside [1, rows] fail with ErrPositionOutOfBounds.
func (g Geometry) RowLabel(n int) (string, error) {
	if n < 1 || n > g.Rows {
		return "", fmt.Errorf("%w: row %d not in [1, %d]", ErrPositionOutOfBounds, n, g.Rows)
	}
	if n <= 26 {
		return string(rune('A' + n - 1)), nil
	}
	return "A" + string(rune('A'+n-27)), nil
}

// RowNumber resolves a row label to its 1-based row number. Labels not
// in the alphabet at all fail with ErrUnknownRowLabel; labels in the
// alphabet but past the plate's last row fail with
// ErrPositionOutOfBounds.
func (g Geometry) RowNumber(label string) (int, error) {
	n := alphabetIndex(label)
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRowLabel, label)
	}
	if n > g.Rows {
		return 0, fmt.Errorf("%w: row %q is row %d, plate has %d rows", ErrPositionOutOfBounds, label, n, g.Rows)
	}
	return n, nil
}

// alphabetIndex returns the 1-based index of a label in the full A..AF
// sequence, or 0 when the label is not part of it. Matching is
// case-insensitive.
func alphabetIndex(label string) int {
	up := strings.ToUpper(label)
	switch len(up) {
	case 1:
		if up[0] >= 'A' && up[0] <= 'Z' {
			return int(up[0]-'A') + 1
		}
	case 2:
		if up[0] == 'A' && up[1] >= 'A' && up[1] <= 'F' {
			return 26 + int(up[1]-'A') + 1
		}
	}
	return 0
}
