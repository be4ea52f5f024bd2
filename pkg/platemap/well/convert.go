package well

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

// ErrInvalidPositionFormat indicates a position value that cannot be
// parsed in its declared notation.
var ErrInvalidPositionFormat = errors.New("invalid position format")

// ErrPositionOutOfBounds indicates a row, column or sequential index
// outside the plate's geometry.
var ErrPositionOutOfBounds = errors.New("position out of bounds")

// ErrUnknownRowLabel indicates a row letter that is not part of the
// row-label alphabet.
var ErrUnknownRowLabel = errors.New("unknown row label")

// Convert re-serializes a single well position from one notation to
// another for the given geometry. The three notations are in bijection
// for a fixed geometry, so conversion is lossless and round-trips
// exactly. Identity conversions return the value unchanged without
// validation.
func Convert(v models.Value, from, to Notation, g Geometry) (models.Value, error) {
	if from == to {
		return v, nil
	}
	row, col, err := parsePosition(v, from, g)
	if err != nil {
		return models.MissingValue, err
	}
	return formatPosition(row, col, to, g)
}

// ParseLetterNumber splits a combined position like "C3" or "AB24" into
// its 1-based row and column numbers, validating both against the
// geometry.
func ParseLetterNumber(s string, g Geometry) (row, col int, err error) {
	m := letterNumberSplitRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q is not a letter-number position", ErrInvalidPositionFormat, s)
	}
	row, err = g.RowNumber(m[1])
	if err != nil {
		return 0, 0, err
	}
	col, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPositionFormat, s)
	}
	if col < 1 || col > g.Cols {
		return 0, 0, fmt.Errorf("%w: column %d not in [1, %d]", ErrPositionOutOfBounds, col, g.Cols)
	}
	return row, col, nil
}

var letterNumberSplitRe = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// parsePosition resolves a serialized position to its 1-based row and
// column numbers.
func parsePosition(v models.Value, from Notation, g Geometry) (int, int, error) {
	switch from {
	case LetterNumber:
		return ParseLetterNumber(v.String(), g)
	case Sequential:
		idx, err := sequentialIndex(v)
		if err != nil {
			return 0, 0, err
		}
		if idx < 1 || idx > g.Wells {
			return 0, 0, fmt.Errorf("%w: index %d not in [1, %d]", ErrPositionOutOfBounds, idx, g.Wells)
		}
		row := (idx-1)/g.Cols + 1
		col := (idx-1)%g.Cols + 1
		return row, col, nil
	case RowColumn:
		return parseRowColumn(v.String(), g)
	}
	return 0, 0, fmt.Errorf("%w: unsupported source notation %q", ErrInvalidPositionFormat, from)
}

// formatPosition serializes 1-based row and column numbers in the
// target notation. Sequential output is numeric; the other notations
// are strings.
func formatPosition(row, col int, to Notation, g Geometry) (models.Value, error) {
	switch to {
	case LetterNumber:
		label, err := g.RowLabel(row)
		if err != nil {
			return models.MissingValue, err
		}
		return models.StringValue(label + strconv.Itoa(col)), nil
	case Sequential:
		return models.NumberValue(float64((row-1)*g.Cols + col)), nil
	case RowColumn:
		return models.StringValue(fmt.Sprintf("%d_%d", row, col)), nil
	}
	return models.MissingValue, fmt.Errorf("%w: unsupported target notation %q", ErrInvalidPositionFormat, to)
}

// sequentialIndex reads a sequential position, accepting numeric cells
// and digit strings. Non-integral numbers are rejected.
func sequentialIndex(v models.Value) (int, error) {
	switch v.Kind {
	case models.KindNumber:
		if v.Num != math.Trunc(v.Num) {
			return 0, fmt.Errorf("%w: sequential index %v is not an integer", ErrInvalidPositionFormat, v.Num)
		}
		return int(v.Num), nil
	case models.KindString:
		idx, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a sequential index", ErrInvalidPositionFormat, v.Str)
		}
		return idx, nil
	}
	return 0, fmt.Errorf("%w: missing position", ErrInvalidPositionFormat)
}

func parseRowColumn(s string, g Geometry) (int, int, error) {
	trimmed := strings.TrimSpace(s)
	if !rowColumnRe.MatchString(trimmed) {
		return 0, 0, fmt.Errorf("%w: %q is not a row_column position", ErrInvalidPositionFormat, s)
	}
	parts := strings.SplitN(trimmed, "_", 2)
	row, _ := strconv.Atoi(parts[0])
	col, _ := strconv.Atoi(parts[1])
	if row < 1 || row > g.Rows {
		return 0, 0, fmt.Errorf("%w: row %d not in [1, %d]", ErrPositionOutOfBounds, row, g.Rows)
	}
	if col < 1 || col > g.Cols {
		return 0, 0, fmt.Errorf("%w: column %d not in [1, %d]", ErrPositionOutOfBounds, col, g.Cols)
	}
	return row, col, nil
}
