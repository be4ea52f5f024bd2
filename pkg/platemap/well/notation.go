package well

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

// Notation identifies one of the serializations of a well address.
type Notation string

const (
	// LetterNumber is the conventional row-letter plus column-number
	// form, e.g. "A1" or "AB24".
	LetterNumber Notation = "letternumber"
	// Sequential is a bare 1-based index in row-major order (column
	// varies fastest).
	Sequential Notation = "sequential"
	// RowColumn is the underscore-separated numeric pair, e.g. "8_12".
	RowColumn Notation = "rowcolumn"
	// Unknown is returned by Detect when a sample matches no notation.
	Unknown Notation = ""
)

// ErrUnrecognizedPositionFormat indicates a position sample matching
// none of the supported notations.
var ErrUnrecognizedPositionFormat = errors.New("unrecognized position format")

var (
	letterNumberRe = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)
	rowColumnRe    = regexp.MustCompile(`^[0-9]+_[0-9]+$`)
	digitsRe       = regexp.MustCompile(`^[0-9]+$`)
)

// Detect classifies a sample position value. The rules apply in order
// and the first match wins: letters followed by digits is LetterNumber,
// digits-underscore-digits is RowColumn, and any numeric value or
// digit-only string is Sequential. A column of bare integers is
// therefore always read as Sequential positions, never as literal row
// numbers; callers that mean the latter must name the row/column pair
// explicitly.
func Detect(v models.Value) Notation {
	switch v.Kind {
	case models.KindNumber:
		return Sequential
	case models.KindString:
		s := strings.TrimSpace(v.Str)
		switch {
		case letterNumberRe.MatchString(s):
			return LetterNumber
		case rowColumnRe.MatchString(s):
			return RowColumn
		case digitsRe.MatchString(s):
			return Sequential
		}
	}
	return Unknown
}

// ParseNotation maps a user-supplied name to a Notation. Separators and
// case are ignored, so "letter_number" and "LetterNumber" both work.
func ParseNotation(s string) (Notation, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "letternumber":
		return LetterNumber, nil
	case "sequential":
		return Sequential, nil
	case "rowcolumn":
		return RowColumn, nil
	}
	return Unknown, fmt.Errorf("invalid notation %q (must be letternumber, sequential, or rowcolumn)", s)
}
