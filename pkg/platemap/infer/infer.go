package infer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

// ErrMissingColumn indicates an explicitly named column that is not in
// the table.
var ErrMissingColumn = errors.New("missing column")

// ErrPositionColumnNotFound indicates that neither hints nor the
// catalog located any position information.
var ErrPositionColumnNotFound = errors.New("position column not found")

// ErrValueColumnNotFound indicates that neither hints nor the catalog
// nor the numeric-column fallback located a value column.
var ErrValueColumnNotFound = errors.New("value column not found")

// Hints carries the caller's explicit column choices. Empty fields fall
// back to catalog scanning.
type Hints struct {
	// Position names the combined position column.
	Position string
	// Row and Col name a separate row/column field pair; set together.
	Row, Col string
	// RowIsNumeric declares whether the row field carries row numbers
	// rather than letters. Nil means infer from the first sample.
	RowIsNumeric *bool
	// Value names the measurement column.
	Value string
	// Plate names the plate-identifier column for multi-plate tables.
	Plate string
}

// PositionPick describes where the resolver found position information.
type PositionPick struct {
	// Column is the combined position column index; -1 when pair-based.
	Column int
	// Row and Col are the pair column indexes when PairBased.
	Row, Col int
	// PairBased reports that positions must be synthesized from
	// separate row and column fields.
	PairBased bool
	// RowIsNumeric reports that the pair's row field carries row
	// numbers rather than letters.
	RowIsNumeric bool
	// Source names the stage that matched, for error reporting:
	// "hint:pair", "hint:position", "catalog:position", "catalog:pair".
	Source string
}

var lettersOnlyRe = regexp.MustCompile(`^[A-Za-z]+$`)

// ResolvePosition locates position information in the table. Explicit
// hints win over catalog scanning, and a combined-column match wins
// over a name-pair match.
func ResolvePosition(t *models.Table, h Hints, cat Catalog) (PositionPick, error) {
	if h.Row != "" || h.Col != "" {
		return resolvePairHint(t, h)
	}
	if h.Position != "" {
		idx := t.ColumnIndex(h.Position)
		if idx < 0 {
			return PositionPick{}, fmt.Errorf("%w: position column %q", ErrMissingColumn, h.Position)
		}
		return PositionPick{Column: idx, Row: -1, Col: -1, Source: "hint:position"}, nil
	}
	for _, name := range cat.Position {
		if idx := t.ColumnIndex(name); idx >= 0 {
			return PositionPick{Column: idx, Row: -1, Col: -1, Source: "catalog:position"}, nil
		}
	}
	for _, pair := range cat.RowColumn {
		rowIdx := t.ColumnIndex(pair[0])
		colIdx := t.ColumnIndex(pair[1])
		if rowIdx >= 0 && colIdx >= 0 {
			numeric, err := rowFieldIsNumeric(t, rowIdx)
			if err != nil {
				return PositionPick{}, err
			}
			return PositionPick{
				Column:       -1,
				Row:          rowIdx,
				Col:          colIdx,
				PairBased:    true,
				RowIsNumeric: numeric,
				Source:       "catalog:pair",
			}, nil
		}
	}
	return PositionPick{}, fmt.Errorf(
		"%w: no hint given and no conventional name matched (tried columns %s; row/column pairs %s)",
		ErrPositionColumnNotFound, strings.Join(cat.Position, ", "), formatPairs(cat.RowColumn))
}

func resolvePairHint(t *models.Table, h Hints) (PositionPick, error) {
	if h.Row == "" || h.Col == "" {
		return PositionPick{}, fmt.Errorf("%w: row/column pair needs both names (got row=%q, col=%q)", ErrMissingColumn, h.Row, h.Col)
	}
	rowIdx := t.ColumnIndex(h.Row)
	if rowIdx < 0 {
		return PositionPick{}, fmt.Errorf("%w: row column %q", ErrMissingColumn, h.Row)
	}
	colIdx := t.ColumnIndex(h.Col)
	if colIdx < 0 {
		return PositionPick{}, fmt.Errorf("%w: column column %q", ErrMissingColumn, h.Col)
	}
	pick := PositionPick{Column: -1, Row: rowIdx, Col: colIdx, PairBased: true, Source: "hint:pair"}
	if h.RowIsNumeric != nil {
		pick.RowIsNumeric = *h.RowIsNumeric
		return pick, nil
	}
	numeric, err := rowFieldIsNumeric(t, rowIdx)
	if err != nil {
		return PositionPick{}, err
	}
	pick.RowIsNumeric = numeric
	return pick, nil
}

// rowFieldIsNumeric inspects the first sample of a row field to decide
// whether it carries row numbers or row letters.
func rowFieldIsNumeric(t *models.Table, rowIdx int) (bool, error) {
	sample := t.FirstSample(rowIdx)
	switch sample.Kind {
	case models.KindNumber:
		return true, nil
	case models.KindString:
		s := strings.TrimSpace(sample.Str)
		if _, ok := digitsOnly(s); ok {
			return true, nil
		}
		if lettersOnlyRe.MatchString(s) {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: row field %q sample %q is neither a row letter nor a row number",
		well.ErrUnrecognizedPositionFormat, t.Columns[rowIdx], sample.String())
}

func digitsOnly(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return s, true
}

// ResolveValue locates the measurement column. Explicit hint, then the
// catalog, then the first numeric column not already consumed for
// position or plate.
func ResolveValue(t *models.Table, h Hints, cat Catalog, used []int) (int, error) {
	if h.Value != "" {
		idx := t.ColumnIndex(h.Value)
		if idx < 0 {
			return -1, fmt.Errorf("%w: value column %q", ErrMissingColumn, h.Value)
		}
		return idx, nil
	}
	for _, name := range cat.Value {
		if idx := t.ColumnIndex(name); idx >= 0 && !contains(used, idx) {
			return idx, nil
		}
	}
	for idx := range t.Columns {
		if contains(used, idx) {
			continue
		}
		if t.FirstSample(idx).Kind == models.KindNumber {
			return idx, nil
		}
	}
	return -1, fmt.Errorf("%w: no hint given, no conventional name matched (tried %s), and no unused numeric column remains",
		ErrValueColumnNotFound, strings.Join(cat.Value, ", "))
}

// ResolvePlate locates the plate-identifier column. Plates are only
// grouped when explicitly hinted; without a hint the table is treated
// as a single plate and -1 is returned.
func ResolvePlate(t *models.Table, h Hints) (int, error) {
	if h.Plate == "" {
		return -1, nil
	}
	idx := t.ColumnIndex(h.Plate)
	if idx < 0 {
		return -1, fmt.Errorf("%w: plate column %q", ErrMissingColumn, h.Plate)
	}
	return idx, nil
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func formatPairs(pairs [][2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%s, %s)", p[0], p[1])
	}
	return strings.Join(parts, ", ")
}
