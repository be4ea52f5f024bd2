// Package platemap normalizes microplate tabular data into a canonical
// (position, value[, plate]) dataset and generates plate-map templates.
// It works on already-parsed tables only; file reading and writing live
// in the codec package, rendering is out of scope entirely.
package platemap

import (
	"github.com/wellgrid/platemap-go/pkg/platemap/infer"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

// Options configures Normalize. All column hints are optional; empty
// hints fall back to catalog-driven auto-detection.
type Options struct {
	// PositionColumn names the column holding combined positions
	// ("A1", "42", "3_7").
	PositionColumn string
	// RowColumn and ColColumn name a separate row/column field pair.
	// Both must be set together, and they take precedence over
	// PositionColumn.
	RowColumn string
	ColColumn string
	// RowIsNumeric declares whether the row field carries row numbers
	// rather than letters. If nil, inferred from the first sample.
	RowIsNumeric *bool
	// ValueColumn names the measurement column.
	ValueColumn string
	// PlateColumn names the plate-identifier column. Without it the
	// table is treated as a single plate.
	PlateColumn string
	// TargetFormat is the output notation. Defaults to LetterNumber.
	TargetFormat well.Notation
	// PlateSize is the well count, required whenever conversion or
	// numeric row resolution needs geometry.
	PlateSize int
	// Catalog overrides the naming conventions scanned during
	// auto-detection. Nil uses infer.DefaultCatalog.
	Catalog *infer.Catalog
}

// DefaultOptions returns options that auto-detect everything and emit
// LetterNumber positions.
func DefaultOptions() Options {
	return Options{TargetFormat: well.LetterNumber}
}

func (o Options) format() well.Notation {
	if o.TargetFormat == well.Unknown {
		return well.LetterNumber
	}
	return o.TargetFormat
}

func (o Options) catalog() infer.Catalog {
	if o.Catalog != nil {
		return *o.Catalog
	}
	return infer.DefaultCatalog()
}

func (o Options) hints() infer.Hints {
	return infer.Hints{
		Position:     o.PositionColumn,
		Row:          o.RowColumn,
		Col:          o.ColColumn,
		RowIsNumeric: o.RowIsNumeric,
		Value:        o.ValueColumn,
		Plate:        o.PlateColumn,
	}
}
