package platemap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wellgrid/platemap-go/pkg/platemap/infer"
	"github.com/wellgrid/platemap-go/pkg/platemap/models"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

// Normalize converts an arbitrary plate table into the canonical
// (position, value[, plate]) dataset in the requested notation.
//
// Position information is located by the inference chain in the infer
// package, the source notation is detected from the first non-missing
// sample, and every position is converted to the target notation when
// the two differ. The call is atomic: any row that cannot be resolved
// or converted fails the whole call and produces no partial output.
func Normalize(t *models.Table, opts Options) (*models.Dataset, error) {
	cat := opts.catalog()
	hints := opts.hints()

	pick, err := infer.ResolvePosition(t, hints, cat)
	if err != nil {
		return nil, stageErr("position", err)
	}

	plateIdx, err := infer.ResolvePlate(t, hints)
	if err != nil {
		return nil, stageErr("plate", err)
	}

	used := []int{plateIdx}
	if pick.PairBased {
		used = append(used, pick.Row, pick.Col)
	} else {
		used = append(used, pick.Column)
	}
	valueIdx, err := infer.ResolveValue(t, hints, cat, used)
	if err != nil {
		return nil, stageErr("value", err)
	}

	var geom *well.Geometry
	geometry := func() (well.Geometry, error) {
		if geom == nil {
			g, err := well.Dimensions(opts.PlateSize)
			if err != nil {
				return well.Geometry{}, err
			}
			geom = &g
		}
		return *geom, nil
	}

	var positions []models.Value
	source := well.LetterNumber
	if pick.PairBased {
		positions, err = synthesizePositions(t, pick, geometry)
		if err != nil {
			return nil, stageErr("position", err)
		}
	} else {
		positions = make([]models.Value, t.NumRows())
		for i := range positions {
			positions[i] = t.Cell(i, pick.Column)
		}
		sample := t.FirstSample(pick.Column)
		source = well.Detect(sample)
		if source == well.Unknown {
			return nil, stageErr("detect", fmt.Errorf("%w: sample %q in column %q",
				well.ErrUnrecognizedPositionFormat, sample.String(), t.Columns[pick.Column]))
		}
	}

	target := opts.format()
	if source != target {
		g, err := geometry()
		if err != nil {
			return nil, stageErr("convert", err)
		}
		for i, p := range positions {
			conv, err := well.Convert(p, source, target, g)
			if err != nil {
				return nil, stageErr("convert", fmt.Errorf("row %d: %w", i+1, err))
			}
			positions[i] = conv
		}
	}

	ds := &models.Dataset{
		Notation: string(target),
		HasPlate: plateIdx >= 0,
	}
	seen := make(map[string]map[string]bool)
	for i, p := range positions {
		pos := p.String()
		if pos == "" {
			return nil, stageErr("assemble", fmt.Errorf("%w: row %d has no position", well.ErrInvalidPositionFormat, i+1))
		}
		plate := ""
		if plateIdx >= 0 {
			plate = t.Cell(i, plateIdx).String()
		}
		if seen[plate] == nil {
			seen[plate] = make(map[string]bool)
		}
		if seen[plate][pos] {
			if plate != "" {
				return nil, stageErr("assemble", fmt.Errorf("%w: %q in plate %q", ErrDuplicatePosition, pos, plate))
			}
			return nil, stageErr("assemble", fmt.Errorf("%w: %q", ErrDuplicatePosition, pos))
		}
		seen[plate][pos] = true
		ds.Records = append(ds.Records, models.Record{
			Position: pos,
			Value:    t.Cell(i, valueIdx),
			Plate:    plate,
		})
	}
	return ds, nil
}

var rowLettersRe = regexp.MustCompile(`^[A-Za-z]+$`)

// synthesizePositions builds combined letter-number positions from a
// separate row/column field pair. Numeric row fields resolve through
// the geometry's row-label sequence and therefore require a plate size;
// letter row fields concatenate directly.
func synthesizePositions(t *models.Table, pick infer.PositionPick, geometry func() (well.Geometry, error)) ([]models.Value, error) {
	positions := make([]models.Value, t.NumRows())
	for i := range positions {
		rowCell := t.Cell(i, pick.Row)
		colCell := t.Cell(i, pick.Col)

		colNum, err := cellInt(colCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: column field: %w", i+1, err)
		}

		var label string
		if pick.RowIsNumeric {
			rowNum, err := cellInt(rowCell)
			if err != nil {
				return nil, fmt.Errorf("row %d: row field: %w", i+1, err)
			}
			g, err := geometry()
			if err != nil {
				return nil, err
			}
			label, err = g.RowLabel(rowNum)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		} else {
			s := strings.TrimSpace(rowCell.Str)
			if rowCell.Kind != models.KindString || !rowLettersRe.MatchString(s) {
				return nil, fmt.Errorf("row %d: %w: row field %q is not a row letter",
					i+1, well.ErrUnrecognizedPositionFormat, rowCell.String())
			}
			label = strings.ToUpper(s)
		}
		positions[i] = models.StringValue(label + strconv.Itoa(colNum))
	}
	return positions, nil
}

// cellInt reads a positive integer from a numeric or digit-string cell.
func cellInt(v models.Value) (int, error) {
	switch v.Kind {
	case models.KindNumber:
		n := int(v.Num)
		if float64(n) == v.Num && n >= 1 {
			return n, nil
		}
	case models.KindString:
		if n, err := strconv.Atoi(strings.TrimSpace(v.Str)); err == nil && n >= 1 {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a positive integer", well.ErrInvalidPositionFormat, v.String())
}
