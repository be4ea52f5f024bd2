package platemap

import (
	"fmt"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

// Generate enumerates well positions for a plate in row-major reading
// order beginning at start (a LetterNumber position), serialized in the
// target notation. With includeAll the enumeration wraps past the last
// well back to A1 and covers the whole plate; otherwise it stops at the
// plate boundary and yields only the wells from start onward.
//
// The resulting dataset is value-less and its record order is part of
// the contract: consumers use it directly as a pipetting or template
// order.
func Generate(wells int, start string, target well.Notation, includeAll bool) (*models.Dataset, error) {
	g, err := well.Dimensions(wells)
	if err != nil {
		return nil, err
	}
	row, col, err := well.ParseLetterNumber(start, g)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidStartPosition, start, err)
	}

	startIdx := (row-1)*g.Cols + col
	order := make([]int, 0, g.Wells)
	for i := startIdx; i <= g.Wells; i++ {
		order = append(order, i)
	}
	if includeAll {
		for i := 1; i < startIdx; i++ {
			order = append(order, i)
		}
	}

	ds := &models.Dataset{Notation: string(target)}
	for _, idx := range order {
		v, err := well.Convert(models.NumberValue(float64(idx)), well.Sequential, target, g)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, models.Record{Position: v.String()})
	}
	return ds, nil
}
