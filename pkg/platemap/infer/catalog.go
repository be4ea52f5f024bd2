// Package infer resolves which columns of an untyped table carry well
// positions and measurement values, from explicit hints or from a
// catalog of conventional column names.
package infer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog lists the column names the resolver scans, in priority order.
// Matching is case-insensitive. Keeping the conventions as data means a
// new instrument export format is supported by adding names here (or in
// a user catalog file) without touching the resolution chain.
type Catalog struct {
	// Position holds candidate names for a combined position column.
	Position []string `yaml:"position"`
	// Value holds candidate names for the measurement column.
	Value []string `yaml:"value"`
	// RowColumn holds candidate name pairs for separate row and column
	// fields; a pair matches only when both names are present.
	RowColumn [][2]string `yaml:"row_column"`
}

// DefaultCatalog returns the built-in naming conventions.
func DefaultCatalog() Catalog {
	return Catalog{
		Position: []string{
			"position", "well", "well_id", "well_position",
			"pos", "location", "well_address",
		},
		Value: []string{
			"value", "values", "measurement", "signal",
			"od", "od600", "intensity", "readout", "result",
		},
		RowColumn: [][2]string{
			{"row", "col"},
			{"row", "column"},
			{"plate_row", "plate_column"},
			{"plate_row", "plate_col"},
			{"well_row", "well_col"},
			{"well_row", "well_column"},
		},
	}
}

// Merge returns a catalog that scans the receiver's entries before the
// fallback's. Duplicates are harmless since the first match wins.
func (c Catalog) Merge(fallback Catalog) Catalog {
	return Catalog{
		Position:  append(append([]string{}, c.Position...), fallback.Position...),
		Value:     append(append([]string{}, c.Value...), fallback.Value...),
		RowColumn: append(append([][2]string{}, c.RowColumn...), fallback.RowColumn...),
	}
}

// LoadCatalogFile reads extra naming conventions from a YAML file and
// merges them in front of the defaults, so user entries take precedence.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var extra Catalog
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return extra.Merge(DefaultCatalog()), nil
}
