// Package codec reads and writes plate tables in the supported file
// formats. Codecs only produce and consume the generic table and
// dataset models; interpreting positions is the core's job.
package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
	"github.com/wellgrid/platemap-go/pkg/platemap/well"
)

// DelimiterFor returns the field delimiter conventional for a file
// name: tab for .tsv and .tab, comma otherwise.
func DelimiterFor(path string) rune {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tsv") || strings.HasSuffix(lower, ".tab") {
		return '\t'
	}
	return ','
}

// ReadCSV parses a delimited file into a generic table. The first
// record is the header; cells are typed with the usual
// integer-then-float-then-string fallback. Short rows are padded with
// missing cells.
func ReadCSV(path string, comma rune) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDelimited(f, comma, path)
}

func readDelimited(r io.Reader, comma rune, name string) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	t := models.NewTable(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		cells := make([]models.Value, len(rec))
		for i, s := range rec {
			cells[i] = models.Parse(s)
		}
		t.AppendRow(cells...)
	}
	return t, nil
}

// WriteCSV writes a table as a delimited file.
func WriteCSV(t *models.Table, path string, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeDelimited(t, f, comma)
}

// WriteCSVTo writes a table to a stream, for stdout output.
func WriteCSVTo(t *models.Table, w io.Writer, comma rune) error {
	return writeDelimited(t, w, comma)
}

func writeDelimited(t *models.Table, w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			rec[i] = v.String()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DatasetTable lays a normalized dataset out as a table for export.
// With split false the columns are position, value[, plate]. With split
// true the position is re-split into separate row and column fields
// through the position codec in reverse, giving row, column,
// value[, plate]; this needs the dataset's geometry.
func DatasetTable(ds *models.Dataset, split bool, g well.Geometry) (*models.Table, error) {
	if !split {
		cols := []string{"position", "value"}
		if ds.HasPlate {
			cols = append(cols, "plate")
		}
		t := models.NewTable(cols...)
		for _, rec := range ds.Records {
			cells := []models.Value{models.Parse(rec.Position), rec.Value}
			if ds.HasPlate {
				cells = append(cells, models.StringValue(rec.Plate))
			}
			t.AppendRow(cells...)
		}
		return t, nil
	}

	cols := []string{"row", "column", "value"}
	if ds.HasPlate {
		cols = append(cols, "plate")
	}
	t := models.NewTable(cols...)
	for _, rec := range ds.Records {
		rc, err := well.Convert(models.Parse(rec.Position), well.Notation(ds.Notation), well.RowColumn, g)
		if err != nil {
			return nil, fmt.Errorf("split position %q: %w", rec.Position, err)
		}
		parts := strings.SplitN(rc.String(), "_", 2)
		rowNum, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("split position %q: %w", rec.Position, err)
		}
		label, err := g.RowLabel(rowNum)
		if err != nil {
			return nil, fmt.Errorf("split position %q: %w", rec.Position, err)
		}
		cells := []models.Value{models.StringValue(label), models.Parse(parts[1]), rec.Value}
		if ds.HasPlate {
			cells = append(cells, models.StringValue(rec.Plate))
		}
		t.AppendRow(cells...)
	}
	return t, nil
}
