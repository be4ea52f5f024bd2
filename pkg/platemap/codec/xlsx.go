package codec

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

// ReadXLSX parses one sheet of a workbook into a generic table. An
// empty sheet name selects the first sheet. The first non-empty
// spreadsheet row is the header; excelize returns trailing-trimmed
// rows, so short rows are padded with missing cells.
func ReadXLSX(path, sheet string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}

	headerIdx := -1
	for i, row := range rows {
		if len(row) > 0 {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	t := models.NewTable(rows[headerIdx]...)
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		cells := make([]models.Value, len(row))
		for i, s := range row {
			cells[i] = models.Parse(s)
		}
		t.AppendRow(cells...)
	}
	return t, nil
}

// WriteXLSX writes a table as a single-sheet workbook.
func WriteXLSX(t *models.Table, path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	} else if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	for i, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, v := range row {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			switch v.Kind {
			case models.KindNumber:
				err = f.SetCellValue(sheet, cell, v.Num)
			default:
				err = f.SetCellValue(sheet, cell, v.Str)
			}
			if err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
