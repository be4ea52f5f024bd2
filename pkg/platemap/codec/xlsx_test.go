package codec

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "well")
	f.SetCellValue(sheetName, "B1", "od600")
	f.SetCellValue(sheetName, "A2", "A1")
	f.SetCellValue(sheetName, "B2", 0.31)
	f.SetCellValue(sheetName, "A3", "H12")
	f.SetCellValue(sheetName, "B3", 2)

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "plate.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}

	tab, err := ReadXLSX(tmpFile, "")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	if len(tab.Columns) != 2 || tab.Columns[0] != "well" || tab.Columns[1] != "od600" {
		t.Fatalf("unexpected header %v", tab.Columns)
	}
	if tab.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", tab.NumRows())
	}
	if v := tab.Cell(0, 0); v.Kind != models.KindString || v.Str != "A1" {
		t.Errorf("expected string A1, got %v", v)
	}
	if v := tab.Cell(0, 1); v.Kind != models.KindNumber || v.Num != 0.31 {
		t.Errorf("expected number 0.31, got %v", v)
	}
	if v := tab.Cell(1, 1); v.Kind != models.KindNumber || v.Num != 2 {
		t.Errorf("expected number 2, got %v", v)
	}
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	tab := models.NewTable("position", "value", "plate")
	tab.AppendRow(models.StringValue("A1"), models.NumberValue(0.5), models.StringValue("p1"))
	tab.AppendRow(models.StringValue("B2"), models.MissingValue, models.StringValue("p1"))

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "out.xlsx")
	if err := WriteXLSX(tab, tmpFile, "plate data"); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	back, err := ReadXLSX(tmpFile, "plate data")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	if back.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", back.NumRows())
	}
	if back.Cell(0, 0).Str != "A1" || back.Cell(0, 1).Num != 0.5 {
		t.Errorf("row 1 mismatch: %v", back.Rows[0])
	}
	if back.Cell(1, 0).Str != "B2" {
		t.Errorf("row 2 mismatch: %v", back.Rows[1])
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "well")

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "plate.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}

	if _, err := ReadXLSX(tmpFile, "nope"); err == nil {
		t.Error("expected error for missing sheet")
	}
}
