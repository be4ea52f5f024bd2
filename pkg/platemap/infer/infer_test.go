package infer

import (
	"errors"
	"testing"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

func makeTable(columns []string, rows ...[]models.Value) *models.Table {
	t := models.NewTable(columns...)
	for _, r := range rows {
		t.AppendRow(r...)
	}
	return t
}

func TestResolvePositionHint(t *testing.T) {
	tab := makeTable([]string{"Well", "OD600"},
		[]models.Value{models.StringValue("A1"), models.NumberValue(0.3)})

	pick, err := ResolvePosition(tab, Hints{Position: "well"}, DefaultCatalog())
	if err != nil {
		t.Fatalf("ResolvePosition failed: %v", err)
	}
	if pick.Column != 0 || pick.PairBased {
		t.Errorf("expected combined column 0, got %+v", pick)
	}
	if pick.Source != "hint:position" {
		t.Errorf("expected source hint:position, got %q", pick.Source)
	}

	_, err = ResolvePosition(tab, Hints{Position: "nope"}, DefaultCatalog())
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestResolvePositionPairHint(t *testing.T) {
	tab := makeTable([]string{"plate_row", "plate_column", "sample_type"},
		[]models.Value{models.StringValue("A"), models.NumberValue(1), models.StringValue("blank")})

	pick, err := ResolvePosition(tab, Hints{Row: "plate_row", Col: "plate_column"}, DefaultCatalog())
	if err != nil {
		t.Fatalf("ResolvePosition failed: %v", err)
	}
	if !pick.PairBased || pick.Row != 0 || pick.Col != 1 {
		t.Errorf("expected pair (0, 1), got %+v", pick)
	}
	if pick.RowIsNumeric {
		t.Error("expected letter-valued row field")
	}

	_, err = ResolvePosition(tab, Hints{Row: "plate_row", Col: "missing"}, DefaultCatalog())
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}

	// One-sided pair hints are rejected rather than silently ignored.
	_, err = ResolvePosition(tab, Hints{Row: "plate_row"}, DefaultCatalog())
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn for half a pair, got %v", err)
	}
}

func TestResolvePositionCatalog(t *testing.T) {
	tab := makeTable([]string{"Sample", "Position", "Signal"},
		[]models.Value{models.StringValue("s1"), models.StringValue("B7"), models.NumberValue(1.0)})

	pick, err := ResolvePosition(tab, Hints{}, DefaultCatalog())
	if err != nil {
		t.Fatalf("ResolvePosition failed: %v", err)
	}
	if pick.Column != 1 || pick.Source != "catalog:position" {
		t.Errorf("expected catalog match on column 1, got %+v", pick)
	}
}

func TestResolvePositionCatalogPair(t *testing.T) {
	tab := makeTable([]string{"row", "col", "reading"},
		[]models.Value{models.NumberValue(2), models.NumberValue(5), models.NumberValue(0.7)})

	pick, err := ResolvePosition(tab, Hints{}, DefaultCatalog())
	if err != nil {
		t.Fatalf("ResolvePosition failed: %v", err)
	}
	if !pick.PairBased || pick.Source != "catalog:pair" {
		t.Errorf("expected catalog pair match, got %+v", pick)
	}
	if !pick.RowIsNumeric {
		t.Error("expected numeric row field inferred from sample")
	}
}

func TestResolvePositionNotFound(t *testing.T) {
	tab := makeTable([]string{"sample", "reading"},
		[]models.Value{models.StringValue("s1"), models.NumberValue(1.0)})

	_, err := ResolvePosition(tab, Hints{}, DefaultCatalog())
	if !errors.Is(err, ErrPositionColumnNotFound) {
		t.Fatalf("expected ErrPositionColumnNotFound, got %v", err)
	}
	// The error names the candidates that were tried so the caller can
	// pick the right hint.
	if msg := err.Error(); len(msg) < 40 {
		t.Errorf("error should list tried candidates, got %q", msg)
	}
}

func TestResolveValue(t *testing.T) {
	tab := makeTable([]string{"well", "temp", "OD600"},
		[]models.Value{models.StringValue("A1"), models.StringValue("warm"), models.NumberValue(0.3)})
	cat := DefaultCatalog()

	idx, err := ResolveValue(tab, Hints{Value: "temp"}, cat, []int{0})
	if err != nil || idx != 1 {
		t.Errorf("hinted value: expected column 1, got %d (err %v)", idx, err)
	}

	idx, err = ResolveValue(tab, Hints{}, cat, []int{0})
	if err != nil || idx != 2 {
		t.Errorf("catalog value: expected column 2 (od600), got %d (err %v)", idx, err)
	}

	_, err = ResolveValue(tab, Hints{Value: "nope"}, cat, []int{0})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestResolveValueNumericFallback(t *testing.T) {
	tab := makeTable([]string{"well", "operator", "reading"},
		[]models.Value{models.StringValue("A1"), models.StringValue("jd"), models.NumberValue(12.5)})

	idx, err := ResolveValue(tab, Hints{}, DefaultCatalog(), []int{0})
	if err != nil || idx != 2 {
		t.Errorf("numeric fallback: expected column 2, got %d (err %v)", idx, err)
	}
}

func TestResolveValueNotFound(t *testing.T) {
	tab := makeTable([]string{"well", "operator"},
		[]models.Value{models.StringValue("A1"), models.StringValue("jd")})

	_, err := ResolveValue(tab, Hints{}, DefaultCatalog(), []int{0})
	if !errors.Is(err, ErrValueColumnNotFound) {
		t.Errorf("expected ErrValueColumnNotFound, got %v", err)
	}
}

func TestResolvePlate(t *testing.T) {
	tab := makeTable([]string{"well", "value", "plate"},
		[]models.Value{models.StringValue("A1"), models.NumberValue(1), models.StringValue("p1")})

	idx, err := ResolvePlate(tab, Hints{})
	if err != nil || idx != -1 {
		t.Errorf("no hint: expected -1, got %d (err %v)", idx, err)
	}

	idx, err = ResolvePlate(tab, Hints{Plate: "plate"})
	if err != nil || idx != 2 {
		t.Errorf("hinted: expected 2, got %d (err %v)", idx, err)
	}

	_, err = ResolvePlate(tab, Hints{Plate: "barcode"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}
