package well

import (
	"testing"

	"github.com/wellgrid/platemap-go/pkg/platemap/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		value    models.Value
		expected Notation
	}{
		{models.StringValue("A1"), LetterNumber},
		{models.StringValue("a1"), LetterNumber},
		{models.StringValue("AB24"), LetterNumber},
		{models.StringValue("H12"), LetterNumber},
		{models.StringValue("1_1"), RowColumn},
		{models.StringValue("8_12"), RowColumn},
		{models.StringValue("42"), Sequential},
		{models.NumberValue(42), Sequential},
		{models.NumberValue(1.5), Sequential},
		{models.StringValue("??"), Unknown},
		{models.StringValue("A1B"), Unknown},
		{models.StringValue("1_"), Unknown},
		{models.StringValue("_1"), Unknown},
		{models.StringValue("1_2_3"), Unknown},
		{models.StringValue(""), Unknown},
		{models.MissingValue, Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.value); got != tt.expected {
			t.Errorf("Detect(%q) = %q, expected %q", tt.value.String(), got, tt.expected)
		}
	}
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input    string
		expected Notation
	}{
		{"letternumber", LetterNumber},
		{"LetterNumber", LetterNumber},
		{"letter_number", LetterNumber},
		{"sequential", Sequential},
		{"row-column", RowColumn},
		{"rowcolumn", RowColumn},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.input)
		if err != nil {
			t.Fatalf("ParseNotation(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseNotation(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseNotation("wellid"); err == nil {
		t.Error("ParseNotation(wellid): expected error")
	}
}
