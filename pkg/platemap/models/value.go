// Package models defines the data structures exchanged with the plate
// normalization core: tagged cell values, the generic input table, and
// the normalized dataset.
package models

import "strconv"

// ValueKind tags the representation a cell value arrived in.
type ValueKind uint8

const (
	// KindMissing marks an absent or empty cell.
	KindMissing ValueKind = iota
	// KindString marks a textual cell.
	KindString
	// KindNumber marks a numeric cell.
	KindNumber
)

// Value is a single table cell. Raw tabular input carries no schema, so
// every cell keeps the representation it arrived in instead of being
// coerced up front.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

// MissingValue is the absent cell.
var MissingValue = Value{Kind: KindMissing}

// StringValue wraps a textual cell.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue wraps a numeric cell.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// String returns the display form of the value. Numbers use the
// shortest representation that round-trips, so integral values carry no
// decimal point. Missing values render as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return ""
}

// Parse attempts to read a raw string cell as a number. Integers and
// decimals become KindNumber, the empty string becomes KindMissing, and
// everything else stays a string.
func Parse(s string) Value {
	if s == "" {
		return MissingValue
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberValue(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(f)
	}
	return StringValue(s)
}
