package models

// Record is one normalized well measurement.
type Record struct {
	// Position is the serialized well address in the dataset's notation.
	Position string `json:"position"`
	// Value is the measurement, possibly missing for template datasets.
	Value Value `json:"value"`
	// Plate identifies the plate group; empty for single-plate data.
	Plate string `json:"plate,omitempty"`
}

// Dataset is the canonical normalized output: ordered records whose
// positions all share one notation. Record order is significant and
// preserved from the input (or from the generator's enumeration).
type Dataset struct {
	// Notation names the serialization every Position uses.
	Notation string `json:"notation"`
	// HasPlate reports whether records carry plate identifiers.
	HasPlate bool `json:"has_plate,omitempty"`
	// Records holds the normalized rows.
	Records []Record `json:"records"`
}
