package platemap

import (
	"errors"
	"fmt"
)

// ErrDuplicatePosition indicates two records addressing the same well
// within one plate group.
var ErrDuplicatePosition = errors.New("duplicate position")

// ErrInvalidStartPosition indicates a plate-map start position whose
// letter is unrecognized or whose column is out of bounds.
var ErrInvalidStartPosition = errors.New("invalid start position")

// NormalizeError reports which stage of normalization failed. The
// column-inference chain is heuristic, so callers need to know what was
// examined in order to supply the right explicit hint.
type NormalizeError struct {
	// Stage is one of "position", "value", "plate", "detect",
	// "convert", "assemble".
	Stage string
	Err   error
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize: %s stage: %v", e.Stage, e.Err)
}

func (e *NormalizeError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) *NormalizeError {
	return &NormalizeError{Stage: stage, Err: err}
}
