package types

import "fmt"

// InputValidationError reports a non-numeric or out-of-range field.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("input error: %s: %s", e.Field, e.Reason)
}

// StackupStructureError reports a stackup that cannot be resolved: missing
// plane, stray copper in the dielectric span, or an invalid span layer.
type StackupStructureError struct {
	Layer  string
	Reason string
}

func (e *StackupStructureError) Error() string {
	return fmt.Sprintf("stackup error: %s: %s", e.Layer, e.Reason)
}

// ImportSizeMismatchError reports a CSV whose row count differs from the
// current stackup.
type ImportSizeMismatchError struct {
	Rows int
	Want int
}

func (e *ImportSizeMismatchError) Error() string {
	return fmt.Sprintf(
		"stackup size mismatch: file row count (%d) does not match existing stackup (%d)",
		e.Rows, e.Want,
	)
}
