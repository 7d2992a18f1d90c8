package transport

import (
	"errors"
	"fmt"
)

// DataIntegrityError reports an ID used in a requirement table that does
// not exist in the entity catalog. It is fatal to the run.
type DataIntegrityError struct {
	Table string
	Field string
	ID    string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s table references unknown %s %q", e.Table, e.Field, e.ID)
}

// NegativeCapacityError reports a capacity entry whose utilization exceeds
// 100%, yielding negative available capacity. It is fatal to the run.
type NegativeCapacityError struct {
	Facility    FacilityID
	Product     ProductID
	Capacity    float64
	Utilization float64
}

func (e *NegativeCapacityError) Error() string {
	return fmt.Sprintf("negative available capacity for facility %s product %s: capacity %.2f at utilization %.2f",
		e.Facility, e.Product, e.Capacity, e.Utilization)
}

// DecodeAmbiguityError reports an identifier that cannot be encoded or
// decoded unambiguously because an ID collides with the encoding's
// delimiter characters. It is fatal to the run.
type DecodeAmbiguityError struct {
	Identifier string
	Reason     string
}

func (e *DecodeAmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous variable identifier %q: %s", e.Identifier, e.Reason)
}

// SolverFailureError reports a non-Optimal solver outcome or an
// adapter-level failure. The status is preserved for the caller's
// diagnostics; no partial shipment plan is produced.
type SolverFailureError struct {
	Status SolveStatus
	Err    error
}

func (e *SolverFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver failed with status %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("solver failed with status %s", e.Status)
}

func (e *SolverFailureError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is one of the error kinds that must abort
// the run before any partial output is produced.
func IsFatal(err error) bool {
	var di *DataIntegrityError
	var nc *NegativeCapacityError
	var da *DecodeAmbiguityError
	return errors.As(err, &di) || errors.As(err, &nc) || errors.As(err, &da)
}
