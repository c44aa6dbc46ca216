package affect

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("invalid reading")
	ErrMissingSignal      = errors.New("missing signal")
	ErrIncompatibleSignal = errors.New("incompatible signals")
)

// ValidationError rejects a reading whose confidence is outside [0,1].
type ValidationError struct {
	Reading Reading
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s reading %q (confidence %v): %s", e.Reading.Kind, e.Reading.Category, e.Reading.Confidence, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// MissingSignalError reports that a required reading kind was not supplied.
type MissingSignalError struct {
	Need string
}

func (e *MissingSignalError) Error() string {
	return fmt.Sprintf("missing signal: %s reading is required", e.Need)
}

func (e *MissingSignalError) Unwrap() error { return ErrMissingSignal }

// IncompatibleSignalError is returned when two signals cannot be compared.
type IncompatibleSignalError struct {
	A, B Kind
}

func (e *IncompatibleSignalError) Error() string {
	return fmt.Sprintf("cannot compare %s signal with %s signal", e.A, e.B)
}

func (e *IncompatibleSignalError) Unwrap() error { return ErrIncompatibleSignal }
