package analyses

import (
	"errors"
	"fmt"

	"mindscore-backend/internal/affect"
)

var (
	// ErrInvalidInput marks request problems caught before scoring.
	ErrInvalidInput = errors.New("invalid input")
	// ErrClassifier marks failures of a classifier collaborator.
	ErrClassifier = errors.New("classifier failed")
)

// ClassifierError wraps a collaborator failure with the kind it was asked for.
type ClassifierError struct {
	Kind affect.Kind
	Err  error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Kind, e.Err)
}

func (e *ClassifierError) Unwrap() []error { return []error{ErrClassifier, e.Err} }

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
