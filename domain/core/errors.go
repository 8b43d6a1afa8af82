package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrDatasetNotFound  = fmt.Errorf("%w: dataset", ErrNotFound)
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)

	// Data-shaped failures. These never cross the engine boundary as Go
	// errors; they are folded into the result object's error field.
	ErrEmptyDataset        = errors.New("dataset contains no records")
	ErrColumnsUndetected   = errors.New("required columns could not be detected")
	ErrInsufficientHistory = errors.New("insufficient history for trend fitting")

	ErrUnknownAnalysisKind = errors.New("unknown analysis kind")
)

// NewNotFoundError builds a not-found error with resource context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// NewMissingColumnsError names the semantic roles that could not be matched
// to any column, in a message suitable for rendering to the end user.
func NewMissingColumnsError(missing []string) error {
	return fmt.Errorf("%w: %s", ErrColumnsUndetected, strings.Join(missing, ", "))
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDataFailure(err error) bool {
	return errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrColumnsUndetected) ||
		errors.Is(err, ErrInsufficientHistory)
}
