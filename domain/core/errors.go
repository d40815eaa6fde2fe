package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors - a whole extract failed to load
	ErrFileNotFound = errors.New("extract file not found")
	ErrDecode       = errors.New("extract decode failed")
	ErrSchema       = errors.New("extract schema invalid")

	// Schema details
	ErrNoTotalColumn  = fmt.Errorf("%w: no total population column", ErrSchema)
	ErrNoRegionColumn = fmt.Errorf("%w: no region column", ErrSchema)

	// Lookup errors
	ErrPageNotFound    = errors.New("dashboard page not found")
	ErrExtractNotFound = errors.New("extract record not found")
)

// Error constructors with context
func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func NewDecodeError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecode, path, cause)
}

// IsLoadError reports whether err is one of the file-level load failures
// that abort a whole extract load.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrSchema)
}

func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}
