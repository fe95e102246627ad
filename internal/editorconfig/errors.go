package editorconfig

import "errors"

// Sentinel errors for config operations.
var (
	// ErrFileNotFound names the missing-file condition. Load does not
	// return it: a missing file yields Default() and a nil error.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a loaded value fails validation.
	ErrInvalidValue = errors.New("invalid config value")
)
