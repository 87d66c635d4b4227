package checkplugin

import (
	"errors"
)

var (
	// ErrInvalidExitCode is returned when assigning an exit code outside of
	// the four defined severities.
	ErrInvalidExitCode = errors.New("exit code must be one of 0, 1, 2 or 3")

	// ErrEmptyMessage is returned when assigning an exit message without any
	// word character.
	ErrEmptyMessage = errors.New("exit message must contain at least one word character")

	// ErrUndefinedStats is returned when reading exit stats which have never
	// been set.
	ErrUndefinedStats = errors.New("exit stats have not been set")
)
