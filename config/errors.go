package config

import "errors"

// Errors returned by configuration loading.
var (
	// ErrUnknownKey indicates a key name that is not a canonical key identifier.
	ErrUnknownKey = errors.New("unknown key name")

	// ErrUnknownRequirement indicates an unrecognized modifier requirement name.
	ErrUnknownRequirement = errors.New("unknown modifier requirement")

	// ErrUnknownFormat indicates a file extension with no associated loader.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrInvalidConfig indicates configuration data with the wrong shape.
	ErrInvalidConfig = errors.New("invalid shortcut config")

	// ErrWatcherClosed indicates an operation on a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")
)
