// Package errs defines the sentinel errors returned by matfile.
//
// Callers match them with errors.Is; most are returned wrapped with the
// offending name, path or size for context.
package errs

import "errors"

// Table errors.
var (
	ErrInvalidName   = errors.New("invalid element name")
	ErrNotFound      = errors.New("element not found")
	ErrDuplicateName = errors.New("element name already exists")
)

// Destination errors.
var (
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrIOFailure wraps the underlying filesystem or writer error, which
	// stays reachable through errors.Is / errors.As.
	ErrIOFailure = errors.New("i/o failure")
)

// Element construction errors.
var (
	ErrInvalidDimensions = errors.New("invalid array dimensions")
	ErrElementTooLarge   = errors.New("element exceeds 4GiB size limit")
	ErrInvalidDataType   = errors.New("invalid data type")
)

// Header and codec errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidEndianIndicator = errors.New("invalid endian indicator")
	ErrInvalidVersion         = errors.New("invalid header version")
	ErrInvalidCompression     = errors.New("invalid compression type")
)
