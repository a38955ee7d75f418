package model

import "errors"

// Sentinel errors shared across adapters and use cases. Callers match them
// with errors.Is; adapters wrap them with identifier context.
var (
	// ErrNotFound means the remote service reports no problem for the
	// given id or slug.
	ErrNotFound = errors.New("problem not found")

	// ErrTransport covers network failures, unexpected statuses and
	// malformed payloads from the remote service.
	ErrTransport = errors.New("transport failure")

	// ErrExists marks an add that was skipped because the problem is
	// already indexed. Informational, not a failure.
	ErrExists = errors.New("problem already indexed")

	// ErrCorruptIndex means the persisted index file could not be parsed.
	// Fatal at startup; recovery is deleting the file by hand.
	ErrCorruptIndex = errors.New("corrupt index file")
)
