package bridge

import "errors"

// Errors returned by bridge operations.
var (
	// ErrReentrantUpdate indicates ReplaceWith was called while a replacement
	// was already being replayed.
	ErrReentrantUpdate = errors.New("replacement already in progress")

	// ErrClosed indicates the bridge has been closed.
	ErrClosed = errors.New("bridge is closed")

	// ErrNilText indicates a nil replacement snapshot.
	ErrNilText = errors.New("nil replacement text")
)
