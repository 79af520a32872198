package buffer

import "errors"

// Errors returned by document operations.
var (
	// ErrRangeInvalid indicates an edit range lies outside the document.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrUpdateInProgress indicates undo or redo was requested inside an update group.
	ErrUpdateInProgress = errors.New("update in progress")
)
