package engine

import (
	"errors"

	"github.com/dshills/textbridge/internal/engine/bridge"
	"github.com/dshills/textbridge/internal/engine/buffer"
)

// Errors returned by engine operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the document.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	ErrRangeInvalid    = buffer.ErrRangeInvalid
	ErrNothingToUndo   = buffer.ErrNothingToUndo
	ErrNothingToRedo   = buffer.ErrNothingToRedo
	ErrUndoGroupOpen   = buffer.ErrUpdateInProgress
	ErrReentrantUpdate = bridge.ErrReentrantUpdate
	ErrClosed          = bridge.ErrClosed
)
