package text

import "errors"

// Errors returned by snapshot operations.
var (
	// ErrSpanOutOfRange indicates a span lies outside the text bounds.
	ErrSpanOutOfRange = errors.New("span out of range")

	// ErrChangesOverlap indicates changes overlap or are not in ascending order.
	ErrChangesOverlap = errors.New("changes overlap or are not in ascending order")
)
