package cursor

import "sync/atomic"

// Caret is a single caret offset that is safe for concurrent use.
// The zero value is a caret at offset 0.
type Caret struct {
	offset atomic.Int64
}

// NewCaret creates a caret at offset.
func NewCaret(offset int) *Caret {
	c := &Caret{}
	c.offset.Store(int64(offset))
	return c
}

// CaretOffset returns the caret offset.
func (c *Caret) CaretOffset() int {
	return int(c.offset.Load())
}

// SetCaretOffset moves the caret.
func (c *Caret) SetCaretOffset(offset int) {
	c.offset.Store(int64(offset))
}
