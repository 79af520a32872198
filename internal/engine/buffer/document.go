package buffer

import (
	"fmt"
	"sync"

	"github.com/dshills/textbridge/internal/engine/text"
)

// Document is a mutable text buffer that reports every committed edit.
// All methods are thread-safe.
type Document struct {
	mu          sync.RWMutex
	text        *text.Source
	version     uint64
	updateDepth int
	history     *history

	listeners listenerSet
}

// NewDocument creates a new empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		text:    text.FromString(""),
		history: newHistory(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDocumentFromString creates a document with initial content.
func NewDocumentFromString(s string, opts ...Option) *Document {
	d := NewDocument(opts...)
	d.text = text.FromString(s)
	return d
}

// Read Operations

// Text returns the full document content.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text.String()
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text.Len()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text.Lines())
}

// LineText returns the text of a line without its break.
// Returns the empty string for lines out of range.
func (d *Document) LineText(line int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	lines := d.text.Lines()
	if line < 0 || line >= len(lines) {
		return ""
	}
	s, _ := d.text.SpanString(lines[line].Span())
	return s
}

// Snapshot returns the current content as an immutable snapshot.
func (d *Document) Snapshot() *text.Source {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Version returns a counter incremented by every committed edit.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Write Operations

// Insert inserts s at offset.
func (d *Document) Insert(offset int, s string) error {
	return d.Replace(offset, 0, s)
}

// Delete removes length bytes starting at offset.
func (d *Document) Delete(offset, length int) error {
	return d.Replace(offset, length, "")
}

// Replace replaces length bytes starting at offset with s.
// Listeners are notified after the edit is committed. A replacement that
// neither removes nor inserts anything is not reported.
func (d *Document) Replace(offset, length int, s string) error {
	ev, changed, err := d.apply(offset, length, s, true)
	if err != nil {
		return err
	}
	if changed {
		d.listeners.notify(ev)
	}
	return nil
}

// apply commits one replacement under the lock and returns its event.
func (d *Document) apply(offset, length int, s string, record bool) (ChangeEvent, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.text.Len()
	if offset < 0 || length < 0 || offset+length > n {
		return ChangeEvent{}, false, fmt.Errorf("%w: [%d..%d) in document of length %d",
			ErrRangeInvalid, offset, offset+length, n)
	}
	if length == 0 && s == "" {
		return ChangeEvent{}, false, nil
	}

	span := text.NewSpan(offset, length)
	removed, err := d.text.SpanString(span)
	if err != nil {
		return ChangeEvent{}, false, err
	}
	next, err := d.text.Apply(text.TextChange{Span: span, NewText: s})
	if err != nil {
		return ChangeEvent{}, false, err
	}

	d.text = next
	d.version++
	if record {
		d.history.record(edit{offset: offset, removed: removed, inserted: s}, d.updateDepth > 0)
	}

	return ChangeEvent{
		Offset:        offset,
		RemovedLength: length,
		RemovedText:   removed,
		InsertedText:  s,
	}, true, nil
}

// OnChange registers a handler called after every committed edit.
// It returns a function that unregisters the handler.
func (d *Document) OnChange(h ChangeHandler) (unsubscribe func()) {
	return d.listeners.add(h)
}

// ListenerCount returns the number of registered change handlers.
func (d *Document) ListenerCount() int {
	return d.listeners.len()
}

// Update Groups

// BeginUpdate opens an update group. Groups nest.
func (d *Document) BeginUpdate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.updateDepth++
}

// EndUpdate closes the innermost update group. Closing the outermost group
// turns its edits into one undo unit.
// It panics if no group is open.
func (d *Document) EndUpdate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.updateDepth == 0 {
		panic("buffer: EndUpdate without matching BeginUpdate")
	}
	d.updateDepth--
	if d.updateDepth == 0 {
		d.history.closeGroup()
	}
}

// IsUpdating returns true while an update group is open.
func (d *Document) IsUpdating() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.updateDepth > 0
}

// UpdateScope provides a convenient way to group edits using defer.
// Usage:
//
//	func reformat(doc *Document) {
//	    defer doc.UpdateScope().End()
//	    // ... multiple edits ...
//	}
type UpdateScope struct {
	doc    *Document
	active bool
}

// UpdateScope begins an update group and returns its scope.
func (d *Document) UpdateScope() *UpdateScope {
	d.BeginUpdate()
	return &UpdateScope{doc: d, active: true}
}

// End ends the update group.
// Safe to call multiple times; only the first call has effect.
func (s *UpdateScope) End() {
	if s.active {
		s.doc.EndUpdate()
		s.active = false
	}
}

// Undo/Redo

// CanUndo returns true if there is something to undo.
func (d *Document) CanUndo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.history.undo) > 0
}

// CanRedo returns true if there is something to redo.
func (d *Document) CanRedo() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.history.redo) > 0
}

// Undo reverts the most recent undo unit. Each reverted edit is reported
// to listeners like any other edit.
func (d *Document) Undo() error {
	d.mu.Lock()
	if d.updateDepth > 0 {
		d.mu.Unlock()
		return ErrUpdateInProgress
	}
	unit, ok := d.history.popUndo()
	d.mu.Unlock()
	if !ok {
		return ErrNothingToUndo
	}

	for i := len(unit) - 1; i >= 0; i-- {
		e := unit[i]
		ev, changed, err := d.apply(e.offset, len(e.inserted), e.removed, false)
		if err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		if changed {
			d.listeners.notify(ev)
		}
	}

	d.mu.Lock()
	d.history.redo = append(d.history.redo, unit)
	d.mu.Unlock()
	return nil
}

// Redo re-applies the most recently undone unit.
func (d *Document) Redo() error {
	d.mu.Lock()
	if d.updateDepth > 0 {
		d.mu.Unlock()
		return ErrUpdateInProgress
	}
	unit, ok := d.history.popRedo()
	d.mu.Unlock()
	if !ok {
		return ErrNothingToRedo
	}

	for _, e := range unit {
		ev, changed, err := d.apply(e.offset, len(e.removed), e.inserted, false)
		if err != nil {
			return fmt.Errorf("redo: %w", err)
		}
		if changed {
			d.listeners.notify(ev)
		}
	}

	d.mu.Lock()
	d.history.push(unit)
	d.mu.Unlock()
	return nil
}
