package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/dshills/textbridge/internal/config"
	"github.com/dshills/textbridge/internal/engine/bridge"
	"github.com/dshills/textbridge/internal/engine/buffer"
	"github.com/dshills/textbridge/internal/engine/cursor"
	"github.com/dshills/textbridge/internal/engine/text"
)

// Re-export commonly used types for convenience.
type (
	// Text is an immutable snapshot of content.
	Text = text.Text

	// Span is a half-open byte range.
	Span = text.Span

	// TextChange replaces a span with new text.
	TextChange = text.TextChange

	// ChangeRange describes a change without its text.
	ChangeRange = text.ChangeRange

	// Snapshot is a Text owned by the engine's bridge.
	Snapshot = bridge.Snapshot

	// TextChangedEvent reports a snapshot swap caused by an edit.
	TextChangedEvent = bridge.TextChangedEvent

	// TextChangedHandler receives TextChangedEvents.
	TextChangedHandler = bridge.TextChangedHandler
)

// NewSpan returns the span of length bytes starting at start.
func NewSpan(start, length int) Span {
	return text.NewSpan(start, length)
}

// Engine is the main facade of an editing session.
type Engine struct {
	doc    *buffer.Document
	caret  *cursor.Caret
	bridge *bridge.Bridge

	unsubscribe func()

	// Configuration
	cfg            config.Config
	logger         *slog.Logger
	tracer         trace.Tracer
	configured     bool
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
	initCaret   int
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:            config.Default(),
		maxUndoEntries: buffer.DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		if e.configured {
			e.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: e.cfg.LogLevel()}))
		} else {
			e.logger = slog.Default()
		}
	}

	e.doc = buffer.NewDocumentFromString(e.initContent, buffer.WithMaxUndoEntries(e.maxUndoEntries))
	e.caret = cursor.NewCaret(cursor.Clamp(e.initCaret, e.doc.Len()))

	bridgeOpts := []bridge.Option{
		bridge.WithLogger(e.logger),
		bridge.WithDiffOptions(e.cfg.DiffOptions()),
		bridge.WithCaretOwner(e.caret),
	}
	if e.tracer != nil {
		bridgeOpts = append(bridgeOpts, bridge.WithTracer(e.tracer))
	}
	e.bridge = bridge.New(e.doc, bridgeOpts...)
	e.unsubscribe = e.doc.OnChange(e.followCaret)

	return e
}

// NewFromReader creates an Engine whose initial content is read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return New(append(opts, WithContent(sb.String()))...), nil
}

// followCaret moves the caret across edits made directly on the document.
// Replays by the bridge move the caret themselves.
func (e *Engine) followCaret(ev buffer.ChangeEvent) {
	if e.bridge == nil || e.bridge.IsUpdating() {
		return
	}
	delta := ev.InsertedLength() - ev.RemovedLength
	e.caret.SetCaretOffset(cursor.Adjust(e.caret.CaretOffset(), ev.Offset, ev.RemovedLength, delta))
}

// Components

// Document returns the underlying document.
func (e *Engine) Document() *buffer.Document {
	return e.doc
}

// Caret returns the tracked caret.
func (e *Engine) Caret() *cursor.Caret {
	return e.caret
}

// Bridge returns the snapshot bridge.
func (e *Engine) Bridge() *bridge.Bridge {
	return e.bridge
}

// Config returns the settings the engine was created with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// Read Operations

// Text returns the full content.
func (e *Engine) Text() string {
	return e.doc.Text()
}

// Len returns the content length in bytes.
func (e *Engine) Len() int {
	return e.doc.Len()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.doc.LineCount()
}

// LineText returns the text of line without its line break.
func (e *Engine) LineText(line int) string {
	return e.doc.LineText(line)
}

// Snapshot returns the current immutable snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.bridge.Current()
}

// CaretOffset returns the caret position.
func (e *Engine) CaretOffset() int {
	return e.caret.CaretOffset()
}

// SetCaretOffset moves the caret.
func (e *Engine) SetCaretOffset(offset int) error {
	if offset < 0 || offset > e.doc.Len() {
		return fmt.Errorf("%w: caret %d in document of length %d", ErrOffsetOutOfRange, offset, e.doc.Len())
	}
	e.caret.SetCaretOffset(offset)
	return nil
}

// Write Operations

// Insert inserts s at offset.
func (e *Engine) Insert(offset int, s string) error {
	return e.Replace(offset, 0, s)
}

// Delete removes length bytes starting at offset.
func (e *Engine) Delete(offset, length int) error {
	return e.Replace(offset, length, "")
}

// Replace replaces length bytes starting at offset with s.
func (e *Engine) Replace(offset, length int, s string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.doc.Replace(offset, length, s)
}

// InsertAtCaret inserts s at the caret. The caret ends after the insertion.
func (e *Engine) InsertAtCaret(s string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.doc.Insert(e.caret.CaretOffset(), s)
}

// BeginUndoGroup opens an undo group; edits until the matching
// EndUndoGroup are undone together.
func (e *Engine) BeginUndoGroup() {
	e.doc.BeginUpdate()
}

// EndUndoGroup closes the innermost undo group.
func (e *Engine) EndUndoGroup() {
	e.doc.EndUpdate()
}

// Undo reverts the most recent undo unit.
func (e *Engine) Undo() error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.doc.Undo()
}

// Redo reapplies the most recently undone unit.
func (e *Engine) Redo() error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.doc.Redo()
}

// CanUndo returns true if there is something to undo.
func (e *Engine) CanUndo() bool {
	return e.doc.CanUndo()
}

// CanRedo returns true if there is something to redo.
func (e *Engine) CanRedo() bool {
	return e.doc.CanRedo()
}

// ReplaceText makes t the current snapshot, replaying only the differences
// on the document.
func (e *Engine) ReplaceText(ctx context.Context, t Text) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.bridge.ReplaceWith(ctx, t)
}

// ReplaceString is ReplaceText for a plain string.
func (e *Engine) ReplaceString(ctx context.Context, s string) error {
	return e.ReplaceText(ctx, text.FromString(s, text.WithDiffOptions(e.cfg.DiffOptions())))
}

// OnTextChanged registers a handler called after every edit made on the
// document. It returns a function that unregisters the handler.
func (e *Engine) OnTextChanged(h TextChangedHandler) (unsubscribe func()) {
	return e.bridge.OnTextChanged(h)
}

// Close detaches the bridge and the caret from the document.
func (e *Engine) Close() error {
	e.unsubscribe()
	return e.bridge.Close()
}
