package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dshills/textbridge/internal/engine/buffer"
	"github.com/dshills/textbridge/internal/engine/cursor"
	"github.com/dshills/textbridge/internal/engine/text"
)

// Buffer is the mutable side of a bridge. *buffer.Document implements it.
type Buffer interface {
	Text() string
	BeginUpdate()
	EndUpdate()
	Replace(offset, length int, s string) error
	OnChange(h buffer.ChangeHandler) (unsubscribe func())
}

// CaretOwner exposes the caret that a replacement keeps in place.
// *cursor.Caret implements it.
type CaretOwner interface {
	CaretOffset() int
	SetCaretOffset(offset int)
}

var (
	_ Buffer         = (*buffer.Document)(nil)
	_ CaretOwner     = (*cursor.Caret)(nil)
	_ text.Container = (*Bridge)(nil)
)

// Bridge synchronizes a Buffer with an immutable snapshot of its content.
type Bridge struct {
	id  string
	buf Buffer

	mu      sync.RWMutex
	current *Snapshot
	caret   CaretOwner

	updating  atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once

	unsubscribe func()
	listeners   handlerSet

	logger   *slog.Logger
	tracer   trace.Tracer
	diffOpts text.DiffOptions
}

// New creates a bridge over buf and subscribes to its edits.
// The initial snapshot holds buf's current content.
func New(buf Buffer, opts ...Option) *Bridge {
	b := &Bridge{
		id:       uuid.NewString(),
		buf:      buf,
		logger:   slog.Default(),
		tracer:   otel.Tracer("textbridge.bridge"),
		diffOpts: text.DefaultDiffOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.current = newSnapshot(b.source(buf.Text()), b)
	b.unsubscribe = buf.OnChange(b.onBufferChanged)

	b.logger.Debug("bridge created",
		slog.String("bridge_id", b.id),
		slog.Int("length", b.current.Len()),
	)
	return b
}

func (b *Bridge) source(s string) *text.Source {
	return text.FromString(s, text.WithDiffOptions(b.diffOpts))
}

// ID returns the bridge's unique identifier.
func (b *Bridge) ID() string {
	return b.id
}

// Current returns the current snapshot.
func (b *Bridge) Current() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// CurrentText returns the current snapshot as a text.Text.
func (b *Bridge) CurrentText() text.Text {
	return b.Current()
}

// SetCaretOwner binds the caret adjusted by ReplaceWith. A nil owner
// unbinds it.
func (b *Bridge) SetCaretOwner(c CaretOwner) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.caret = c
}

// OnTextChanged registers a handler called after each buffer edit has been
// translated. It returns a function that unregisters the handler.
func (b *Bridge) OnTextChanged(h TextChangedHandler) (unsubscribe func()) {
	return b.listeners.add(h)
}

// HandlerCount returns the number of registered TextChangedHandlers.
func (b *Bridge) HandlerCount() int {
	return b.listeners.len()
}

// IsUpdating returns true while ReplaceWith is replaying changes.
func (b *Bridge) IsUpdating() bool {
	return b.updating.Load()
}

// IsClosed returns true after Close.
func (b *Bridge) IsClosed() bool {
	return b.closed.Load()
}

// Close unsubscribes from the buffer. Later calls do nothing.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		b.closed.Store(true)
		if b.unsubscribe != nil {
			b.unsubscribe()
		}
		b.logger.Debug("bridge closed", slog.String("bridge_id", b.id))
	})
	return nil
}

// onBufferChanged translates one committed buffer edit into a snapshot swap.
func (b *Bridge) onBufferChanged(ev buffer.ChangeEvent) {
	if b.updating.Load() {
		suppressedEdits.Inc()
		return
	}

	change := text.TextChange{
		Span:    text.NewSpan(ev.Offset, ev.RemovedLength),
		NewText: ev.InsertedText,
	}

	b.mu.Lock()
	old := b.current
	inner, err := old.inner.WithChanges(change)
	if err != nil {
		b.mu.Unlock()
		panic(fmt.Sprintf("bridge: buffer edit %s does not fit snapshot of length %d: %v",
			ev, old.Len(), err))
	}
	next := newSnapshot(inner, b)
	b.current = next
	b.mu.Unlock()

	forwardTranslations.Inc()
	b.listeners.notify(TextChangedEvent{Old: old, New: next, Change: change.Range()})
}

// ReplaceWith makes next the current snapshot and edits the buffer to match.
//
// The changes between the current snapshot and next are replayed on the
// buffer in ascending order inside one update group, so the buffer sees
// them as a single undo unit. The bound caret is moved across each change
// and clamped to the new length. No TextChangedEvent is fired.
//
// If a replayed edit fails, the snapshot is resynchronized from the buffer
// and the caret is left where it was.
func (b *Bridge) ReplaceWith(ctx context.Context, next text.Text) error {
	if next == nil {
		reverseReplacements.WithLabelValues(resultError).Inc()
		return ErrNilText
	}
	if b.closed.Load() {
		reverseReplacements.WithLabelValues(resultClosed).Inc()
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		reverseReplacements.WithLabelValues(resultError).Inc()
		return err
	}
	if !b.updating.CompareAndSwap(false, true) {
		reverseReplacements.WithLabelValues(resultReentrant).Inc()
		b.logger.Warn("re-entrant replacement rejected", slog.String("bridge_id", b.id))
		return ErrReentrantUpdate
	}

	_, span := b.tracer.Start(ctx, "bridge.ReplaceWith",
		trace.WithAttributes(
			attribute.String("bridge.id", b.id),
			attribute.Int("text.length", next.Len()),
		),
	)
	defer span.End()

	start := time.Now()
	b.buf.BeginUpdate()
	defer func() {
		b.buf.EndUpdate()
		b.updating.Store(false)
	}()

	b.mu.RLock()
	current := b.current
	caret := b.caret
	b.mu.RUnlock()

	changes, err := next.TextChanges(current.Unwrap())
	if err != nil {
		return b.fail(span, fmt.Errorf("compute changes: %w", err))
	}
	span.SetAttributes(attribute.Int("changes.count", len(changes)))

	working := 0
	if caret != nil {
		working = caret.CaretOffset()
	}

	offset := 0
	for _, c := range changes {
		at := c.Span.Start + offset
		if err := b.buf.Replace(at, c.Span.Length, c.NewText); err != nil {
			b.resync()
			return b.fail(span, fmt.Errorf("replay %s at %d: %w", c, at, err))
		}
		working = cursor.Adjust(working, at, c.Span.Length, c.Delta())
		offset += c.Delta()
	}

	final := newSnapshot(next, b)
	b.mu.Lock()
	b.current = final
	b.mu.Unlock()

	if caret != nil {
		caret.SetCaretOffset(cursor.Clamp(working, final.Len()))
	}

	reverseReplacements.WithLabelValues(resultSuccess).Inc()
	reverseChanges.Observe(float64(len(changes)))
	reverseDuration.Observe(time.Since(start).Seconds())
	span.SetStatus(codes.Ok, "")

	b.logger.Debug("snapshot replaced",
		slog.String("bridge_id", b.id),
		slog.Int("changes", len(changes)),
		slog.Int("length", final.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// resync rebuilds the current snapshot from the buffer after a failed replay.
func (b *Bridge) resync() {
	s := newSnapshot(b.source(b.buf.Text()), b)
	b.mu.Lock()
	b.current = s
	b.mu.Unlock()
}

func (b *Bridge) fail(span trace.Span, err error) error {
	reverseReplacements.WithLabelValues(resultError).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	b.logger.Warn("snapshot replacement failed",
		slog.String("bridge_id", b.id),
		slog.String("error", err.Error()),
	)
	return err
}
