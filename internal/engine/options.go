package engine

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/dshills/textbridge/internal/config"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithConfig applies file-backed settings. Options given after it override
// the corresponding settings.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
		e.configured = true
		if cfg.Undo.MaxEntries > 0 {
			e.maxUndoEntries = cfg.Undo.MaxEntries
		}
	}
}

// WithLogger sets the logger shared by the engine and its bridge.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracer sets the tracer used for ReplaceText spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithCaret sets the initial caret offset. It is clamped to the content.
func WithCaret(offset int) Option {
	return func(e *Engine) {
		e.initCaret = offset
	}
}

// WithReadOnly creates a read-only engine.
// Write operations return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
