package bridge

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/dshills/textbridge/internal/engine/text"
)

// Option configures a Bridge during creation.
type Option func(*Bridge)

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTracer sets the tracer used for replacement spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Bridge) {
		if tracer != nil {
			b.tracer = tracer
		}
	}
}

// WithDiffOptions sets the diff limits of the snapshots the bridge creates.
func WithDiffOptions(opts text.DiffOptions) Option {
	return func(b *Bridge) {
		b.diffOpts = opts
	}
}

// WithCaretOwner binds the caret that ReplaceWith keeps in place.
func WithCaretOwner(c CaretOwner) Option {
	return func(b *Bridge) {
		b.caret = c
	}
}
