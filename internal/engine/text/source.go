package text

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// Option configures a Source during creation.
type Option func(*Source)

// WithContainer sets the container reported by the source.
func WithContainer(c Container) Option {
	return func(s *Source) {
		s.container = c
	}
}

// WithDiffOptions sets the limits used when diffing against unrelated texts.
func WithDiffOptions(opts DiffOptions) Option {
	return func(s *Source) {
		s.diffOpts = opts
	}
}

// Source is a string-backed immutable Text.
//
// A Source produced by WithChanges remembers its parent weakly together
// with the changes applied to it, so TextChanges against the parent is
// exact and does not diff. Once the parent is collected the source falls
// back to diffing.
type Source struct {
	s         string
	container Container
	diffOpts  DiffOptions

	parent  weak.Pointer[Source]
	changes []TextChange

	linesOnce sync.Once
	lines     []Line
}

// FromString creates a source from a string.
func FromString(s string, opts ...Option) *Source {
	src := &Source{
		s:        s,
		diffOpts: DefaultDiffOptions(),
	}
	for _, opt := range opts {
		opt(src)
	}
	return src
}

// Len returns the length in bytes.
func (s *Source) Len() int {
	return len(s.s)
}

// ByteAt returns the byte at offset.
func (s *Source) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(s.s) {
		return 0, false
	}
	return s.s[offset], true
}

// Slice returns the sub-text covered by span. The sub-text keeps the
// container but has no change history.
func (s *Source) Slice(span Span) (Text, error) {
	if err := checkSpan(span, len(s.s)); err != nil {
		return nil, err
	}
	if span.Start == 0 && span.Length == len(s.s) {
		return s, nil
	}
	return &Source{
		s:         s.s[span.Start:span.End()],
		container: s.container,
		diffOpts:  s.diffOpts,
	}, nil
}

// WriteSpan writes the bytes covered by span to w.
func (s *Source) WriteSpan(w io.Writer, span Span) (int64, error) {
	if err := checkSpan(span, len(s.s)); err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s.s[span.Start:span.End()])
	return int64(n), err
}

// String returns the full content.
func (s *Source) String() string {
	return s.s
}

// SpanString returns the content covered by span.
func (s *Source) SpanString(span Span) (string, error) {
	if err := checkSpan(span, len(s.s)); err != nil {
		return "", err
	}
	return s.s[span.Start:span.End()], nil
}

// Lines returns the line decomposition, computed once on first use.
func (s *Source) Lines() []Line {
	s.linesOnce.Do(func() {
		s.lines = splitLines(s.s)
	})
	return s.lines
}

// ContentEquals reports whether other has identical content.
func (s *Source) ContentEquals(other Text) bool {
	if other == nil {
		return false
	}
	other = Unwrap(other)
	if o, ok := other.(*Source); ok {
		return o == s || o.s == s.s
	}
	return other.Len() == len(s.s) && other.String() == s.s
}

// Hash returns the xxhash of the content.
func (s *Source) Hash() uint64 {
	return xxhash.Sum64String(s.s)
}

// Container returns the container set at creation, or nil.
func (s *Source) Container() Container {
	return s.container
}

// WithChanges returns a new snapshot with changes applied.
func (s *Source) WithChanges(changes ...TextChange) (Text, error) {
	next, err := s.Apply(changes...)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Apply is WithChanges with a concrete result type.
// No-op changes are ignored; if nothing remains the receiver is returned.
func (s *Source) Apply(changes ...TextChange) (*Source, error) {
	applied := make([]TextChange, 0, len(changes))
	prevEnd := 0
	for i, c := range changes {
		if err := checkSpan(c.Span, len(s.s)); err != nil {
			return nil, err
		}
		if i > 0 && c.Span.Start < prevEnd {
			return nil, fmt.Errorf("%w: %v after %v", ErrChangesOverlap, c.Span, changes[i-1].Span)
		}
		prevEnd = c.Span.End()
		if c.IsNoOp() {
			continue
		}
		applied = append(applied, c)
	}
	if len(applied) == 0 {
		return s, nil
	}

	var sb strings.Builder
	grow := len(s.s)
	for _, c := range applied {
		grow += c.Delta()
	}
	sb.Grow(grow)

	pos := 0
	for _, c := range applied {
		sb.WriteString(s.s[pos:c.Span.Start])
		sb.WriteString(c.NewText)
		pos = c.Span.End()
	}
	sb.WriteString(s.s[pos:])

	return &Source{
		s:         sb.String(),
		container: s.container,
		diffOpts:  s.diffOpts,
		parent:    weak.Make(s),
		changes:   applied,
	}, nil
}

// TextChanges returns the changes that transform old into this source.
func (s *Source) TextChanges(old Text) ([]TextChange, error) {
	if old == nil {
		return nil, fmt.Errorf("text changes: nil old text")
	}
	old = Unwrap(old)
	if o, ok := old.(*Source); ok {
		if o == s {
			return nil, nil
		}
		if p := s.parent.Value(); p != nil && p == o {
			out := make([]TextChange, len(s.changes))
			copy(out, s.changes)
			return out, nil
		}
	}
	return Diff(old.String(), s.s, s.diffOpts), nil
}

// ChangeRanges returns the change descriptors that transform old into this source.
func (s *Source) ChangeRanges(old Text) ([]ChangeRange, error) {
	changes, err := s.TextChanges(old)
	if err != nil {
		return nil, err
	}
	return Ranges(changes), nil
}
