package bridge

import (
	"io"
	"weak"

	"github.com/dshills/textbridge/internal/engine/text"
)

// Snapshot decorates an immutable text with a non-owning reference to the
// Bridge that produced it. Every read delegates to the wrapped text; every
// operation taking another text unwraps it first.
type Snapshot struct {
	inner   text.Text
	owner   weak.Pointer[Bridge]
	ownerID string
}

var _ text.Text = (*Snapshot)(nil)

// Wrap wraps t in a Snapshot with no owner. Owner then reports t's own
// container.
func Wrap(t text.Text) *Snapshot {
	return &Snapshot{inner: text.Unwrap(t)}
}

// newSnapshot wraps t with b as owner.
func newSnapshot(t text.Text, b *Bridge) *Snapshot {
	return &Snapshot{
		inner:   text.Unwrap(t),
		owner:   weak.Make(b),
		ownerID: b.id,
	}
}

// derive wraps t with the same owner as s.
func (s *Snapshot) derive(t text.Text) *Snapshot {
	return &Snapshot{
		inner:   text.Unwrap(t),
		owner:   s.owner,
		ownerID: s.ownerID,
	}
}

// Unwrap returns the wrapped text.
func (s *Snapshot) Unwrap() text.Text {
	return s.inner
}

// Bridge returns the owning bridge, or nil if there is none or it has been
// garbage collected.
func (s *Snapshot) Bridge() *Bridge {
	return s.owner.Value()
}

// OwnerID returns the ID of the owning bridge, or "" if there is none.
func (s *Snapshot) OwnerID() string {
	return s.ownerID
}

// Owner returns the owning bridge if it is still alive, otherwise the
// container reported by the wrapped text.
func (s *Snapshot) Owner() text.Container {
	if b := s.owner.Value(); b != nil {
		return b
	}
	return s.inner.Container()
}

// Container is Owner.
func (s *Snapshot) Container() text.Container {
	return s.Owner()
}

// Len returns the length in bytes.
func (s *Snapshot) Len() int {
	return s.inner.Len()
}

// ByteAt returns the byte at offset.
func (s *Snapshot) ByteAt(offset int) (byte, bool) {
	return s.inner.ByteAt(offset)
}

// Slice returns the sub-text covered by span, wrapped with the same owner.
func (s *Snapshot) Slice(span text.Span) (text.Text, error) {
	sub, err := s.inner.Slice(span)
	if err != nil {
		return nil, err
	}
	return s.derive(sub), nil
}

// WriteSpan writes the bytes covered by span to w.
func (s *Snapshot) WriteSpan(w io.Writer, span text.Span) (int64, error) {
	return s.inner.WriteSpan(w, span)
}

// String returns the full content.
func (s *Snapshot) String() string {
	return s.inner.String()
}

// SpanString returns the content covered by span.
func (s *Snapshot) SpanString(span text.Span) (string, error) {
	return s.inner.SpanString(span)
}

// Lines returns the line decomposition.
func (s *Snapshot) Lines() []text.Line {
	return s.inner.Lines()
}

// ContentEquals reports whether other has identical content.
func (s *Snapshot) ContentEquals(other text.Text) bool {
	if other == nil {
		return false
	}
	return s.inner.ContentEquals(text.Unwrap(other))
}

// Hash returns the content hash of the wrapped text.
func (s *Snapshot) Hash() uint64 {
	return s.inner.Hash()
}

// WithChanges returns a new Snapshot, with the same owner, around the
// wrapped text with changes applied.
func (s *Snapshot) WithChanges(changes ...text.TextChange) (text.Text, error) {
	next, err := s.inner.WithChanges(changes...)
	if err != nil {
		return nil, err
	}
	return s.derive(next), nil
}

// TextChanges returns the changes that transform old into this snapshot.
func (s *Snapshot) TextChanges(old text.Text) ([]text.TextChange, error) {
	if old == nil {
		return s.inner.TextChanges(nil)
	}
	return s.inner.TextChanges(text.Unwrap(old))
}

// ChangeRanges returns the change descriptors that transform old into this snapshot.
func (s *Snapshot) ChangeRanges(old text.Text) ([]text.ChangeRange, error) {
	if old == nil {
		return s.inner.ChangeRanges(nil)
	}
	return s.inner.ChangeRanges(text.Unwrap(old))
}
