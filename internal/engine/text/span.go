package text

import "fmt"

// Span is a half-open byte range [Start, Start+Length).
type Span struct {
	Start  int
	Length int
}

// NewSpan creates a span from a start offset and a length.
func NewSpan(start, length int) Span {
	return Span{Start: start, Length: length}
}

// SpanFromBounds creates a span from start and end offsets.
func SpanFromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end offset.
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Contains returns true if offset lies within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End())
}

// checkSpan validates that span lies within a text of length n.
func checkSpan(span Span, n int) error {
	if span.Start < 0 || span.Length < 0 || span.End() > n {
		return fmt.Errorf("%w: %v in text of length %d", ErrSpanOutOfRange, span, n)
	}
	return nil
}

// TextChange describes one contiguous replacement: the bytes covered by
// Span in the old text are replaced with NewText.
type TextChange struct {
	Span    Span
	NewText string
}

// NewLength returns the length of the replacement text.
func (c TextChange) NewLength() int {
	return len(c.NewText)
}

// Delta returns the net change in text length.
// Positive means the text grew, negative means it shrank.
func (c TextChange) Delta() int {
	return len(c.NewText) - c.Span.Length
}

// IsNoOp returns true if the change neither removes nor inserts anything.
func (c TextChange) IsNoOp() bool {
	return c.Span.IsEmpty() && c.NewText == ""
}

// Range returns the change descriptor for this change.
func (c TextChange) Range() ChangeRange {
	return ChangeRange{Span: c.Span, NewLength: len(c.NewText)}
}

// String returns a human-readable representation of the change.
func (c TextChange) String() string {
	t := c.NewText
	if len(t) > 20 {
		t = t[:17] + "..."
	}
	return fmt.Sprintf("%v => %q", c.Span, t)
}

// ChangeRange describes a replacement without its text: the bytes covered
// by Span were replaced with NewLength bytes.
type ChangeRange struct {
	Span      Span
	NewLength int
}

// Delta returns the net change in text length.
func (r ChangeRange) Delta() int {
	return r.NewLength - r.Span.Length
}

// String returns a human-readable representation of the change range.
func (r ChangeRange) String() string {
	return fmt.Sprintf("%v => %d", r.Span, r.NewLength)
}
