package text

import "io"

// Text is an immutable text snapshot.
//
// Implementations must never change observable content after construction.
// Offsets are byte offsets into UTF-8 text.
type Text interface {
	// Len returns the length in bytes.
	Len() int

	// ByteAt returns the byte at offset, or false if offset is out of range.
	ByteAt(offset int) (byte, bool)

	// Slice returns the sub-text covered by span.
	Slice(span Span) (Text, error)

	// WriteSpan writes the bytes covered by span to w.
	WriteSpan(w io.Writer, span Span) (int64, error)

	// String returns the full content.
	String() string

	// SpanString returns the content covered by span.
	SpanString(span Span) (string, error)

	// Lines returns the line decomposition. There is always at least one line.
	Lines() []Line

	// ContentEquals reports whether other has identical content.
	ContentEquals(other Text) bool

	// Hash returns a hash of the content. Equal content hashes equally.
	Hash() uint64

	// WithChanges returns a new snapshot with changes applied. Changes are
	// in this text's coordinates, ascending, and non-overlapping.
	WithChanges(changes ...TextChange) (Text, error)

	// TextChanges returns the changes that transform old into this text.
	TextChanges(old Text) ([]TextChange, error)

	// ChangeRanges is like TextChanges but omits the replacement text.
	ChangeRanges(old Text) ([]ChangeRange, error)

	// Container returns what produced this snapshot, or nil.
	Container() Container
}

// Container is the owner of a sequence of snapshots.
type Container interface {
	// CurrentText returns the latest snapshot.
	CurrentText() Text
}

// Unwrap strips every decorator around t that implements Unwrap() Text.
func Unwrap(t Text) Text {
	for {
		w, ok := t.(interface{ Unwrap() Text })
		if !ok {
			return t
		}
		inner := w.Unwrap()
		if inner == nil || inner == t {
			return t
		}
		t = inner
	}
}

// Ranges converts text changes to change descriptors.
func Ranges(changes []TextChange) []ChangeRange {
	if len(changes) == 0 {
		return nil
	}
	ranges := make([]ChangeRange, len(changes))
	for i, c := range changes {
		ranges[i] = c.Range()
	}
	return ranges
}
