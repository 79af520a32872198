package cursor

import "github.com/dshills/textbridge/internal/engine/text"

// Adjust returns the caret position after changeLength bytes at changeStart
// were replaced with changeLength+delta bytes.
//
// Rules:
//   - caret at or after the end of the span: shifted by delta
//   - caret inside the span, at or past the end of the inserted text:
//     moved to changeStart
//   - caret inside the span, within the inserted text: unchanged
//   - caret before the span: unchanged
func Adjust(caret, changeStart, changeLength, delta int) int {
	if caret >= changeStart+changeLength {
		return caret + delta
	}
	if caret >= changeStart {
		insertedLength := changeLength + delta
		if caret >= changeStart+insertedLength {
			return changeStart
		}
	}
	return caret
}

// AdjustAll applies Adjust for every change in order. Changes are in the
// coordinates of the text before the batch, ascending and non-overlapping.
func AdjustAll(caret int, changes []text.TextChange) int {
	offset := 0
	for _, c := range changes {
		caret = Adjust(caret, c.Span.Start+offset, c.Span.Length, c.Delta())
		offset += c.Delta()
	}
	return caret
}

// Clamp restricts offset to [0, length].
func Clamp(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}
