package text

import "fmt"

// Line is one line of a text. Offsets are absolute byte offsets.
type Line struct {
	// Number is the 0-indexed line number.
	Number int

	// Start is the offset of the first byte of the line.
	Start int

	// End is the offset just past the last content byte, before any break.
	End int

	// EndIncludingBreak is the offset just past the line break, if any.
	EndIncludingBreak int
}

// Span returns the content span of the line, excluding the break.
func (l Line) Span() Span {
	return SpanFromBounds(l.Start, l.End)
}

// SpanIncludingBreak returns the span of the line including its break.
func (l Line) SpanIncludingBreak() Span {
	return SpanFromBounds(l.Start, l.EndIncludingBreak)
}

// String returns a human-readable representation of the line.
func (l Line) String() string {
	return fmt.Sprintf("line %d [%d..%d)", l.Number, l.Start, l.End)
}

// splitLines decomposes s into lines. "\r\n" is a single break; a lone
// "\r" or "\n" is also a break. The result is never empty.
func splitLines(s string) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, Line{Number: len(lines), Start: start, End: i, EndIncludingBreak: i + 1})
			start = i + 1
		case '\r':
			brk := i + 1
			if brk < len(s) && s[brk] == '\n' {
				brk++
			}
			lines = append(lines, Line{Number: len(lines), Start: start, End: i, EndIncludingBreak: brk})
			start = brk
			i = brk - 1
		}
	}
	return append(lines, Line{Number: len(lines), Start: start, End: len(s), EndIncludingBreak: len(s)})
}

// LineAt returns the line containing offset. Offsets past the end map to
// the last line.
func LineAt(t Text, offset int) Line {
	lines := t.Lines()
	lo, hi := 0, len(lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lines[mid].Start <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lines[lo]
}
