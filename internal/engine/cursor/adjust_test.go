package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/textbridge/internal/engine/text"
)

func TestAdjust(t *testing.T) {
	// Buffer "hello world" with the caret at 8: "hello wo|rld".
	tests := []struct {
		name   string
		caret  int
		start  int
		length int
		delta  int
		want   int
	}{
		{"insert before caret", 8, 0, 0, 2, 10},
		{"delete before caret", 8, 2, 3, -3, 5},
		{"replace span containing caret past inserted end", 8, 6, 5, -4, 6},
		{"replace span before caret", 8, 0, 5, -3, 5},
		{"edit after caret", 8, 9, 2, 5, 8},
		{"caret inside span within inserted text", 8, 6, 5, 0, 8},
		{"caret at span start", 6, 6, 5, -5, 6},
		{"caret at span end", 11, 6, 5, -4, 7},
		{"insert at caret", 8, 8, 0, 3, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Adjust(tt.caret, tt.start, tt.length, tt.delta))
		})
	}
}

func TestAdjustAll(t *testing.T) {
	changes := []text.TextChange{
		{Span: text.NewSpan(0, 5), NewText: "hi"},   // "hello" -> "hi", delta -3
		{Span: text.NewSpan(6, 0), NewText: "big "}, // insert before "world", delta +4
	}
	// Caret at 8 in "hello world" sits in "world"; it moves by -3 then +4.
	assert.Equal(t, 9, AdjustAll(8, changes))
	assert.Equal(t, 1, AdjustAll(1, changes))
	assert.Equal(t, 8, AdjustAll(8, nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 10))
	assert.Equal(t, 10, Clamp(15, 10))
	assert.Equal(t, 4, Clamp(4, 10))
	assert.Equal(t, 0, Clamp(4, 0))
}

func TestCaret(t *testing.T) {
	var zero Caret
	assert.Equal(t, 0, zero.CaretOffset())

	c := NewCaret(7)
	assert.Equal(t, 7, c.CaretOffset())
	c.SetCaretOffset(3)
	assert.Equal(t, 3, c.CaretOffset())
}
