package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textbridge/internal/config"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestNew(t *testing.T) {
	e := New()
	defer e.Close()

	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, 1, e.LineCount())
	assert.Equal(t, "", e.Snapshot().String())
	assert.Equal(t, 0, e.CaretOffset())
	assert.False(t, e.IsReadOnly())
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("line 1\nline 2"), WithCaret(100))
	defer e.Close()

	assert.Equal(t, "line 1\nline 2", e.Text())
	assert.Equal(t, 2, e.LineCount())
	assert.Equal(t, "line 2", e.LineText(1))
	assert.Equal(t, e.Len(), e.CaretOffset())
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("Hello, World!"))
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, "Hello, World!", e.Snapshot().String())

	_, err = NewFromReader(errReader{})
	assert.Error(t, err)
}

func TestEditsUpdateSnapshot(t *testing.T) {
	e := New(WithContent("Hello, World!"))
	defer e.Close()

	var changes []ChangeRange
	e.OnTextChanged(func(ev TextChangedEvent) {
		changes = append(changes, ev.Change)
	})

	require.NoError(t, e.Replace(7, 5, "Go"))
	assert.Equal(t, "Hello, Go!", e.Text())
	assert.Equal(t, "Hello, Go!", e.Snapshot().String())

	require.NoError(t, e.Undo())
	assert.Equal(t, "Hello, World!", e.Snapshot().String())
	require.NoError(t, e.Redo())
	assert.Equal(t, "Hello, Go!", e.Snapshot().String())

	require.Len(t, changes, 3)
	assert.Equal(t, ChangeRange{Span: NewSpan(7, 5), NewLength: 2}, changes[0])

	assert.ErrorIs(t, e.Replace(50, 1, "x"), ErrRangeInvalid)
}

func TestUndoRedoEmpty(t *testing.T) {
	e := New()
	defer e.Close()

	assert.False(t, e.CanUndo())
	assert.ErrorIs(t, e.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, e.Redo(), ErrNothingToRedo)
}

func TestUndoGroup(t *testing.T) {
	e := New(WithContent("fn"))
	defer e.Close()

	e.BeginUndoGroup()
	require.NoError(t, e.Insert(2, " main"))
	require.NoError(t, e.Insert(7, "()"))
	e.EndUndoGroup()
	assert.Equal(t, "fn main()", e.Text())

	require.NoError(t, e.Undo())
	assert.Equal(t, "fn", e.Text())
	assert.True(t, e.CanRedo())
}

func TestCaretFollowsEdits(t *testing.T) {
	e := New(WithContent("hello world"), WithCaret(8))
	defer e.Close()

	require.NoError(t, e.Insert(0, ">>"))
	assert.Equal(t, 10, e.CaretOffset())

	require.NoError(t, e.Delete(0, 2))
	assert.Equal(t, 8, e.CaretOffset())

	require.NoError(t, e.Insert(9, "X"))
	assert.Equal(t, 8, e.CaretOffset())

	require.NoError(t, e.InsertAtCaret("ab"))
	assert.Equal(t, "hello woabrXld", e.Text())
	assert.Equal(t, 10, e.CaretOffset())
}

func TestSetCaretOffset(t *testing.T) {
	e := New(WithContent("abc"))
	defer e.Close()

	require.NoError(t, e.SetCaretOffset(3))
	assert.Equal(t, 3, e.CaretOffset())
	assert.ErrorIs(t, e.SetCaretOffset(4), ErrOffsetOutOfRange)
	assert.ErrorIs(t, e.SetCaretOffset(-1), ErrOffsetOutOfRange)
	assert.Equal(t, 3, e.CaretOffset())
}

func TestReplaceText(t *testing.T) {
	e := New(WithContent("hello world"), WithCaret(8))
	defer e.Close()

	fired := 0
	e.OnTextChanged(func(TextChangedEvent) { fired++ })

	next, err := e.Snapshot().WithChanges(TextChange{Span: NewSpan(6, 5), NewText: "w"})
	require.NoError(t, err)
	require.NoError(t, e.ReplaceText(context.Background(), next))

	assert.Equal(t, "hello w", e.Text())
	assert.Equal(t, 6, e.CaretOffset())
	assert.Equal(t, 0, fired)

	// The whole replacement undoes at once, and the snapshot follows.
	require.NoError(t, e.Undo())
	assert.Equal(t, "hello world", e.Snapshot().String())
	assert.Equal(t, 1, fired)
}

func TestReplaceString(t *testing.T) {
	e := New(WithContent("a\nb\nc\n"), WithCaret(1))
	defer e.Close()

	require.NoError(t, e.ReplaceString(context.Background(), "a\nB\nc\nd\n"))
	assert.Equal(t, "a\nB\nc\nd\n", e.Text())
	assert.Equal(t, 1, e.CaretOffset())
	assert.Equal(t, e.Text(), e.Snapshot().String())
}

func TestReadOnly(t *testing.T) {
	e := New(WithContent("fixed"), WithReadOnly())
	defer e.Close()

	assert.True(t, e.IsReadOnly())
	assert.ErrorIs(t, e.Insert(0, "x"), ErrReadOnly)
	assert.ErrorIs(t, e.Delete(0, 1), ErrReadOnly)
	assert.ErrorIs(t, e.InsertAtCaret("x"), ErrReadOnly)
	assert.ErrorIs(t, e.Undo(), ErrReadOnly)
	assert.ErrorIs(t, e.Redo(), ErrReadOnly)
	assert.ErrorIs(t, e.ReplaceString(context.Background(), "other"), ErrReadOnly)
	assert.Equal(t, "fixed", e.Text())
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Undo.MaxEntries = 2
	cfg.Log.Level = "error"

	e := New(WithConfig(cfg))
	defer e.Close()
	assert.Equal(t, cfg, e.Config())

	for i := range 4 {
		require.NoError(t, e.Insert(i, "x"))
	}
	require.NoError(t, e.Undo())
	require.NoError(t, e.Undo())
	assert.False(t, e.CanUndo())
	assert.Equal(t, "xx", e.Text())
}

func TestWithMaxUndoEntriesOverridesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Undo.MaxEntries = 1

	e := New(WithConfig(cfg), WithMaxUndoEntries(3))
	defer e.Close()

	for i := range 3 {
		require.NoError(t, e.Insert(i, "x"))
	}
	for range 3 {
		require.NoError(t, e.Undo())
	}
	assert.Equal(t, "", e.Text())
}

func TestClose(t *testing.T) {
	e := New(WithContent("abc"), WithCaret(3))
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	assert.Equal(t, 0, e.Document().ListenerCount())
	require.NoError(t, e.Insert(0, "x"))
	assert.Equal(t, 3, e.CaretOffset())
	assert.Equal(t, "abc", e.Snapshot().String())
	assert.ErrorIs(t, e.ReplaceString(context.Background(), "z"), ErrClosed)
}
