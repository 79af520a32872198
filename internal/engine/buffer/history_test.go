package buffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRedoSingleEdits(t *testing.T) {
	d := NewDocumentFromString("hello")

	require.NoError(t, d.Insert(5, " world"))
	require.NoError(t, d.Replace(0, 5, "HELLO"))
	assert.Equal(t, "HELLO world", d.Text())

	require.NoError(t, d.Undo())
	assert.Equal(t, "hello world", d.Text())
	require.NoError(t, d.Undo())
	assert.Equal(t, "hello", d.Text())
	assert.False(t, d.CanUndo())
	assert.True(t, errors.Is(d.Undo(), ErrNothingToUndo))

	require.NoError(t, d.Redo())
	assert.Equal(t, "hello world", d.Text())
	require.NoError(t, d.Redo())
	assert.Equal(t, "HELLO world", d.Text())
	assert.False(t, d.CanRedo())
	assert.True(t, errors.Is(d.Redo(), ErrNothingToRedo))
}

func TestUndoGroupIsOneUnit(t *testing.T) {
	d := NewDocumentFromString("hello world")

	scope := d.UpdateScope()
	require.NoError(t, d.Replace(0, 5, "hi"))
	require.NoError(t, d.Replace(3, 5, "all"))
	scope.End()
	assert.Equal(t, "hi all", d.Text())

	var events []ChangeEvent
	d.OnChange(func(ev ChangeEvent) { events = append(events, ev) })

	require.NoError(t, d.Undo())
	assert.Equal(t, "hello world", d.Text())
	assert.Len(t, events, 2)
	assert.False(t, d.CanUndo())

	require.NoError(t, d.Redo())
	assert.Equal(t, "hi all", d.Text())
}

func TestUndoDuringUpdate(t *testing.T) {
	d := NewDocumentFromString("a")
	require.NoError(t, d.Insert(1, "b"))

	d.BeginUpdate()
	assert.True(t, errors.Is(d.Undo(), ErrUpdateInProgress))
	assert.True(t, errors.Is(d.Redo(), ErrUpdateInProgress))
	d.EndUpdate()

	require.NoError(t, d.Undo())
	assert.Equal(t, "a", d.Text())
}

func TestNewEditClearsRedo(t *testing.T) {
	d := NewDocumentFromString("a")
	require.NoError(t, d.Insert(1, "b"))
	require.NoError(t, d.Undo())
	assert.True(t, d.CanRedo())

	require.NoError(t, d.Insert(1, "c"))
	assert.False(t, d.CanRedo())
}

func TestMaxUndoEntries(t *testing.T) {
	d := NewDocumentFromString("", WithMaxUndoEntries(2))
	require.NoError(t, d.Insert(0, "a"))
	require.NoError(t, d.Insert(1, "b"))
	require.NoError(t, d.Insert(2, "c"))

	require.NoError(t, d.Undo())
	require.NoError(t, d.Undo())
	assert.Equal(t, "a", d.Text())
	assert.True(t, errors.Is(d.Undo(), ErrNothingToUndo))
}
