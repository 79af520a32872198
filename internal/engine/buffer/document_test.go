package buffer

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	assert.Equal(t, "", d.Text())
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 1, d.LineCount())
	assert.Equal(t, uint64(0), d.Version())
}

func TestDocumentLines(t *testing.T) {
	d := NewDocumentFromString("line1\nline2\r\nline3")
	assert.Equal(t, 3, d.LineCount())
	assert.Equal(t, "line1", d.LineText(0))
	assert.Equal(t, "line2", d.LineText(1))
	assert.Equal(t, "line3", d.LineText(2))
	assert.Equal(t, "", d.LineText(3))
	assert.Equal(t, "", d.LineText(-1))
}

func TestDocumentEdits(t *testing.T) {
	d := NewDocumentFromString("Hello World")

	require.NoError(t, d.Insert(5, ","))
	assert.Equal(t, "Hello, World", d.Text())

	require.NoError(t, d.Delete(5, 1))
	assert.Equal(t, "Hello World", d.Text())

	require.NoError(t, d.Replace(6, 5, "Go"))
	assert.Equal(t, "Hello Go", d.Text())
	assert.Equal(t, uint64(3), d.Version())
}

func TestDocumentReplaceOutOfRange(t *testing.T) {
	d := NewDocumentFromString("abc")

	tests := []struct {
		name           string
		offset, length int
	}{
		{"negative offset", -1, 0},
		{"negative length", 0, -1},
		{"past end", 2, 2},
		{"offset past end", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.Replace(tt.offset, tt.length, "x")
			assert.True(t, errors.Is(err, ErrRangeInvalid), "got %v", err)
			assert.Equal(t, "abc", d.Text())
		})
	}
}

func TestDocumentChangeEvents(t *testing.T) {
	d := NewDocumentFromString("hello world")

	var events []ChangeEvent
	unsubscribe := d.OnChange(func(ev ChangeEvent) {
		events = append(events, ev)
	})
	assert.Equal(t, 1, d.ListenerCount())

	require.NoError(t, d.Replace(6, 5, "there"))
	require.NoError(t, d.Insert(11, "!"))
	require.NoError(t, d.Replace(3, 0, ""))

	require.Len(t, events, 2)
	assert.Equal(t, ChangeEvent{Offset: 6, RemovedLength: 5, RemovedText: "world", InsertedText: "there"}, events[0])
	assert.Equal(t, 5, events[0].InsertedLength())
	assert.Equal(t, ChangeEvent{Offset: 11, InsertedText: "!"}, events[1])

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, d.ListenerCount())

	require.NoError(t, d.Insert(0, ">"))
	assert.Len(t, events, 2)
}

func TestDocumentListenerSeesCommittedText(t *testing.T) {
	d := NewDocumentFromString("abc")

	var seen string
	d.OnChange(func(ChangeEvent) {
		seen = d.Text()
	})
	require.NoError(t, d.Insert(3, "d"))
	assert.Equal(t, "abcd", seen)
}

func TestDocumentSnapshotIsImmutable(t *testing.T) {
	d := NewDocumentFromString("abc")
	snap := d.Snapshot()

	require.NoError(t, d.Insert(0, "x"))
	assert.Equal(t, "abc", snap.String())
	assert.Equal(t, "xabc", d.Snapshot().String())
}

func TestDocumentUpdateGroups(t *testing.T) {
	d := NewDocumentFromString("abc")
	assert.False(t, d.IsUpdating())

	d.BeginUpdate()
	d.BeginUpdate()
	assert.True(t, d.IsUpdating())
	d.EndUpdate()
	assert.True(t, d.IsUpdating())
	d.EndUpdate()
	assert.False(t, d.IsUpdating())

	assert.Panics(t, func() { d.EndUpdate() })
}

func TestUpdateScope(t *testing.T) {
	d := NewDocumentFromString("abc")

	scope := d.UpdateScope()
	assert.True(t, d.IsUpdating())
	scope.End()
	scope.End()
	assert.False(t, d.IsUpdating())
}

func TestDocumentConcurrentReads(t *testing.T) {
	d := NewDocumentFromString("0123456789")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = d.Text()
				_ = d.Len()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		require.NoError(t, d.Insert(0, "x"))
	}
	wg.Wait()
	assert.Equal(t, 110, d.Len())
}
