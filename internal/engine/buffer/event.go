package buffer

import (
	"fmt"
	"sync"
)

// ChangeEvent describes one committed edit: RemovedLength bytes starting
// at Offset were replaced with InsertedText.
type ChangeEvent struct {
	Offset        int
	RemovedLength int
	RemovedText   string
	InsertedText  string
}

// InsertedLength returns the length of the inserted text.
func (e ChangeEvent) InsertedLength() int {
	return len(e.InsertedText)
}

// String returns a human-readable representation of the event.
func (e ChangeEvent) String() string {
	return fmt.Sprintf("[%d..%d) => %q", e.Offset, e.Offset+e.RemovedLength, e.InsertedText)
}

// ChangeHandler receives change events.
type ChangeHandler func(ChangeEvent)

type listener struct {
	id      uint64
	handler ChangeHandler
}

// listenerSet is an ordered set of change handlers.
type listenerSet struct {
	mu      sync.Mutex
	nextID  uint64
	entries []listener
}

// add registers h and returns a function that removes it.
// The returned function is safe to call more than once.
func (ls *listenerSet) add(h ChangeHandler) func() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.nextID++
	id := ls.nextID
	ls.entries = append(ls.entries, listener{id: id, handler: h})

	var once sync.Once
	return func() {
		once.Do(func() { ls.remove(id) })
	}
}

func (ls *listenerSet) remove(id uint64) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for i, l := range ls.entries {
		if l.id == id {
			ls.entries = append(ls.entries[:i:i], ls.entries[i+1:]...)
			return
		}
	}
}

func (ls *listenerSet) len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.entries)
}

// notify calls every handler registered at the time of the call.
func (ls *listenerSet) notify(ev ChangeEvent) {
	ls.mu.Lock()
	entries := make([]listener, len(ls.entries))
	copy(entries, ls.entries)
	ls.mu.Unlock()

	for _, l := range entries {
		l.handler(ev)
	}
}
