package bridge

import (
	"fmt"
	"sync"

	"github.com/dshills/textbridge/internal/engine/text"
)

// TextChangedEvent reports a snapshot swap caused by a buffer edit.
type TextChangedEvent struct {
	Old    *Snapshot
	New    *Snapshot
	Change text.ChangeRange
}

// String returns a debug representation.
func (e TextChangedEvent) String() string {
	return fmt.Sprintf("TextChanged{%s, len %d -> %d}", e.Change, e.Old.Len(), e.New.Len())
}

// TextChangedHandler is called after the current snapshot has been replaced.
type TextChangedHandler func(TextChangedEvent)

type handlerEntry struct {
	id uint64
	fn TextChangedHandler
}

// handlerSet is an ordered set of TextChangedHandlers.
type handlerSet struct {
	mu      sync.Mutex
	nextID  uint64
	entries []handlerEntry
}

func (hs *handlerSet) add(fn TextChangedHandler) func() {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.nextID++
	id := hs.nextID
	hs.entries = append(hs.entries, handlerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			hs.mu.Lock()
			defer hs.mu.Unlock()
			for i, e := range hs.entries {
				if e.id == id {
					hs.entries = append(hs.entries[:i:i], hs.entries[i+1:]...)
					return
				}
			}
		})
	}
}

func (hs *handlerSet) len() int {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return len(hs.entries)
}

func (hs *handlerSet) notify(ev TextChangedEvent) {
	hs.mu.Lock()
	entries := make([]handlerEntry, len(hs.entries))
	copy(entries, hs.entries)
	hs.mu.Unlock()

	for _, e := range entries {
		e.fn(ev)
	}
}
