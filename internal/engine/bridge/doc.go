// Package bridge keeps a mutable [buffer.Document] and an immutable
// [text.Text] snapshot of the same content in sync, in both directions.
//
// # Forward Path
//
// Every edit reported by the buffer is turned into a single-change
// snapshot update. The bridge swaps in the new snapshot and fires a
// [TextChangedEvent] carrying the old snapshot, the new snapshot and the
// exact change descriptor, so consumers never need to re-diff:
//
//	doc := buffer.NewDocumentFromString("hello world")
//	b := bridge.New(doc)
//	defer b.Close()
//
//	b.OnTextChanged(func(ev bridge.TextChangedEvent) {
//	    // ev.Change == {[6..11) => 5}
//	})
//	doc.Replace(6, 5, "there")
//
// # Reverse Path
//
// [Bridge.ReplaceWith] accepts a whole replacement snapshot, typically a
// re-generated text from an analysis step. The bridge diffs it against the
// current snapshot and replays the changes on the buffer inside one update
// group, moving the tracked caret with [cursor.Adjust] as it goes. The
// replacement then becomes the current snapshot verbatim.
//
// Edits made by the replay are not translated back (a re-entrancy guard
// suppresses them) and the reverse path fires no TextChangedEvent.
//
// # Concurrency
//
// The bridge assumes one direction is active at a time: while ReplaceWith
// runs, nobody else edits the buffer. The guard is a single flag, so
// calling ReplaceWith from inside a replay fails with ErrReentrantUpdate.
// Current may be read from any goroutine.
//
// # Snapshot Ownership
//
// Every [Snapshot] produced by a Bridge refers back to it through a weak
// pointer. Snapshots never keep their bridge alive.
package bridge
