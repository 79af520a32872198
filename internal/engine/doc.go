// Package engine combines a mutable document, a caret and a snapshot bridge
// into one editing session.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - text: immutable snapshots, spans, change descriptors and diffing
//   - buffer: the mutable, event-emitting document with undo/redo
//   - cursor: caret storage and the caret adjustment policy
//   - bridge: keeps the document and its snapshot in sync in both directions
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("Hello, World!"))
//	defer e.Close()
//
//	e.Replace(7, 5, "Go") // "Hello, Go!"
//	e.Undo()               // "Hello, World!"
//
// # Snapshots
//
// Every edit produces a new immutable snapshot. Subscribers learn the exact
// change without diffing:
//
//	e.OnTextChanged(func(ev engine.TextChangedEvent) {
//	    analyze(ev.New, ev.Change)
//	})
//
// A re-generated text goes back into the document with ReplaceText. Only
// the differences are replayed, as one undo unit, and the caret stays on
// the same content:
//
//	snap := e.Snapshot()
//	next, _ := snap.WithChanges(engine.TextChange{Span: engine.NewSpan(0, 5), NewText: "Howdy"})
//	e.ReplaceText(ctx, next)
//
// # Configuration
//
//	cfg, err := config.Load("session.toml")
//	e := engine.New(engine.WithConfig(cfg), engine.WithContent(src))
//
// # Read-Only Mode
//
//	e := engine.New(engine.WithContent("fixed"), engine.WithReadOnly())
//	err := e.Insert(0, "x") // err == engine.ErrReadOnly
//
// # Thread Safety
//
// Reads may happen from any goroutine. Edits and ReplaceText must not run
// concurrently with each other.
package engine
