// Package buffer provides the mutable, event-emitting document edited by
// the user.
//
// A [Document] holds its content as an immutable [text.Source] and swaps in
// a new source on every edit, so taking a snapshot is O(1). After each
// committed edit the document notifies its listeners synchronously with a
// [ChangeEvent] describing exactly what was replaced.
//
// # Update Groups
//
// BeginUpdate and EndUpdate bracket a batch of edits. Groups nest; the
// edits inside the outermost group form a single undo unit:
//
//	doc := buffer.NewDocumentFromString("hello world")
//	scope := doc.UpdateScope()
//	doc.Replace(0, 5, "hi")
//	doc.Replace(3, 5, "all")
//	scope.End()
//
//	doc.Undo() // "hello world" again, in one step
//
// # Thread Safety
//
// All Document methods are safe for concurrent use. Listeners run on the
// goroutine that made the edit, after the document lock is released.
package buffer
