// Package text provides immutable, versioned text snapshots.
//
// A [Text] never changes after it is created. Editing a snapshot with
// [Text.WithChanges] yields a new snapshot and leaves the original intact,
// which makes snapshots safe to cache, share across goroutines, and diff
// against each other at any time.
//
// # Core Types
//
//   - [Span]: a half-open byte range [Start, Start+Length)
//   - [TextChange]: a span in the old text plus its replacement text
//   - [ChangeRange]: a span plus the length of the replacement
//   - [Source]: the string-backed [Text] implementation
//
// # Change Lists
//
// [Text.TextChanges] answers "what edits turn old into this snapshot?".
// When the receiver was produced from old by WithChanges, the recorded
// changes are returned verbatim. Otherwise the two texts are diffed:
//
//	old := text.FromString("hello world")
//	cur := text.FromString("hello there world")
//	changes, _ := cur.TextChanges(old)
//	// [{[6..6) "there "}]
//
// Changes are always ascending by start offset, non-overlapping, and
// expressed in the coordinates of the old text.
//
// # Wrappers
//
// Types that decorate a Text implement Unwrap() Text. Every operation that
// takes another snapshot as an argument calls [Unwrap] on it first, so
// wrappers never hide content equality.
package text
