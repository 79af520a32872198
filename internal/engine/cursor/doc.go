// Package cursor implements caret tracking and the rules that move a caret
// when text around it is replaced.
//
// [Adjust] is the single-edit rule. A caret after the edited span rides
// along with the size change; a caret inside the span stays put unless it
// would fall past the end of the inserted text, in which case it snaps to
// the start of the edit; a caret before the span is untouched.
//
// [AdjustAll] applies the rule to a batch of changes expressed in the
// coordinates of the original text, correcting each change's start by the
// net delta of the changes before it.
package cursor
