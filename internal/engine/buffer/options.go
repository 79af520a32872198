package buffer

// DefaultMaxUndoEntries is the default number of undo units kept.
const DefaultMaxUndoEntries = 1000

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithMaxUndoEntries sets the maximum number of undo units kept.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.history.max = max
		}
	}
}
