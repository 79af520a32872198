package buffer

// edit is a recorded replacement: removed was replaced with inserted at offset.
type edit struct {
	offset   int
	removed  string
	inserted string
}

// undoUnit is a group of edits undone and redone together, in application order.
type undoUnit []edit

// history holds undo and redo stacks of edit groups.
// It is not safe for concurrent use; Document guards it.
type history struct {
	undo []undoUnit
	redo []undoUnit
	open undoUnit
	max  int
}

func newHistory() *history {
	return &history{max: DefaultMaxUndoEntries}
}

// record stores a user edit. Grouped edits accumulate until closeGroup.
// Any new edit invalidates the redo stack.
func (h *history) record(e edit, grouped bool) {
	h.redo = nil
	if grouped {
		h.open = append(h.open, e)
		return
	}
	h.push(undoUnit{e})
}

// closeGroup turns the accumulated grouped edits into one undo unit.
func (h *history) closeGroup() {
	if len(h.open) == 0 {
		return
	}
	h.push(h.open)
	h.open = nil
}

func (h *history) push(u undoUnit) {
	h.undo = append(h.undo, u)
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
}

func (h *history) popUndo() (undoUnit, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	u := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return u, true
}

func (h *history) popRedo() (undoUnit, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	u := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return u, true
}
