package textinput

// pushInsertUndo records an Insert entry, coalescing into the previous
// entry when it is also an Insert ending exactly where this one begins and
// neither text is a bare newline (spec §4.3 "Undo coalescing").
func (t *TextInput) pushInsertUndo(pos int, inserted string, cursorBefore, anchorBefore int) {
	t.RedoItems = nil
	if n := len(t.UndoItems); n > 0 {
		prev := &t.UndoItems[n-1]
		if prev.Kind == UndoInsert && prev.Pos+len(prev.Text) == pos &&
			prev.Text != "\n" && inserted != "\n" {
			prev.Text += inserted
			return
		}
	}
	t.UndoItems = append(t.UndoItems, UndoItem{
		Pos: pos, Text: inserted, CursorBefore: cursorBefore, AnchorBefore: anchorBefore, Kind: UndoInsert,
	})
}

// pushRemoveUndo records a Remove entry, coalescing into the previous
// entry when it is also a Remove and this removal's end is the previous
// removal's start (prepending, since removals accumulate backward as the
// user holds Backspace).
func (t *TextInput) pushRemoveUndo(pos int, removed string, cursorBefore, anchorBefore int) {
	t.RedoItems = nil
	if n := len(t.UndoItems); n > 0 {
		prev := &t.UndoItems[n-1]
		if prev.Kind == UndoRemove && pos+len(removed) == prev.Pos {
			prev.Pos = pos
			prev.Text = removed + prev.Text
			return
		}
	}
	t.UndoItems = append(t.UndoItems, UndoItem{
		Pos: pos, Text: removed, CursorBefore: cursorBefore, AnchorBefore: anchorBefore, Kind: UndoRemove,
	})
}

// Undo reverts the most recent undo entry, moving it to the redo stack.
func (t *TextInput) Undo() bool {
	n := len(t.UndoItems)
	if n == 0 {
		return false
	}
	item := t.UndoItems[n-1]
	t.UndoItems = t.UndoItems[:n-1]
	switch item.Kind {
	case UndoInsert:
		t.Text = t.Text[:item.Pos] + t.Text[item.Pos+len(item.Text):]
	case UndoRemove:
		t.Text = t.Text[:item.Pos] + item.Text + t.Text[item.Pos:]
	}
	t.Cursor, t.Anchor = item.CursorBefore, item.AnchorBefore
	t.RedoItems = append(t.RedoItems, item)
	t.fireEdited()
	return true
}

// Redo reapplies the most recently undone entry.
func (t *TextInput) Redo() bool {
	n := len(t.RedoItems)
	if n == 0 {
		return false
	}
	item := t.RedoItems[n-1]
	t.RedoItems = t.RedoItems[:n-1]
	switch item.Kind {
	case UndoInsert:
		t.Text = t.Text[:item.Pos] + item.Text + t.Text[item.Pos:]
		t.Cursor, t.Anchor = item.Pos+len(item.Text), item.Pos+len(item.Text)
	case UndoRemove:
		t.Text = t.Text[:item.Pos] + t.Text[item.Pos+len(item.Text):]
		t.Cursor, t.Anchor = item.Pos, item.Pos
	}
	t.UndoItems = append(t.UndoItems, item)
	t.fireEdited()
	return true
}
