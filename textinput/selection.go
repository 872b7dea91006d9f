package textinput

// SelectAll selects the whole text, anchored at the start.
func (t *TextInput) SelectAll() {
	t.Anchor = 0
	t.Cursor = len(t.Text)
}

// SetSelection sets cursor and anchor directly, clamping both to UTF-8
// boundaries.
func (t *TextInput) SetSelection(anchor, cursor int) {
	t.Anchor = t.SafeByteOffset(anchor)
	t.Cursor = t.SafeByteOffset(cursor)
}

// ClearSelection collapses the selection to the cursor position.
func (t *TextInput) ClearSelection() {
	t.Anchor = t.Cursor
}

// deleteSelection removes the selected range (if any) and returns the
// byte offset the cursor/anchor should collapse to. It does not push an
// undo entry or fire callbacks; callers (insertion.go) own that.
func (t *TextInput) deleteSelection() int {
	if !t.HasSelection() {
		return t.Cursor
	}
	from, to := t.SelectionRange()
	t.Text = t.Text[:from] + t.Text[to:]
	t.Cursor, t.Anchor = from, from
	return from
}
