package textinput

import "strings"

// InsertText runs the insertion pipeline spec §4.3 describes: validate
// against InputType, delete any existing selection, splice the text in,
// push a coalesced undo entry keyed on the pre-deletion selection, move
// the cursor past the inserted text, and fire the edited callback.
// Returns false (without mutating state) if the input type rejects s.
func (t *TextInput) InsertText(s string) bool {
	if !t.acceptsInput(s) {
		return false
	}
	if t.SingleLine {
		s = strings.ReplaceAll(s, "\n", " ")
	}

	cursorBefore, anchorBefore := t.Cursor, t.Anchor
	pos := t.deleteSelection()

	t.Text = t.Text[:pos] + s + t.Text[pos:]
	t.pushInsertUndo(pos, s, cursorBefore, anchorBefore)

	t.Cursor = pos + len(s)
	t.Anchor = t.Cursor
	t.fireEdited()
	return true
}

// DeleteBackward removes one character (rune) before the cursor (or the
// current selection, if any), pushing a Remove undo entry.
func (t *TextInput) DeleteBackward() bool {
	return t.deleteRange(func() (int, int) {
		if t.HasSelection() {
			return t.SelectionRange()
		}
		return PreviousCharBoundary(t.Text, t.Cursor), t.Cursor
	})
}

// DeleteForward removes one grapheme after the cursor (or the current
// selection, if any), pushing a Remove undo entry.
func (t *TextInput) DeleteForward() bool {
	return t.deleteRange(func() (int, int) {
		if t.HasSelection() {
			return t.SelectionRange()
		}
		return t.Cursor, NextGraphemeBoundary(t.Text, t.Cursor)
	})
}

func (t *TextInput) deleteRange(rangeFn func() (int, int)) bool {
	from, to := rangeFn()
	if from == to {
		return false
	}
	cursorBefore, anchorBefore := t.Cursor, t.Anchor
	removed := t.Text[from:to]
	t.Text = t.Text[:from] + t.Text[to:]
	t.Cursor, t.Anchor = from, from
	t.pushRemoveUndo(from, removed, cursorBefore, anchorBefore)
	t.fireEdited()
	return true
}

// acceptsInput implements spec §4.3 insertion step 1: reject Number input
// containing a non-digit, or Decimal input that would not parse as an
// in-progress decimal literal.
func (t *TextInput) acceptsInput(s string) bool {
	switch t.InputType {
	case Number:
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	case Decimal:
		from, to := t.SelectionRange()
		result := t.Text[:from] + s + t.Text[to:]
		return isInProgressDecimal(result)
	default:
		return true
	}
}

// isInProgressDecimal accepts a decimal literal or a valid prefix of one
// (a lone leading '-', a trailing '.', or both), since the user is still
// typing.
func isInProgressDecimal(s string) bool {
	if s == "" || s == "-" || s == "." || s == "-." {
		return true
	}
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	sawDigit, sawDot := false, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			sawDigit = true
		case s[i] == '.' && !sawDot:
			sawDot = true
		default:
			return false
		}
	}
	return sawDigit || sawDot
}
