package textinput

// CompositionUpdate is the payload of an UpdateComposition/CommitComposition
// event (spec §4.3 "IME").
type CompositionUpdate struct {
	PreeditText      string
	PreeditSelection [2]int
	// ReplacementRange, if non-nil, expands the current selection by this
	// byte range (relative to the cursor) before deleting it and inserting
	// CommittedText — used when the IME finalizes already-composed text
	// ahead of starting a fresh composition.
	ReplacementRange *[2]int
	CommittedText    string
	// CursorPosition is a byte offset *within PreeditText* marking where
	// the visual cursor renders; zero means the end of the preedit.
	// CommitComposition ignores it and leaves the cursor just past
	// CommittedText.
	CursorPosition int
}

// UpdateComposition implements spec §4.3's UpdateComposition event: expand
// and delete any replacement range, insert any already-committed text ahead
// of the new composition (advancing the committed-text cursor past it), then
// record the new preedit, which floats at the (possibly just-advanced)
// cursor until committed.
func (t *TextInput) UpdateComposition(u CompositionUpdate) {
	t.spliceReplacement(u)
	t.insertCommittedText(u)
	cursorInPreedit := u.CursorPosition
	if cursorInPreedit == 0 {
		cursorInPreedit = len(u.PreeditText) // default: cursor at end of composition
	}
	t.Preedit = Preedit{Text: u.PreeditText, Selection: u.PreeditSelection, cursorInPreedit: cursorInPreedit}
}

// CommitComposition finalizes the composition: splice in any replacement,
// then the committed text itself, move the committed-text cursor past it,
// and clear the preedit (spec §4.3: "same as update except the composition
// is cleared on completion").
func (t *TextInput) CommitComposition(u CompositionUpdate) {
	t.spliceReplacement(u)
	t.insertCommittedText(u)
	t.Preedit = Preedit{}
}

// insertCommittedText splices u.CommittedText into the committed text at
// the cursor (replacing any active selection first) and advances the
// cursor past it. It is shared by UpdateComposition and CommitComposition:
// original_source/internal/core/items/text.rs runs the identical insert
// logic for both IME event kinds, since an IME may finalize part of a
// composition while continuing to compose the rest.
func (t *TextInput) insertCommittedText(u CompositionUpdate) {
	if u.CommittedText == "" {
		return
	}
	pos := t.deleteSelection()
	t.Text = t.Text[:pos] + u.CommittedText + t.Text[pos:]
	t.Cursor = pos + len(u.CommittedText)
	t.Anchor = t.Cursor
}

func (t *TextInput) spliceReplacement(u CompositionUpdate) {
	if u.ReplacementRange == nil {
		return
	}
	from := t.SafeByteOffset(t.Cursor + u.ReplacementRange[0])
	to := t.SafeByteOffset(t.Cursor + u.ReplacementRange[1])
	if from > to {
		from, to = to, from
	}
	t.Anchor, t.Cursor = from, from
	t.Text = t.Text[:from] + t.Text[to:]
}

// FocusOut handles losing focus while composing. autoCommit reflects the
// window adapter's platform capability flag (spec §9 open question: "the
// IME auto-commit on focus-out ... should be surfaced as a capability flag
// from the window adapter"); when true, any non-empty preedit is folded
// into the committed text at the cursor.
func (t *TextInput) FocusOut(autoCommit bool) {
	if !autoCommit || t.Preedit.Empty() {
		t.Preedit = Preedit{}
		return
	}
	pos := t.Cursor
	t.Text = t.Text[:pos] + t.Preedit.Text + t.Text[pos:]
	t.Cursor = pos + len(t.Preedit.Text)
	t.Anchor = t.Cursor
	t.Preedit = Preedit{}
	t.fireEdited()
}
