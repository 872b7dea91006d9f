// Package textinput implements C3, the text input state machine: the
// committed text, cursor/anchor byte offsets, IME composition state, and
// undo/redo log shared by every editable text widget (spec §4.3).
package textinput

// InputType restricts which characters InsertText accepts.
type InputType int

const (
	Text InputType = iota
	Number
	Decimal
	Password
)

// AnchorMode selects whether a motion operation drags the selection anchor
// along with the cursor (spec §4.3 "Selection vs. motion").
type AnchorMode int

const (
	MoveAnchor AnchorMode = iota
	KeepAnchor
)

// UndoKind tags an undo/redo log entry.
type UndoKind int

const (
	UndoInsert UndoKind = iota
	UndoRemove
)

// UndoItem is one coalesced edit, recorded with enough state to reconstruct
// both the forward and backward transition (spec §4.3 "State").
type UndoItem struct {
	Pos           int
	Text          string
	CursorBefore  int
	AnchorBefore  int
	Kind          UndoKind
}

// Preedit is the transient, uncommitted IME composition.
type Preedit struct {
	Text      string
	Selection [2]int // byte offsets within Text

	cursorInPreedit int // byte offset within Text where the visual cursor renders
}

// Empty reports whether there is no active composition.
func (p Preedit) Empty() bool { return p.Text == "" }

// TextInput is the full state of one editable text field (spec §4.3).
type TextInput struct {
	Text   string
	Cursor int
	Anchor int

	Preedit Preedit

	PreferredXPos float32
	Pressed       uint8

	SingleLine bool
	InputType  InputType

	UndoItems []UndoItem
	RedoItems []UndoItem

	OnEdited func()
}

// NewTextInput returns a TextInput with cursor and anchor both at the end
// of text.
func NewTextInput(text string) *TextInput {
	t := &TextInput{Text: text}
	t.Cursor = len(text)
	t.Anchor = len(text)
	return t
}

// SafeByteOffset clamps offset to [0, len(t.Text)] and then to the nearest
// UTF-8 rune boundary at or before it (spec §4.3 "Failure semantics":
// "Out-of-range offsets are silently clamped to valid UTF-8 boundaries").
func (t *TextInput) SafeByteOffset(offset int) int {
	return safeByteOffset(t.Text, offset)
}

func safeByteOffset(s string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s) {
		offset = len(s)
	}
	for offset > 0 && isUTF8Continuation(s[offset]) {
		offset--
	}
	return offset
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// HasSelection reports whether cursor and anchor differ.
func (t *TextInput) HasSelection() bool {
	return t.Cursor != t.Anchor
}

// SelectionRange returns the selection as an ordered [from, to) byte range.
func (t *TextInput) SelectionRange() (from, to int) {
	if t.Cursor < t.Anchor {
		return t.Cursor, t.Anchor
	}
	return t.Anchor, t.Cursor
}

// SetCursor sets both cursor and anchor to offset, clamped to a UTF-8
// boundary, clearing any selection.
func (t *TextInput) SetCursor(offset int) {
	off := t.SafeByteOffset(offset)
	t.Cursor, t.Anchor = off, off
}

func (t *TextInput) fireEdited() {
	if t.OnEdited != nil {
		t.OnEdited()
	}
}
