package textinput

// ClipboardKind distinguishes the platform's default clipboard from the
// secondary (middle-click / primary-selection) clipboard (spec §4.3
// "Clipboard": "middle-click also drives a secondary selection clipboard
// on platforms that distinguish them").
type ClipboardKind int

const (
	ClipboardDefault ClipboardKind = iota
	ClipboardSecondary
)

// Clipboard is the window adapter's clipboard surface (spec §6).
type Clipboard interface {
	SetText(kind ClipboardKind, text string)
	Text(kind ClipboardKind) (string, bool)
}

// Copy writes the current selection (or does nothing if there is none) to
// the given clipboard.
func (t *TextInput) Copy(clip Clipboard, kind ClipboardKind) {
	if !t.HasSelection() || clip == nil {
		return
	}
	from, to := t.SelectionRange()
	clip.SetText(kind, t.Text[from:to])
}

// Cut copies the selection then deletes it, as a single undo-tracked
// removal.
func (t *TextInput) Cut(clip Clipboard, kind ClipboardKind) {
	if !t.HasSelection() {
		return
	}
	t.Copy(clip, kind)
	from, to := t.SelectionRange()
	t.deleteRange(func() (int, int) { return from, to })
}

// Paste inserts the clipboard's text at the cursor through the full
// insertion pipeline, including undo entry creation (spec §4.3:
// "paste inserts at the cursor, going through the full insertion
// pipeline").
func (t *TextInput) Paste(clip Clipboard, kind ClipboardKind) bool {
	if clip == nil {
		return false
	}
	text, ok := clip.Text(kind)
	if !ok || text == "" {
		return false
	}
	return t.InsertText(text)
}
