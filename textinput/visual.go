package textinput

import "unicode/utf8"

// passwordBullet is the substitute glyph for InputType Password (spec
// §4.3: "replace every character with a bullet, or a platform-provided
// substitute").
const passwordBullet = "•"

// VisualRepresentation is what the renderer actually draws: the committed
// text with the preedit spliced in at the cursor (or, for password
// fields, entirely masked), plus the byte ranges the renderer needs (spec
// §4.3 "Rendering view").
type VisualRepresentation struct {
	Text           string
	PreeditRange   [2]int
	SelectionRange [2]int
	Cursor         int

	masked   bool
	original string
}

// Visual builds the current VisualRepresentation.
func (t *TextInput) Visual() VisualRepresentation {
	if t.InputType == Password {
		return t.maskedVisual()
	}
	return t.plainVisual()
}

func (t *TextInput) plainVisual() VisualRepresentation {
	if t.Preedit.Empty() {
		from, to := t.SelectionRange()
		return VisualRepresentation{
			Text:           t.Text,
			PreeditRange:   [2]int{t.Cursor, t.Cursor},
			SelectionRange: [2]int{from, to},
			Cursor:         t.Cursor,
		}
	}
	pos := t.Cursor
	spliced := t.Text[:pos] + t.Preedit.Text + t.Text[pos:]
	preeditEnd := pos + len(t.Preedit.Text)
	cursor := pos + t.Preedit.cursorInPreedit
	return VisualRepresentation{
		Text:           spliced,
		PreeditRange:   [2]int{pos, preeditEnd},
		SelectionRange: [2]int{cursor, cursor},
		Cursor:         cursor,
	}
}

func (t *TextInput) maskedVisual() VisualRepresentation {
	n := utf8.RuneCountInString(t.Text)
	masked := ""
	for i := 0; i < n; i++ {
		masked += passwordBullet
	}
	from, to := t.SelectionRange()
	return VisualRepresentation{
		Text:           masked,
		PreeditRange:   [2]int{0, 0},
		SelectionRange: [2]int{t.mapForward(from), t.mapForward(to)},
		Cursor:         t.mapForward(t.Cursor),
		masked:         true,
		original:       t.Text,
	}
}

// mapForward maps a byte offset in the committed text to the corresponding
// byte offset in the masked visual string.
func (t *TextInput) mapForward(offset int) int {
	return runeIndexOf(t.Text, offset) * len(passwordBullet)
}

// MapBack maps a byte offset in v's masked text back to the corresponding
// byte offset in the committed text it was derived from (spec §4.3 /
// property 11: "map_back(map_forward(i)) == i when i is on a character
// boundary"). Returns (0, false) if v is not a masked representation.
func (v VisualRepresentation) MapBack(visualOffset int) (int, bool) {
	if !v.masked {
		return 0, false
	}
	if visualOffset%len(passwordBullet) != 0 {
		return 0, false
	}
	runeIndex := visualOffset / len(passwordBullet)
	return byteOffsetOfRune(v.original, runeIndex), true
}

func runeIndexOf(s string, byteOffset int) int {
	n := 0
	for i := range s {
		if i >= byteOffset {
			break
		}
		n++
	}
	return n
}

func byteOffsetOfRune(s string, runeIndex int) int {
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}
