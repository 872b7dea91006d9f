package textinput

// Direction enumerates the cursor motion family spec §4.3 describes.
type Direction int

const (
	Forward Direction = iota
	Backward
	WordForward
	WordBackward
	LineUp
	LineDown
	LineStart
	LineEnd
	ParagraphStart
	ParagraphEnd
	DocumentStart
	DocumentEnd
	PageUp
	PageDown
	PreviousChar
)

// LineMotionProvider is the renderer collaborator line motion queries
// (spec §6 "Renderer": text_input_cursor_rect_for_byte_offset /
// text_input_byte_offset_for_position).
type LineMotionProvider interface {
	// CursorPosition returns the (x, y, fontHeight) of the cursor at the
	// given byte offset.
	CursorPosition(text string, offset int) (x, y, fontHeight float32)
	// ByteOffsetAt returns the byte offset nearest (x, y).
	ByteOffsetAt(text string, x, y float32) int
}

// linesPerPage governs PageUp/PageDown when no explicit viewport height is
// known; callers with a real viewport should prefer repeated LineUp/Down.
const linesPerPage = 10

// Move computes the destination of a motion and applies it to t according
// to mode (spec §4.3 "Cursor motion", "Selection vs. motion").
func (t *TextInput) Move(dir Direction, mode AnchorMode, provider LineMotionProvider) {
	dest := t.motionTarget(dir, provider)
	t.applyMotion(dest, mode, dir)
}

func (t *TextInput) motionTarget(dir Direction, provider LineMotionProvider) int {
	switch dir {
	case Forward:
		return NextGraphemeBoundary(t.Text, t.Cursor)
	case Backward:
		return PreviousGraphemeBoundary(t.Text, t.Cursor)
	case PreviousChar:
		return PreviousCharBoundary(t.Text, t.Cursor)
	case WordForward:
		return NextWordBoundary(t.Text, t.Cursor)
	case WordBackward:
		return PreviousWordBoundary(t.Text, t.Cursor)
	case LineStart, ParagraphStart:
		return lineStart(t.Text, t.Cursor)
	case LineEnd, ParagraphEnd:
		return lineEnd(t.Text, t.Cursor)
	case DocumentStart:
		return 0
	case DocumentEnd:
		return len(t.Text)
	case LineUp:
		return t.verticalMotion(provider, -1)
	case LineDown:
		return t.verticalMotion(provider, 1)
	case PageUp:
		return t.verticalMotion(provider, -linesPerPage)
	case PageDown:
		return t.verticalMotion(provider, linesPerPage)
	default:
		return t.Cursor
	}
}

// applyMotion implements the KeepAnchor/MoveAnchor + collapse-to-larger-
// offset rule (spec §4.3: "When cursor != anchor and the caller passes
// MoveAnchor with a forward move, the motion collapses to the larger of
// the two offsets rather than advancing further").
func (t *TextInput) applyMotion(dest int, mode AnchorMode, dir Direction) {
	dest = t.SafeByteOffset(dest)
	if mode == KeepAnchor {
		t.Cursor = dest
		return
	}
	if t.HasSelection() && isForwardDirection(dir) {
		_, to := t.SelectionRange()
		t.Cursor, t.Anchor = to, to
		return
	}
	t.Cursor, t.Anchor = dest, dest
}

func isForwardDirection(dir Direction) bool {
	switch dir {
	case Forward, WordForward, LineDown, LineEnd, ParagraphEnd, DocumentEnd, PageDown:
		return true
	default:
		return false
	}
}

func lineStart(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	for i := offset - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func lineEnd(s string, offset int) int {
	offset = safeByteOffset(s, offset)
	for i := offset; i < len(s); i++ {
		if s[i] == '\n' {
			return i
		}
	}
	return len(s)
}

// verticalMotion queries the renderer for the cursor's current position,
// offsets y by lines*fontHeight, and asks for the byte offset at the
// resulting point — preserving PreferredXPos across the move (spec §4.3:
// "Line motion queries the renderer for the current cursor rect, offsets y
// by one font-height, and asks for the byte offset at the resulting
// point, preserving preferred_x_pos").
func (t *TextInput) verticalMotion(provider LineMotionProvider, lines int) int {
	if provider == nil {
		return t.Cursor
	}
	x, y, h := provider.CursorPosition(t.Text, t.Cursor)
	if t.PreferredXPos == 0 {
		t.PreferredXPos = x
	}
	targetY := y + h*float32(lines)
	return provider.ByteOffsetAt(t.Text, t.PreferredXPos, targetY)
}
