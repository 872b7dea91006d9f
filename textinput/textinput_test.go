package textinput_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlang/core/textinput"
)

func TestCursorOffsetsStayOnUTF8Boundaries(t *testing.T) {
	ti := textinput.NewTextInput("a日b")
	ti.SetCursor(2) // mid-way through the 3-byte rune
	assert.NotEqual(t, 2, ti.Cursor)
	assert.True(t, ti.Cursor == 1 || ti.Cursor == 4)
}

func TestUndoRoundTripAfterCoalescedInserts(t *testing.T) {
	ti := textinput.NewTextInput("")
	ti.InsertText("hel")
	ti.InsertText("lo")
	require.Len(t, ti.UndoItems, 1)
	assert.Equal(t, "hello", ti.UndoItems[0].Text)

	textBefore, cursorBefore, anchorBefore := ti.Text, ti.Cursor, ti.Anchor

	require.True(t, ti.Undo())
	assert.Equal(t, "", ti.Text)

	require.True(t, ti.Redo())
	assert.Equal(t, textBefore, ti.Text)
	assert.Equal(t, cursorBefore, ti.Cursor)
	assert.Equal(t, anchorBefore, ti.Anchor)
}

func TestOneUndoEmptiesCoalescedTyping(t *testing.T) {
	// S5 — Undo coalescing.
	ti := textinput.NewTextInput("")
	ti.InsertText("hel")
	ti.InsertText("lo")
	require.Len(t, ti.UndoItems, 1)
	ti.Undo()
	assert.Equal(t, "", ti.Text)
}

func TestSelectionDeleteReplaceIdentity(t *testing.T) {
	ti := textinput.NewTextInput("hello world")
	ti.SetSelection(2, 7) // "llo w"
	ti.InsertText("")
	assert.Equal(t, "heorld", ti.Text)
	assert.Equal(t, 2, ti.Cursor)
	assert.Equal(t, 2, ti.Anchor)
}

func TestPasswordMappingRoundTrips(t *testing.T) {
	ti := textinput.NewTextInput("sesame")
	ti.InputType = textinput.Password
	v := ti.Visual()
	for _, i := range []int{0, 1, 2, 3, 4, 5, 6} {
		forward := i * len("•")
		back, ok := v.MapBack(forward)
		require.True(t, ok)
		assert.Equal(t, i, back)
	}
}

func TestIMECompositionSplicesPreeditWithoutTouchingCommittedText(t *testing.T) {
	// S6 — IME composition.
	ti := textinput.NewTextInput("abcd")
	ti.SetCursor(2)
	ti.UpdateComposition(textinput.CompositionUpdate{PreeditText: "X"})

	v := ti.Visual()
	assert.Equal(t, "abXcd", v.Text)
	assert.Equal(t, [2]int{2, 3}, v.PreeditRange)
	assert.Equal(t, 3, v.Cursor)
	assert.Equal(t, "abcd", ti.Text)
}

func TestUpdateCompositionInsertsCommittedTextWhileContinuingComposition(t *testing.T) {
	// An IME that finalizes part of a composition while still composing the
	// rest must not lose the finalized part.
	ti := textinput.NewTextInput("abcd")
	ti.SetCursor(2)
	ti.UpdateComposition(textinput.CompositionUpdate{CommittedText: "XY", PreeditText: "Z"})

	assert.Equal(t, "abXYcd", ti.Text)
	assert.Equal(t, 4, ti.Cursor)
	assert.False(t, ti.Preedit.Empty())

	v := ti.Visual()
	assert.Equal(t, "abXYZcd", v.Text)
	assert.Equal(t, [2]int{4, 5}, v.PreeditRange)
}

func TestCommitCompositionWritesCommittedTextAndClearsPreedit(t *testing.T) {
	ti := textinput.NewTextInput("abcd")
	ti.SetCursor(2)
	ti.UpdateComposition(textinput.CompositionUpdate{PreeditText: "X"})
	ti.CommitComposition(textinput.CompositionUpdate{CommittedText: "XY"})

	assert.Equal(t, "abXYcd", ti.Text)
	assert.True(t, ti.Preedit.Empty())
	assert.Equal(t, 4, ti.Cursor)
}

func TestWordMotionSkipsWhitespace(t *testing.T) {
	ti := textinput.NewTextInput("foo bar baz")
	ti.SetCursor(0)
	ti.Move(textinput.WordForward, textinput.MoveAnchor, nil)
	assert.Equal(t, 4, ti.Cursor)
}

func TestForwardMotionWithSelectionCollapsesToSelectionEnd(t *testing.T) {
	ti := textinput.NewTextInput("hello")
	ti.SetSelection(1, 4)
	ti.Move(textinput.Forward, textinput.MoveAnchor, nil)
	assert.Equal(t, 4, ti.Cursor)
	assert.Equal(t, 4, ti.Anchor)
}

func TestNumberInputRejectsNonDigit(t *testing.T) {
	ti := textinput.NewTextInput("")
	ti.InputType = textinput.Number
	assert.False(t, ti.InsertText("12a"))
	assert.True(t, ti.InsertText("12"))
	assert.Equal(t, "12", ti.Text)
}

func TestNumberInputRejectsNonASCIIDigit(t *testing.T) {
	// Spec requires ASCII digits specifically; Unicode decimal digits from
	// other scripts (e.g. Arabic-indic, Devanagari) must not pass.
	ti := textinput.NewTextInput("")
	ti.InputType = textinput.Number
	assert.False(t, ti.InsertText("١٢")) // Arabic-indic digits for "12"
	assert.False(t, ti.InsertText("१२")) // Devanagari digits for "12"
	assert.Equal(t, "", ti.Text)
}

func TestDecimalInputAcceptsInProgressPrefixes(t *testing.T) {
	ti := textinput.NewTextInput("")
	ti.InputType = textinput.Decimal
	assert.True(t, ti.InsertText("-"))
	assert.True(t, ti.InsertText("3"))
	assert.True(t, ti.InsertText("."))
	assert.True(t, ti.InsertText("5"))
	assert.Equal(t, "-3.5", ti.Text)
}
