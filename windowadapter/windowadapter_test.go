package windowadapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/textinput"
	"github.com/viewlang/core/windowadapter"
)

// mockAdapter exercises the WindowAdapter contract end to end: a host
// embedding the core implements exactly this surface.
type mockAdapter struct {
	redraws int
	clip    map[textinput.ClipboardKind]string
}

func newMockAdapter() *mockAdapter {
	return &mockAdapter{clip: map[textinput.ClipboardKind]string{}}
}

func (m *mockAdapter) RequestRedraw()                             { m.redraws++ }
func (m *mockAdapter) Size() (float32, float32)                   { return 800, 600 }
func (m *mockAdapter) ScaleFactor() float32                       { return 1 }
func (m *mockAdapter) SetCursor(windowadapter.CursorShape)        {}
func (m *mockAdapter) OpenInputMethod(windowadapter.InputMethodProperties)   {}
func (m *mockAdapter) UpdateInputMethod(windowadapter.InputMethodProperties) {}
func (m *mockAdapter) CloseInputMethod()                                    {}
func (m *mockAdapter) CreatePopupWindow(windowadapter.PopupWindowSpec) windowadapter.WindowAdapter {
	return newMockAdapter()
}
func (m *mockAdapter) SetNativeMenuBar(windowadapter.MenuSpec) {}
func (m *mockAdapter) ShowNativePopupMenu(windowadapter.MenuSpec, windowadapter.Point) bool {
	return true
}
func (m *mockAdapter) Snapshot() ([]byte, bool)        { return nil, false }
func (m *mockAdapter) Clipboard() windowadapter.Clipboard { return m }
func (m *mockAdapter) AutoCommitsIMEOnFocusOut() bool  { return false }

func (m *mockAdapter) SetText(kind textinput.ClipboardKind, text string) { m.clip[kind] = text }
func (m *mockAdapter) Text(kind textinput.ClipboardKind) (string, bool) {
	v, ok := m.clip[kind]
	return v, ok
}

var _ windowadapter.WindowAdapter = (*mockAdapter)(nil)

func TestMockAdapterSatisfiesWindowAdapter(t *testing.T) {
	adapter := newMockAdapter()
	adapter.RequestRedraw()
	assert.Equal(t, 1, adapter.redraws)

	w, h := adapter.Size()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)
}

func TestClipboardRoundTripsThroughWindowAdapter(t *testing.T) {
	adapter := newMockAdapter()
	ti := textinput.NewTextInput("hello")
	ti.SetSelection(0, 5)
	ti.Copy(adapter.Clipboard(), textinput.ClipboardDefault)

	other := textinput.NewTextInput("")
	assert.True(t, other.Paste(adapter.Clipboard(), textinput.ClipboardDefault))
	assert.Equal(t, "hello", other.Text)
}
