// Package windowadapter defines the external collaborator interfaces spec
// §6 describes: the platform window, renderer, and type loader the core
// drives input, layout queries, and IME through. This package intentionally
// holds no implementation — it is the contract a host embedding the core
// must satisfy, mirroring the shape of the teacher's own
// core-defines-the-interface-platform-implements-it convention (e.g.
// core/mainstage.go driving a RenderWin it never constructs itself).
package windowadapter

import (
	"github.com/viewlang/core/itemtree"
	"github.com/viewlang/core/resolve"
	"github.com/viewlang/core/textinput"
)

// WindowAdapter is the platform window the core drives (spec §6 "Window
// adapter"). It embeds itemtree.WindowAdapter (ComponentTree holds that
// narrower interface directly to avoid importing this package and creating
// a cycle); any WindowAdapter implementation satisfies both.
type WindowAdapter interface {
	itemtree.WindowAdapter

	Size() (width, height float32)
	ScaleFactor() float32
	SetCursor(shape CursorShape)

	OpenInputMethod(props InputMethodProperties)
	UpdateInputMethod(props InputMethodProperties)
	CloseInputMethod()

	CreatePopupWindow(spec PopupWindowSpec) WindowAdapter
	SetNativeMenuBar(menu MenuSpec)
	ShowNativePopupMenu(menu MenuSpec, at Point) bool

	Snapshot() ([]byte, bool)

	Clipboard() Clipboard

	// AutoCommitsIMEOnFocusOut surfaces the platform-gated capability flag
	// spec §9's open question asks for: whether losing focus while
	// composing should fold the preedit into committed text.
	AutoCommitsIMEOnFocusOut() bool
}

// CursorShape enumerates the mouse cursor shapes the core may request.
type CursorShape int

const (
	CursorArrow CursorShape = iota
	CursorIBeam
	CursorPointer
	CursorResizeNS
	CursorResizeEW
	CursorNotAllowed
)

// Point is a simple 2D point in window coordinates.
type Point struct{ X, Y float32 }

// InputMethodProperties is pushed to the platform IME on enable/update
// (spec §6 "IME properties").
type InputMethodProperties struct {
	Text             string
	CursorPosition   int
	AnchorPosition   *int
	PreeditText      string
	PreeditOffset    int
	CursorRectOrigin Point
	CursorRectSize   [2]float32
	AnchorPoint      Point
	InputType        textinput.InputType
	ClipRect         *[4]float32
}

// PopupWindowSpec describes a popup window request to the platform.
type PopupWindowSpec struct {
	Position Point
	Size     [2]float32
	IsMenu   bool
}

// MenuSpec is an opaque platform menu description; the core only ever
// passes one through, it never inspects its contents.
type MenuSpec struct {
	Items []MenuItem
}

// MenuItem is one entry of a native menu.
type MenuItem struct {
	Title    string
	Shortcut string
	Submenu  []MenuItem
	Enabled  bool
}

// Clipboard is exactly textinput.Clipboard, re-exported so a host wiring a
// window adapter together doesn't need to import package textinput just
// for this type.
type Clipboard = textinput.Clipboard

// Renderer is the text-shaping and layout query surface (spec §6
// "Renderer").
type Renderer interface {
	TextSize(font Font, text string, maxWidth float32, scale float32, wrap bool) (width, height float32)
	CursorRectForByteOffset(item itemtree.ItemRc, offset int, font Font, scale float32) (x, y, width, height float32)
	ByteOffsetForPosition(item itemtree.ItemRc, point Point, font Font, scale float32) int
	FontMetrics(font Font, scale float32) FontMetrics
	FreeGraphicsResources(items []itemtree.ItemRc)
	MarkDirtyRegion(rect [4]float32)
}

// Font is an opaque handle the renderer interprets; the core never
// inspects its fields.
type Font struct {
	Family string
	Size   float32
	Weight int
}

// FontMetrics reports the metrics a single font/scale pair.
type FontMetrics struct {
	Ascent, Descent, LineHeight float32
}

// TypeLoader resolves import paths and global/local types for the resolver
// (spec §6 "Type loader"); it is exactly resolve.TypeLoader, re-exported
// here so host code wiring a window adapter together doesn't need to
// import package resolve directly for this one type.
type TypeLoader = resolve.TypeLoader
