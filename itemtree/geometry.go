package itemtree

// Rect is an axis-aligned rectangle, relative to its parent item unless
// otherwise noted (spec §4.2 `item_geometry`).
type Rect struct {
	X, Y, Width, Height float32
}

// Empty reports whether r has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the intersection of r and other, which is empty if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max32(r.X, other.X), max32(r.Y, other.Y)
	x1 := min32(r.X+r.Width, other.X+other.Width)
	y1 := min32(r.Y+r.Height, other.Y+other.Height)
	if x1 < x0 || y1 < y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether (x, y) falls within r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Translate offsets r by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Geometry returns the Item node's geometry relative to its parent, as
// last recorded by layout (out of this module's scope; the item tree only
// stores and serves the value).
func (t *ComponentTree) Geometry(idx int) Rect {
	if idx < 0 || idx >= len(t.geometries) {
		return Rect{}
	}
	return t.geometries[idx]
}

// SetGeometry records idx's geometry. Called by the (external) layout
// pass, and by tests constructing a tree by hand.
func (t *ComponentTree) SetGeometry(idx int, r Rect) {
	t.ensureGeometrySlice()
	t.geometries[idx] = r
}

// ClipsChildren reports whether the Item node at idx clips its children's
// effective visibility rect (spec §4.2 `is_visible`).
func (t *ComponentTree) ClipsChildren(idx int) bool {
	if idx < 0 || idx >= len(t.clips) {
		return false
	}
	return t.clips[idx]
}

// SetClipsChildren marks whether idx clips its children.
func (t *ComponentTree) SetClipsChildren(idx int, clips bool) {
	t.ensureClipsSlice()
	t.clips[idx] = clips
}

func (t *ComponentTree) ensureGeometrySlice() {
	if len(t.geometries) < len(t.Nodes) {
		grown := make([]Rect, len(t.Nodes))
		copy(grown, t.geometries)
		t.geometries = grown
	}
}

func (t *ComponentTree) ensureClipsSlice() {
	if len(t.clips) < len(t.Nodes) {
		grown := make([]bool, len(t.Nodes))
		copy(grown, t.clips)
		t.clips = grown
	}
}
