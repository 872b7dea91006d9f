package itemtree

// IsVisible implements spec §4.2's `is_visible(item)`: walk from item to
// the root, accumulating the effective clip rect from every ancestor that
// clips its children (expressed in a shared global coordinate space), then
// test whether the item's own geometry intersects it — or, for a
// zero-area item, whether the clip contains its center.
func IsVisible(rc ItemRc) bool {
	tree := rc.Tree()
	if tree == nil {
		return false
	}
	ox, oy := globalOrigin(rc)
	own := tree.Geometry(rc.Index).Translate(ox, oy)
	clip, clipped := effectiveClip(rc)
	if !clipped {
		return true
	}
	if own.Empty() {
		x, y := own.Center()
		return clip.Contains(x, y)
	}
	return !clip.Intersect(own).Empty()
}

// globalOrigin returns the offset, in global coordinates, of the frame rc's
// own geometry is relative to (i.e. rc's parent's content origin).
func globalOrigin(rc ItemRc) (x, y float32) {
	tree := rc.Tree()
	parentRc, ok := parentOf(tree, rc.Index)
	if !ok {
		return 0, 0
	}
	px, py := globalOrigin(parentRc)
	g := parentRc.Tree().Geometry(parentRc.Index)
	return px + g.X, py + g.Y
}

// effectiveClip intersects the global-space rects of every clipping
// ancestor of rc. clipped is false when no ancestor clips.
func effectiveClip(rc ItemRc) (clip Rect, clipped bool) {
	tree := rc.Tree()
	index := rc.Index
	for {
		parentRc, ok := parentOf(tree, index)
		if !ok {
			return clip, clipped
		}
		if parentRc.Tree().ClipsChildren(parentRc.Index) {
			px, py := globalOrigin(parentRc)
			rect := parentRc.Tree().Geometry(parentRc.Index).Translate(px, py)
			if clipped {
				clip = clip.Intersect(rect)
			} else {
				clip = rect
				clipped = true
			}
		}
		tree, index = parentRc.Tree(), parentRc.Index
	}
}
