package itemtree

// Focus ring traversal (spec §4.2 "Focus ring"): a cyclic pre-order walk
// over the whole virtual tree, crossing DynamicTree boundaries into and out
// of repeater instances, skipping empty repeaters, and wrapping from the
// last item back to the first (and vice versa). Grounded on the teacher's
// core/events.go focus-management block (focusNext/focusPrev/focusFirst/
// focusLast), re-expressed over the flat-array ComponentTree/DynamicTree/
// Repeater model instead of a pointer-based widget tree.

// NextFocusItem returns the next item after cur in focus-ring order,
// calling isFocusable to skip candidates that cannot currently accept
// focus. It wraps around the whole document and returns cur unchanged if
// no other item is focusable.
func NextFocusItem(cur ItemRc, isFocusable func(ItemRc) bool) ItemRc {
	candidate := cur
	for i := 0; i < maxFocusSteps(cur); i++ {
		next, ok := rawNext(candidate)
		if !ok {
			next = wrapToFirst(topmostRoot(candidate))
		}
		if next.Equal(cur) {
			return cur
		}
		if isFocusable == nil || isFocusable(next) {
			return next
		}
		candidate = next
	}
	return cur
}

// PreviousFocusItem is the symmetric predecessor walk.
func PreviousFocusItem(cur ItemRc, isFocusable func(ItemRc) bool) ItemRc {
	candidate := cur
	for i := 0; i < maxFocusSteps(cur); i++ {
		prev, ok := rawPrevious(candidate)
		if !ok {
			prev = lastDescendantOf(topmostRoot(candidate).Rc())
		}
		if prev.Equal(cur) {
			return cur
		}
		if isFocusable == nil || isFocusable(prev) {
			return prev
		}
		candidate = prev
	}
	return cur
}

// Equal compares two strong references by identity (handle and index).
func (r ItemRc) Equal(other ItemRc) bool {
	return r.handle == other.handle && r.Index == other.Index
}

// maxFocusSteps bounds the search loop generously enough to visit every
// node in the document at least once, so a document with no focusable item
// terminates instead of looping forever.
func maxFocusSteps(cur ItemRc) int {
	tree := cur.Tree()
	if tree == nil {
		return 1
	}
	total := len(tree.Nodes)
	for t := tree; ; {
		parentTree, _, ok := t.ParentNode()
		if !ok {
			break
		}
		total += len(parentTree.Nodes)
		t = parentTree
	}
	return total*4 + 8
}

// rawNext is the unwrapped structural successor: descend into the first
// child if any, else climb to the next sibling (crossing repeater and
// component boundaries), else fail.
func rawNext(cur ItemRc) (ItemRc, bool) {
	tree := cur.Tree()
	if tree == nil {
		return ItemRc{}, false
	}
	if child, ok := firstChild(tree, cur.Index); ok {
		return child, true
	}
	return nextSibling(tree, cur.Index)
}

// rawPrevious is the unwrapped structural predecessor: the previous
// sibling's last descendant, or the parent itself if cur is a first child.
func rawPrevious(cur ItemRc) (ItemRc, bool) {
	tree := cur.Tree()
	if tree == nil {
		return ItemRc{}, false
	}
	sib, ok := previousSibling(tree, cur.Index)
	if ok {
		return lastDescendantOf(sib), true
	}
	parent, ok := parentOf(tree, cur.Index)
	if !ok {
		return ItemRc{}, false
	}
	if isDocumentRoot(parent) {
		// The synthetic document root is never itself a focus target; its
		// first child has no previous item, signalling wrap territory.
		return ItemRc{}, false
	}
	return parent, true
}

// isDocumentRoot reports whether rc is the root item of the outermost
// component tree (no enclosing repeater instance above it).
func isDocumentRoot(rc ItemRc) bool {
	return rc.Index == 0 && rc.Tree().parent == nil
}

func firstChild(tree *ComponentTree, index int) (ItemRc, bool) {
	n := tree.Nodes[index]
	if n.Kind != NodeItem || n.ChildrenCount == 0 {
		return ItemRc{}, false
	}
	from, to := n.ChildRange()
	for i := int(from); i < int(to); i++ {
		c := tree.Nodes[i]
		if c.Kind == NodeItem {
			return tree.GetItemRef(i), true
		}
		if rc, ok := enterDynamicForward(tree, i); ok {
			return rc, true
		}
	}
	return ItemRc{}, false
}

func enterDynamicForward(tree *ComponentTree, dynIdx int) (ItemRc, bool) {
	rep := tree.repeaterAt(dynIdx)
	if rep == nil || rep.Len() == 0 {
		return ItemRc{}, false
	}
	inst := rep.At(0)
	if inst == nil {
		return ItemRc{}, false
	}
	return inst.Rc(), true
}

func enterDynamicBackward(tree *ComponentTree, dynIdx int) (ItemRc, bool) {
	rep := tree.repeaterAt(dynIdx)
	if rep == nil || rep.Len() == 0 {
		return ItemRc{}, false
	}
	inst := rep.At(rep.Len() - 1)
	if inst == nil {
		return ItemRc{}, false
	}
	return inst.Rc(), true
}

// nextSibling climbs from index looking for the next item (crossing out of
// repeater instances and DynamicTree siblings as needed).
func nextSibling(tree *ComponentTree, index int) (ItemRc, bool) {
	cur, curTree := index, tree
	for {
		if cur == 0 {
			if curTree.parent == nil {
				return ItemRc{}, false
			}
			parentTree, dynIdx, ok := curTree.ParentNode()
			if !ok {
				return ItemRc{}, false
			}
			rep := parentTree.repeaterAt(dynIdx)
			instIdx := curTree.parent.InstanceIndex
			if rep != nil && instIdx+1 < rep.Len() {
				if inst := rep.At(instIdx + 1); inst != nil {
					return inst.Rc(), true
				}
			}
			cur, curTree = dynIdx, parentTree
		}
		n := curTree.Nodes[cur]
		parentIdx := int(n.ParentIndex)
		_, to := curTree.Nodes[parentIdx].ChildRange()
		for i := cur + 1; i < int(to); i++ {
			c := curTree.Nodes[i]
			if c.Kind == NodeItem {
				return curTree.GetItemRef(i), true
			}
			if rc, ok := enterDynamicForward(curTree, i); ok {
				return rc, true
			}
		}
		cur = parentIdx
	}
}

// previousSibling finds the nearest preceding sibling of index (crossing
// out of repeater instances and DynamicTree siblings going backward). It
// does not look above the parent; the caller (rawPrevious) falls back to
// the parent itself when this returns false.
func previousSibling(tree *ComponentTree, index int) (ItemRc, bool) {
	cur, curTree := index, tree
	if cur == 0 {
		if curTree.parent == nil {
			return ItemRc{}, false
		}
		parentTree, dynIdx, ok := curTree.ParentNode()
		if !ok {
			return ItemRc{}, false
		}
		rep := parentTree.repeaterAt(dynIdx)
		instIdx := curTree.parent.InstanceIndex
		if rep != nil && instIdx > 0 {
			if inst := rep.At(instIdx - 1); inst != nil {
				return inst.Rc(), true
			}
		}
		return previousSiblingOfItem(parentTree, dynIdx)
	}
	return previousSiblingOfItem(curTree, cur)
}

func previousSiblingOfItem(tree *ComponentTree, index int) (ItemRc, bool) {
	n := tree.Nodes[index]
	parentIdx := int(n.ParentIndex)
	from, _ := tree.Nodes[parentIdx].ChildRange()
	for i := index - 1; i >= int(from); i-- {
		c := tree.Nodes[i]
		if c.Kind == NodeItem {
			return tree.GetItemRef(i), true
		}
		if rc, ok := enterDynamicBackward(tree, i); ok {
			return rc, true
		}
	}
	return ItemRc{}, false
}

func parentOf(tree *ComponentTree, index int) (ItemRc, bool) {
	if index == 0 {
		if tree.parent == nil {
			return ItemRc{}, false
		}
		parentTree, dynIdx, ok := tree.ParentNode()
		if !ok {
			return ItemRc{}, false
		}
		return parentOfDynamic(parentTree, dynIdx)
	}
	n := tree.Nodes[index]
	return tree.GetItemRef(int(n.ParentIndex)), true
}

func parentOfDynamic(tree *ComponentTree, dynIdx int) (ItemRc, bool) {
	n := tree.Nodes[dynIdx]
	if dynIdx == 0 {
		return parentOf(tree, 0)
	}
	return tree.GetItemRef(int(n.ParentIndex)), true
}

// lastDescendantOf returns rc's last descendant in pre-order, recursing
// into the last instance of any trailing repeater.
func lastDescendantOf(rc ItemRc) ItemRc {
	tree := rc.Tree()
	idx := rc.Index
	for {
		n := tree.Nodes[idx]
		if n.Kind != NodeItem || n.ChildrenCount == 0 {
			return tree.GetItemRef(idx)
		}
		from, to := n.ChildRange()
		advanced := false
		for i := int(to) - 1; i >= int(from); i-- {
			c := tree.Nodes[i]
			if c.Kind == NodeItem {
				idx = i
				advanced = true
				break
			}
			if rep := tree.repeaterAt(i); rep != nil && rep.Len() > 0 {
				if inst := rep.At(rep.Len() - 1); inst != nil {
					return lastDescendantOf(inst.Rc())
				}
			}
		}
		if !advanced {
			return tree.GetItemRef(idx)
		}
	}
}

// wrapToFirst returns the first real descendant of tree's root, skipping
// the synthetic root item itself when it has children (the root container
// is conventionally never a focus target on its own).
func wrapToFirst(tree *ComponentTree) ItemRc {
	if child, ok := firstChild(tree, 0); ok {
		return child
	}
	return tree.Rc()
}

// topmostRoot climbs ParentNode links to the outermost component tree.
func topmostRoot(rc ItemRc) *ComponentTree {
	tree := rc.Tree()
	for {
		parentTree, _, ok := tree.ParentNode()
		if !ok {
			return tree
		}
		tree = parentTree
	}
}
