package itemtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlang/core/itemtree"
)

// threeSiblingTree builds R with three Item children A, B, C (the S4
// fixture): node 0 is R, nodes 1..3 are A, B, C.
func threeSiblingTree() *itemtree.ComponentTree {
	nodes := []itemtree.Node{
		itemtree.ItemNode(true, 1, 3, 0, 0), // R
		itemtree.ItemNode(true, 0, 0, 0, 1), // A
		itemtree.ItemNode(true, 0, 0, 0, 2), // B
		itemtree.ItemNode(true, 0, 0, 0, 3), // C
	}
	return itemtree.NewComponentTree(nodes)
}

func allFocusable(itemtree.ItemRc) bool { return true }

func TestTreeInvariantChildrenPointBackToParent(t *testing.T) {
	tree := threeSiblingTree()
	for i, n := range tree.Nodes {
		if n.Kind != itemtree.NodeItem {
			continue
		}
		from, to := n.ChildRange()
		for j := from; j < to; j++ {
			assert.Equal(t, uint32(i), tree.Nodes[j].ParentIndex, "child %d of item %d", j, i)
		}
	}
}

func TestFocusRingWrapsFromLastSiblingToFirst(t *testing.T) {
	tree := threeSiblingTree()
	c := tree.GetItemRef(3)
	next := itemtree.NextFocusItem(c, allFocusable)
	assert.True(t, next.Equal(tree.GetItemRef(1)), "expected wrap to A")
}

func TestFocusRingClosureVisitsEveryFocusableOnceAndReturns(t *testing.T) {
	tree := threeSiblingTree()
	start := tree.GetItemRef(1)
	cur := start
	const k = 3 // three focusable siblings
	for i := 0; i < k; i++ {
		cur = itemtree.NextFocusItem(cur, allFocusable)
	}
	assert.True(t, cur.Equal(start))
}

func TestFocusRingSymmetry(t *testing.T) {
	tree := threeSiblingTree()
	for i := 1; i <= 3; i++ {
		x := tree.GetItemRef(i)
		next := itemtree.NextFocusItem(x, allFocusable)
		back := itemtree.PreviousFocusItem(next, allFocusable)
		assert.True(t, back.Equal(x), "previous(next(%d)) should be %d", i, i)
	}
}

func TestVisitChildrenItemAbortsAndReportsIndex(t *testing.T) {
	tree := threeSiblingTree()
	result := tree.VisitChildrenItem(0, itemtree.FrontToBack, func(childIndex int) itemtree.VisitChildrenResult {
		if childIndex == 2 {
			return itemtree.Abort(2, 7)
		}
		return itemtree.Continue
	})
	require.False(t, result.IsContinue())
	assert.EqualValues(t, 2, result.ItemIndex())
	assert.EqualValues(t, 7, result.SubIndex())
}

func TestItemWeakUpgradeFailsSoftAfterDrop(t *testing.T) {
	tree := threeSiblingTree()
	weak := tree.GetItemRef(1).Weak()
	tree.Drop()
	_, ok := weak.Upgrade()
	assert.False(t, ok)
}

func TestIsVisibleFailsWhenClippedOutside(t *testing.T) {
	tree := threeSiblingTree()
	tree.SetGeometry(0, itemtree.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tree.SetClipsChildren(0, true)
	tree.SetGeometry(1, itemtree.Rect{X: 200, Y: 200, Width: 10, Height: 10})
	assert.False(t, itemtree.IsVisible(tree.GetItemRef(1)))
}

func TestIsVisibleTrueWithinClip(t *testing.T) {
	tree := threeSiblingTree()
	tree.SetGeometry(0, itemtree.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	tree.SetClipsChildren(0, true)
	tree.SetGeometry(1, itemtree.Rect{X: 10, Y: 10, Width: 10, Height: 10})
	assert.True(t, itemtree.IsVisible(tree.GetItemRef(1)))
}

func TestPopupStackEscapeClosesTopUnlessNoAutoClose(t *testing.T) {
	stack := &itemtree.PopupStack{}
	tree := threeSiblingTree()
	p := stack.ShowPopup(tree, tree.GetItemRef(0), itemtree.Rect{Width: 10, Height: 10}, itemtree.NoAutoClose, false, itemtree.ItemWeak{}, nil, nil)
	require.NotNil(t, p)
	_, closed := stack.HandleEscape()
	assert.False(t, closed)
	assert.Equal(t, 1, stack.Len())
}

func TestPopupStackMenuCascadeClosesSiblingMenus(t *testing.T) {
	stack := &itemtree.PopupStack{}
	tree := threeSiblingTree()
	stack.ShowPopup(tree, tree.GetItemRef(0), itemtree.Rect{}, itemtree.CloseOnClickOutside, true, itemtree.ItemWeak{}, nil, nil)
	stack.ShowPopup(tree, tree.GetItemRef(0), itemtree.Rect{}, itemtree.CloseOnClickOutside, true, itemtree.ItemWeak{}, nil, nil)
	assert.Equal(t, 1, stack.Len())
}

func TestPopupStackOnlyClosesSiblingsOfSameParentItem(t *testing.T) {
	stack := &itemtree.PopupStack{}
	tree := threeSiblingTree()
	stack.ShowPopup(tree, tree.GetItemRef(1), itemtree.Rect{}, itemtree.CloseOnClickOutside, true, itemtree.ItemWeak{}, nil, nil)
	stack.ShowPopup(tree, tree.GetItemRef(2), itemtree.Rect{}, itemtree.CloseOnClickOutside, true, itemtree.ItemWeak{}, nil, nil)
	// Different parent items: opening the second menu must not close the first.
	assert.Equal(t, 2, stack.Len())

	stack.ShowPopup(tree, tree.GetItemRef(2), itemtree.Rect{}, itemtree.CloseOnClickOutside, true, itemtree.ItemWeak{}, nil, nil)
	// Same parent item as the second popup: that one closes, the first (different parent) survives.
	assert.Equal(t, 2, stack.Len())
}
