// Package itemtree implements C2, the runtime item tree: a flat per-
// component array of tree nodes plus the live repeater sub-component lists
// that stitch sub-trees into a virtual whole (spec §4.2).
package itemtree

// NodeKind tags the ItemTreeNode tagged union (spec §3, §6).
type NodeKind uint8

const (
	NodeItem NodeKind = iota
	NodeDynamicTree
)

// Node is the flat-array tree node, matching the stable binary layout
// spec §6 requires implementations preserve across an FFI boundary:
//
//	Item       { is_accessible, children_count, children_index, parent_index, item_array_index }
//	DynamicTree{ index, parent_index }
//
// Both variants are folded into one struct (rather than a Go interface or
// tagged pointer) so the field order and discriminant stay exactly as
// specified; DynamicTree nodes simply leave the Item-only fields zero.
type Node struct {
	Kind NodeKind

	// Item fields.
	IsAccessible   bool
	ChildrenCount  uint32
	ChildrenIndex  uint32
	ItemArrayIndex uint32

	// DynamicTree fields. Index is the key into the owning ComponentTree's
	// Repeaters map.
	Index uint32

	// ParentIndex is shared by both variants; for node 0 (the root) it is
	// ignored (spec invariant 3).
	ParentIndex uint32
}

// ItemNode constructs an Item-kind node.
func ItemNode(isAccessible bool, childrenIndex, childrenCount, parentIndex, itemArrayIndex uint32) Node {
	return Node{
		Kind:           NodeItem,
		IsAccessible:   isAccessible,
		ChildrenIndex:  childrenIndex,
		ChildrenCount:  childrenCount,
		ParentIndex:    parentIndex,
		ItemArrayIndex: itemArrayIndex,
	}
}

// DynamicTreeNode constructs a DynamicTree-kind node referencing the
// repeater at repeaterIndex.
func DynamicTreeNode(repeaterIndex, parentIndex uint32) Node {
	return Node{Kind: NodeDynamicTree, Index: repeaterIndex, ParentIndex: parentIndex}
}

// ChildRange returns the inclusive-exclusive [c, c+n) span of an Item
// node's direct children.
func (n Node) ChildRange() (from, to uint32) {
	return n.ChildrenIndex, n.ChildrenIndex + n.ChildrenCount
}
