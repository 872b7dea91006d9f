package itemtree

// AccessibleRole enumerates the coarse accessibility roles spec §4.2's
// operations table refers to.
type AccessibleRole int

const (
	RoleNone AccessibleRole = iota
	RoleButton
	RoleCheckbox
	RoleComboBox
	RoleList
	RoleListItem
	RoleSlider
	RoleTab
	RoleTabList
	RoleText
	RoleTextInput
	RoleTable
	RoleTree
	RoleGroup
)

// AccessibleAction enumerates the actions an assistive technology may
// invoke on an item via accessibility_action.
type AccessibleAction int

const (
	ActionDefault AccessibleAction = iota
	ActionFocus
	ActionIncrement
	ActionDecrement
	ActionExpand
	ActionCollapse
	ActionSetValue
)

// AccessibleDelegate supplies the per-item accessibility surface that the
// item tree itself has no way to derive (it is defined by the widget
// occupying the item, not by tree structure). The item tree looks the
// delegate up by ItemArrayIndex.
type AccessibleDelegate interface {
	Role(itemArrayIndex uint32) AccessibleRole
	StringProperty(itemArrayIndex uint32, property string) (string, bool)
	SupportedActions(itemArrayIndex uint32) []AccessibleAction
	PerformAction(itemArrayIndex uint32, action AccessibleAction, value string) bool
}

// ItemGeometry returns rc's geometry as stored by the last layout pass.
func ItemGeometry(rc ItemRc) Rect {
	tree := rc.Tree()
	if tree == nil {
		return Rect{}
	}
	return tree.Geometry(rc.Index)
}

// AccessibleRoleOf returns the role reported by delegate for rc, or
// RoleNone if rc is not accessible or delegate is nil.
func AccessibleRoleOf(rc ItemRc, delegate AccessibleDelegate) AccessibleRole {
	if delegate == nil {
		return RoleNone
	}
	n := rc.Node()
	if !n.IsAccessible {
		return RoleNone
	}
	return delegate.Role(n.ItemArrayIndex)
}

// AccessibleStringProperty returns a named accessibility string property
// (e.g. "label", "value", "description") for rc.
func AccessibleStringProperty(rc ItemRc, delegate AccessibleDelegate, property string) (string, bool) {
	if delegate == nil {
		return "", false
	}
	n := rc.Node()
	if !n.IsAccessible {
		return "", false
	}
	return delegate.StringProperty(n.ItemArrayIndex, property)
}

// SupportedAccessibilityActions lists the actions rc currently supports.
func SupportedAccessibilityActions(rc ItemRc, delegate AccessibleDelegate) []AccessibleAction {
	if delegate == nil {
		return nil
	}
	n := rc.Node()
	if !n.IsAccessible {
		return nil
	}
	return delegate.SupportedActions(n.ItemArrayIndex)
}

// AccessibilityAction invokes action on rc with an optional value (used by
// ActionSetValue), returning whether the delegate handled it.
func AccessibilityAction(rc ItemRc, delegate AccessibleDelegate, action AccessibleAction, value string) bool {
	if delegate == nil {
		return false
	}
	n := rc.Node()
	if !n.IsAccessible {
		return false
	}
	return delegate.PerformAction(n.ItemArrayIndex, action, value)
}
