package itemtree

// ClosePolicy controls when a popup closes itself in response to pointer
// and keyboard activity outside its own handling (spec §4.2.1 "Popups and
// focus").
type ClosePolicy int

const (
	CloseOnClick ClosePolicy = iota
	CloseOnClickOutside
	NoAutoClose
)

// PopupWindow is one entry of a root window's popup stack.
type PopupWindow struct {
	ID               uint32
	Component        *ComponentTree
	ClosePolicy      ClosePolicy
	ParentItem       ItemWeak
	FocusItemOnOpen  ItemWeak
	Location         Rect
	IsMenu           bool
	restoreFocusItem ItemWeak
}

// PopupStack owns the currently-open popups for one root window, outermost
// first (index 0 is the bottommost / first-opened popup).
type PopupStack struct {
	popups []*PopupWindow
	nextID uint32
}

// Len returns the number of currently-open popups.
func (s *PopupStack) Len() int { return len(s.popups) }

// Top returns the most recently opened popup, or nil if none are open.
func (s *PopupStack) Top() *PopupWindow {
	if len(s.popups) == 0 {
		return nil
	}
	return s.popups[len(s.popups)-1]
}

// At returns the popup at stack position i.
func (s *PopupStack) At(i int) *PopupWindow {
	if i < 0 || i >= len(s.popups) {
		return nil
	}
	return s.popups[i]
}

// ShowPopup implements spec §4.2.1's five-step show_popup procedure:
//  1. compute the popup's absolute position from location and parentItem,
//  2. compute its size (left to the caller, via sizeFn),
//  3. ask the platform whether it needs a fresh top-level window or can be
//     a child window (via wantsOwnWindow),
//  4. close any sibling popups the policy requires closed first,
//  5. save the currently focused item so it can be restored on close.
func (s *PopupStack) ShowPopup(
	component *ComponentTree,
	parentItem ItemRc,
	location Rect,
	policy ClosePolicy,
	isMenu bool,
	currentFocus ItemWeak,
	sizeFn func(Rect) Rect,
	wantsOwnWindow func(Rect) bool,
) *PopupWindow {
	abs := absolutePosition(parentItem, location)
	if sizeFn != nil {
		abs = sizeFn(abs)
	}
	if wantsOwnWindow != nil {
		wantsOwnWindow(abs) // platform hook; result is advisory to the caller's windowing layer
	}

	parentWeak := parentItem.Weak()
	if isMenu {
		s.closeMenusAbove(-1, parentWeak)
	} else if policy != NoAutoClose {
		s.closeSiblings(parentWeak)
	}

	s.nextID++
	p := &PopupWindow{
		ID:               s.nextID,
		Component:        component,
		ClosePolicy:      policy,
		ParentItem:       parentItem.Weak(),
		Location:         abs,
		IsMenu:           isMenu,
		restoreFocusItem: currentFocus,
	}
	s.popups = append(s.popups, p)
	return p
}

func absolutePosition(parentItem ItemRc, location Rect) Rect {
	tree := parentItem.Tree()
	if tree == nil {
		return location
	}
	ox, oy := globalOrigin(parentItem)
	parentGeom := tree.Geometry(parentItem.Index).Translate(ox, oy)
	return location.Translate(parentGeom.X, parentGeom.Y)
}

// Close removes the popup with the given ID, returning the item that had
// focus before it opened (for the caller to restore), if any.
func (s *PopupStack) Close(id uint32) (ItemWeak, bool) {
	for i, p := range s.popups {
		if p.ID != id {
			continue
		}
		s.popups = append(s.popups[:i], s.popups[i+1:]...)
		return p.restoreFocusItem, !p.restoreFocusItem.IsZero()
	}
	return ItemWeak{}, false
}

// CloseTop closes the topmost popup, unless its policy is NoAutoClose.
func (s *PopupStack) CloseTop() (ItemWeak, bool) {
	top := s.Top()
	if top == nil || top.ClosePolicy == NoAutoClose {
		return ItemWeak{}, false
	}
	return s.Close(top.ID)
}

// CloseAll closes every open popup, outermost last, returning the focus
// item saved by the bottommost one (the one the user was originally in
// before any popup opened), if any.
func (s *PopupStack) CloseAll() (ItemWeak, bool) {
	var restore ItemWeak
	found := false
	if len(s.popups) > 0 {
		restore, found = s.popups[0].restoreFocusItem, !s.popups[0].restoreFocusItem.IsZero()
	}
	s.popups = nil
	return restore, found
}

// closeMenusAbove finds the first menu above stack position i that shares
// the given parent item and truncates the stack there, closing that menu and
// every popup above it; this is the cascade-close applied when a new menu
// opens alongside existing ones (spec §4.2.1: "opening a new menu popup
// closes any sibling menu popups of the same parent item").
func (s *PopupStack) closeMenusAbove(i int, parent ItemWeak) {
	cut := len(s.popups)
	for j := i + 1; j < len(s.popups); j++ {
		if s.popups[j].IsMenu && s.popups[j].ParentItem.Equal(parent) {
			cut = j
			break
		}
	}
	s.popups = s.popups[:cut]
}

// closeSiblings closes every open popup whose ParentItem equals parent,
// implementing the non-menu half of spec §4.2.1 step 4: "close any sibling
// popups of the same parent item."
func (s *PopupStack) closeSiblings(parent ItemWeak) {
	kept := s.popups[:0]
	for _, p := range s.popups {
		if p.ParentItem.Equal(parent) {
			continue
		}
		kept = append(kept, p)
	}
	s.popups = kept
}

// HandleEscape closes the topmost popup unless it has NoAutoClose, per
// spec §4.2.1 ("Escape closes the topmost popup unless its close policy is
// NoAutoClose"). Returns the same values as CloseTop.
func (s *PopupStack) HandleEscape() (ItemWeak, bool) {
	return s.CloseTop()
}

// HandleClickOutside closes every popup whose policy is CloseOnClickOutside
// or CloseOnClick, from the top down, stopping at the first NoAutoClose
// popup encountered.
func (s *PopupStack) HandleClickOutside() {
	for len(s.popups) > 0 {
		top := s.Top()
		if top.ClosePolicy == NoAutoClose {
			return
		}
		s.popups = s.popups[:len(s.popups)-1]
	}
}
