package itemtree

import "github.com/viewlang/core/element"

// Repeater is a dynamic tree node's live state (spec §3): the model
// binding, the ordered list of currently-instantiated sub-components, and
// the indices that were live as of the last render pass (used to diff
// against a fresh model evaluation without reinstantiating unchanged
// rows). The ordered-list-plus-lookup shape follows the teacher's
// base/keylist.List[K,V] technique, specialized here to a plain ordered
// slice since repeater instances are addressed purely by position, not by
// a separate key type.
type Repeater struct {
	Model        *element.Binding
	Instances    []*ComponentTree
	LastRendered []int
}

// Len returns the number of currently-live sub-component instances.
func (r *Repeater) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Instances)
}

// At returns the instance at index, or nil if out of range.
func (r *Repeater) At(index int) *ComponentTree {
	if r == nil || index < 0 || index >= len(r.Instances) {
		return nil
	}
	return r.Instances[index]
}

// Truncate drops every instance from index onward, dropping their handles
// so outstanding weak references fail soft.
func (r *Repeater) Truncate(index int) {
	if index >= len(r.Instances) {
		return
	}
	for _, inst := range r.Instances[index:] {
		inst.Drop()
	}
	r.Instances = r.Instances[:index]
}

// Append adds a freshly-instantiated sub-component to the end of the list.
func (r *Repeater) Append(inst *ComponentTree, parentHandle *ComponentHandle, parentDynamicIndex int) {
	inst.parent = &ParentLink{ParentHandle: parentHandle, ParentDynamicIndex: parentDynamicIndex, InstanceIndex: len(r.Instances)}
	r.Instances = append(r.Instances, inst)
}
