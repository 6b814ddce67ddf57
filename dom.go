package rbxdom


// WeakDom is the arena that owns a tree of Instances, addressed by Ref.
// Unlike the teacher's file.Root/Instance pointer tree, WeakDom keeps
// instances in a flat map and tracks parent/child links separately
// (parents, children), which is what lets a decoder build instances before
// their parents are known (the binary format's PRNT chunk and the XML
// format's two-phase referent resolution both require this — see
// DESIGN.md and spec §4.B/§4.E/§4.G) and what lets a Ref be compared and
// looked up in O(1) instead of walking a pointer graph.
type WeakDom struct {
	instances map[Ref]*Instance
	parent    map[Ref]Ref   // child Ref -> parent Ref; absent entry means root-level
	children  map[Ref][]Ref // parent Ref -> ordered child Refs
	roots     []Ref
}

// NewWeakDom returns an empty WeakDom.
func NewWeakDom() *WeakDom {
	return &WeakDom{
		instances: make(map[Ref]*Instance),
		parent:    make(map[Ref]Ref),
		children:  make(map[Ref][]Ref),
	}
}

// NewInstance allocates a new Instance of the given class, inserts it into
// the dom with no parent (i.e. as a root), and returns it.
func (dom *WeakDom) NewInstance(className string) *Instance {
	inst := newInstance(className)
	dom.instances[inst.ref] = inst
	dom.roots = append(dom.roots, inst.ref)
	return inst
}

// Get returns the instance for ref, or nil if ref does not identify a live
// instance in this dom.
func (dom *WeakDom) Get(ref Ref) *Instance {
	return dom.instances[ref]
}

// Roots returns the dom's top-level instances (those with no parent),
// in insertion order.
func (dom *WeakDom) Roots() []*Instance {
	out := make([]*Instance, 0, len(dom.roots))
	for _, ref := range dom.roots {
		if inst, ok := dom.instances[ref]; ok {
			out = append(out, inst)
		}
	}
	return out
}

// Parent returns inst's parent, or nil if inst is a root or not in this
// dom.
func (dom *WeakDom) Parent(inst *Instance) *Instance {
	if inst == nil {
		return nil
	}
	p, ok := dom.parent[inst.ref]
	if !ok {
		return nil
	}
	return dom.instances[p]
}

// Children returns inst's children in order.
func (dom *WeakDom) Children(inst *Instance) []*Instance {
	if inst == nil {
		return nil
	}
	refs := dom.children[inst.ref]
	out := make([]*Instance, 0, len(refs))
	for _, r := range refs {
		if c, ok := dom.instances[r]; ok {
			out = append(out, c)
		}
	}
	return out
}

// SetParent reparents inst under newParent. newParent == nil makes inst a
// root. Returns false (without modifying the dom) if inst is nil, not
// owned by dom, or if newParent is inst itself or a descendant of inst
// (which would create a cycle) — matching file.go's SetParent self-parent
// and circular-reference checks.
func (dom *WeakDom) SetParent(inst, newParent *Instance) bool {
	if inst == nil {
		return false
	}
	if _, ok := dom.instances[inst.ref]; !ok {
		return false
	}
	if newParent != nil {
		if newParent.ref == inst.ref {
			return false
		}
		if _, ok := dom.instances[newParent.ref]; !ok {
			return false
		}
		if dom.isDescendantOf(newParent, inst) {
			return false
		}
	}

	dom.detach(inst)

	if newParent == nil {
		dom.roots = append(dom.roots, inst.ref)
		return true
	}
	dom.parent[inst.ref] = newParent.ref
	dom.children[newParent.ref] = append(dom.children[newParent.ref], inst.ref)
	return true
}

// detach removes inst from its current parent's child list (or the root
// list) without changing its identity or properties.
func (dom *WeakDom) detach(inst *Instance) {
	if p, ok := dom.parent[inst.ref]; ok {
		siblings := dom.children[p]
		for i, r := range siblings {
			if r == inst.ref {
				dom.children[p] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		delete(dom.parent, inst.ref)
		return
	}
	for i, r := range dom.roots {
		if r == inst.ref {
			dom.roots = append(dom.roots[:i], dom.roots[i+1:]...)
			break
		}
	}
}

// isDescendantOf reports whether candidate is inst or a descendant of inst.
func (dom *WeakDom) isDescendantOf(candidate, inst *Instance) bool {
	cur := candidate
	for cur != nil {
		if cur.ref == inst.ref {
			return true
		}
		cur = dom.Parent(cur)
	}
	return false
}

// Destroy removes inst and its entire subtree from the dom. Refs belonging
// to the destroyed subtree become invalid: future Get calls for them
// return nil.
func (dom *WeakDom) Destroy(inst *Instance) {
	if inst == nil {
		return
	}
	for _, child := range dom.Children(inst) {
		dom.Destroy(child)
	}
	dom.detach(inst)
	delete(dom.instances, inst.ref)
	delete(dom.children, inst.ref)
}

// FindFirstChild returns the first direct child of inst with the given
// name, or nil.
func (dom *WeakDom) FindFirstChild(inst *Instance, name string) *Instance {
	for _, c := range dom.Children(inst) {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Descendants returns every instance in the dom reachable from its roots,
// in deterministic depth-first order (the order spec §4.B requires for
// stable serialization).
func (dom *WeakDom) Descendants() []*Instance {
	var out []*Instance
	var walk func(ref Ref)
	walk = func(ref Ref) {
		inst, ok := dom.instances[ref]
		if !ok {
			return
		}
		out = append(out, inst)
		for _, c := range dom.children[ref] {
			walk(c)
		}
	}
	for _, r := range dom.roots {
		walk(r)
	}
	return out
}

// GetFullName returns inst's dot-separated path from the nearest root,
// e.g. "Workspace.Model.Part".
func (dom *WeakDom) GetFullName(inst *Instance) string {
	var names []string
	for cur := inst; cur != nil; cur = dom.Parent(cur) {
		names = append([]string{cur.Name()}, names...)
	}
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "."
		}
		out += n
	}
	return out
}
