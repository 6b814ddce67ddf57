package rbxdom

// Instance is one node of a WeakDom: a class name, a property map, and
// links to its parent and children. Instance methods that walk the tree
// (Parent, Children, FindFirstChild, ...) all go through the owning
// WeakDom rather than following embedded pointers, which is what makes the
// tree "weak" — an Instance can be inspected, cloned, or handed to another
// goroutine without dragging its whole subtree's pointer graph along (see
// DESIGN.md; generalized from the teacher's file.go pointer-tree Instance).
type Instance struct {
	ref        Ref
	ClassName  string
	Properties map[string]Variant
	// Name and Parent are derived from Properties["Name"] and the owning
	// WeakDom's parent-link table respectively; see Instance.Name and
	// WeakDom.Parent.
}

// Ref returns the instance's referent within its owning WeakDom.
func (inst *Instance) Ref() Ref { return inst.ref }

// Get returns the named property, and whether it was present.
func (inst *Instance) Get(name string) (Variant, bool) {
	v, ok := inst.Properties[name]
	return v, ok
}

// Set assigns the named property.
func (inst *Instance) Set(name string, v Variant) {
	if inst.Properties == nil {
		inst.Properties = make(map[string]Variant)
	}
	inst.Properties[name] = v
}

// Name returns the instance's Name property, or "" if unset or not a
// String.
func (inst *Instance) Name() string {
	if v, ok := inst.Properties["Name"]; ok {
		if s, ok := v.(String); ok {
			return string(s)
		}
	}
	return ""
}

// SetName sets the instance's Name property.
func (inst *Instance) SetName(name string) {
	inst.Set("Name", String(name))
}

// newInstance allocates an Instance with a fresh Ref and an empty property
// map, the way file.go's NewInstance mints a fresh UUID-backed Reference.
func newInstance(className string) *Instance {
	return &Instance{
		ref:        NewRef(),
		ClassName:  className,
		Properties: make(map[string]Variant),
	}
}
