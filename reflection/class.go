package reflection

import "github.com/robloxapi/rbxdom"

// ClassDescriptor is one class in the reflection database: its superclass
// name (empty for the root "Instance"), its own properties (not
// inherited), and its default property values. Ported from
// rbx_reflection's RbxInstanceClass / ClassDescriptor.
type ClassDescriptor struct {
	Name       string
	Superclass string

	// Properties holds only the properties declared directly on this
	// class, keyed by name. Resolve walks Superclass chains to find
	// inherited properties (spec §4.D step 3).
	Properties map[string]*PropertyDescriptor

	// DefaultProperties holds default values, keyed by canonical property
	// name. Populated by the defaults-place decode step and by
	// apply_post_default patches injecting a value into the class and every
	// subclass (Patches.ApplyPostDefault).
	DefaultProperties map[string]rbxdom.Variant
}

func newClassDescriptor(name, superclass string) *ClassDescriptor {
	return &ClassDescriptor{
		Name:              name,
		Superclass:        superclass,
		Properties:        make(map[string]*PropertyDescriptor),
		DefaultProperties: make(map[string]rbxdom.Variant),
	}
}
