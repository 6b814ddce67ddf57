package rbxdom

// PhysicalProperties is either "default" (CustomPhysics false: the engine
// derives density/friction/elasticity from the assigned Material) or a
// fully custom set of five physical coefficients. This matches the
// teacher's rbxl/arrays.go wire layout: a single flag byte, then (if
// custom) five packed floats.
type PhysicalProperties struct {
	CustomPhysics                                              bool
	Density, Friction, Elasticity, FrictionWeight, ElasticityWeight float32
}

func (PhysicalProperties) Type() Type      { return TypePhysicalProperties }
func (v PhysicalProperties) Copy() Variant { return v }

// Region3 is an axis-aligned box given by a centering CFrame and a size.
type Region3 struct {
	CFrame CFrame
	Size   Vector3
}

func (Region3) Type() Type      { return TypeRegion3 }
func (v Region3) Copy() Variant { return v }

// Region3int16 is an axis-aligned box given by two integer corners, used by
// Terrain region queries.
type Region3int16 struct {
	Min, Max Vector3int16
}

func (Region3int16) Type() Type      { return TypeRegion3int16 }
func (v Region3int16) Copy() Variant { return v }
