package rbxdom

import "math"

// Matrix3 is a row-major 3x3 rotation matrix, stored flat as
// [R00,R01,R02, R10,R11,R12, R20,R21,R22].
type Matrix3 [9]float32

// Matrix3Identity is the identity rotation.
var Matrix3Identity = Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// CFrame is a position plus rotation.
type CFrame struct {
	Position Vector3
	R        Matrix3
}

func (CFrame) Type() Type      { return TypeCFrame }
func (v CFrame) Copy() Variant { return v }

// OptionalCFrame is a CFrame that may be absent (Roblox's Attachment0/
// Attachment1-style nullable CFrame properties).
type OptionalCFrame struct {
	Value CFrame
	// Valid reports whether Value holds a real CFrame; if false, the
	// property is serialized as the absent/null form.
	Valid bool
}

func (OptionalCFrame) Type() Type      { return TypeOptionalCFrame }
func (v OptionalCFrame) Copy() Variant { return v }

// negZero is the IEEE-754 negative zero float32, used by the rotation-id
// table below exactly as the teacher's rbxl/cframe.go negative-zero
// sentinel (some of the 24 basic rotations contain a -0 component that
// must round-trip distinctly from +0 for the special-ID lookup to match).
var negZero = float32(math.Copysign(0, -1))

// specialRotationByID maps the binary format's single-byte "special
// rotation ID" to its 3x3 matrix. Ported verbatim from the teacher's
// rbxl/cframe.go cframeSpecialMatrix table (itself derived by enumerating
// matrixFromID for all valid IDs); see DESIGN.md.
var specialRotationByID = map[uint8]Matrix3{
	0x02: {+1, +0, +0, +0, +1, +0, +0, +0, +1},
	0x03: {+1, +0, +0, +0, +0, -1, +0, +1, +0},
	0x05: {+1, +0, +0, +0, -1, +0, +0, +0, -1},
	0x06: {+1, +0, negZero, +0, +0, +1, +0, -1, +0},
	0x07: {+0, +1, +0, +1, +0, +0, +0, +0, -1},
	0x09: {+0, +0, +1, +1, +0, +0, +0, +1, +0},
	0x0A: {+0, -1, +0, +1, +0, negZero, +0, +0, +1},
	0x0C: {+0, +0, -1, +1, +0, +0, +0, -1, +0},
	0x0D: {+0, +1, +0, +0, +0, +1, +1, +0, +0},
	0x0E: {+0, +0, -1, +0, +1, +0, +1, +0, +0},
	0x10: {+0, -1, +0, +0, +0, -1, +1, +0, +0},
	0x11: {+0, +0, +1, +0, -1, +0, +1, +0, negZero},
	0x14: {-1, +0, +0, +0, +1, +0, +0, +0, -1},
	0x15: {-1, +0, +0, +0, +0, +1, +0, +1, negZero},
	0x17: {-1, +0, +0, +0, -1, +0, +0, +0, +1},
	0x18: {-1, +0, negZero, +0, +0, -1, +0, -1, negZero},
	0x19: {+0, +1, negZero, -1, +0, +0, +0, +0, +1},
	0x1B: {+0, +0, -1, -1, +0, +0, +0, +1, +0},
	0x1C: {+0, -1, negZero, -1, +0, negZero, +0, +0, -1},
	0x1E: {+0, +0, +1, -1, +0, +0, +0, -1, +0},
	0x1F: {+0, +1, +0, +0, +0, -1, -1, +0, +0},
	0x20: {+0, +0, +1, +0, +1, negZero, -1, +0, +0},
	0x22: {+0, -1, +0, +0, +0, +1, -1, +0, +0},
	0x23: {+0, +0, -1, +0, -1, negZero, -1, +0, negZero},
}

var idBySpecialRotation map[Matrix3]uint8

func init() {
	idBySpecialRotation = make(map[Matrix3]uint8, len(specialRotationByID))
	for id, m := range specialRotationByID {
		idBySpecialRotation[m] = id
	}
}

// SpecialRotationID returns the binary format's one-byte rotation ID for m,
// and true, if m is one of the 24 axis-aligned basic rotations. Otherwise
// it returns (0, false), meaning the rotation must be written out as 9
// explicit floats.
func SpecialRotationID(m Matrix3) (id uint8, ok bool) {
	id, ok = idBySpecialRotation[m]
	return id, ok
}

// RotationFromSpecialID returns the matrix for a binary format rotation ID,
// and true, if id is a valid special ID.
func RotationFromSpecialID(id uint8) (m Matrix3, ok bool) {
	m, ok = specialRotationByID[id]
	return m, ok
}
