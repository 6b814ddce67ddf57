package rbxdom

// Enum is a raw enum value (the underlying integer of a Roblox Enum item).
// Resolving the integer to a symbolic name is a reflection-database
// concern (reflection.EnumDescriptor.ItemByValue), not a value-type concern.
type Enum uint32

func (Enum) Type() Type      { return TypeEnum }
func (v Enum) Copy() Variant { return v }

// Faces is a bitset over the six faces of a part. Bit order (Right, Top,
// Back, Left, Bottom, Front, from bit 0) is ported from the teacher's
// xml/codec.go Faces decode, which is the only place in the corpus that
// pins this order down.
type Faces struct {
	Right, Top, Back, Left, Bottom, Front bool
}

func (Faces) Type() Type      { return TypeFaces }
func (v Faces) Copy() Variant { return v }

// Bits packs f into the wire bitset representation.
func (f Faces) Bits() uint32 {
	var n uint32
	if f.Right {
		n |= 1 << 0
	}
	if f.Top {
		n |= 1 << 1
	}
	if f.Back {
		n |= 1 << 2
	}
	if f.Left {
		n |= 1 << 3
	}
	if f.Bottom {
		n |= 1 << 4
	}
	if f.Front {
		n |= 1 << 5
	}
	return n
}

// FacesFromBits unpacks the wire bitset representation into a Faces value.
func FacesFromBits(n uint32) Faces {
	return Faces{
		Right:  n&(1<<0) != 0,
		Top:    n&(1<<1) != 0,
		Back:   n&(1<<2) != 0,
		Left:   n&(1<<3) != 0,
		Bottom: n&(1<<4) != 0,
		Front:  n&(1<<5) != 0,
	}
}

// Axes is a bitset over the three principal axes.
type Axes struct {
	X, Y, Z bool
}

func (Axes) Type() Type      { return TypeAxes }
func (v Axes) Copy() Variant { return v }

// Bits packs a into the wire bitset representation.
func (a Axes) Bits() uint32 {
	var n uint32
	if a.X {
		n |= 1 << 0
	}
	if a.Y {
		n |= 1 << 1
	}
	if a.Z {
		n |= 1 << 2
	}
	return n
}

// AxesFromBits unpacks the wire bitset representation into an Axes value.
func AxesFromBits(n uint32) Axes {
	return Axes{
		X: n&(1<<0) != 0,
		Y: n&(1<<1) != 0,
		Z: n&(1<<2) != 0,
	}
}
