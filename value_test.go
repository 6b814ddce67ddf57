package rbxdom

import "testing"

var testTypes []Type

func init() {
	for t := TypeString; t <= TypeSecurityCapabilities; t++ {
		if t.String() != "Invalid" {
			testTypes = append(testTypes, t)
		}
	}
}

func TestType_String(t *testing.T) {
	if TypeString.String() != "String" {
		t.Errorf("TypeString.String() = %q, want %q", TypeString.String(), "String")
	}
	if TypeInvalid.String() != "Invalid" {
		t.Error("TypeInvalid should stringify to Invalid")
	}
	if Type(255).String() != "Invalid" {
		t.Error("out-of-range Type should stringify to Invalid")
	}
}

func TestTypeFromString(t *testing.T) {
	for _, typ := range testTypes {
		if got := TypeFromString(typ.String()); got != typ {
			t.Errorf("TypeFromString(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
	if TypeFromString("NotARealType") != TypeInvalid {
		t.Error("unknown type name should resolve to TypeInvalid")
	}
}

func TestNewValue(t *testing.T) {
	for _, typ := range testTypes {
		v := NewValue(typ)
		if v == nil {
			t.Errorf("NewValue(%v) returned nil", typ)
			continue
		}
		if v.Type() != typ {
			t.Errorf("NewValue(%v).Type() = %v", typ, v.Type())
		}
	}
	if NewValue(TypeInvalid) != nil {
		t.Error("NewValue(TypeInvalid) should be nil")
	}
}

func TestVariantCopy(t *testing.T) {
	for _, typ := range testTypes {
		v := NewValue(typ)
		cp := v.Copy()
		if cp.Type() != typ {
			t.Errorf("Copy() of %v changed type to %v", typ, cp.Type())
		}
	}
}

func TestBinaryStringCopyIsIndependent(t *testing.T) {
	orig := BinaryString([]byte{1, 2, 3})
	cp := orig.Copy().(BinaryString)
	cp[0] = 0xFF
	if orig[0] == 0xFF {
		t.Error("Copy should not alias the original backing array")
	}
}

func TestColor3RoundTrip(t *testing.T) {
	c := Color3{R: 0.2, G: 0.6, B: 1}
	u8 := c.ToColor3uint8()
	back := u8.ToColor3()
	const eps = 1.0 / 255
	if abs32(back.R-c.R) > eps || abs32(back.G-c.G) > eps || abs32(back.B-c.B) > eps {
		t.Errorf("Color3 -> Color3uint8 -> Color3 = %+v, want close to %+v", back, c)
	}
}

func TestColor3uint8Clamps(t *testing.T) {
	over := Color3{R: 2, G: -1, B: 0.5}.ToColor3uint8()
	if over.R != 255 || over.G != 0 {
		t.Errorf("out-of-range Color3 did not clamp: %+v", over)
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestFacesBitsRoundTrip(t *testing.T) {
	f := Faces{Right: true, Back: true, Front: true}
	got := FacesFromBits(f.Bits())
	if got != f {
		t.Errorf("FacesFromBits(Bits()) = %+v, want %+v", got, f)
	}
}

func TestAxesBitsRoundTrip(t *testing.T) {
	a := Axes{X: true, Z: true}
	got := AxesFromBits(a.Bits())
	if got != a {
		t.Errorf("AxesFromBits(Bits()) = %+v, want %+v", got, a)
	}
}

func TestUniqueIdWireRoundTrip(t *testing.T) {
	u := UniqueId{Index: 1, Random: 0xDEADBEEF, Time: 0x0102030405060708}
	wire := EncodeUniqueId(u)
	got := DecodeUniqueId(wire)
	if got != u {
		t.Errorf("DecodeUniqueId(EncodeUniqueId(u)) = %+v, want %+v", got, u)
	}
}

func TestSpecialRotationIDRoundTrip(t *testing.T) {
	for id, m := range specialRotationByID {
		gotID, ok := SpecialRotationID(m)
		if !ok || gotID != id {
			t.Errorf("SpecialRotationID(%v) = (%v, %v), want (%v, true)", m, gotID, ok, id)
		}
		gotM, ok := RotationFromSpecialID(id)
		if !ok || gotM != m {
			t.Errorf("RotationFromSpecialID(%v) = (%v, %v), want (%v, true)", id, gotM, ok, m)
		}
	}
	if _, ok := SpecialRotationID(Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}); ok {
		t.Error("an arbitrary matrix should not match a special rotation id")
	}
}

func TestBrickColorLookup(t *testing.T) {
	for _, entry := range brickColorTable {
		bc := BrickColor(entry.Number)
		if bc.Name() != entry.Name {
			t.Errorf("BrickColor(%d).Name() = %q, want %q", entry.Number, bc.Name(), entry.Name)
		}
		found, ok := BrickColorFromName(entry.Name)
		if !ok || found != bc {
			t.Errorf("BrickColorFromName(%q) = (%v, %v), want (%v, true)", entry.Name, found, ok, bc)
		}
	}
	if unknown := BrickColor(0xFFFF); unknown.Name() != "" {
		t.Error("unknown BrickColor number should have empty Name")
	}
}

func TestHashSharedStringDeterministic(t *testing.T) {
	data := []byte("hello shared string")
	h1 := HashSharedString(data)
	h2 := HashSharedString(append([]byte{}, data...))
	if h1 != h2 {
		t.Error("HashSharedString should be deterministic for equal content")
	}
	if h1 == HashSharedString([]byte("different content")) {
		t.Error("different content should not collide (trivially)")
	}
}
