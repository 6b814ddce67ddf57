package rbxdom

// String is a UTF-8 (or arbitrary-encoding, format-dependent) text value.
type String string

func (String) Type() Type        { return TypeString }
func (v String) Copy() Variant   { return v }

// BinaryString is an opaque byte blob, serialized length-prefixed in binary
// and base64-encoded or CDATA-escaped in XML. It backs both the
// BinaryString and ProtectedString wire kinds, which share a byte-for-byte
// representation (ProtectedString only differs in its XML tag name; see
// xml/codec.go).
type BinaryString []byte

func (BinaryString) Type() Type { return TypeBinaryString }
func (v BinaryString) Copy() Variant {
	cp := make(BinaryString, len(v))
	copy(cp, v)
	return cp
}

// Bool is a boolean value.
type Bool bool

func (Bool) Type() Type      { return TypeBool }
func (v Bool) Copy() Variant { return v }

// Int32 is a signed 32-bit integer.
type Int32 int32

func (Int32) Type() Type      { return TypeInt32 }
func (v Int32) Copy() Variant { return v }

// Int64 is a signed 64-bit integer.
type Int64 int64

func (Int64) Type() Type      { return TypeInt64 }
func (v Int64) Copy() Variant { return v }

// Float32 is a single-precision float.
type Float32 float32

func (Float32) Type() Type      { return TypeFloat32 }
func (v Float32) Copy() Variant { return v }

// Float64 is a double-precision float.
type Float64 float64

func (Float64) Type() Type      { return TypeFloat64 }
func (v Float64) Copy() Variant { return v }

// Content is a reference to external content: either an inline URI or a
// SharedString-backed payload (ContentId in older terminology). Exactly one
// of URI or Hash should be set; the zero value is the null content
// reference, matching xml/codec.go's ValueContent "null" subtag decode.
type Content struct {
	URI  string
	Hash SharedStringHash // non-zero if this Content addresses a SharedString
}

func (Content) Type() Type    { return TypeContent }
func (v Content) Copy() Variant { return v }

// IsSharedString reports whether c addresses SharedString content rather
// than an inline URI.
func (c Content) IsSharedString() bool { return c.Hash != (SharedStringHash{}) }
