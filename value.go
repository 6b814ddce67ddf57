// Package rbxdom implements an in-memory document object model for Roblox
// place and model files: a weak, referent-keyed instance tree and the
// algebraic value types ("Variants") that populate instance properties.
// The binary and XML wire codecs live in the sibling binary and xml
// packages; the reflection database and property resolver live in
// reflection.
package rbxdom

import "strings"

// Type is the discriminant of a Variant, one per concrete value type the
// format can serialize. It corresponds to the teacher's declare.Type /
// rbxtype.Type enumerations, generalized to the full type set this spec
// requires (see DESIGN.md).
type Type byte

const (
	TypeInvalid Type = iota
	TypeString
	TypeBinaryString
	TypeBool
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeUDim
	TypeUDim2
	TypeRay
	TypeFaces
	TypeAxes
	TypeBrickColor
	TypeColor3
	TypeColor3uint8
	TypeVector2
	TypeVector3
	TypeVector2int16
	TypeVector3int16
	TypeCFrame
	TypeOptionalCFrame
	TypeEnum
	TypeRef
	TypeNumberSequence
	TypeColorSequence
	TypeNumberRange
	TypeRect
	TypePhysicalProperties
	TypeRegion3
	TypeRegion3int16
	TypeContent
	TypeSharedString
	TypeTags
	TypeAttributes
	TypeUniqueId
	TypeFont
	TypeMaterialColors
	TypeSecurityCapabilities
)

var typeStrings = [...]string{
	TypeInvalid:              "Invalid",
	TypeString:                "String",
	TypeBinaryString:          "BinaryString",
	TypeBool:                  "Bool",
	TypeInt32:                 "Int32",
	TypeInt64:                 "Int64",
	TypeFloat32:               "Float32",
	TypeFloat64:               "Float64",
	TypeUDim:                  "UDim",
	TypeUDim2:                 "UDim2",
	TypeRay:                   "Ray",
	TypeFaces:                 "Faces",
	TypeAxes:                  "Axes",
	TypeBrickColor:            "BrickColor",
	TypeColor3:                "Color3",
	TypeColor3uint8:           "Color3uint8",
	TypeVector2:               "Vector2",
	TypeVector3:               "Vector3",
	TypeVector2int16:          "Vector2int16",
	TypeVector3int16:          "Vector3int16",
	TypeCFrame:                "CFrame",
	TypeOptionalCFrame:        "OptionalCFrame",
	TypeEnum:                  "Enum",
	TypeRef:                   "Ref",
	TypeNumberSequence:        "NumberSequence",
	TypeColorSequence:         "ColorSequence",
	TypeNumberRange:           "NumberRange",
	TypeRect:                  "Rect",
	TypePhysicalProperties:    "PhysicalProperties",
	TypeRegion3:               "Region3",
	TypeRegion3int16:          "Region3int16",
	TypeContent:               "Content",
	TypeSharedString:          "SharedString",
	TypeTags:                  "Tags",
	TypeAttributes:            "Attributes",
	TypeUniqueId:              "UniqueId",
	TypeFont:                  "Font",
	TypeMaterialColors:        "MaterialColors",
	TypeSecurityCapabilities:  "SecurityCapabilities",
}

// String returns the name of t, or "Invalid" if t is out of range.
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeStrings) || typeStrings[t] == "" {
		return "Invalid"
	}
	return typeStrings[t]
}

// TypeFromString returns the Type whose String is s, case-insensitively, or
// TypeInvalid if no such Type exists.
func TypeFromString(s string) Type {
	for t, str := range typeStrings {
		if str != "" && strings.EqualFold(s, str) {
			return Type(t)
		}
	}
	return TypeInvalid
}

// Variant is a value that can be stored in an Instance property. Every
// concrete value type in this package (String, Int32, CFrame, Ref, ...)
// implements Variant.
type Variant interface {
	// Type identifies the concrete value type.
	Type() Type
	// Copy returns an independent copy of the value. For value types with
	// no nested reference types this may return the receiver unchanged.
	Copy() Variant
}

// NewValue returns the zero value for t, or nil if t is not a known type.
// This mirrors rbxl's per-chunk "default value when missing" behavior
// (rbxl/codec.go's Encode, NewValue(propChunk.DataType)) generalized across
// the full type set.
func NewValue(t Type) Variant {
	switch t {
	case TypeString:
		return String("")
	case TypeBinaryString:
		return BinaryString(nil)
	case TypeBool:
		return Bool(false)
	case TypeInt32:
		return Int32(0)
	case TypeInt64:
		return Int64(0)
	case TypeFloat32:
		return Float32(0)
	case TypeFloat64:
		return Float64(0)
	case TypeUDim:
		return UDim{}
	case TypeUDim2:
		return UDim2{}
	case TypeRay:
		return Ray{}
	case TypeFaces:
		return Faces{}
	case TypeAxes:
		return Axes{}
	case TypeBrickColor:
		return BrickColor(0)
	case TypeColor3:
		return Color3{}
	case TypeColor3uint8:
		return Color3uint8{}
	case TypeVector2:
		return Vector2{}
	case TypeVector3:
		return Vector3{}
	case TypeVector2int16:
		return Vector2int16{}
	case TypeVector3int16:
		return Vector3int16{}
	case TypeCFrame:
		return CFrame{R: Matrix3Identity}
	case TypeOptionalCFrame:
		return OptionalCFrame{}
	case TypeEnum:
		return Enum(0)
	case TypeRef:
		return NilRef
	case TypeNumberSequence:
		return NumberSequence(nil)
	case TypeColorSequence:
		return ColorSequence(nil)
	case TypeNumberRange:
		return NumberRange{}
	case TypeRect:
		return Rect{}
	case TypePhysicalProperties:
		return PhysicalProperties{}
	case TypeRegion3:
		return Region3{}
	case TypeRegion3int16:
		return Region3int16{}
	case TypeContent:
		return Content{}
	case TypeSharedString:
		return SharedString{}
	case TypeTags:
		return Tags(nil)
	case TypeAttributes:
		return Attributes(nil)
	case TypeUniqueId:
		return UniqueId{}
	case TypeFont:
		return Font{}
	case TypeMaterialColors:
		return NewMaterialColors()
	case TypeSecurityCapabilities:
		return SecurityCapabilities(0)
	default:
		return nil
	}
}
