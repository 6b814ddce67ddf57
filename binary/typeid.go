package binary

import "github.com/robloxapi/rbxdom"

// wireType is the single-byte type tag the binary format stores in each
// PROP chunk, distinct from rbxdom.Type because the wire format groups some
// root package types differently (e.g. Enum is "token") and reserves a
// handful of ids (0x11/0x20, 0x1F, 0x21) for types newer than the teacher's
// own typeID table — Font, UniqueId, and SecurityCapabilities — per
// spec.md §4.E's wire-id table. Attributes/Tags/MaterialColors have no
// wire tag here: wireTypeFor reports them as unsupported, and the encoder
// leaves properties of those types out of the file. Ported from
// rbxl/values.go's typeID.
type wireType byte

const (
	wireInvalid            wireType = 0x0
	wireString             wireType = 0x1
	wireBool               wireType = 0x2
	wireInt32              wireType = 0x3
	wireFloat32            wireType = 0x4
	wireFloat64            wireType = 0x5
	wireUDim               wireType = 0x6
	wireUDim2              wireType = 0x7
	wireRay                wireType = 0x8
	wireFaces              wireType = 0x9
	wireAxes               wireType = 0xA
	wireBrickColor         wireType = 0xB
	wireColor3             wireType = 0xC
	wireVector2            wireType = 0xD
	wireVector3            wireType = 0xE
	wireVector2int16       wireType = 0xF
	wireCFrame             wireType = 0x10
	wireFont               wireType = 0x11
	wireToken              wireType = 0x12
	wireReference          wireType = 0x13
	wireVector3int16       wireType = 0x14
	wireNumberSequence     wireType = 0x15
	wireColorSequence      wireType = 0x16
	wireNumberRange        wireType = 0x17
	wireRect               wireType = 0x18
	wirePhysicalProperties wireType = 0x19
	wireColor3uint8        wireType = 0x1A
	wireInt64              wireType = 0x1B
	wireSharedString       wireType = 0x1C
	wireOptionalCFrame     wireType = 0x1E
	wireUniqueId           wireType = 0x1F
	wireSecurityCapabilities wireType = 0x21
)

// wireTypeFor returns the wire tag used to store t, and ok=false for types
// the binary format has no direct tag for (writePropChunk skips properties
// of such types; they are not written to the file).
func wireTypeFor(t rbxdom.Type) (wireType, bool) {
	switch t {
	case rbxdom.TypeString, rbxdom.TypeBinaryString, rbxdom.TypeContent:
		return wireString, true
	case rbxdom.TypeBool:
		return wireBool, true
	case rbxdom.TypeInt32:
		return wireInt32, true
	case rbxdom.TypeFloat32:
		return wireFloat32, true
	case rbxdom.TypeFloat64:
		return wireFloat64, true
	case rbxdom.TypeUDim:
		return wireUDim, true
	case rbxdom.TypeUDim2:
		return wireUDim2, true
	case rbxdom.TypeRay:
		return wireRay, true
	case rbxdom.TypeFaces:
		return wireFaces, true
	case rbxdom.TypeAxes:
		return wireAxes, true
	case rbxdom.TypeBrickColor:
		return wireBrickColor, true
	case rbxdom.TypeColor3:
		return wireColor3, true
	case rbxdom.TypeVector2:
		return wireVector2, true
	case rbxdom.TypeVector3:
		return wireVector3, true
	case rbxdom.TypeVector2int16:
		return wireVector2int16, true
	case rbxdom.TypeCFrame:
		return wireCFrame, true
	case rbxdom.TypeOptionalCFrame:
		return wireOptionalCFrame, true
	case rbxdom.TypeFont:
		return wireFont, true
	case rbxdom.TypeUniqueId:
		return wireUniqueId, true
	case rbxdom.TypeSecurityCapabilities:
		return wireSecurityCapabilities, true
	case rbxdom.TypeEnum:
		return wireToken, true
	case rbxdom.TypeRef:
		return wireReference, true
	case rbxdom.TypeVector3int16:
		return wireVector3int16, true
	case rbxdom.TypeNumberSequence:
		return wireNumberSequence, true
	case rbxdom.TypeColorSequence:
		return wireColorSequence, true
	case rbxdom.TypeNumberRange:
		return wireNumberRange, true
	case rbxdom.TypeRect:
		return wireRect, true
	case rbxdom.TypePhysicalProperties:
		return wirePhysicalProperties, true
	case rbxdom.TypeColor3uint8:
		return wireColor3uint8, true
	case rbxdom.TypeInt64:
		return wireInt64, true
	case rbxdom.TypeSharedString:
		return wireSharedString, true
	default:
		return wireInvalid, false
	}
}

// rbxdomTypeFor is wireTypeFor's inverse, used by the reader to pick which
// rbxdom.Type to decode a PROP chunk's payload into. Where wireTypeFor maps
// several root types onto one wire tag (String/BinaryString/Content all
// share wireString), this always resolves to TypeString; the decoder does
// not re-tag such values, so BinaryString and Content properties read back
// as String. The Font alias id 0x20 decodes the same way as wireFont.
func rbxdomTypeFor(wt wireType) (rbxdom.Type, bool) {
	switch wt {
	case wireString:
		return rbxdom.TypeString, true
	case wireBool:
		return rbxdom.TypeBool, true
	case wireInt32:
		return rbxdom.TypeInt32, true
	case wireFloat32:
		return rbxdom.TypeFloat32, true
	case wireFloat64:
		return rbxdom.TypeFloat64, true
	case wireUDim:
		return rbxdom.TypeUDim, true
	case wireUDim2:
		return rbxdom.TypeUDim2, true
	case wireRay:
		return rbxdom.TypeRay, true
	case wireFaces:
		return rbxdom.TypeFaces, true
	case wireAxes:
		return rbxdom.TypeAxes, true
	case wireBrickColor:
		return rbxdom.TypeBrickColor, true
	case wireColor3:
		return rbxdom.TypeColor3, true
	case wireVector2:
		return rbxdom.TypeVector2, true
	case wireVector3:
		return rbxdom.TypeVector3, true
	case wireVector2int16:
		return rbxdom.TypeVector2int16, true
	case wireCFrame:
		return rbxdom.TypeCFrame, true
	case wireOptionalCFrame:
		return rbxdom.TypeOptionalCFrame, true
	case wireFont, wireType(0x20):
		return rbxdom.TypeFont, true
	case wireUniqueId:
		return rbxdom.TypeUniqueId, true
	case wireSecurityCapabilities:
		return rbxdom.TypeSecurityCapabilities, true
	case wireToken:
		return rbxdom.TypeEnum, true
	case wireReference:
		return rbxdom.TypeRef, true
	case wireVector3int16:
		return rbxdom.TypeVector3int16, true
	case wireNumberSequence:
		return rbxdom.TypeNumberSequence, true
	case wireColorSequence:
		return rbxdom.TypeColorSequence, true
	case wireNumberRange:
		return rbxdom.TypeNumberRange, true
	case wireRect:
		return rbxdom.TypeRect, true
	case wirePhysicalProperties:
		return rbxdom.TypePhysicalProperties, true
	case wireColor3uint8:
		return rbxdom.TypeColor3uint8, true
	case wireInt64:
		return rbxdom.TypeInt64, true
	case wireSharedString:
		return rbxdom.TypeSharedString, true
	default:
		return rbxdom.TypeInvalid, false
	}
}
