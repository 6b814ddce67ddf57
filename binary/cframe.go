package binary

import (
	"encoding/binary"
	"math"

	"github.com/robloxapi/rbxdom"
)

// rawRotationID is the special byte value meaning "rotation is not one of
// the 24 basic rotations; read/write the 9 matrix floats explicitly",
// matching the teacher's rbxl/cframe.go sentinel.
const rawRotationID uint8 = 0

// encodeRotationID returns the wire rotation-ID byte for m: one of the 24
// special IDs if m matches a basic rotation exactly, or rawRotationID if
// the 9 components must be written out in full. Ported from the teacher's
// rbxl/cframe.go encoding path; the 24-entry table itself lives in the
// root package (value_cframe.go) so both the binary and future xml
// encoders share one copy.
func encodeRotationID(m rbxdom.Matrix3) uint8 {
	if id, ok := rbxdom.SpecialRotationID(m); ok {
		return id
	}
	return rawRotationID
}

// decodeRotationID returns the matrix for a non-raw rotation ID.
func decodeRotationID(id uint8) (rbxdom.Matrix3, bool) {
	if id == rawRotationID {
		return rbxdom.Matrix3{}, false
	}
	return rbxdom.RotationFromSpecialID(id)
}

// encodeCFrameArray writes each CFrame's rotation-ID byte (and, for the raw
// case, its 9 matrix floats) in sequence, followed by the interleaved
// Vector3 position plane — the teacher's rbxl/arrays.go TypeCFrame case,
// which notes the per-value byte length varies so the rotation part can't
// be field-interleaved the way Vector3/Color3 are.
func encodeCFrameArray(values []rbxdom.Variant) ([]byte, error) {
	var b []byte
	positions := make([]rbxdom.Vector3, len(values))
	for i, v := range values {
		cf, ok := cframeOf(v)
		if !ok {
			return nil, errNotCFrame
		}
		id := encodeRotationID(cf.R)
		b = append(b, id)
		if id == rawRotationID {
			for _, f := range cf.R {
				var tmp [4]byte
				binary.BigEndian.PutUint32(tmp[:], math.Float32bits(f))
				b = append(b, tmp[:]...)
			}
		}
		positions[i] = cf.Position
	}
	n := len(values)
	x := encodeFloat32Field(n, func(i int) float32 { return positions[i].X })
	y := encodeFloat32Field(n, func(i int) float32 { return positions[i].Y })
	z := encodeFloat32Field(n, func(i int) float32 { return positions[i].Z })
	b = append(b, x...)
	b = append(b, y...)
	return append(b, z...), nil
}

// decodeCFrameArray inverts encodeCFrameArray.
func decodeCFrameArray(b []byte, count int) ([]rbxdom.Variant, error) {
	out, _, err := decodeCFrameArrayPrefix(b, count)
	return out, err
}

// decodeCFrameArrayPrefix is decodeCFrameArray generalized to report how
// many leading bytes of b it consumed, so decodeOptionalCFrameArray can
// locate the Bool sub-chunk that follows the CFrame sub-chunk.
func decodeCFrameArrayPrefix(b []byte, count int) ([]rbxdom.Variant, []byte, error) {
	orig := b
	out := make([]rbxdom.Variant, count)
	rotations := make([]rbxdom.Matrix3, count)
	for i := range out {
		if len(b) < 1 {
			return nil, nil, errTruncatedArray(rbxdom.TypeCFrame, count)
		}
		id := b[0]
		b = b[1:]
		if id == rawRotationID {
			if len(b) < 36 {
				return nil, nil, errTruncatedArray(rbxdom.TypeCFrame, count)
			}
			var m rbxdom.Matrix3
			for k := range m {
				m[k] = math.Float32frombits(binary.BigEndian.Uint32(b[k*4:]))
			}
			b = b[36:]
			rotations[i] = m
		} else {
			m, ok := decodeRotationID(id)
			if !ok {
				return nil, nil, errNotCFrame
			}
			rotations[i] = m
		}
	}
	x, err := decodeFloat32Field(b, count)
	if err != nil {
		return nil, nil, err
	}
	y, err := decodeFloat32Field(b[count*4:], count)
	if err != nil {
		return nil, nil, err
	}
	z, err := decodeFloat32Field(b[count*8:], count)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i] = rbxdom.CFrame{Position: rbxdom.Vector3{X: x[i], Y: y[i], Z: z[i]}, R: rotations[i]}
	}
	consumed := len(orig) - len(b) + count*12
	return out, orig[consumed:], nil
}

// encodeOptionalCFrameArray writes the sub-id-tagged CFrame-plus-presence
// layout spec §4.E assigns to wire id 0x1E: a CFrame sub-chunk holding
// every value's position/rotation (absent values write their stored Value
// as is, and decode reads it back alongside Valid=false), followed by a
// Bool sub-chunk of presence flags.
func encodeOptionalCFrameArray(values []rbxdom.Variant) ([]byte, error) {
	cframes := make([]rbxdom.Variant, len(values))
	presence := make([]bool, len(values))
	for i, v := range values {
		opt, ok := v.(rbxdom.OptionalCFrame)
		if !ok {
			return nil, errNotCFrame
		}
		cframes[i] = opt.Value
		presence[i] = opt.Valid
	}

	cfBytes, err := encodeCFrameArray(cframes)
	if err != nil {
		return nil, err
	}

	var b []byte
	b = append(b, byte(wireCFrame))
	b = append(b, cfBytes...)
	b = append(b, byte(wireBool))
	for _, p := range presence {
		if p {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	}
	return b, nil
}

// decodeOptionalCFrameArray inverts encodeOptionalCFrameArray.
func decodeOptionalCFrameArray(b []byte, count int) ([]rbxdom.Variant, error) {
	if len(b) < 1 || wireType(b[0]) != wireCFrame {
		return nil, errNotCFrame
	}
	b = b[1:]

	cframes, rest, err := decodeCFrameArrayPrefix(b, count)
	if err != nil {
		return nil, err
	}
	if len(rest) < 1 || wireType(rest[0]) != wireBool {
		return nil, errNotCFrame
	}
	rest = rest[1:]
	if len(rest) < count {
		return nil, errTruncatedArray(rbxdom.TypeOptionalCFrame, count)
	}

	out := make([]rbxdom.Variant, count)
	for i := range out {
		cf, _ := cframes[i].(rbxdom.CFrame)
		out[i] = rbxdom.OptionalCFrame{Value: cf, Valid: rest[i] != 0}
	}
	return out, nil
}

func cframeOf(v rbxdom.Variant) (rbxdom.CFrame, bool) {
	switch v := v.(type) {
	case rbxdom.CFrame:
		return v, true
	case rbxdom.OptionalCFrame:
		if v.Valid {
			return v.Value, true
		}
		return rbxdom.CFrame{R: rbxdom.Matrix3Identity}, true
	default:
		return rbxdom.CFrame{}, false
	}
}
