package binary

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/robloxapi/rbxdom"
)

// encodeArray renders count values of type t (each already coerced to t by
// the caller, writePropChunk, via rbxdom.Convert) as the flat byte payload that
// follows the PropertyName in a PROP chunk. Each case is ported from the
// corresponding branch of rbxl/arrays.go's ValuesToBytes; see DESIGN.md for
// the ones that differ (SharedString indices are resolved against a
// sharedStrings table the caller threads through rather than the global
// table rbxl keeps on the decoder).
func encodeArray(t rbxdom.Type, values []rbxdom.Variant, sstr *sharedStringTable) ([]byte, error) {
	n := len(values)
	switch t {
	case rbxdom.TypeString, rbxdom.TypeBinaryString, rbxdom.TypeContent:
		var b []byte
		for _, v := range values {
			s, err := contentBytes(v)
			if err != nil {
				return nil, err
			}
			var lenBuf [4]byte
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
			b = append(b, lenBuf[:]...)
			b = append(b, s...)
		}
		return b, nil

	case rbxdom.TypeBool:
		b := make([]byte, n)
		for i, v := range values {
			if bool(v.(rbxdom.Bool)) {
				b[i] = 1
			}
		}
		return b, nil

	case rbxdom.TypeInt32:
		return encodeInt32Field(n, func(i int) int32 { return int32(values[i].(rbxdom.Int32)) }), nil

	case rbxdom.TypeFloat32:
		return encodeFloat32Field(n, func(i int) float32 { return float32(values[i].(rbxdom.Float32)) }), nil

	case rbxdom.TypeFloat64:
		b := make([]byte, n*8)
		for i, v := range values {
			binary.BigEndian.PutUint64(b[i*8:], math.Float64bits(float64(v.(rbxdom.Float64))))
		}
		return b, nil

	case rbxdom.TypeUDim:
		scale := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.UDim).Scale })
		offset := encodeInt32Field(n, func(i int) int32 { return values[i].(rbxdom.UDim).Offset })
		return append(scale, offset...), nil

	case rbxdom.TypeUDim2:
		xs := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.UDim2).X.Scale })
		xo := encodeInt32Field(n, func(i int) int32 { return values[i].(rbxdom.UDim2).X.Offset })
		ys := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.UDim2).Y.Scale })
		yo := encodeInt32Field(n, func(i int) int32 { return values[i].(rbxdom.UDim2).Y.Offset })
		b := append(xs, xo...)
		b = append(b, ys...)
		return append(b, yo...), nil

	case rbxdom.TypeRay:
		b := make([]byte, 0, n*24)
		for _, v := range values {
			r := v.(rbxdom.Ray)
			b = appendFloat32BE(b, r.Origin.X, r.Origin.Y, r.Origin.Z)
			b = appendFloat32BE(b, r.Direction.X, r.Direction.Y, r.Direction.Z)
		}
		return b, nil

	case rbxdom.TypeFaces:
		b := make([]byte, n)
		for i, v := range values {
			b[i] = byte(v.(rbxdom.Faces).Bits())
		}
		return b, nil

	case rbxdom.TypeAxes:
		b := make([]byte, n)
		for i, v := range values {
			b[i] = byte(v.(rbxdom.Axes).Bits())
		}
		return b, nil

	case rbxdom.TypeBrickColor:
		return encodeInt32Field(n, func(i int) int32 { return int32(values[i].(rbxdom.BrickColor)) }), nil

	case rbxdom.TypeColor3:
		r := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Color3).R })
		g := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Color3).G })
		bb := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Color3).B })
		return append(append(r, g...), bb...), nil

	case rbxdom.TypeColor3uint8:
		b := make([]byte, n*3)
		for i, v := range values {
			c := v.(rbxdom.Color3uint8)
			b[i], b[n+i], b[2*n+i] = c.R, c.G, c.B
		}
		return b, nil

	case rbxdom.TypeVector2:
		x := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Vector2).X })
		y := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Vector2).Y })
		return append(x, y...), nil

	case rbxdom.TypeVector3:
		x := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Vector3).X })
		y := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Vector3).Y })
		z := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Vector3).Z })
		return append(append(x, y...), z...), nil

	case rbxdom.TypeVector3int16:
		b := make([]byte, 0, n*6)
		for _, v := range values {
			p := v.(rbxdom.Vector3int16)
			var f [6]byte
			binary.LittleEndian.PutUint16(f[0:2], uint16(p.X))
			binary.LittleEndian.PutUint16(f[2:4], uint16(p.Y))
			binary.LittleEndian.PutUint16(f[4:6], uint16(p.Z))
			b = append(b, f[:]...)
		}
		return b, nil

	case rbxdom.TypeCFrame:
		return encodeCFrameArray(values)

	case rbxdom.TypeOptionalCFrame:
		return encodeOptionalCFrameArray(values)

	case rbxdom.TypeFont:
		var b []byte
		for _, v := range values {
			f := v.(rbxdom.Font)
			b = appendLenPrefixed(b, f.Family)
			var wbuf [2]byte
			binary.LittleEndian.PutUint16(wbuf[:], uint16(f.Weight))
			b = append(b, wbuf[:]...)
			b = append(b, byte(f.Style))
			b = appendLenPrefixed(b, f.CachedFaceID)
		}
		return b, nil

	case rbxdom.TypeUniqueId:
		field := make([]byte, n*16)
		for i, v := range values {
			enc := rbxdom.EncodeUniqueId(v.(rbxdom.UniqueId))
			copy(field[i*16:], enc[:])
		}
		interleave(field, 16)
		return field, nil

	case rbxdom.TypeSecurityCapabilities:
		b := make([]byte, n*8)
		for i, v := range values {
			binary.BigEndian.PutUint64(b[i*8:], encodeZigzag64(int64(v.(rbxdom.SecurityCapabilities))))
		}
		interleave(b, 8)
		return b, nil

	case rbxdom.TypeEnum:
		b := make([]byte, n*4)
		for i, v := range values {
			binary.BigEndian.PutUint32(b[i*4:], uint32(v.(rbxdom.Enum)))
		}
		return b, nil

	case rbxdom.TypeRef:
		return encodeRefArray(values), nil

	case rbxdom.TypeNumberSequence:
		var b []byte
		for _, v := range values {
			ns := v.(rbxdom.NumberSequence)
			var lenBuf [4]byte
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(ns)))
			b = append(b, lenBuf[:]...)
			for _, kp := range ns {
				b = appendFloat32BE(b, kp.Time, kp.Value, kp.Envelope)
			}
		}
		return b, nil

	case rbxdom.TypeColorSequence:
		var b []byte
		for _, v := range values {
			cs := v.(rbxdom.ColorSequence)
			var lenBuf [4]byte
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(cs)))
			b = append(b, lenBuf[:]...)
			for _, kp := range cs {
				b = appendFloat32BE(b, kp.Time, kp.Value.R, kp.Value.G, kp.Value.B, kp.Envelope)
			}
		}
		return b, nil

	case rbxdom.TypeNumberRange:
		mn := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.NumberRange).Min })
		mx := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.NumberRange).Max })
		return append(mn, mx...), nil

	case rbxdom.TypeRect:
		x0 := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Rect).Min.X })
		y0 := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Rect).Min.Y })
		x1 := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Rect).Max.X })
		y1 := encodeFloat32Field(n, func(i int) float32 { return values[i].(rbxdom.Rect).Max.Y })
		b := append(x0, y0...)
		return append(b, append(x1, y1...)...), nil

	case rbxdom.TypePhysicalProperties:
		var b []byte
		for _, v := range values {
			pp := v.(rbxdom.PhysicalProperties)
			if !pp.CustomPhysics {
				b = append(b, 0)
				continue
			}
			b = append(b, 1)
			b = appendFloat32BE(b, pp.Density, pp.Friction, pp.Elasticity, pp.FrictionWeight, pp.ElasticityWeight)
		}
		return b, nil

	case rbxdom.TypeInt64:
		b := make([]byte, n*8)
		for i, v := range values {
			binary.BigEndian.PutUint64(b[i*8:], encodeZigzag64(int64(v.(rbxdom.Int64))))
		}
		interleave(b, 8)
		return b, nil

	case rbxdom.TypeSharedString:
		indices := make([]int32, n)
		for i, v := range values {
			indices[i] = sstr.indexOf(v.(rbxdom.SharedString))
		}
		return encodeInt32Field(n, func(i int) int32 { return indices[i] }), nil

	default:
		return nil, fmt.Errorf("binary: no wire encoding for type %s", t)
	}
}

// contentBytes returns the raw bytes a String/BinaryString/Content value
// contributes to a length-prefixed string array.
func contentBytes(v rbxdom.Variant) ([]byte, error) {
	switch v := v.(type) {
	case rbxdom.String:
		return []byte(v), nil
	case rbxdom.BinaryString:
		return []byte(v), nil
	case rbxdom.Content:
		return []byte(v.URI), nil
	default:
		return nil, fmt.Errorf("binary: %T is not string-shaped", v)
	}
}

// encodeInt32Field zigzag-encodes and big-endian-packs n int32 values, then
// interleaves the 4 byte planes, matching rbxl/values.go's valueInt.Bytes
// plus arrays.go's interleaveAppend.
func encodeInt32Field(n int, at func(i int) int32) []byte {
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(b[i*4:], encodeZigzag(at(i)))
	}
	interleave(b, 4)
	return b
}

// encodeFloat32Field bit-rotates and big-endian-packs n float32 values, then
// interleaves the 4 byte planes, matching valueFloat.Bytes.
func encodeFloat32Field(n int, at func(i int) float32) []byte {
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(b[i*4:], encodeRobloxFloat(at(i)))
	}
	interleave(b, 4)
	return b
}

func appendFloat32BE(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], math.Float32bits(f))
		b = append(b, tmp[:]...)
	}
	return b
}

// encodeRefArray delta-encodes, zigzags, big-endian-packs, then interleaves
// an array of referents addressed by their decoder-local instance index
// (see reader.go/writer.go, which translate between rbxdom.Ref and these
// sequential indices). Ported from arrays.go's TypeReference case.
func encodeRefArray(values []rbxdom.Variant) []byte {
	n := len(values)
	indices := make([]int32, n)
	for i, v := range values {
		indices[i] = v.(refIndex).index
	}
	deltas := deltaEncodeRefs(indices)
	b := make([]byte, n*4)
	for i, d := range deltas {
		binary.BigEndian.PutUint32(b[i*4:], encodeZigzag(d))
	}
	interleave(b, 4)
	return b
}

// refIndex is how encodeArray/decodeArray represent a TypeRef value: not
// every caller has a resolved Ref (the reader hasn't finished building
// instances yet when it decodes PROP chunks), so the binary package works
// in terms of the file's own sequential per-instance indices and leaves
// translating them to rbxdom.Ref to reader.go/writer.go.
type refIndex struct {
	index int32
}

func (refIndex) Type() rbxdom.Type      { return rbxdom.TypeRef }
func (r refIndex) Copy() rbxdom.Variant { return r }

// decodeArray is encodeArray's inverse: it parses count values of type t
// out of a PROP chunk's payload. TypeRef values decode to refIndex, not a
// resolved rbxdom.Ref; the caller (reader.go) is responsible for mapping
// indices to referents once every INST chunk has been read.
func decodeArray(t rbxdom.Type, b []byte, count int, sstr *sharedStringTable) ([]rbxdom.Variant, error) {
	out := make([]rbxdom.Variant, count)
	switch t {
	case rbxdom.TypeString, rbxdom.TypeBinaryString, rbxdom.TypeContent:
		for i := range out {
			if len(b) < 4 {
				return nil, errTruncatedArray(t, i)
			}
			n := int(binary.LittleEndian.Uint32(b))
			b = b[4:]
			if len(b) < n {
				return nil, errTruncatedArray(t, i)
			}
			s := append([]byte(nil), b[:n]...)
			b = b[n:]
			switch t {
			case rbxdom.TypeString:
				out[i] = rbxdom.String(s)
			case rbxdom.TypeBinaryString:
				out[i] = rbxdom.BinaryString(s)
			case rbxdom.TypeContent:
				out[i] = rbxdom.Content{URI: string(s)}
			}
		}
		return out, nil

	case rbxdom.TypeBool:
		if len(b) < count {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.Bool(b[i] != 0)
		}
		return out, nil

	case rbxdom.TypeInt32:
		vals, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = rbxdom.Int32(v)
		}
		return out, nil

	case rbxdom.TypeFloat32:
		vals, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = rbxdom.Float32(v)
		}
		return out, nil

	case rbxdom.TypeFloat64:
		if len(b) < count*8 {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.Float64(math.Float64frombits(binary.BigEndian.Uint64(b[i*8:])))
		}
		return out, nil

	case rbxdom.TypeUDim:
		scale, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		offset, err := decodeInt32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.UDim{Scale: scale[i], Offset: offset[i]}
		}
		return out, nil

	case rbxdom.TypeUDim2:
		xs, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		b = b[count*4:]
		xo, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		b = b[count*4:]
		ys, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		b = b[count*4:]
		yo, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.UDim2{X: rbxdom.UDim{Scale: xs[i], Offset: xo[i]}, Y: rbxdom.UDim{Scale: ys[i], Offset: yo[i]}}
		}
		return out, nil

	case rbxdom.TypeRay:
		if len(b) < count*24 {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			f := readFloat32BE(b[i*24:], 6)
			out[i] = rbxdom.Ray{
				Origin:    rbxdom.Vector3{X: f[0], Y: f[1], Z: f[2]},
				Direction: rbxdom.Vector3{X: f[3], Y: f[4], Z: f[5]},
			}
		}
		return out, nil

	case rbxdom.TypeFaces:
		if len(b) < count {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.FacesFromBits(uint32(b[i]))
		}
		return out, nil

	case rbxdom.TypeAxes:
		if len(b) < count {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.AxesFromBits(uint32(b[i]))
		}
		return out, nil

	case rbxdom.TypeBrickColor:
		vals, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			out[i] = rbxdom.BrickColor(v)
		}
		return out, nil

	case rbxdom.TypeColor3:
		r, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		g, err := decodeFloat32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		bl, err := decodeFloat32Field(b[count*8:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.Color3{R: r[i], G: g[i], B: bl[i]}
		}
		return out, nil

	case rbxdom.TypeColor3uint8:
		if len(b) < count*3 {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.Color3uint8{R: b[i], G: b[count+i], B: b[2*count+i]}
		}
		return out, nil

	case rbxdom.TypeVector2:
		x, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		y, err := decodeFloat32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.Vector2{X: x[i], Y: y[i]}
		}
		return out, nil

	case rbxdom.TypeVector3:
		x, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		y, err := decodeFloat32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		z, err := decodeFloat32Field(b[count*8:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.Vector3{X: x[i], Y: y[i], Z: z[i]}
		}
		return out, nil

	case rbxdom.TypeVector3int16:
		if len(b) < count*6 {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			f := b[i*6:]
			out[i] = rbxdom.Vector3int16{
				X: int16(binary.LittleEndian.Uint16(f[0:2])),
				Y: int16(binary.LittleEndian.Uint16(f[2:4])),
				Z: int16(binary.LittleEndian.Uint16(f[4:6])),
			}
		}
		return out, nil

	case rbxdom.TypeCFrame:
		return decodeCFrameArray(b, count)

	case rbxdom.TypeOptionalCFrame:
		return decodeOptionalCFrameArray(b, count)

	case rbxdom.TypeFont:
		for i := range out {
			family, rest, err := readLenPrefixed(b, t, i)
			if err != nil {
				return nil, err
			}
			if len(rest) < 3 {
				return nil, errTruncatedArray(t, i)
			}
			weight := rbxdom.FontWeight(binary.LittleEndian.Uint16(rest))
			style := rbxdom.FontStyle(rest[2])
			rest = rest[3:]
			faceID, rest, err := readLenPrefixed(rest, t, i)
			if err != nil {
				return nil, err
			}
			out[i] = rbxdom.Font{Family: family, Weight: weight, Style: style, CachedFaceID: faceID}
			b = rest
		}
		return out, nil

	case rbxdom.TypeUniqueId:
		if len(b) < count*16 {
			return nil, errTruncatedArray(t, count)
		}
		field := append([]byte(nil), b[:count*16]...)
		deinterleave(field, 16)
		for i := range out {
			var enc [16]byte
			copy(enc[:], field[i*16:])
			out[i] = rbxdom.DecodeUniqueId(enc)
		}
		return out, nil

	case rbxdom.TypeSecurityCapabilities:
		if len(b) < count*8 {
			return nil, errTruncatedArray(t, count)
		}
		field := append([]byte(nil), b[:count*8]...)
		deinterleave(field, 8)
		for i := range out {
			out[i] = rbxdom.SecurityCapabilities(decodeZigzag64(binary.BigEndian.Uint64(field[i*8:])))
		}
		return out, nil

	case rbxdom.TypeEnum:
		if len(b) < count*4 {
			return nil, errTruncatedArray(t, count)
		}
		for i := range out {
			out[i] = rbxdom.Enum(binary.BigEndian.Uint32(b[i*4:]))
		}
		return out, nil

	case rbxdom.TypeRef:
		vals, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		indices := deltaDecodeRefs(vals)
		for i, idx := range indices {
			out[i] = refIndex{index: idx}
		}
		return out, nil

	case rbxdom.TypeNumberSequence:
		for i := range out {
			if len(b) < 4 {
				return nil, errTruncatedArray(t, i)
			}
			n := int(binary.LittleEndian.Uint32(b))
			b = b[4:]
			ns := make(rbxdom.NumberSequence, n)
			for k := 0; k < n; k++ {
				f := readFloat32BE(b, 3)
				b = b[12:]
				ns[k] = rbxdom.NumberSequenceKeypoint{Time: f[0], Value: f[1], Envelope: f[2]}
			}
			out[i] = ns
		}
		return out, nil

	case rbxdom.TypeColorSequence:
		for i := range out {
			if len(b) < 4 {
				return nil, errTruncatedArray(t, i)
			}
			n := int(binary.LittleEndian.Uint32(b))
			b = b[4:]
			cs := make(rbxdom.ColorSequence, n)
			for k := 0; k < n; k++ {
				f := readFloat32BE(b, 5)
				b = b[20:]
				cs[k] = rbxdom.ColorSequenceKeypoint{Time: f[0], Value: rbxdom.Color3{R: f[1], G: f[2], B: f[3]}, Envelope: f[4]}
			}
			out[i] = cs
		}
		return out, nil

	case rbxdom.TypeNumberRange:
		mn, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		mx, err := decodeFloat32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.NumberRange{Min: mn[i], Max: mx[i]}
		}
		return out, nil

	case rbxdom.TypeRect:
		x0, err := decodeFloat32Field(b, count)
		if err != nil {
			return nil, err
		}
		y0, err := decodeFloat32Field(b[count*4:], count)
		if err != nil {
			return nil, err
		}
		x1, err := decodeFloat32Field(b[count*8:], count)
		if err != nil {
			return nil, err
		}
		y1, err := decodeFloat32Field(b[count*12:], count)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = rbxdom.Rect{Min: rbxdom.Vector2{X: x0[i], Y: y0[i]}, Max: rbxdom.Vector2{X: x1[i], Y: y1[i]}}
		}
		return out, nil

	case rbxdom.TypePhysicalProperties:
		for i := range out {
			if len(b) < 1 {
				return nil, errTruncatedArray(t, i)
			}
			custom := b[0] != 0
			b = b[1:]
			if !custom {
				out[i] = rbxdom.PhysicalProperties{}
				continue
			}
			f := readFloat32BE(b, 5)
			b = b[20:]
			out[i] = rbxdom.PhysicalProperties{
				CustomPhysics: true, Density: f[0], Friction: f[1],
				Elasticity: f[2], FrictionWeight: f[3], ElasticityWeight: f[4],
			}
		}
		return out, nil

	case rbxdom.TypeInt64:
		if len(b) < count*8 {
			return nil, errTruncatedArray(t, count)
		}
		field := append([]byte(nil), b[:count*8]...)
		deinterleave(field, 8)
		for i := range out {
			out[i] = rbxdom.Int64(decodeZigzag64(binary.BigEndian.Uint64(field[i*8:])))
		}
		return out, nil

	case rbxdom.TypeSharedString:
		vals, err := decodeInt32Field(b, count)
		if err != nil {
			return nil, err
		}
		for i, idx := range vals {
			ss, ok := sstr.at(idx)
			if !ok {
				return nil, fmt.Errorf("binary: shared string index %d out of range", idx)
			}
			out[i] = ss
		}
		return out, nil

	default:
		return nil, fmt.Errorf("binary: no wire decoding for type %s", t)
	}
}

func decodeInt32Field(b []byte, n int) ([]int32, error) {
	if len(b) < n*4 {
		return nil, errTruncatedArray(rbxdom.TypeInt32, n)
	}
	field := append([]byte(nil), b[:n*4]...)
	deinterleave(field, 4)
	out := make([]int32, n)
	for i := range out {
		out[i] = decodeZigzag(binary.BigEndian.Uint32(field[i*4:]))
	}
	return out, nil
}

func decodeFloat32Field(b []byte, n int) ([]float32, error) {
	if len(b) < n*4 {
		return nil, errTruncatedArray(rbxdom.TypeFloat32, n)
	}
	field := append([]byte(nil), b[:n*4]...)
	deinterleave(field, 4)
	out := make([]float32, n)
	for i := range out {
		out[i] = decodeRobloxFloat(binary.BigEndian.Uint32(field[i*4:]))
	}
	return out, nil
}

func readFloat32BE(b []byte, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(b[i*4:]))
	}
	return out
}

// appendLenPrefixed writes s as a uint32-little-endian length followed by
// its bytes, the same framing encodeArray uses for TypeString/TypeContent,
// reused here for Font's family and cached-face-id fields.
func appendLenPrefixed(b []byte, s string) []byte {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	b = append(b, lenBuf[:]...)
	return append(b, s...)
}

// readLenPrefixed inverts appendLenPrefixed, reporting errTruncatedArray(t,
// i) on either the length prefix or the string body running past b's end.
func readLenPrefixed(b []byte, t rbxdom.Type, i int) (string, []byte, error) {
	if len(b) < 4 {
		return "", nil, errTruncatedArray(t, i)
	}
	n := int(binary.LittleEndian.Uint32(b))
	b = b[4:]
	if len(b) < n {
		return "", nil, errTruncatedArray(t, i)
	}
	return string(b[:n]), b[n:], nil
}

func errTruncatedArray(t rbxdom.Type, count int) error {
	return fmt.Errorf("binary: truncated %s array (wanted %d elements)", t, count)
}
