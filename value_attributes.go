package rbxdom

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
)

// attrTag is the one-byte type discriminant used inside an Attributes
// blob. These values are internal to this codec (spec §6 gives the wire
// shape; the concrete byte assignments here are this module's own, since
// no Go teacher file implements Attributes at all — see DESIGN.md).
type attrTag byte

const (
	attrTagString attrTag = iota + 1
	attrTagBool
	attrTagFloat64
	attrTagInt32
	attrTagUDim
	attrTagUDim2
	attrTagBrickColor
	attrTagColor3
	attrTagVector2
	attrTagVector3
	attrTagNumberRange
	attrTagRect
	attrTagCFrame
	attrTagFont
)

// Attributes is an instance's CollectionService-style attribute map: an
// ordered set of name -> typed Variant pairs, restricted to the subset of
// Variant types Roblox allows as attribute values. Iteration order of the
// in-memory map is unspecified; Encode always emits entries sorted by key
// so output is deterministic.
type Attributes map[string]Variant

func (Attributes) Type() Type { return TypeAttributes }
func (v Attributes) Copy() Variant {
	cp := make(Attributes, len(v))
	for k, val := range v {
		cp[k] = val.Copy()
	}
	return cp
}

func attrTagFor(v Variant) (attrTag, bool) {
	switch v.Type() {
	case TypeString:
		return attrTagString, true
	case TypeBool:
		return attrTagBool, true
	case TypeFloat64:
		return attrTagFloat64, true
	case TypeInt32:
		return attrTagInt32, true
	case TypeUDim:
		return attrTagUDim, true
	case TypeUDim2:
		return attrTagUDim2, true
	case TypeBrickColor:
		return attrTagBrickColor, true
	case TypeColor3:
		return attrTagColor3, true
	case TypeVector2:
		return attrTagVector2, true
	case TypeVector3:
		return attrTagVector3, true
	case TypeNumberRange:
		return attrTagNumberRange, true
	case TypeRect:
		return attrTagRect, true
	case TypeCFrame:
		return attrTagCFrame, true
	case TypeFont:
		return attrTagFont, true
	default:
		return 0, false
	}
}

func putString(buf *[]byte, s string) {
	var lb [4]byte
	binary.LittleEndian.PutUint32(lb[:], uint32(len(s)))
	*buf = append(*buf, lb[:]...)
	*buf = append(*buf, s...)
}

func putFloat32(buf *[]byte, f float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
	*buf = append(*buf, b[:]...)
}

func putFloat64(buf *[]byte, f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	*buf = append(*buf, b[:]...)
}

// Encode serializes attrs into the Attributes wire blob (spec §6), with
// entries ordered by key for determinism.
func (attrs Attributes) Encode() ([]byte, error) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf []byte
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(keys)))
	buf = append(buf, count[:]...)

	for _, k := range keys {
		v := attrs[k]
		tag, ok := attrTagFor(v)
		if !ok {
			return nil, fmt.Errorf("rbxdom: attribute %q has unsupported type %s", k, v.Type())
		}
		putString(&buf, k)
		buf = append(buf, byte(tag))
		switch tag {
		case attrTagString:
			putString(&buf, string(v.(String)))
		case attrTagBool:
			if v.(Bool) {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		case attrTagFloat64:
			putFloat64(&buf, float64(v.(Float64)))
		case attrTagInt32:
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(v.(Int32)))
			buf = append(buf, b[:]...)
		case attrTagUDim:
			u := v.(UDim)
			putFloat32(&buf, u.Scale)
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(u.Offset))
			buf = append(buf, b[:]...)
		case attrTagUDim2:
			u := v.(UDim2)
			putFloat32(&buf, u.X.Scale)
			var bx [4]byte
			binary.LittleEndian.PutUint32(bx[:], uint32(u.X.Offset))
			buf = append(buf, bx[:]...)
			putFloat32(&buf, u.Y.Scale)
			var by [4]byte
			binary.LittleEndian.PutUint32(by[:], uint32(u.Y.Offset))
			buf = append(buf, by[:]...)
		case attrTagBrickColor:
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], uint16(v.(BrickColor)))
			buf = append(buf, b[:]...)
		case attrTagColor3:
			c := v.(Color3)
			putFloat32(&buf, c.R)
			putFloat32(&buf, c.G)
			putFloat32(&buf, c.B)
		case attrTagVector2:
			p := v.(Vector2)
			putFloat32(&buf, p.X)
			putFloat32(&buf, p.Y)
		case attrTagVector3:
			p := v.(Vector3)
			putFloat32(&buf, p.X)
			putFloat32(&buf, p.Y)
			putFloat32(&buf, p.Z)
		case attrTagNumberRange:
			r := v.(NumberRange)
			putFloat32(&buf, r.Min)
			putFloat32(&buf, r.Max)
		case attrTagRect:
			r := v.(Rect)
			putFloat32(&buf, r.Min.X)
			putFloat32(&buf, r.Min.Y)
			putFloat32(&buf, r.Max.X)
			putFloat32(&buf, r.Max.Y)
		case attrTagCFrame:
			cf := v.(CFrame)
			for _, f := range cf.R {
				putFloat32(&buf, f)
			}
			putFloat32(&buf, cf.Position.X)
			putFloat32(&buf, cf.Position.Y)
			putFloat32(&buf, cf.Position.Z)
		case attrTagFont:
			f := v.(Font)
			putString(&buf, f.Family)
			var bw [2]byte
			binary.LittleEndian.PutUint16(bw[:], uint16(f.Weight))
			buf = append(buf, bw[:]...)
			buf = append(buf, byte(f.Style))
		}
	}
	return buf, nil
}

type attrReader struct {
	b   []byte
	pos int
}

func (r *attrReader) need(n int) error {
	if r.pos+n > len(r.b) {
		return fmt.Errorf("rbxdom: attributes blob truncated")
	}
	return nil
}

func (r *attrReader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *attrReader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *attrReader) u8() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

func (r *attrReader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *attrReader) f64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.b[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

func (r *attrReader) str() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	if err := r.need(int(n)); err != nil {
		return "", err
	}
	s := string(r.b[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// DecodeAttributes parses the Attributes wire blob produced by Encode.
func DecodeAttributes(b []byte) (Attributes, error) {
	r := &attrReader{b: b}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make(Attributes, count)
	for i := uint32(0); i < count; i++ {
		key, err := r.str()
		if err != nil {
			return nil, err
		}
		tagByte, err := r.u8()
		if err != nil {
			return nil, err
		}
		tag := attrTag(tagByte)
		var val Variant
		switch tag {
		case attrTagString:
			s, err := r.str()
			if err != nil {
				return nil, err
			}
			val = String(s)
		case attrTagBool:
			bv, err := r.u8()
			if err != nil {
				return nil, err
			}
			val = Bool(bv != 0)
		case attrTagFloat64:
			f, err := r.f64()
			if err != nil {
				return nil, err
			}
			val = Float64(f)
		case attrTagInt32:
			n, err := r.u32()
			if err != nil {
				return nil, err
			}
			val = Int32(int32(n))
		case attrTagUDim:
			scale, err := r.f32()
			if err != nil {
				return nil, err
			}
			off, err := r.u32()
			if err != nil {
				return nil, err
			}
			val = UDim{Scale: scale, Offset: int32(off)}
		case attrTagUDim2:
			xs, err := r.f32()
			if err != nil {
				return nil, err
			}
			xo, err := r.u32()
			if err != nil {
				return nil, err
			}
			ys, err := r.f32()
			if err != nil {
				return nil, err
			}
			yo, err := r.u32()
			if err != nil {
				return nil, err
			}
			val = UDim2{X: UDim{xs, int32(xo)}, Y: UDim{ys, int32(yo)}}
		case attrTagBrickColor:
			n, err := r.u16()
			if err != nil {
				return nil, err
			}
			val = BrickColor(n)
		case attrTagColor3:
			rr, err := r.f32()
			if err != nil {
				return nil, err
			}
			gg, err := r.f32()
			if err != nil {
				return nil, err
			}
			bb, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = Color3{rr, gg, bb}
		case attrTagVector2:
			x, err := r.f32()
			if err != nil {
				return nil, err
			}
			y, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = Vector2{x, y}
		case attrTagVector3:
			x, err := r.f32()
			if err != nil {
				return nil, err
			}
			y, err := r.f32()
			if err != nil {
				return nil, err
			}
			z, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = Vector3{x, y, z}
		case attrTagNumberRange:
			mn, err := r.f32()
			if err != nil {
				return nil, err
			}
			mx, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = NumberRange{mn, mx}
		case attrTagRect:
			minX, err := r.f32()
			if err != nil {
				return nil, err
			}
			minY, err := r.f32()
			if err != nil {
				return nil, err
			}
			maxX, err := r.f32()
			if err != nil {
				return nil, err
			}
			maxY, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = Rect{Vector2{minX, minY}, Vector2{maxX, maxY}}
		case attrTagCFrame:
			var m Matrix3
			for i := range m {
				f, err := r.f32()
				if err != nil {
					return nil, err
				}
				m[i] = f
			}
			x, err := r.f32()
			if err != nil {
				return nil, err
			}
			y, err := r.f32()
			if err != nil {
				return nil, err
			}
			z, err := r.f32()
			if err != nil {
				return nil, err
			}
			val = CFrame{Position: Vector3{x, y, z}, R: m}
		case attrTagFont:
			family, err := r.str()
			if err != nil {
				return nil, err
			}
			weight, err := r.u16()
			if err != nil {
				return nil, err
			}
			style, err := r.u8()
			if err != nil {
				return nil, err
			}
			val = Font{Family: family, Weight: FontWeight(weight), Style: FontStyle(style)}
		default:
			return nil, fmt.Errorf("rbxdom: attribute %q has unknown tag %d", key, tag)
		}
		out[key] = val
	}
	return out, nil
}
