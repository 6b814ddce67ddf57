package declare

import (
	"github.com/robloxapi/rbxdom"
)

func normUint8(v interface{}) uint8 {
	switch v := v.(type) {
	case int:
		return uint8(v)
	case uint:
		return uint8(v)
	case uint8:
		return uint8(v)
	case uint16:
		return uint8(v)
	case uint32:
		return uint8(v)
	case uint64:
		return uint8(v)
	case int8:
		return uint8(v)
	case int16:
		return uint8(v)
	case int32:
		return uint8(v)
	case int64:
		return uint8(v)
	case float32:
		return uint8(v)
	case float64:
		return uint8(v)
	}
	return 0
}

func normInt16(v interface{}) int16 {
	switch v := v.(type) {
	case int:
		return int16(v)
	case uint:
		return int16(v)
	case uint8:
		return int16(v)
	case uint16:
		return int16(v)
	case uint32:
		return int16(v)
	case uint64:
		return int16(v)
	case int8:
		return int16(v)
	case int16:
		return int16(v)
	case int32:
		return int16(v)
	case int64:
		return int16(v)
	case float32:
		return int16(v)
	case float64:
		return int16(v)
	}
	return 0
}

func normInt32(v interface{}) int32 {
	switch v := v.(type) {
	case int:
		return int32(v)
	case uint:
		return int32(v)
	case uint8:
		return int32(v)
	case uint16:
		return int32(v)
	case uint32:
		return int32(v)
	case uint64:
		return int32(v)
	case int8:
		return int32(v)
	case int16:
		return int32(v)
	case int32:
		return int32(v)
	case int64:
		return int32(v)
	case float32:
		return int32(v)
	case float64:
		return int32(v)
	}
	return 0
}

func normInt64(v interface{}) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return int64(v)
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func normUint32(v interface{}) uint32 {
	switch v := v.(type) {
	case int:
		return uint32(v)
	case uint:
		return uint32(v)
	case uint8:
		return uint32(v)
	case uint16:
		return uint32(v)
	case uint32:
		return uint32(v)
	case uint64:
		return uint32(v)
	case int8:
		return uint32(v)
	case int16:
		return uint32(v)
	case int32:
		return uint32(v)
	case int64:
		return uint32(v)
	case float32:
		return uint32(v)
	case float64:
		return uint32(v)
	}
	return 0
}

func normFloat32(v interface{}) float32 {
	switch v := v.(type) {
	case int:
		return float32(v)
	case uint:
		return float32(v)
	case uint8:
		return float32(v)
	case uint16:
		return float32(v)
	case uint32:
		return float32(v)
	case uint64:
		return float32(v)
	case int8:
		return float32(v)
	case int16:
		return float32(v)
	case int32:
		return float32(v)
	case int64:
		return float32(v)
	case float32:
		return float32(v)
	case float64:
		return float32(v)
	}
	return 0
}

func normBool(v interface{}) bool {
	vv, _ := v.(bool)
	return vv
}

// assertValue returns v unchanged if it is already the Variant that t
// decodes to, the same escape hatch the teacher's declare/type.go offered
// for passing a pre-built rbxfile.Value straight through.
func assertValue(t rbxdom.Type, v interface{}) (value rbxdom.Variant, ok bool) {
	vv, isVariant := v.(rbxdom.Variant)
	if !isVariant || vv.Type() != t {
		return nil, false
	}
	return vv, true
}

// value evaluates a Property declaration's raw arguments into a Variant of
// type t, following the teacher's declare/type.go value-construction table
// (multi-arg forms per type), generalized to rbxdom.Variant's type set.
// refs resolves a Ref declaration's string reference to the rbxdom.Ref
// assigned to the instance that declared it.
func value(t rbxdom.Type, refs map[string]rbxdom.Ref, v []interface{}) rbxdom.Variant {
	if len(v) == 0 {
		return rbxdom.NewValue(t)
	}

	if vv, ok := assertValue(t, v[0]); ok {
		return vv
	}

	switch t {
	case rbxdom.TypeString:
		switch v := v[0].(type) {
		case string:
			return rbxdom.String(v)
		case []byte:
			return rbxdom.String(v)
		}
	case rbxdom.TypeBinaryString:
		switch v := v[0].(type) {
		case string:
			return rbxdom.BinaryString(v)
		case []byte:
			return rbxdom.BinaryString(v)
		}
	case rbxdom.TypeContent:
		switch v := v[0].(type) {
		case string:
			return rbxdom.Content{URI: v}
		case []byte:
			return rbxdom.Content{URI: string(v)}
		}
	case rbxdom.TypeBool:
		if b, ok := v[0].(bool); ok {
			return rbxdom.Bool(b)
		}
	case rbxdom.TypeInt32:
		return rbxdom.Int32(normInt32(v[0]))
	case rbxdom.TypeInt64:
		return rbxdom.Int64(normInt64(v[0]))
	case rbxdom.TypeFloat32:
		return rbxdom.Float32(normFloat32(v[0]))
	case rbxdom.TypeFloat64:
		return rbxdom.Float64(float64(normFloat32(v[0])))
	case rbxdom.TypeUDim:
		if len(v) == 2 {
			return rbxdom.UDim{Scale: normFloat32(v[0]), Offset: normInt32(v[1])}
		}
	case rbxdom.TypeUDim2:
		switch len(v) {
		case 2:
			x, _ := v[0].(rbxdom.UDim)
			y, _ := v[1].(rbxdom.UDim)
			return rbxdom.UDim2{X: x, Y: y}
		case 4:
			return rbxdom.UDim2{
				X: rbxdom.UDim{Scale: normFloat32(v[0]), Offset: normInt32(v[1])},
				Y: rbxdom.UDim{Scale: normFloat32(v[2]), Offset: normInt32(v[3])},
			}
		}
	case rbxdom.TypeFaces:
		if len(v) == 6 {
			return rbxdom.Faces{
				Right:  normBool(v[0]),
				Top:    normBool(v[1]),
				Back:   normBool(v[2]),
				Left:   normBool(v[3]),
				Bottom: normBool(v[4]),
				Front:  normBool(v[5]),
			}
		}
	case rbxdom.TypeAxes:
		if len(v) == 3 {
			return rbxdom.Axes{X: normBool(v[0]), Y: normBool(v[1]), Z: normBool(v[2])}
		}
	case rbxdom.TypeColor3:
		if len(v) == 3 {
			return rbxdom.Color3{R: normFloat32(v[0]), G: normFloat32(v[1]), B: normFloat32(v[2])}
		}
	case rbxdom.TypeColor3uint8:
		if len(v) == 3 {
			return rbxdom.Color3uint8{R: normUint8(v[0]), G: normUint8(v[1]), B: normUint8(v[2])}
		}
	case rbxdom.TypeVector2:
		if len(v) == 2 {
			return rbxdom.Vector2{X: normFloat32(v[0]), Y: normFloat32(v[1])}
		}
	case rbxdom.TypeVector3:
		if len(v) == 3 {
			return rbxdom.Vector3{X: normFloat32(v[0]), Y: normFloat32(v[1]), Z: normFloat32(v[2])}
		}
	case rbxdom.TypeVector3int16:
		if len(v) == 3 {
			return rbxdom.Vector3int16{X: normInt16(v[0]), Y: normInt16(v[1]), Z: normInt16(v[2])}
		}
	case rbxdom.TypeCFrame, rbxdom.TypeOptionalCFrame:
		var cf rbxdom.CFrame
		switch len(v) {
		case 10:
			p, _ := v[0].(rbxdom.Vector3)
			cf = rbxdom.CFrame{
				Position: p,
				R: rbxdom.Matrix3{
					normFloat32(v[1]), normFloat32(v[2]), normFloat32(v[3]),
					normFloat32(v[4]), normFloat32(v[5]), normFloat32(v[6]),
					normFloat32(v[7]), normFloat32(v[8]), normFloat32(v[9]),
				},
			}
		case 12:
			cf = rbxdom.CFrame{
				Position: rbxdom.Vector3{X: normFloat32(v[0]), Y: normFloat32(v[1]), Z: normFloat32(v[2])},
				R: rbxdom.Matrix3{
					normFloat32(v[3]), normFloat32(v[4]), normFloat32(v[5]),
					normFloat32(v[6]), normFloat32(v[7]), normFloat32(v[8]),
					normFloat32(v[9]), normFloat32(v[10]), normFloat32(v[11]),
				},
			}
		default:
			return rbxdom.NewValue(t)
		}
		if t == rbxdom.TypeOptionalCFrame {
			return rbxdom.OptionalCFrame{Value: cf, Valid: true}
		}
		return cf
	case rbxdom.TypeEnum:
		return rbxdom.Enum(normUint32(v[0]))
	case rbxdom.TypeRef:
		switch v := v[0].(type) {
		case string:
			return refs[v]
		case []byte:
			return refs[string(v)]
		case rbxdom.Ref:
			return v
		}
	case rbxdom.TypeNumberRange:
		if len(v) == 2 {
			return rbxdom.NumberRange{Min: normFloat32(v[0]), Max: normFloat32(v[1])}
		}
	case rbxdom.TypeNumberSequence:
		if len(v) > 0 && len(v)%3 == 0 {
			seq := make(rbxdom.NumberSequence, len(v)/3)
			for i := 0; i < len(v); i += 3 {
				seq[i/3] = rbxdom.NumberSequenceKeypoint{
					Time:     normFloat32(v[i]),
					Value:    normFloat32(v[i+1]),
					Envelope: normFloat32(v[i+2]),
				}
			}
			return seq
		}
	case rbxdom.TypeColorSequence:
		if len(v) > 0 && len(v)%5 == 0 {
			seq := make(rbxdom.ColorSequence, len(v)/5)
			for i := 0; i < len(v); i += 5 {
				seq[i/5] = rbxdom.ColorSequenceKeypoint{
					Time:     normFloat32(v[i]),
					Value:    rbxdom.Color3{R: normFloat32(v[i+1]), G: normFloat32(v[i+2]), B: normFloat32(v[i+3])},
					Envelope: normFloat32(v[i+4]),
				}
			}
			return seq
		}
	case rbxdom.TypeRect:
		switch len(v) {
		case 2:
			min, _ := v[0].(rbxdom.Vector2)
			max, _ := v[1].(rbxdom.Vector2)
			return rbxdom.Rect{Min: min, Max: max}
		case 4:
			return rbxdom.Rect{
				Min: rbxdom.Vector2{X: normFloat32(v[0]), Y: normFloat32(v[1])},
				Max: rbxdom.Vector2{X: normFloat32(v[2]), Y: normFloat32(v[3])},
			}
		}
	case rbxdom.TypePhysicalProperties:
		switch len(v) {
		case 0:
			return rbxdom.PhysicalProperties{}
		case 3:
			return rbxdom.PhysicalProperties{
				CustomPhysics: true,
				Density:       normFloat32(v[0]),
				Friction:      normFloat32(v[1]),
				Elasticity:    normFloat32(v[2]),
			}
		case 5:
			return rbxdom.PhysicalProperties{
				CustomPhysics:    true,
				Density:          normFloat32(v[0]),
				Friction:         normFloat32(v[1]),
				Elasticity:       normFloat32(v[2]),
				FrictionWeight:   normFloat32(v[3]),
				ElasticityWeight: normFloat32(v[4]),
			}
		}
	case rbxdom.TypeSharedString:
		if data, ok := v[0].([]byte); ok {
			return rbxdom.SharedString{Hash: rbxdom.HashSharedString(data), Data: data}
		}
	case rbxdom.TypeUniqueId:
		if len(v) == 3 {
			return rbxdom.UniqueId{Index: normUint32(v[0]), Random: normUint32(v[1]), Time: uint64(normInt64(v[2]))}
		}
	case rbxdom.TypeFont:
		if len(v) >= 1 {
			family, _ := v[0].(string)
			f := rbxdom.Font{Family: family}
			if len(v) >= 2 {
				f.Weight = rbxdom.FontWeight(normUint32(v[1]))
			}
			if len(v) >= 3 {
				f.Style = rbxdom.FontStyle(normUint8(v[2]))
			}
			return f
		}
	}

	return rbxdom.NewValue(t)
}
