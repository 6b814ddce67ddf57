package rbxdom

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
)

// MarshalJSON and UnmarshalJSON give WeakDom a debug/test serialization,
// adapted from the teacher's json.go (Root.MarshalJSON/UnmarshalJSON):
// same two-phase approach (build instances first, resolve Ref-typed
// properties against a reference table afterward), generalized from the
// teacher's Instance-pointer ValueReference to this module's Ref-keyed
// WeakDom. No test in this module exercises it; not a CLI tool (see
// DESIGN.md).
func (dom *WeakDom) MarshalJSON() ([]byte, error) {
	return json.Marshal(domToJSONInterface(dom))
}

func (dom *WeakDom) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	d, ok := domFromJSONInterface(v)
	if !ok {
		return errors.New("rbxdom: invalid JSON WeakDom object")
	}
	*dom = *d
	return nil
}

const jsonVersion = 0

func indexJSON(v, i, p interface{}) bool {
	var value interface{}
	switch object := v.(type) {
	case map[string]interface{}:
		index, ok := i.(string)
		if !ok {
			return false
		}
		value, ok = object[index]
		if !ok {
			return false
		}
	case []interface{}:
		index, ok := i.(int)
		if !ok || index < 0 || index >= len(object) {
			return false
		}
		value = object[index]
	default:
		return false
	}
	switch p := p.(type) {
	case *bool:
		value, ok := value.(bool)
		if !ok {
			return false
		}
		*p = value
	case *float64:
		value, ok := value.(float64)
		if !ok {
			return false
		}
		*p = value
	case *string:
		value, ok := value.(string)
		if !ok {
			return false
		}
		*p = value
	case *[]interface{}:
		value, ok := value.([]interface{})
		if !ok {
			return false
		}
		*p = value
	case *map[string]interface{}:
		value, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		*p = value
	case *interface{}:
		*p = value
	}
	return true
}

func refHex(r Ref) string { return hex.EncodeToString(r[:]) }

func refFromHex(s string) (Ref, bool) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 16 {
		return Ref{}, false
	}
	var r Ref
	copy(r[:], b)
	return r, true
}

func domToJSONInterface(dom *WeakDom) interface{} {
	idom := make(map[string]interface{}, 2)
	idom["rbxdom_version"] = float64(jsonVersion)
	roots := dom.Roots()
	instances := make([]interface{}, len(roots))
	for i, inst := range roots {
		instances[i] = instanceToJSONInterface(dom, inst)
	}
	idom["instances"] = instances
	return idom
}

func instanceToJSONInterface(dom *WeakDom, inst *Instance) interface{} {
	iinst := make(map[string]interface{}, 4)
	iinst["class_name"] = inst.ClassName
	iinst["ref"] = refHex(inst.ref)
	properties := make(map[string]interface{}, len(inst.Properties))
	for name, v := range inst.Properties {
		properties[name] = map[string]interface{}{
			"type":  v.Type().String(),
			"value": valueToJSONInterface(v),
		}
	}
	iinst["properties"] = properties
	children := dom.Children(inst)
	ichildren := make([]interface{}, len(children))
	for i, c := range children {
		ichildren[i] = instanceToJSONInterface(dom, c)
	}
	iinst["children"] = ichildren
	return iinst
}

type jsonPropRef struct {
	inst *Instance
	prop string
	ref  string
}

func domFromJSONInterface(idom interface{}) (*WeakDom, bool) {
	var version float64
	if !indexJSON(idom, "rbxdom_version", &version) {
		return nil, false
	}
	if int(version) != jsonVersion {
		return nil, false
	}

	dom := NewWeakDom()
	var propRefs []jsonPropRef
	var instances []interface{}
	if !indexJSON(idom, "instances", &instances) {
		return nil, false
	}
	for _, iinst := range instances {
		instanceFromJSONInterface(dom, nil, iinst, &propRefs)
	}
	for _, pr := range propRefs {
		ref, ok := refFromHex(pr.ref)
		if !ok {
			continue
		}
		pr.inst.Properties[pr.prop] = ref
	}
	return dom, true
}

func instanceFromJSONInterface(dom *WeakDom, parent *Instance, iinst interface{}, propRefs *[]jsonPropRef) *Instance {
	var className string
	if !indexJSON(iinst, "class_name", &className) {
		return nil
	}
	inst := dom.NewInstance(className)
	var refStr string
	if indexJSON(iinst, "ref", &refStr) {
		if ref, ok := refFromHex(refStr); ok {
			delete(dom.instances, inst.ref)
			inst.ref = ref
			dom.instances[ref] = inst
		}
	}
	if parent != nil {
		dom.SetParent(inst, parent)
	}

	var properties map[string]interface{}
	if indexJSON(iinst, "properties", &properties) {
		for name, iprop := range properties {
			var typ string
			if !indexJSON(iprop, "type", &typ) {
				continue
			}
			var ivalue interface{}
			if !indexJSON(iprop, "value", &ivalue) {
				continue
			}
			t := TypeFromString(typ)
			if t == TypeRef {
				if s, ok := ivalue.(string); ok {
					*propRefs = append(*propRefs, jsonPropRef{inst: inst, prop: name, ref: s})
				}
				continue
			}
			if v := valueFromJSONInterface(t, ivalue); v != nil {
				inst.Set(name, v)
			}
		}
	}

	var children []interface{}
	if indexJSON(iinst, "children", &children) {
		for _, ichild := range children {
			instanceFromJSONInterface(dom, inst, ichild, propRefs)
		}
	}
	return inst
}

func f64(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

func b(v interface{}) bool {
	x, _ := v.(bool)
	return x
}

func valueToJSONInterface(value Variant) interface{} {
	switch value := value.(type) {
	case String:
		return string(value)
	case BinaryString:
		return base64.StdEncoding.EncodeToString(value)
	case Bool:
		return bool(value)
	case Int32:
		return float64(value)
	case Int64:
		return float64(value)
	case Float32:
		return float64(value)
	case Float64:
		return float64(value)
	case Content:
		if value.IsSharedString() {
			return map[string]interface{}{"hash": hex.EncodeToString(value.Hash[:])}
		}
		return map[string]interface{}{"uri": value.URI}
	case UDim:
		return map[string]interface{}{"scale": float64(value.Scale), "offset": float64(value.Offset)}
	case UDim2:
		return map[string]interface{}{"x": valueToJSONInterface(value.X), "y": valueToJSONInterface(value.Y)}
	case Ray:
		return map[string]interface{}{"origin": valueToJSONInterface(value.Origin), "direction": valueToJSONInterface(value.Direction)}
	case Faces:
		return map[string]interface{}{"right": value.Right, "top": value.Top, "back": value.Back, "left": value.Left, "bottom": value.Bottom, "front": value.Front}
	case Axes:
		return map[string]interface{}{"x": value.X, "y": value.Y, "z": value.Z}
	case BrickColor:
		return float64(value)
	case Color3:
		return map[string]interface{}{"r": float64(value.R), "g": float64(value.G), "b": float64(value.B)}
	case Color3uint8:
		return map[string]interface{}{"r": float64(value.R), "g": float64(value.G), "b": float64(value.B)}
	case Vector2:
		return map[string]interface{}{"x": float64(value.X), "y": float64(value.Y)}
	case Vector3:
		return map[string]interface{}{"x": float64(value.X), "y": float64(value.Y), "z": float64(value.Z)}
	case Vector2int16:
		return map[string]interface{}{"x": float64(value.X), "y": float64(value.Y)}
	case Vector3int16:
		return map[string]interface{}{"x": float64(value.X), "y": float64(value.Y), "z": float64(value.Z)}
	case CFrame:
		rot := make([]interface{}, len(value.R))
		for i, f := range value.R {
			rot[i] = float64(f)
		}
		return map[string]interface{}{"position": valueToJSONInterface(value.Position), "rotation": rot}
	case OptionalCFrame:
		if !value.Valid {
			return nil
		}
		return valueToJSONInterface(value.Value)
	case Enum:
		return float64(value)
	case Ref:
		return refHex(value)
	case NumberSequence:
		ivalue := make([]interface{}, len(value))
		for i, k := range value {
			ivalue[i] = map[string]interface{}{"time": float64(k.Time), "value": float64(k.Value), "envelope": float64(k.Envelope)}
		}
		return ivalue
	case ColorSequence:
		ivalue := make([]interface{}, len(value))
		for i, k := range value {
			ivalue[i] = map[string]interface{}{"time": float64(k.Time), "value": valueToJSONInterface(k.Value), "envelope": float64(k.Envelope)}
		}
		return ivalue
	case NumberRange:
		return map[string]interface{}{"min": float64(value.Min), "max": float64(value.Max)}
	case Rect:
		return map[string]interface{}{"min": valueToJSONInterface(value.Min), "max": valueToJSONInterface(value.Max)}
	case PhysicalProperties:
		return map[string]interface{}{
			"custom_physics":    value.CustomPhysics,
			"density":           float64(value.Density),
			"friction":          float64(value.Friction),
			"elasticity":        float64(value.Elasticity),
			"friction_weight":   float64(value.FrictionWeight),
			"elasticity_weight": float64(value.ElasticityWeight),
		}
	case Region3:
		return map[string]interface{}{"cframe": valueToJSONInterface(value.CFrame), "size": valueToJSONInterface(value.Size)}
	case Region3int16:
		return map[string]interface{}{"min": valueToJSONInterface(value.Min), "max": valueToJSONInterface(value.Max)}
	case SharedString:
		return map[string]interface{}{"hash": hex.EncodeToString(value.Hash[:]), "data": base64.StdEncoding.EncodeToString(value.Data)}
	case Tags:
		ivalue := make([]interface{}, len(value))
		for i, t := range value {
			ivalue[i] = t
		}
		return ivalue
	case Attributes:
		enc, err := value.Encode()
		if err != nil {
			return nil
		}
		return base64.StdEncoding.EncodeToString(enc)
	case UniqueId:
		raw := EncodeUniqueId(value)
		return hex.EncodeToString(raw[:])
	case Font:
		return map[string]interface{}{
			"family":         value.Family,
			"weight":         float64(value.Weight),
			"style":          float64(value.Style),
			"cached_face_id": value.CachedFaceID,
		}
	case MaterialColors:
		return base64.StdEncoding.EncodeToString(value.Encode())
	case SecurityCapabilities:
		return float64(value)
	}
	return nil
}

func valueFromJSONInterface(typ Type, ivalue interface{}) Variant {
	switch typ {
	case TypeString:
		v, ok := ivalue.(string)
		if !ok {
			return nil
		}
		return String(v)
	case TypeBinaryString:
		v, ok := ivalue.(string)
		if !ok {
			return nil
		}
		raw, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, bytes.NewReader([]byte(v))))
		if err != nil {
			return nil
		}
		return BinaryString(raw)
	case TypeBool:
		v, ok := ivalue.(bool)
		if !ok {
			return nil
		}
		return Bool(v)
	case TypeInt32:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return Int32(int32(v))
	case TypeInt64:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return Int64(int64(v))
	case TypeFloat32:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return Float32(float32(v))
	case TypeFloat64:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return Float64(v)
	case TypeContent:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		if hashStr, ok := m["hash"].(string); ok && hashStr != "" {
			raw, err := hex.DecodeString(hashStr)
			if err != nil || len(raw) != 16 {
				return nil
			}
			var h SharedStringHash
			copy(h[:], raw)
			return Content{Hash: h}
		}
		uri, _ := m["uri"].(string)
		return Content{URI: uri}
	case TypeUDim:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return UDim{Scale: float32(f64(m["scale"])), Offset: int32(f64(m["offset"]))}
	case TypeUDim2:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		x, _ := valueFromJSONInterface(TypeUDim, m["x"]).(UDim)
		y, _ := valueFromJSONInterface(TypeUDim, m["y"]).(UDim)
		return UDim2{X: x, Y: y}
	case TypeRay:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		o, _ := valueFromJSONInterface(TypeVector3, m["origin"]).(Vector3)
		d, _ := valueFromJSONInterface(TypeVector3, m["direction"]).(Vector3)
		return Ray{Origin: o, Direction: d}
	case TypeFaces:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Faces{Right: b(m["right"]), Top: b(m["top"]), Back: b(m["back"]), Left: b(m["left"]), Bottom: b(m["bottom"]), Front: b(m["front"])}
	case TypeAxes:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Axes{X: b(m["x"]), Y: b(m["y"]), Z: b(m["z"])}
	case TypeBrickColor:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return BrickColor(uint16(v))
	case TypeColor3:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Color3{R: float32(f64(m["r"])), G: float32(f64(m["g"])), B: float32(f64(m["b"]))}
	case TypeColor3uint8:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Color3uint8{R: uint8(f64(m["r"])), G: uint8(f64(m["g"])), B: uint8(f64(m["b"]))}
	case TypeVector2:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Vector2{X: float32(f64(m["x"])), Y: float32(f64(m["y"]))}
	case TypeVector3:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Vector3{X: float32(f64(m["x"])), Y: float32(f64(m["y"])), Z: float32(f64(m["z"]))}
	case TypeVector2int16:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Vector2int16{X: int16(f64(m["x"])), Y: int16(f64(m["y"]))}
	case TypeVector3int16:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return Vector3int16{X: int16(f64(m["x"])), Y: int16(f64(m["y"])), Z: int16(f64(m["z"]))}
	case TypeCFrame:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		pos, _ := valueFromJSONInterface(TypeVector3, m["position"]).(Vector3)
		value := CFrame{Position: pos}
		irot, _ := m["rotation"].([]interface{})
		for i, ir := range irot {
			if i >= len(value.R) {
				break
			}
			value.R[i] = float32(f64(ir))
		}
		return value
	case TypeOptionalCFrame:
		if ivalue == nil {
			return OptionalCFrame{}
		}
		cf, ok := valueFromJSONInterface(TypeCFrame, ivalue).(CFrame)
		if !ok {
			return nil
		}
		return OptionalCFrame{Value: cf, Valid: true}
	case TypeEnum:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return Enum(uint32(v))
	case TypeNumberSequence:
		v, ok := ivalue.([]interface{})
		if !ok {
			return nil
		}
		value := make(NumberSequence, 0, len(v))
		for _, ik := range v {
			m, ok := ik.(map[string]interface{})
			if !ok {
				continue
			}
			value = append(value, NumberSequenceKeypoint{
				Time:     float32(f64(m["time"])),
				Value:    float32(f64(m["value"])),
				Envelope: float32(f64(m["envelope"])),
			})
		}
		return value
	case TypeColorSequence:
		v, ok := ivalue.([]interface{})
		if !ok {
			return nil
		}
		value := make(ColorSequence, 0, len(v))
		for _, ik := range v {
			m, ok := ik.(map[string]interface{})
			if !ok {
				continue
			}
			c, _ := valueFromJSONInterface(TypeColor3, m["value"]).(Color3)
			value = append(value, ColorSequenceKeypoint{
				Time:     float32(f64(m["time"])),
				Value:    c,
				Envelope: float32(f64(m["envelope"])),
			})
		}
		return value
	case TypeNumberRange:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return NumberRange{Min: float32(f64(m["min"])), Max: float32(f64(m["max"]))}
	case TypeRect:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		min, _ := valueFromJSONInterface(TypeVector2, m["min"]).(Vector2)
		max, _ := valueFromJSONInterface(TypeVector2, m["max"]).(Vector2)
		return Rect{Min: min, Max: max}
	case TypePhysicalProperties:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		return PhysicalProperties{
			CustomPhysics:     b(m["custom_physics"]),
			Density:           float32(f64(m["density"])),
			Friction:          float32(f64(m["friction"])),
			Elasticity:        float32(f64(m["elasticity"])),
			FrictionWeight:    float32(f64(m["friction_weight"])),
			ElasticityWeight:  float32(f64(m["elasticity_weight"])),
		}
	case TypeRegion3:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		cf, _ := valueFromJSONInterface(TypeCFrame, m["cframe"]).(CFrame)
		size, _ := valueFromJSONInterface(TypeVector3, m["size"]).(Vector3)
		return Region3{CFrame: cf, Size: size}
	case TypeRegion3int16:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		min, _ := valueFromJSONInterface(TypeVector3int16, m["min"]).(Vector3int16)
		max, _ := valueFromJSONInterface(TypeVector3int16, m["max"]).(Vector3int16)
		return Region3int16{Min: min, Max: max}
	case TypeSharedString:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		hashStr, _ := m["hash"].(string)
		dataStr, _ := m["data"].(string)
		raw, err := hex.DecodeString(hashStr)
		if err != nil || len(raw) != 16 {
			return nil
		}
		data, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, bytes.NewReader([]byte(dataStr))))
		if err != nil {
			return nil
		}
		var h SharedStringHash
		copy(h[:], raw)
		return SharedString{Hash: h, Data: data}
	case TypeTags:
		v, ok := ivalue.([]interface{})
		if !ok {
			return nil
		}
		tags := make(Tags, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case TypeAttributes:
		v, ok := ivalue.(string)
		if !ok {
			return nil
		}
		raw, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, bytes.NewReader([]byte(v))))
		if err != nil {
			return nil
		}
		attrs, err := DecodeAttributes(raw)
		if err != nil {
			return nil
		}
		return attrs
	case TypeUniqueId:
		v, ok := ivalue.(string)
		if !ok {
			return nil
		}
		raw, err := hex.DecodeString(v)
		if err != nil || len(raw) != 16 {
			return nil
		}
		var b [16]byte
		copy(b[:], raw)
		return DecodeUniqueId(b)
	case TypeFont:
		m, ok := ivalue.(map[string]interface{})
		if !ok {
			return nil
		}
		family, _ := m["family"].(string)
		faceID, _ := m["cached_face_id"].(string)
		return Font{
			Family:       family,
			Weight:       FontWeight(f64(m["weight"])),
			Style:        FontStyle(f64(m["style"])),
			CachedFaceID: faceID,
		}
	case TypeMaterialColors:
		v, ok := ivalue.(string)
		if !ok {
			return nil
		}
		raw, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, bytes.NewReader([]byte(v))))
		if err != nil {
			return nil
		}
		mc, err := DecodeMaterialColors(raw)
		if err != nil {
			return nil
		}
		return mc
	case TypeSecurityCapabilities:
		v, ok := ivalue.(float64)
		if !ok {
			return nil
		}
		return SecurityCapabilities(uint64(v))
	}
	return nil
}
