package rbxdom

// Convert attempts to coerce v into the concrete representation of want,
// returning the converted Variant and true on success. The binary writer
// (binary/writer.go) uses it when a property's stored value type doesn't
// match the type chosen for that property's PROP chunk; the reflection
// resolver does not call it. This is the same situation
// the teacher's rbx_reflection/src/resolution.rs try_resolve_value family
// handles, reimplemented here as an explicit, table-driven conversion
// rather than ad hoc per-call functions (see DESIGN.md).
func Convert(v Variant, want Type) (Variant, bool) {
	if v == nil {
		return nil, false
	}
	if v.Type() == want {
		return v, true
	}
	switch want {
	case TypeFloat64:
		switch x := v.(type) {
		case Float32:
			return Float64(x), true
		case Int32:
			return Float64(x), true
		case Int64:
			return Float64(x), true
		}
	case TypeFloat32:
		switch x := v.(type) {
		case Float64:
			return Float32(x), true
		case Int32:
			return Float32(x), true
		case Int64:
			return Float32(x), true
		}
	case TypeInt32:
		switch x := v.(type) {
		case Int64:
			return Int32(x), true
		case Float32:
			return Int32(x), true
		case Float64:
			return Int32(x), true
		}
	case TypeInt64:
		switch x := v.(type) {
		case Int32:
			return Int64(x), true
		case Float32:
			return Int64(x), true
		case Float64:
			return Int64(x), true
		}
	case TypeColor3:
		switch x := v.(type) {
		case Color3uint8:
			return x.ToColor3(), true
		case BrickColor:
			return x.ToColor3(), true
		}
	case TypeColor3uint8:
		switch x := v.(type) {
		case Color3:
			return x.ToColor3uint8(), true
		case BrickColor:
			return x.Color(), true
		}
	case TypeBrickColor:
		switch x := v.(type) {
		case Color3:
			return nearestBrickColor(x), true
		case Color3uint8:
			return nearestBrickColor(x.ToColor3()), true
		}
	case TypeContent:
		if s, ok := v.(String); ok {
			return Content{URI: string(s)}, true
		}
	case TypeString:
		if c, ok := v.(Content); ok && !c.IsSharedString() {
			return String(c.URI), true
		}
	}
	return nil, false
}
