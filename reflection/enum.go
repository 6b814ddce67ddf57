// Package reflection implements the reflection database described in
// spec §4.C/4.D: class/property/enum descriptors, the property resolver,
// the Font/BrickColor/GuiInset migration table, and the API-dump/YAML-patch
// loaders that build a Database offline. Grounded on
// original_source/rbx_reflection's reflection_types.rs, resolution.rs and
// migration.rs, and rbx_reflector's patches.rs for the YAML loader.
package reflection

// EnumItem is one named value of an Enum descriptor.
type EnumItem struct {
	Name  string
	Value uint32
}

// EnumDescriptor describes one Roblox Enum type: a name and its item set.
// Ported from reflection_database/enums.rs's RbxEnumDescriptor, with the
// generated HashMap<Cow<str>, u32> replaced by a slice plus an index map
// since Go has no Cow and this module needs deterministic iteration
// (Items keeps the order in which items were added, i.e. dump order) for
// dump/round-trip purposes the Rust side didn't need.
type EnumDescriptor struct {
	Name  string
	Items []EnumItem

	byName map[string]uint32
}

func newEnumDescriptor(name string) *EnumDescriptor {
	return &EnumDescriptor{Name: name, byName: make(map[string]uint32)}
}

func (e *EnumDescriptor) add(name string, value uint32) {
	e.Items = append(e.Items, EnumItem{Name: name, Value: value})
	e.byName[name] = value
}

// ItemByName returns the numeric value of the named item, ported from
// resolution.rs's enum lookup inside try_resolve_string.
func (e *EnumDescriptor) ItemByName(name string) (uint32, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// ItemByValue returns the item name for a numeric value. The XML writer
// does not use it: it writes token values as plain numbers.
func (e *EnumDescriptor) ItemByValue(value uint32) (string, bool) {
	for _, it := range e.Items {
		if it.Value == value {
			return it.Name, true
		}
	}
	return "", false
}
