package binary

import "github.com/robloxapi/rbxdom"

// classGroup is one class's instances plus the union of property
// names/types seen across them — the binary format's instance-group and
// property-chunk granularity. Ported from rbxl/codec.go's Encode, which
// performs the same grouping (by ClassName, then the union of property
// names) before emitting chunks, generalized here to run ahead of time as
// its own pass so writer.go can size and order chunks deterministically.
type classGroup struct {
	instances  []*rbxdom.Instance
	properties map[string]rbxdom.Type
}

type typeInfo struct {
	classes map[string]*classGroup
}

// discoverTypeInfo groups insts by class and determines, for each class,
// every property name that appears on any instance of that class and the
// Type to encode it as. When two instances of the same class disagree on a
// property's type, the first-seen type wins and the rest are coerced via
// rbxdom.Convert when the property chunk is written — the same
// first-seen-wins behavior rbxl/codec.go falls back to without a reflection
// database telling it the canonical type.
func discoverTypeInfo(insts []*rbxdom.Instance) *typeInfo {
	info := &typeInfo{classes: make(map[string]*classGroup)}
	for _, inst := range insts {
		group, ok := info.classes[inst.ClassName]
		if !ok {
			group = &classGroup{properties: make(map[string]rbxdom.Type)}
			info.classes[inst.ClassName] = group
		}
		group.instances = append(group.instances, inst)
		for name, v := range inst.Properties {
			if _, seen := group.properties[name]; !seen {
				group.properties[name] = v.Type()
			}
		}
	}
	return info
}
