package reflection

import (
	"fmt"

	"github.com/robloxapi/rbxdom"
)

// Database is the immutable, process-wide reflection database: classes,
// enums, and the property defaults a "defaults place" file supplies. It is
// built once offline (LoadDump, then Patches.ApplyPreDefault/LoadDefaults/
// Patches.ApplyPostDefault in that order, per spec §4.C) and is safe to share by
// reference across goroutines once construction finishes, since nothing
// after construction mutates it. Ported from rbx_reflection's
// ReflectionDatabase.
type Database struct {
	Classes map[string]*ClassDescriptor
	Enums   map[string]*EnumDescriptor
}

func newDatabase() *Database {
	return &Database{
		Classes: make(map[string]*ClassDescriptor),
		Enums:   make(map[string]*EnumDescriptor),
	}
}

// Superclasses returns the chain of superclass descriptors of class, from
// its immediate parent up to (and including) the root "Instance" class.
// Ported from rbx_reflection's ReflectionDatabase::superclasses.
func (db *Database) Superclasses(class *ClassDescriptor) ([]*ClassDescriptor, error) {
	var chain []*ClassDescriptor
	cur := class
	for cur.Superclass != "" {
		next, ok := db.Classes[cur.Superclass]
		if !ok {
			return nil, fmt.Errorf("reflection: class %s has unknown superclass %s", cur.Name, cur.Superclass)
		}
		chain = append(chain, next)
		cur = next
	}
	return chain, nil
}

// LoadDefaults populates DefaultProperties on every class from a decoded
// "defaults place" WeakDom: one instance per class, its property values
// taken verbatim as that class's defaults. Ported from rbx_reflector's
// generate.rs defaults-place step, which decodes a binary place file the
// same way and walks its top-level instances by ClassName.
func (db *Database) LoadDefaults(defaults *rbxdom.WeakDom) {
	for _, inst := range defaults.Descendants() {
		class, ok := db.Classes[inst.ClassName]
		if !ok {
			continue
		}
		for name, v := range inst.Properties {
			class.DefaultProperties[name] = v
		}
	}
}

// DefaultValue looks up the default for (class, property), walking the
// superclass chain the way Resolve walks it for descriptors. Returns
// rbxdom.NewValue(t) as a last resort so callers always get something
// usable, matching spec §4.E step 3's "per-type fallback" language.
func (db *Database) DefaultValue(class *ClassDescriptor, propertyName string, t rbxdom.Type) rbxdom.Variant {
	for cur := class; cur != nil; {
		if v, ok := cur.DefaultProperties[propertyName]; ok {
			return v
		}
		if cur.Superclass == "" {
			break
		}
		cur = db.Classes[cur.Superclass]
	}
	return rbxdom.NewValue(t)
}
