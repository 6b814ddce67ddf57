package reflection

import "fmt"

// Resolution is the result of Resolve: the canonical descriptor for a
// (class, property) pair, the descriptor actually written to disk (nil if
// the property does not serialize), and the name the caller looked up
// under (which may be an alias of Canonical.Name). Ported from spec §4.D's
// "{ canonical, serialized }" result type.
type Resolution struct {
	Canonical  *PropertyDescriptor
	Serialized *PropertyDescriptor
	AliasedAs  string // equals Canonical.Name unless looked up via an alias
}

// Resolve walks the property resolver algorithm of spec §4.D: find the
// property on class or its nearest ancestor, follow Alias indirection to
// its canonical descriptor, and determine the serialized descriptor from
// the canonical one's Serialization mode. Ported from resolution.rs's
// try_resolve_value's descriptor-lookup half (find_property_type),
// generalized to return the full Resolution rather than just a DataType
// since binary/xml writers need the serialized name and migration too.
func (db *Database) Resolve(className, propertyName string) (*Resolution, error) {
	class, ok := db.Classes[className]
	if !ok {
		return nil, fmt.Errorf("reflection: unknown class %s", className)
	}
	return db.resolveOn(class, className, propertyName, propertyName, 0)
}

const maxAliasDepth = 8

func (db *Database) resolveOn(class *ClassDescriptor, className, lookupName, propertyName string, depth int) (*Resolution, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("reflection: %s.%s: alias chain too deep (cycle?)", className, propertyName)
	}

	for cur := class; cur != nil; {
		if prop, ok := cur.Properties[propertyName]; ok {
			if prop.Kind.IsAlias {
				target, err := db.resolveOn(cur, className, lookupName, prop.Kind.AliasFor, depth+1)
				if err != nil {
					return nil, err
				}
				target.AliasedAs = lookupName
				return target, nil
			}
			serialized, err := db.serializedDescriptor(cur, className, prop)
			if err != nil {
				return nil, err
			}
			return &Resolution{Canonical: prop, Serialized: serialized, AliasedAs: lookupName}, nil
		}
		if cur.Superclass == "" {
			break
		}
		next, ok := db.Classes[cur.Superclass]
		if !ok {
			return nil, fmt.Errorf("reflection: class %s has unknown superclass %s", cur.Name, cur.Superclass)
		}
		cur = next
	}
	return nil, fmt.Errorf("reflection: unknown property %s.%s", className, lookupName)
}

// serializedDescriptor computes the "serialized" half of a Resolution from
// a canonical property's Serialization mode, per spec §4.D step 2.
func (db *Database) serializedDescriptor(class *ClassDescriptor, className string, canonical *PropertyDescriptor) (*PropertyDescriptor, error) {
	switch canonical.Kind.Serialization.Mode {
	case SerializationSerializes:
		return canonical, nil
	case SerializationDoesNotSerialize:
		return nil, nil
	case SerializationSerializesAs:
		target, ok := class.Properties[canonical.Kind.Serialization.SerializesAs]
		if !ok {
			return nil, fmt.Errorf("reflection: %s.%s SerializesAs unknown property %s", className, canonical.Name, canonical.Kind.Serialization.SerializesAs)
		}
		return target, nil
	case SerializationMigrate:
		// The property is considered canonical; callers (the binary/xml
		// writers) treat it as replaced by NewPropertyName, which must
		// itself resolve to a canonical descriptor — spec §4.D step 2.
		m := canonical.Kind.Serialization.Migration
		replacement, err := db.Resolve(className, m.NewPropertyName)
		if err != nil {
			return nil, fmt.Errorf("reflection: %s.%s Migrate target %s: %w", className, canonical.Name, m.NewPropertyName, err)
		}
		if replacement.Canonical.Kind.IsAlias {
			return nil, fmt.Errorf("reflection: %s.%s Migrate target %s is an alias, must be canonical", className, canonical.Name, m.NewPropertyName)
		}
		return replacement.Serialized, nil
	default:
		return nil, fmt.Errorf("reflection: %s.%s: unknown serialization mode", className, canonical.Name)
	}
}
