package reflection

import (
	"fmt"

	"github.com/robloxapi/rbxdom"
	"gopkg.in/yaml.v3"
)

// patchFile is one YAML patch document's shape, ported from
// rbx_reflector/src/patches.rs's Patch/PropertyChange/Serialization.
// rename_all = "PascalCase" there is matched by the explicit PascalCase yaml
// tags on each field below.
type patchFile struct {
	Change map[string]map[string]patchPropertyChange `yaml:"Change"`
}

type patchPropertyChange struct {
	DataType      *patchDataType `yaml:"DataType"`
	AliasFor      *string        `yaml:"AliasFor"`
	Serialization *patchSerialization `yaml:"Serialization"`
	Scriptability *string        `yaml:"Scriptability"`
	DefaultValue  *patchValue    `yaml:"DefaultValue"`
}

type patchDataType struct {
	Value string `yaml:"Value"`
	Enum  string `yaml:"Enum"`
}

// patchSerialization models patches.rs's tagged `Serialization` enum: the
// YAML carries a `Type` discriminator (Serializes / DoesNotSerialize /
// SerializesAs / Migrate) plus mode-specific fields.
type patchSerialization struct {
	Type      string `yaml:"Type"`
	As        string `yaml:"As"`
	To        string `yaml:"To"`
	Migration string `yaml:"Migration"`
}

// patchValue is a loosely-typed default-value literal; since YAML alone
// can't disambiguate "this scalar is a Color3" from "this scalar is a
// string", DefaultValue patches here are restricted to the scalar Variant
// kinds the YAML maps to unambiguously (String/Content, Bool, numeric).
// Enum-typed properties are not supported: a string default for one is
// rejected, since enum item names are not looked up here. Anything else is
// rejected with an error naming what was attempted, rather than silently
// guessing.
type patchValue struct {
	raw interface{}
}

func (v *patchValue) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.raw)
}

// Patches holds the merged Change set from every patch file in a
// directory, applied to a Database in two phases. Ported from
// rbx_reflector's Patches.
type Patches struct {
	change map[string]map[string]patchPropertyChange
}

// LoadPatches parses every YAML document in docs (one per patch file,
// pre-read by the caller so this module never walks a directory itself —
// callers decide how patch files are discovered) and merges their Change
// maps, matching Patches::load's fs::read_dir + extend loop.
func LoadPatches(docs [][]byte) (*Patches, error) {
	merged := make(map[string]map[string]patchPropertyChange)
	for i, doc := range docs {
		var pf patchFile
		if err := yaml.Unmarshal(doc, &pf); err != nil {
			return nil, fmt.Errorf("reflection: parsing patch document %d: %w", i, err)
		}
		for class, props := range pf.Change {
			if merged[class] == nil {
				merged[class] = make(map[string]patchPropertyChange)
			}
			for prop, change := range props {
				merged[class][prop] = change
			}
		}
	}
	return &Patches{change: merged}, nil
}

// ApplyPreDefault rewrites property kind, scriptability, and data type on
// db per the loaded changes, rejecting changes with no net effect. Ported
// from Patches::apply_pre_default.
func (p *Patches) ApplyPreDefault(db *Database) error {
	for className, changes := range p.change {
		class, ok := db.Classes[className]
		if !ok {
			return fmt.Errorf("reflection: patch modifies unknown class %s", className)
		}
		for propName, change := range changes {
			prop, ok := class.Properties[propName]
			if !ok {
				return fmt.Errorf("reflection: patch modifies unknown property %s.%s", className, propName)
			}

			if change.DataType != nil {
				if change.DataType.Enum != "" {
					prop.DataType = DataType{Kind: rbxdom.TypeEnum, Enum: change.DataType.Enum}
				} else {
					t := rbxdom.TypeFromString(change.DataType.Value)
					if t == rbxdom.TypeInvalid {
						return fmt.Errorf("reflection: patch for %s.%s names unknown data type %q", className, propName, change.DataType.Value)
					}
					prop.DataType = DataType{Kind: t}
				}
			}

			if kind, ok, err := patchKind(className, propName, change); err != nil {
				return err
			} else if ok {
				if err := checkSerializationChanged(className, propName, prop.Kind, kind); err != nil {
					return err
				}
				prop.Kind = kind
			}

			if change.Scriptability != nil {
				s, err := scriptabilityFromString(*change.Scriptability)
				if err != nil {
					return fmt.Errorf("reflection: patch for %s.%s: %w", className, propName, err)
				}
				if s == prop.Scriptability {
					return fmt.Errorf("reflection: the scriptability for property %s.%s was unchanged", className, propName)
				}
				prop.Scriptability = s
			}
		}
	}
	return nil
}

func patchKind(className, propName string, change patchPropertyChange) (PropertyKind, bool, error) {
	switch {
	case change.AliasFor != nil && change.Serialization != nil:
		return PropertyKind{}, false, fmt.Errorf("reflection: %s.%s: property changes cannot specify both AliasFor and Serialization", className, propName)
	case change.AliasFor != nil:
		return PropertyKind{IsAlias: true, AliasFor: *change.AliasFor}, true, nil
	case change.Serialization != nil:
		ser, err := serializationFromPatch(*change.Serialization)
		if err != nil {
			return PropertyKind{}, false, fmt.Errorf("reflection: %s.%s: %w", className, propName, err)
		}
		return PropertyKind{Serialization: ser}, true, nil
	default:
		return PropertyKind{}, false, nil
	}
}

func serializationFromPatch(s patchSerialization) (Serialization, error) {
	switch s.Type {
	case "Serializes":
		return Serialization{Mode: SerializationSerializes}, nil
	case "DoesNotSerialize":
		return Serialization{Mode: SerializationDoesNotSerialize}, nil
	case "SerializesAs":
		return Serialization{Mode: SerializationSerializesAs, SerializesAs: s.As}, nil
	case "Migrate":
		op, err := migrationOperationFromString(s.Migration)
		if err != nil {
			return Serialization{}, err
		}
		return Serialization{Mode: SerializationMigrate, Migration: &PropertyMigration{
			NewPropertyName: s.To,
			Operation:       op,
		}}, nil
	default:
		return Serialization{}, fmt.Errorf("unknown Serialization Type %q", s.Type)
	}
}

func migrationOperationFromString(s string) (MigrationOperation, error) {
	switch s {
	case "IgnoreGuiInsetToScreenInsets":
		return MigrationIgnoreGuiInsetToScreenInsets, nil
	case "FontToFontFace":
		return MigrationFontToFontFace, nil
	case "BrickColorToColor":
		return MigrationBrickColorToColor, nil
	default:
		return 0, fmt.Errorf("unknown MigrationOperation %q", s)
	}
}

// checkSerializationChanged rejects a patch that sets a property's kind to
// a value it already carries, matching apply_pre_default's bail! on
// Serializes->Serializes and DoesNotSerialize->DoesNotSerialize.
func checkSerializationChanged(className, propName string, existing, next PropertyKind) error {
	if existing.IsAlias || next.IsAlias {
		return nil
	}
	if existing.Serialization.Mode == next.Serialization.Mode &&
		(next.Serialization.Mode == SerializationSerializes || next.Serialization.Mode == SerializationDoesNotSerialize) {
		return fmt.Errorf("reflection: the serialization for property %s.%s was unchanged", className, propName)
	}
	return nil
}

func scriptabilityFromString(s string) (Scriptability, error) {
	switch s {
	case "None":
		return ScriptabilityNone, nil
	case "Custom":
		return ScriptabilityCustom, nil
	case "Read":
		return ScriptabilityRead, nil
	case "ReadWrite":
		return ScriptabilityReadWrite, nil
	case "Write":
		return ScriptabilityWrite, nil
	default:
		return 0, fmt.Errorf("unknown Scriptability %q", s)
	}
}

// ApplyPostDefault injects each patch's DefaultValue into its class and
// every subclass, computed from a single inverted superclass map the way
// apply_post_default builds subclass_map once up front rather than
// re-walking Superclasses per class.
func (p *Patches) ApplyPostDefault(db *Database) error {
	subclasses := make(map[string][]string, len(db.Classes))
	for name, class := range db.Classes {
		chain, err := db.Superclasses(class)
		if err != nil {
			return err
		}
		for _, super := range chain {
			subclasses[super.Name] = append(subclasses[super.Name], name)
		}
	}

	for className, changes := range p.change {
		for propName, change := range changes {
			if change.DefaultValue == nil {
				continue
			}
			class, ok := db.Classes[className]
			if !ok {
				return fmt.Errorf("reflection: patch modifies unknown class %s", className)
			}
			prop := class.Properties[propName]
			value, err := defaultValueFromPatch(*change.DefaultValue, prop)
			if err != nil {
				return fmt.Errorf("reflection: %s.%s DefaultValue patch: %w", className, propName, err)
			}
			class.DefaultProperties[propName] = value
			for _, descendant := range subclasses[className] {
				db.Classes[descendant].DefaultProperties[propName] = value
			}
		}
	}
	return nil
}

// defaultValueFromPatch coerces a loosely-typed YAML scalar into the
// Variant the property's declared type expects.
func defaultValueFromPatch(pv patchValue, prop *PropertyDescriptor) (rbxdom.Variant, error) {
	t := rbxdom.TypeInvalid
	if prop != nil {
		t = prop.DataType.Kind
	}
	switch x := pv.raw.(type) {
	case string:
		switch t {
		case rbxdom.TypeContent:
			return rbxdom.Content{URI: x}, nil
		case rbxdom.TypeEnum:
			return nil, fmt.Errorf("enum default values must be given as a DataType.Enum name, not looked up here without the enum descriptor")
		default:
			return rbxdom.String(x), nil
		}
	case bool:
		return rbxdom.Bool(x), nil
	case int:
		return intDefault(t, int64(x)), nil
	case int64:
		return intDefault(t, x), nil
	case float64:
		if t == rbxdom.TypeFloat32 {
			return rbxdom.Float32(x), nil
		}
		return rbxdom.Float64(x), nil
	default:
		return nil, fmt.Errorf("unsupported DefaultValue literal %T", pv.raw)
	}
}

func intDefault(t rbxdom.Type, v int64) rbxdom.Variant {
	if t == rbxdom.TypeInt64 {
		return rbxdom.Int64(v)
	}
	return rbxdom.Int32(v)
}
