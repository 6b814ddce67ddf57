package reflection

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/robloxapi/rbxdom"
)

// dumpRoot is Studio's "Mini API Dump" JSON schema: a flat Classes list
// (each carrying its own Superclass name rather than a nested tree) and an
// Enums list. There is no published Go module for this bespoke schema (see
// DESIGN.md), so the shape is declared here and decoded with encoding/json
// the way the teacher's own rbxl/rbxlx packages use stdlib json for their
// on-disk formats.
type dumpRoot struct {
	Classes []dumpClass `json:"Classes"`
	Enums   []dumpEnum  `json:"Enums"`
}

type dumpClass struct {
	Name       string       `json:"Name"`
	Superclass string       `json:"Superclass"`
	Members    []dumpMember `json:"Members"`
	Tags       []string     `json:"Tags"`
}

type dumpMember struct {
	MemberType    string             `json:"MemberType"`
	Name          string             `json:"Name"`
	ValueType     *dumpValueType     `json:"ValueType,omitempty"`
	Serialization *dumpSerialization `json:"Serialization,omitempty"`
	Tags          []string           `json:"Tags"`
}

type dumpValueType struct {
	Category string `json:"Category"` // "Primitive", "DataType", "Enum", "Class"
	Name     string `json:"Name"`
}

type dumpSerialization struct {
	CanLoad bool `json:"CanLoad"`
	CanSave bool `json:"CanSave"`
}

type dumpEnum struct {
	Name  string         `json:"Name"`
	Items []dumpEnumItem `json:"Items"`
}

type dumpEnumItem struct {
	Name  string `json:"Name"`
	Value uint32 `json:"Value"`
}

// LoadDump parses a Studio API dump and returns a freshly populated
// Database with no patches applied yet and no defaults loaded. Ported from
// rbx_reflector's generate.rs dump-loading step, simplified to skip
// callbacks/events/functions (this module only round-trips property data).
func LoadDump(r io.Reader) (*Database, error) {
	var root dumpRoot
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("reflection: decoding api dump: %w", err)
	}

	db := newDatabase()
	for _, de := range root.Enums {
		ed := newEnumDescriptor(de.Name)
		for _, item := range de.Items {
			ed.add(item.Name, item.Value)
		}
		db.Enums[de.Name] = ed
	}

	for _, dc := range root.Classes {
		if hasTag(dc.Tags, "Deprecated") {
			continue
		}
		superclass := dc.Superclass
		if superclass == "<<<ROOT>>>" {
			// The dump marks the top of the class tree (normally just
			// "Instance") with this sentinel instead of an empty string.
			superclass = ""
		}
		class := newClassDescriptor(dc.Name, superclass)
		for _, m := range dc.Members {
			if m.MemberType != "Property" {
				continue
			}
			if hasTag(m.Tags, "Deprecated") || hasTag(m.Tags, "NotScriptable") {
				continue
			}
			prop, err := dumpPropertyDescriptor(m)
			if err != nil {
				return nil, fmt.Errorf("reflection: %s.%s: %w", dc.Name, m.Name, err)
			}
			class.Properties[m.Name] = prop
		}
		db.Classes[dc.Name] = class
	}

	return db, nil
}

func hasTag(tags []string, name string) bool {
	for _, t := range tags {
		if t == name {
			return true
		}
	}
	return false
}

func dumpPropertyDescriptor(m dumpMember) (*PropertyDescriptor, error) {
	dt, err := dumpDataType(m.ValueType)
	if err != nil {
		return nil, err
	}

	scriptability := ScriptabilityReadWrite
	if hasTag(m.Tags, "ReadOnly") {
		scriptability = ScriptabilityRead
	}

	serialization := Serialization{Mode: SerializationDoesNotSerialize}
	if m.Serialization != nil && (m.Serialization.CanLoad || m.Serialization.CanSave) {
		serialization = Serialization{Mode: SerializationSerializes}
	}

	return &PropertyDescriptor{
		Name:          m.Name,
		DataType:      dt,
		Kind:          PropertyKind{Serialization: serialization},
		Scriptability: scriptability,
	}, nil
}

func dumpDataType(vt *dumpValueType) (DataType, error) {
	if vt == nil {
		return DataType{}, fmt.Errorf("property has no ValueType")
	}
	if vt.Category == "Enum" {
		return DataType{Kind: rbxdom.TypeEnum, Enum: vt.Name}, nil
	}
	t := rbxdom.TypeFromString(normalizeDumpTypeName(vt.Name))
	if t == rbxdom.TypeInvalid {
		return DataType{}, fmt.Errorf("unrecognized ValueType %q", vt.Name)
	}
	return DataType{Kind: t}, nil
}

// normalizeDumpTypeName maps a handful of dump type spellings that don't
// match this module's Type.String names one-to-one (the dump calls signed
// 32-bit "int" and 64-bit "int64", BinaryString-like blobs "BinaryString",
// etc.) onto the names TypeFromString recognizes.
func normalizeDumpTypeName(name string) string {
	switch name {
	case "int":
		return "Int32"
	case "int64":
		return "Int64"
	case "float":
		return "Float32"
	case "double":
		return "Float64"
	case "string":
		return "String"
	case "bool":
		return "Bool"
	default:
		return name
	}
}
