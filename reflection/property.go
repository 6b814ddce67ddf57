package reflection

import "github.com/robloxapi/rbxdom"

// Scriptability mirrors rbx_reflection's Scriptability: whether Lua scripts
// running in-engine can read/write the property. This module's codecs don't
// enforce it (there's no script sandbox here) but it's carried through the
// dump/patch pipeline since patches.rs's apply_pre_default edits it, and a
// future consumer (e.g. a property-browser UI) would want it.
type Scriptability byte

const (
	ScriptabilityNone Scriptability = iota
	ScriptabilityCustom
	ScriptabilityRead
	ScriptabilityReadWrite
	ScriptabilityWrite
)

// DataType is a property's declared shape: either a plain Variant type, or
// an enum referenced by name (resolved against Database.Enums lazily, the
// way resolution.rs's RbxPropertyTypeDescriptor::Enum(name) defers the
// lookup instead of embedding a pointer, since Go structs populated during
// JSON/YAML decode can't easily hold forward references to each other).
type DataType struct {
	Kind   rbxdom.Type
	Enum   string // non-empty when Kind == TypeEnum and this resolves to a named enum
}

// PropertyKind is the serialization role of a property descriptor, ported
// from rbx_reflection's PropertyKind: either the canonical storage for a
// value, or an alias pointing at another property on the same class.
type PropertyKind struct {
	IsAlias       bool
	AliasFor      string // set when IsAlias
	Serialization Serialization
}

// Serialization describes how a canonical property round-trips to disk,
// ported from rbx_reflection's PropertySerialization.
type Serialization struct {
	Mode SerializationMode

	// SerializesAs holds the target property name when Mode ==
	// SerializationSerializesAs.
	SerializesAs string

	// Migration holds the migration descriptor when Mode ==
	// SerializationMigrate.
	Migration *PropertyMigration
}

type SerializationMode byte

const (
	SerializationSerializes SerializationMode = iota
	SerializationDoesNotSerialize
	SerializationSerializesAs
	SerializationMigrate
)

// PropertyDescriptor is one property on one class: its data type, kind
// (canonical/alias), and scriptability. Default values are held on the
// owning ClassDescriptor's DefaultProperties, not here. Ported from
// rbx_reflection's RbxPropertyDescriptor / PropertyDescriptor.
type PropertyDescriptor struct {
	Name          string
	DataType      DataType
	Kind          PropertyKind
	Scriptability Scriptability
}
