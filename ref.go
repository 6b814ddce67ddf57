package rbxdom

import (
	"encoding/hex"

	uuid "github.com/satori/go.uuid"
)

// Ref is an opaque referent identifying an Instance within a WeakDom. The
// zero Ref is the null referent: it never identifies a live instance and is
// the value a Ref-typed property holds when it points at nothing.
//
// Ref has value semantics and is comparable, so it can be used directly as
// a map key by a WeakDom's instance arena; this is the generalization of
// the teacher's string-keyed Reference into a fixed-size opaque identity
// (see DESIGN.md).
type Ref [16]byte

// NilRef is the null referent.
var NilRef Ref

// IsNull reports whether r is the null referent.
func (r Ref) IsNull() bool {
	return r == NilRef
}

// NewRef mints a fresh, non-null Ref. Collisions are astronomically
// unlikely (128 bits of UUIDv4 entropy), matching the teacher's approach
// in file.go's NewInstance of minting a UUID-backed identity per instance.
func NewRef() Ref {
	id := uuid.NewV4()
	var r Ref
	copy(r[:], id.Bytes())
	return r
}

// String renders r as a hyphenated hex string, e.g.
// "748ee3ec-3e7f-4392-8ad4-5255de8b5b2e". The null referent renders as all
// zeros.
func (r Ref) String() string {
	var buf [36]byte
	hex.Encode(buf[0:8], r[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], r[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], r[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], r[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], r[10:16])
	return string(buf[:])
}

// Type implements Variant.
func (r Ref) Type() Type { return TypeRef }

// Copy implements Variant.
func (r Ref) Copy() Variant { return r }
