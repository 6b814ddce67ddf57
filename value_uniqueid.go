package rbxdom

import (
	"encoding/binary"
)

// UniqueId is a 128-bit globally-unique instance identifier (distinct from
// Ref: a Ref is only unique within one WeakDom's lifetime, a UniqueId is
// meant to stay stable across saves). Wire layout per spec §6: a 32-bit
// "index" counter, a 32-bit process-random seed, and a 64-bit time
// component, packed together and then rotated left by one bit as a whole
// 128-bit value (mirroring the single-bit rotation trick the binary format
// already uses for float32 in rbxl/arrays.go's encodeRobloxFloat).
type UniqueId struct {
	Index  uint32
	Random uint32
	Time   uint64
}

func (UniqueId) Type() Type      { return TypeUniqueId }
func (v UniqueId) Copy() Variant { return v }

// Bytes packs u into its 16-byte unrotated form: Index, Random, Time, all
// big-endian (matching the binary format's big-endian integer convention
// for fixed-width header fields, e.g. ChunkCount/InstanceCount).
func (u UniqueId) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], u.Index)
	binary.BigEndian.PutUint32(b[4:8], u.Random)
	binary.BigEndian.PutUint64(b[8:16], u.Time)
	return b
}

// UniqueIdFromBytes unpacks the 16-byte unrotated form produced by Bytes.
func UniqueIdFromBytes(b [16]byte) UniqueId {
	return UniqueId{
		Index:  binary.BigEndian.Uint32(b[0:4]),
		Random: binary.BigEndian.Uint32(b[4:8]),
		Time:   binary.BigEndian.Uint64(b[8:16]),
	}
}

// rotateLeft128 rotates a 16-byte big-endian value left by n bits, treating
// b as one big 128-bit integer.
func rotateLeft128(b [16]byte, n uint) [16]byte {
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])
	n %= 128
	if n == 0 {
		return b
	}
	var newHi, newLo uint64
	if n < 64 {
		newHi = (hi << n) | (lo >> (64 - n))
		newLo = (lo << n) | (hi >> (64 - n))
	} else {
		m := n - 64
		newHi = (lo << m) | (hi >> (64 - m))
		newLo = (hi << m) | (lo >> (64 - m))
	}
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], newHi)
	binary.BigEndian.PutUint64(out[8:16], newLo)
	return out
}

// EncodeUniqueId returns the wire form of u: its 16-byte packing, rotated
// left by one bit.
func EncodeUniqueId(u UniqueId) [16]byte {
	return rotateLeft128(u.Bytes(), 1)
}

// DecodeUniqueId parses the wire form produced by EncodeUniqueId.
func DecodeUniqueId(b [16]byte) UniqueId {
	return UniqueIdFromBytes(rotateLeft128(b, 127))
}
