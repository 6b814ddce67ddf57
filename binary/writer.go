package binary

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/robloxapi/rbxdom"
)

// Encoder writes a rbxdom.WeakDom out as a chunked binary file. Ported from
// the teacher's rbxl.Encoder, generalized to run every instance's property
// set through a type-info discovery pass (typeinfo.go) before emitting any
// chunks, the way rbxl/codec.go's Encode does via NewValue-filled property
// unions.
type Encoder struct {
	Mode Mode
	// Uncompressed disables LZ4 compression of chunk payloads. Default
	// false (payloads are compressed); set true only for debugging (matches
	// rbxl.Encoder.Uncompressed).
	Uncompressed bool
	// Metadata, if non-empty, is written as a META chunk before the END
	// chunk.
	Metadata map[string]string
}

// Encode writes dom to w.
func (e Encoder) Encode(w io.Writer, dom *rbxdom.WeakDom) error {
	insts := dom.Descendants()
	info := discoverTypeInfo(insts)

	if _, err := w.Write([]byte(binaryHeader)); err != nil {
		return err
	}
	var versionBuf [2]byte
	binary.LittleEndian.PutUint16(versionBuf[:], 0)
	if _, err := w.Write(versionBuf[:]); err != nil {
		return err
	}

	var countBuf [16]byte
	binary.LittleEndian.PutUint32(countBuf[0:4], uint32(len(info.classes)))
	binary.LittleEndian.PutUint32(countBuf[4:8], uint32(len(insts)))
	// countBuf[8:16] is the reserved uint64, left zero.
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}

	indexOf := make(map[rbxdom.Ref]int32, len(insts))
	for i, inst := range insts {
		indexOf[inst.Ref()] = int32(i)
	}

	sstr := newSharedStringTable()

	classIDs := sortedClassNames(info.classes)
	for classID := 0; classID < len(classIDs); classID++ {
		className := classIDs[classID]
		if err := e.writeInstChunk(w, int32(classID), className, info.classes[className], indexOf); err != nil {
			return err
		}
	}
	// PROP chunks are buffered so the SSTR chunk they index into can be
	// written ahead of them.
	var props bytes.Buffer
	for classID := 0; classID < len(classIDs); classID++ {
		group := info.classes[classIDs[classID]]
		for _, propName := range sortedStrings(group.properties) {
			if err := e.writePropChunk(&props, int32(classID), propName, group, insts, indexOf, sstr); err != nil {
				return err
			}
		}
	}
	if len(sstr.entries) > 0 {
		if err := e.writeSstrChunk(w, sstr); err != nil {
			return err
		}
	}
	if _, err := w.Write(props.Bytes()); err != nil {
		return err
	}
	if err := e.writePrntChunk(w, insts, dom, indexOf); err != nil {
		return err
	}
	if len(e.Metadata) > 0 {
		if err := e.writeMetaChunk(w); err != nil {
			return err
		}
	}
	return e.writeEndChunk(w)
}

func sortedClassNames(classes map[string]*classGroup) map[int]string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make(map[int]string, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func sortedStrings(set map[string]rbxdom.Type) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (e Encoder) writeInstChunk(w io.Writer, classID int32, className string, group *classGroup, indexOf map[rbxdom.Ref]int32) error {
	var payload bytes.Buffer
	var idBuf [4]byte
	binary.BigEndian.PutUint32(idBuf[:], uint32(classID))
	payload.Write(idBuf[:])
	writeLString(&payload, className)

	// Every instance is written with Instance.new() semantics; game:GetService()
	// framing is a Studio authoring affordance this module doesn't model.
	payload.WriteByte(0)

	indices := make([]int32, len(group.instances))
	for i, inst := range group.instances {
		indices[i] = indexOf[inst.Ref()]
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(indices)))
	payload.Write(lenBuf[:])

	raw := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.BigEndian.PutUint32(raw[i*4:], encodeZigzag(idx))
	}
	interleave(raw, 4)
	payload.Write(raw)

	return writeRawChunk(w, sigINST, payload.Bytes(), !e.Uncompressed)
}

func (e Encoder) writePropChunk(w io.Writer, classID int32, propName string, group *classGroup, insts []*rbxdom.Instance, indexOf map[rbxdom.Ref]int32, sstr *sharedStringTable) error {
	t := group.properties[propName]
	wt, ok := wireTypeFor(t)
	if !ok {
		return nil // carried only through JSON/XML, not the binary format; see DESIGN.md.
	}

	values := make([]rbxdom.Variant, len(group.instances))
	for i, inst := range group.instances {
		v, ok := inst.Get(propName)
		if !ok {
			v = rbxdom.NewValue(t)
		} else if v.Type() != t {
			if coerced, ok := rbxdom.Convert(v, t); ok {
				v = coerced
			} else {
				v = rbxdom.NewValue(t)
			}
		}
		if ref, ok := v.(rbxdom.Ref); ok {
			if ref.IsNull() {
				values[i] = refIndex{index: -1}
			} else {
				values[i] = refIndex{index: indexOf[ref]}
			}
			continue
		}
		values[i] = v
	}

	body, err := encodeArray(t, values, sstr)
	if err != nil {
		return err
	}

	var payload bytes.Buffer
	var idBuf [4]byte
	binary.BigEndian.PutUint32(idBuf[:], uint32(classID))
	payload.Write(idBuf[:])
	writeLString(&payload, propName)
	payload.WriteByte(byte(wt))
	payload.Write(body)

	return writeRawChunk(w, sigPROP, payload.Bytes(), !e.Uncompressed)
}

func (e Encoder) writePrntChunk(w io.Writer, insts []*rbxdom.Instance, dom *rbxdom.WeakDom, indexOf map[rbxdom.Ref]int32) error {
	n := len(insts)
	children := make([]int32, n)
	parents := make([]int32, n)
	for i, inst := range insts {
		children[i] = indexOf[inst.Ref()]
		if p := dom.Parent(inst); p != nil {
			parents[i] = indexOf[p.Ref()]
		} else {
			parents[i] = -1
		}
	}

	var payload bytes.Buffer
	payload.WriteByte(0) // version
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(n))
	payload.Write(countBuf[:])
	payload.Write(encodeDeltaRefBytes(children))
	payload.Write(encodeDeltaRefBytes(parents))

	return writeRawChunk(w, sigPRNT, payload.Bytes(), !e.Uncompressed)
}

func encodeDeltaRefBytes(vals []int32) []byte {
	deltas := deltaEncodeRefs(vals)
	b := make([]byte, len(deltas)*4)
	for i, d := range deltas {
		binary.BigEndian.PutUint32(b[i*4:], encodeZigzag(d))
	}
	interleave(b, 4)
	return b
}

func (e Encoder) writeSstrChunk(w io.Writer, sstr *sharedStringTable) error {
	var payload bytes.Buffer
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], 0) // version
	binary.BigEndian.PutUint32(header[4:8], uint32(len(sstr.entries)))
	payload.Write(header[:])
	for _, ss := range sstr.entries {
		payload.Write(ss.Hash[:])
		writeLString(&payload, string(ss.Data))
	}
	return writeRawChunk(w, sigSSTR, payload.Bytes(), !e.Uncompressed)
}

func (e Encoder) writeMetaChunk(w io.Writer) error {
	var payload bytes.Buffer
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(e.Metadata)))
	payload.Write(countBuf[:])
	for _, key := range sortedMapKeys(e.Metadata) {
		writeLString(&payload, key)
		writeLString(&payload, e.Metadata[key])
	}
	return writeRawChunk(w, sigMETA, payload.Bytes(), !e.Uncompressed)
}

func sortedMapKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (e Encoder) writeEndChunk(w io.Writer) error {
	return writeRawChunk(w, sigEND, []byte("</roblox>"), false)
}

func writeLString(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}
