package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/anaminus/parse"
	"github.com/robloxapi/rbxdom"
)

// Decoder reads the chunked binary format into a rbxdom.WeakDom. It mirrors
// the teacher's rbxl.Decoder: a small struct of options plus a Decode
// entrypoint. The fixed file header is read with github.com/anaminus/parse's
// BinaryReader; the chunk loop reads each chunk with plain io.Reader calls
// and decodes its payload from an in-memory byte slice.
type Decoder struct {
	Mode Mode
	// Strict makes any chunk decode failure fatal. By default a failing
	// chunk is recorded as a Warning and skipped, matching rbxl/decoder.go's
	// non-strict version0 loop.
	Strict bool
	// Warnings collects non-fatal problems encountered during the last
	// Decode call.
	Warnings []error
	// Metadata collects the file's META chunk key/value pairs, populated by
	// Decode.
	Metadata map[string]string
}

// Decode parses r as a binary place/model file.
func (d *Decoder) Decode(r io.Reader) (*rbxdom.WeakDom, error) {
	d.Warnings = nil
	fr := parse.NewBinaryReader(r)

	var header [len(binaryHeader)]byte
	if fr.Bytes(header[:]) {
		return nil, fmt.Errorf("binary: %w", fr.Err())
	}
	if string(header[:]) != binaryHeader {
		return nil, errCorruptHeader
	}

	var version uint16
	if fr.Number(&version) {
		return nil, fmt.Errorf("binary: %w", fr.Err())
	}
	if version != 0 {
		return nil, errUnrecognizedVersion(version)
	}

	var classCount, instanceCount uint32
	if fr.Number(&classCount) {
		return nil, fmt.Errorf("binary: %w", fr.Err())
	}
	if fr.Number(&instanceCount) {
		return nil, fmt.Errorf("binary: %w", fr.Err())
	}
	var reserved uint64
	if fr.Number(&reserved) {
		return nil, fmt.Errorf("binary: %w", fr.Err())
	}

	dec := &decodeState{
		dom:               rbxdom.NewWeakDom(),
		groups:            make(map[int32]*instanceGroup),
		sstr:              newSharedStringTable(),
		byIndex:           make(map[int32]*rbxdom.Instance),
		d:                 d,
		classCount:        classCount,
		expectedInstances: instanceCount,
	}

loop:
	for {
		raw, err := nextChunk(r)
		if err != nil {
			if err == io.EOF {
				break loop
			}
			return nil, fmt.Errorf("binary: %w", err)
		}

		if err := dec.handleChunk(raw); err != nil {
			if d.Strict {
				return nil, fmt.Errorf("binary: chunk %q: %w", raw.signature, err)
			}
			d.Warnings = append(d.Warnings, fmt.Errorf("chunk %q: %w", raw.signature, err))
		}

		if raw.signature == sigEND {
			break loop
		}
	}

	dec.resolveParents()
	if uint32(len(dec.byIndex)) != dec.expectedInstances {
		d.Warnings = append(d.Warnings, fmt.Errorf(
			"binary: header declared %d instances, found %d", dec.expectedInstances, len(dec.byIndex)))
	}
	if uint32(len(dec.groups)) != dec.classCount {
		d.Warnings = append(d.Warnings, fmt.Errorf(
			"binary: header declared %d classes, found %d", dec.classCount, len(dec.groups)))
	}
	return dec.dom, nil
}

// nextChunk reads one rawChunk from r, returning io.EOF once the stream
// ends cleanly between chunks (as opposed to mid-chunk, which is an error).
func nextChunk(r io.Reader) (rawChunk, error) {
	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return rawChunk{}, io.EOF
	}
	return readRawChunk(io.MultiReader(bytes.NewReader(probe[:]), r))
}

// decodeState accumulates the pieces of a WeakDom as chunks arrive: classes
// before their properties, properties before their parents (PRNT is always
// the chunk after every PROP chunk in practice, but the format does not
// guarantee this, so everything is resolved at the end via byIndex).
type decodeState struct {
	dom               *rbxdom.WeakDom
	groups            map[int32]*instanceGroup
	sstr              *sharedStringTable
	byIndex           map[int32]*rbxdom.Instance
	parentOf          map[int32]int32
	childOrder        []int32
	d                 *Decoder
	classCount        uint32
	expectedInstances uint32
}

// instanceGroup is one class's worth of instances, as declared by an INST
// chunk, ported from rbxl/model.go's chunkInstance.
type instanceGroup struct {
	className string
	indices   []int32
	isService bool
	getService []byte
}

func (dec *decodeState) handleChunk(raw rawChunk) error {
	switch raw.signature {
	case sigINST:
		return dec.handleInst(raw.payload)
	case sigPROP:
		return dec.handleProp(raw.payload)
	case sigPRNT:
		return dec.handlePrnt(raw.payload)
	case sigSSTR:
		return dec.handleSstr(raw.payload)
	case sigMETA:
		return dec.handleMeta(raw.payload)
	case sigEND:
		return nil
	default:
		return nil
	}
}

func (dec *decodeState) handleInst(payload []byte) error {
	if len(payload) < 4 {
		return fmt.Errorf("truncated INST chunk")
	}
	classID := int32(binary.BigEndian.Uint32(payload[0:4]))
	payload = payload[4:]
	className, payload, err := readLString(payload)
	if err != nil {
		return err
	}
	if len(payload) < 1 {
		return fmt.Errorf("truncated INST chunk")
	}
	isService := payload[0] != 0
	payload = payload[1:]
	if len(payload) < 4 {
		return fmt.Errorf("truncated INST chunk")
	}
	groupLength := int(binary.BigEndian.Uint32(payload[0:4]))
	payload = payload[4:]

	if len(payload) < groupLength*4 {
		return fmt.Errorf("truncated INST chunk instance array")
	}
	raw := append([]byte(nil), payload[:groupLength*4]...)
	deinterleave(raw, 4)
	indices := make([]int32, groupLength)
	for i := range indices {
		indices[i] = decodeZigzag(binary.BigEndian.Uint32(raw[i*4:]))
	}
	payload = payload[groupLength*4:]

	group := &instanceGroup{className: className, indices: indices, isService: isService}
	if isService {
		if len(payload) < groupLength {
			return fmt.Errorf("truncated INST chunk service flags")
		}
		group.getService = append([]byte(nil), payload[:groupLength]...)
	}
	dec.groups[classID] = group

	for _, idx := range indices {
		inst := dec.dom.NewInstance(className)
		dec.byIndex[idx] = inst
	}
	return nil
}

func (dec *decodeState) handleProp(payload []byte) error {
	if len(payload) < 4 {
		return fmt.Errorf("truncated PROP chunk")
	}
	classID := int32(binary.BigEndian.Uint32(payload[0:4]))
	payload = payload[4:]
	group, ok := dec.groups[classID]
	if !ok {
		return errUnknownClassID(classID)
	}
	propName, payload, err := readLString(payload)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if len(payload) < 1 {
		return fmt.Errorf("truncated PROP chunk type tag")
	}
	wt := wireType(payload[0])
	payload = payload[1:]

	t, ok := rbxdomTypeFor(wt)
	if !ok {
		return fmt.Errorf("unknown wire type 0x%X", byte(wt))
	}

	values, err := decodeArray(t, payload, len(group.indices), dec.sstr)
	if err != nil {
		return err
	}
	for i, idx := range group.indices {
		inst := dec.byIndex[idx]
		if inst == nil {
			continue
		}
		v := values[i]
		if ri, ok := v.(refIndex); ok {
			v = dec.resolveRefIndex(ri)
		}
		inst.Set(propName, v)
	}
	return nil
}

func (dec *decodeState) resolveRefIndex(ri refIndex) rbxdom.Variant {
	if ri.index < 0 {
		return rbxdom.NilRef
	}
	if inst := dec.byIndex[ri.index]; inst != nil {
		return inst.Ref()
	}
	return rbxdom.NilRef
}

func (dec *decodeState) handlePrnt(payload []byte) error {
	if len(payload) < 1 {
		return fmt.Errorf("truncated PRNT chunk")
	}
	payload = payload[1:] // version byte
	if len(payload) < 4 {
		return fmt.Errorf("truncated PRNT chunk")
	}
	count := int(binary.BigEndian.Uint32(payload[0:4]))
	payload = payload[4:]
	if len(payload) < count*8 {
		return errMismatchedPRNT
	}
	children := append([]byte(nil), payload[:count*4]...)
	deinterleave(children, 4)
	parents := append([]byte(nil), payload[count*4:count*8]...)
	deinterleave(parents, 4)

	dec.parentOf = make(map[int32]int32, count)
	var prevChild, prevParent int32
	for i := 0; i < count; i++ {
		child := prevChild + decodeZigzag(binary.BigEndian.Uint32(children[i*4:]))
		parent := prevParent + decodeZigzag(binary.BigEndian.Uint32(parents[i*4:]))
		prevChild, prevParent = child, parent
		dec.parentOf[child] = parent
		dec.childOrder = append(dec.childOrder, child)
	}
	return nil
}

// handleMeta reads the META chunk's key/value pairs (arbitrary file
// metadata such as ExplicitAutoJoints) into Decoder.Metadata, ported from
// rbxl/model.go's chunkMeta.
func (dec *decodeState) handleMeta(payload []byte) error {
	if len(payload) < 4 {
		return fmt.Errorf("truncated META chunk")
	}
	count := int(binary.LittleEndian.Uint32(payload))
	payload = payload[4:]
	if dec.d.Metadata == nil {
		dec.d.Metadata = make(map[string]string, count)
	}
	for i := 0; i < count; i++ {
		key, rest, err := readLString(payload)
		if err != nil {
			return err
		}
		payload = rest
		value, rest, err := readLString(payload)
		if err != nil {
			return err
		}
		payload = rest
		dec.d.Metadata[key] = value
	}
	return nil
}

func (dec *decodeState) handleSstr(payload []byte) error {
	if len(payload) < 8 {
		return fmt.Errorf("truncated SSTR chunk")
	}
	payload = payload[4:] // version
	count := int(binary.BigEndian.Uint32(payload[0:4]))
	payload = payload[4:]
	for i := 0; i < count; i++ {
		if len(payload) < 16 {
			return fmt.Errorf("truncated SSTR entry")
		}
		var hash rbxdom.SharedStringHash
		copy(hash[:], payload[:16])
		payload = payload[16:]
		data, rest, err := readLString(payload)
		if err != nil {
			return err
		}
		payload = rest
		dec.sstr.entries = append(dec.sstr.entries, rbxdom.SharedString{Hash: hash, Data: []byte(data)})
		dec.sstr.index[hash] = int32(i)
	}
	return nil
}

// resolveParents applies the PRNT chunk's child->parent edges to the dom,
// using -1 to mean "root" the way the real format does for DataModel-level
// instances.
func (dec *decodeState) resolveParents() {
	for _, child := range dec.childOrder {
		inst := dec.byIndex[child]
		if inst == nil {
			continue
		}
		parentIdx := dec.parentOf[child]
		if parentIdx < 0 {
			dec.dom.SetParent(inst, nil)
			continue
		}
		parent := dec.byIndex[parentIdx]
		dec.dom.SetParent(inst, parent)
	}
}

// readLString reads a uint32-length-prefixed string, little-endian, the way
// rbxl/model.go's readString does.
func readLString(b []byte) (string, []byte, error) {
	if len(b) < 4 {
		return "", nil, fmt.Errorf("truncated length-prefixed string")
	}
	n := int(binary.LittleEndian.Uint32(b))
	b = b[4:]
	if len(b) < n {
		return "", nil, fmt.Errorf("truncated length-prefixed string")
	}
	return string(b[:n]), b[n:], nil
}
