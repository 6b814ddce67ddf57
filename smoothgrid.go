package rbxdom

import "encoding/binary"

// SmoothGridCell is one voxel of a Terrain.SmoothGrid chunk: a material and
// an occupancy fraction in [0,255] (0 = empty, 255 = fully solid).
type SmoothGridCell struct {
	Material  TerrainMaterial
	Occupancy uint8
}

// SmoothGridChunk is one 4x4x4-voxel region of terrain, keyed by its
// integer chunk-space position. This is a supplemented feature (not in the
// distilled spec but present in the original implementation; see
// SPEC_FULL.md §C.1), grounded on
// original_source/rbx_types/src/terrain/smooth_grid.rs's delta-coded
// chunk-position + run-length voxel payload shape.
type SmoothGridChunk struct {
	Position Region3int16
	Cells    [64]SmoothGridCell // 4x4x4, X-major then Y then Z
}

// EncodeSmoothGrid serializes a sequence of chunks into the SmoothGrid
// binary property payload: a chunk count, then per chunk a 6-byte position
// (3 big-endian int16 min corner, stored as absolute values, not
// delta-coded) followed by a run-length-encoded voxel stream (material
// byte, occupancy byte, one-byte repeat count of at most 255).
func EncodeSmoothGrid(chunks []SmoothGridChunk) []byte {
	var buf []byte
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(chunks)))
	buf = append(buf, countBuf[:]...)
	for _, c := range chunks {
		var posBuf [6]byte
		binary.BigEndian.PutUint16(posBuf[0:2], uint16(c.Position.Min.X))
		binary.BigEndian.PutUint16(posBuf[2:4], uint16(c.Position.Min.Y))
		binary.BigEndian.PutUint16(posBuf[4:6], uint16(c.Position.Min.Z))
		buf = append(buf, posBuf[:]...)

		i := 0
		for i < len(c.Cells) {
			cell := c.Cells[i]
			run := 1
			for i+run < len(c.Cells) && c.Cells[i+run] == cell && run < 255 {
				run++
			}
			buf = append(buf, byte(cell.Material), cell.Occupancy, byte(run))
			i += run
		}
	}
	return buf
}

// DecodeSmoothGrid parses the payload produced by EncodeSmoothGrid.
func DecodeSmoothGrid(b []byte) ([]SmoothGridChunk, error) {
	if len(b) < 4 {
		return nil, errTruncated("SmoothGrid", 4, len(b))
	}
	count := binary.LittleEndian.Uint32(b[0:4])
	pos := 4
	out := make([]SmoothGridChunk, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+6 > len(b) {
			return nil, errTruncated("SmoothGrid chunk header", 6, len(b)-pos)
		}
		var chunk SmoothGridChunk
		minX := int16(binary.BigEndian.Uint16(b[pos : pos+2]))
		minY := int16(binary.BigEndian.Uint16(b[pos+2 : pos+4]))
		minZ := int16(binary.BigEndian.Uint16(b[pos+4 : pos+6]))
		chunk.Position = Region3int16{
			Min: Vector3int16{minX, minY, minZ},
			Max: Vector3int16{minX + 3, minY + 3, minZ + 3},
		}
		pos += 6

		filled := 0
		for filled < len(chunk.Cells) {
			if pos+3 > len(b) {
				return nil, errTruncated("SmoothGrid run", 3, len(b)-pos)
			}
			cell := SmoothGridCell{Material: TerrainMaterial(b[pos]), Occupancy: b[pos+1]}
			run := int(b[pos+2])
			pos += 3
			for j := 0; j < run && filled < len(chunk.Cells); j++ {
				chunk.Cells[filled] = cell
				filled++
			}
		}
		out = append(out, chunk)
	}
	return out, nil
}
