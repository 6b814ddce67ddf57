package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	lz4 "github.com/bkaradzic/go-lz4"
)

// rawChunk is one length-prefixed, optionally LZ4-compressed section of a
// binary file: a 4-byte signature, a compressed length, a decompressed
// length, a reserved uint32, then the (possibly compressed) payload.
// Ported from the teacher's rbxl/model.go rawChunk.
type rawChunk struct {
	signature [4]byte
	payload   []byte
}

// readRawChunk reads one chunk header and payload from r, decompressing it
// if the stored compressed length is nonzero.
func readRawChunk(r io.Reader) (rawChunk, error) {
	var c rawChunk
	var header [16]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return c, fmt.Errorf("read chunk header: %w", err)
	}
	copy(c.signature[:], header[0:4])
	compressedLength := binary.LittleEndian.Uint32(header[4:8])
	decompressedLength := binary.LittleEndian.Uint32(header[8:12])
	// header[12:16] is reserved.

	c.payload = make([]byte, decompressedLength)
	if compressedLength == 0 {
		if _, err := io.ReadFull(r, c.payload); err != nil {
			return c, fmt.Errorf("read chunk %q payload: %w", c.signature, err)
		}
		return c, nil
	}

	compressed := make([]byte, compressedLength+4)
	binary.LittleEndian.PutUint32(compressed, decompressedLength)
	if _, err := io.ReadFull(r, compressed[4:]); err != nil {
		return c, fmt.Errorf("read chunk %q payload: %w", c.signature, err)
	}
	if _, err := lz4.Decode(c.payload, compressed); err != nil {
		return c, fmt.Errorf("lz4 decode chunk %q: %w", c.signature, err)
	}
	return c, nil
}

// writeRawChunk writes a chunk's header and payload to w, LZ4-compressing
// the payload unless compress is false.
func writeRawChunk(w io.Writer, signature [4]byte, payload []byte, compress bool) error {
	var header [16]byte
	copy(header[0:4], signature[:])

	body := payload
	compressedLength := uint32(0)
	if compress {
		var out []byte
		out, err := lz4.Encode(out, payload)
		if err != nil {
			return fmt.Errorf("lz4 encode chunk %q: %w", signature, err)
		}
		// lz4.Encode prefixes the encoded data with the uncompressed
		// length, which the file format stores separately; strip it.
		body = out[4:]
		compressedLength = uint32(len(body))
	}

	binary.LittleEndian.PutUint32(header[4:8], compressedLength)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
