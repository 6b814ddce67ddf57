// Package binary implements the chunked, LZ4-compressed, column-oriented
// binary codec for .rbxm/.rbxl files (spec Component E), adapted wholesale
// from the teacher's rbxl package (model.go/arrays.go/cframe.go/codec.go/
// decoder.go/encoder.go/values.go — the teacher's complete, authoritative
// binary codec, as opposed to the read-only/incomplete bin package; see
// DESIGN.md). The package does not consult a reflection.Database: property
// names are written and read exactly as stored on each instance, no alias
// or migration is applied, and each property's type is the first one seen
// on an instance of its class.
package binary

// Mode indicates whether a file is a place (.rbxl, may contain multiple
// DataModel-rooted services) or a model (.rbxm, an arbitrary instance
// forest), mirroring the teacher's rbxl.Mode.
type Mode byte

const (
	ModePlace Mode = iota
	ModeModel
)

const (
	robloxSig    = "<roblox!"
	binaryMarker = "\x89\xff\r\n\x1a\n"
	binaryHeader = robloxSig + binaryMarker
)

// Chunk signatures, stored little-endian the way the teacher's rbxl/model.go
// stores them (e.g. sigMETA, sigSSTR).
var (
	sigINST = [4]byte{'I', 'N', 'S', 'T'}
	sigPROP = [4]byte{'P', 'R', 'O', 'P'}
	sigPRNT = [4]byte{'P', 'R', 'N', 'T'}
	sigMETA = [4]byte{'M', 'E', 'T', 'A'}
	sigSSTR = [4]byte{'S', 'S', 'T', 'R'}
	sigEND  = [4]byte{'E', 'N', 'D', 0}
)
