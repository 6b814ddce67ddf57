// Package xml implements the Roblox XML place/model file format (spec
// Components G and H): a DOM walk over xml/document.go's Tag/Document
// tokenizer, mapped onto rbxdom.WeakDom/Variant the same way the binary
// package's reader.go/writer.go map the chunked binary format onto the same
// types. document.go is kept essentially as the teacher wrote it (it never
// imported rbxfile/rbxapi to begin with); codec.go replaces the teacher's
// RobloxCodec, which decoded into rbxfile.Instance/Value, with a version
// that builds rbxdom.WeakDom/Variant directly.
package xml

import (
	"fmt"
	"io"

	"github.com/robloxapi/rbxdom"
	"github.com/robloxapi/rbxdom/reflection"
)

// rootVersion is the only <roblox version="..."> this package accepts, per
// spec.md's XML reader requirements; other versions are rejected outright
// rather than guessed at.
const rootVersion = "4"

// defaultIndent is spec.md's stated default pretty-print indent. The
// underlying tokenizer's Document.Indent (document.go, ported unchanged from
// the teacher) has no default of its own; Encode sets it to this when
// Encoder.Indent is empty.
const defaultIndent = "  "

// Decoder reads the XML format into a rbxdom.WeakDom. Shaped after
// binary.Decoder: a small options struct plus a single Decode entrypoint.
type Decoder struct {
	// Strict adds a Warning for each property tag of an unrecognized type;
	// without it such tags are skipped silently. In either mode no item or
	// property decode failure is fatal: the failing item or property is
	// recorded as a Warning and skipped, and Decode still returns the dom.
	Strict bool
	// DB, if set, is consulted to resolve each property's canonical name
	// (following aliases) before it is stored on the Instance. Properties
	// that fail to resolve are stored under their on-disk name unchanged.
	DB *reflection.Database
	// Warnings collects non-fatal problems encountered during the last
	// Decode call.
	Warnings []error
	// Metadata collects the file's <Meta name="..."> entries, populated by
	// Decode.
	Metadata map[string]string
}

// Encoder writes a rbxdom.WeakDom out as an XML place/model file.
type Encoder struct {
	// DB, if set, is consulted to skip properties that do not serialize and
	// to write each property under its serialized (on-disk) name.
	DB *reflection.Database
	// Metadata, if non-empty, is written as sorted <Meta name="..."> tags.
	Metadata map[string]string
	// Indent is the indentation string used for pretty-printing. Defaults
	// to defaultIndent if empty.
	Indent string
}

func (d *Decoder) warnf(format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, fmt.Errorf(format, args...))
}

// Decode parses r as an XML place/model file.
func (d *Decoder) Decode(r io.Reader) (*rbxdom.WeakDom, error) {
	return d.decode(r)
}

// Encode writes dom to w.
func (e *Encoder) Encode(w io.Writer, dom *rbxdom.WeakDom) error {
	return e.encode(w, dom)
}
