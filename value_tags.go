package rbxdom

import "strings"

// Tags is the CollectionService tag list attached to an instance. On the
// wire it is a single NUL-separated blob (spec §6); in memory it is an
// ordered, de-duplication-agnostic string slice.
type Tags []string

func (Tags) Type() Type { return TypeTags }
func (v Tags) Copy() Variant {
	cp := make(Tags, len(v))
	copy(cp, v)
	return cp
}

// Encode joins t into the NUL-separated wire blob.
func (t Tags) Encode() []byte {
	return []byte(strings.Join(t, "\x00"))
}

// DecodeTags splits a NUL-separated wire blob into a Tags value. A trailing
// NUL (common in captured files) produces no trailing empty tag.
func DecodeTags(b []byte) Tags {
	s := string(b)
	s = strings.TrimSuffix(s, "\x00")
	if s == "" {
		return Tags{}
	}
	return Tags(strings.Split(s, "\x00"))
}
