package binary

import "github.com/robloxapi/rbxdom"

// sharedStringTable is the decoded/pending form of a file's SSTR chunk: the
// ordered list of content-addressed strings that TypeSharedString property
// values index into, plus a reverse lookup for encoding. Ported from the
// teacher's rbxl/model.go chunkSharedStrings.
type sharedStringTable struct {
	entries []rbxdom.SharedString
	index   map[rbxdom.SharedStringHash]int32
}

func newSharedStringTable() *sharedStringTable {
	return &sharedStringTable{index: make(map[rbxdom.SharedStringHash]int32)}
}

// intern adds ss to the table if not already present, and returns its
// index.
func (t *sharedStringTable) intern(ss rbxdom.SharedString) int32 {
	if i, ok := t.index[ss.Hash]; ok {
		return i
	}
	i := int32(len(t.entries))
	t.entries = append(t.entries, ss)
	t.index[ss.Hash] = i
	return i
}

// indexOf returns ss's index, interning it if this is the first time it has
// been seen while encoding.
func (t *sharedStringTable) indexOf(ss rbxdom.SharedString) int32 {
	return t.intern(ss)
}

// at returns the shared string at index i, or the zero value if out of
// range (the caller treats that as a decode error).
func (t *sharedStringTable) at(i int32) (rbxdom.SharedString, bool) {
	if i < 0 || int(i) >= len(t.entries) {
		return rbxdom.SharedString{}, false
	}
	return t.entries[i], true
}
