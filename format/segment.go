// Package format defines the pluggable sub-format interfaces a codec
// bundles together, plus the minimal segment model they operate on.
//
// Each format reads and writes one aspect of a persisted segment through
// a store.Directory. Implementations live in codec packages such as
// lucene46; this package only fixes the contracts.
package format

import "fmt"

// SegmentInfo is the metadata describing one persisted segment.
type SegmentInfo struct {
	// Name identifies the segment within its directory, e.g. "_0".
	Name string `json:"name"`

	// DocCount is the number of documents in the segment, including
	// deleted ones.
	DocCount int `json:"docCount"`

	// Codec is the name of the codec that wrote the segment. This is
	// the only datum a reader needs to reconstitute the right
	// implementation.
	Codec string `json:"codec"`

	// Diagnostics carries free-form writer metadata (host, version,
	// timestamp). Never interpreted, only round-tripped.
	Diagnostics map[string]string `json:"diagnostics,omitempty"`

	// Files lists the names of all files belonging to the segment.
	Files []string `json:"files,omitempty"`
}

// FieldInfo describes one indexed field within a segment.
type FieldInfo struct {
	Name             string `json:"name"`
	Number           int    `json:"number"`
	Indexed          bool   `json:"indexed"`
	StoreTermVectors bool   `json:"storeTermVectors"`
	HasNorms         bool   `json:"hasNorms"`
	HasDocValues     bool   `json:"hasDocValues"`
}

// FieldInfos is the full field table of a segment, ordered by field number.
type FieldInfos []FieldInfo

// ByName returns the field info with the given name.
func (fis FieldInfos) ByName(name string) (FieldInfo, bool) {
	for _, fi := range fis {
		if fi.Name == name {
			return fi, true
		}
	}
	return FieldInfo{}, false
}

// TermPostings is the postings list for one term of one field: the IDs
// of the documents containing the term, ascending.
type TermPostings struct {
	Field string
	Term  string
	Docs  []int32
}

// StoredField is one stored name/value pair of a document.
type StoredField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TermVector holds the distinct terms of one field of one document.
type TermVector struct {
	Field string
	Terms []string
}

// LiveDocs is a fixed-size bitset marking which documents in a segment
// are live (not deleted). The zero state of a freshly allocated set has
// every document deleted; writers start from NewLiveDocs which marks all
// live.
type LiveDocs struct {
	bits []uint64
	size int
}

// NewLiveDocs returns a LiveDocs of the given size with every document
// marked live.
func NewLiveDocs(size int) *LiveDocs {
	ld := &LiveDocs{
		bits: make([]uint64, (size+63)/64),
		size: size,
	}
	for i := 0; i < size; i++ {
		ld.SetLive(i, true)
	}
	return ld
}

// Size returns the number of documents covered by the set.
func (ld *LiveDocs) Size() int { return ld.size }

// Live reports whether the document is live.
func (ld *LiveDocs) Live(doc int) bool {
	if doc < 0 || doc >= ld.size {
		return false
	}
	return ld.bits[doc/64]&(1<<(uint(doc)%64)) != 0
}

// SetLive marks the document live or deleted.
func (ld *LiveDocs) SetLive(doc int, live bool) {
	if doc < 0 || doc >= ld.size {
		return
	}
	mask := uint64(1) << (uint(doc) % 64)
	if live {
		ld.bits[doc/64] |= mask
	} else {
		ld.bits[doc/64] &^= mask
	}
}

// LiveCount returns the number of live documents.
func (ld *LiveDocs) LiveCount() int {
	n := 0
	for i := 0; i < ld.size; i++ {
		if ld.Live(i) {
			n++
		}
	}
	return n
}

// Bits exposes the packed words for serialization by live-docs formats.
func (ld *LiveDocs) Bits() []uint64 { return ld.bits }

// LiveDocsFromBits reconstructs a LiveDocs from packed words produced by
// Bits. It fails if the words cannot cover size documents.
func LiveDocsFromBits(bits []uint64, size int) (*LiveDocs, error) {
	if need := (size + 63) / 64; len(bits) != need {
		return nil, fmt.Errorf("format: %d words cannot hold %d docs", len(bits), size)
	}
	return &LiveDocs{bits: bits, size: size}, nil
}
