package blob

import (
	"github.com/arloliu/boostcore/endian"
	"github.com/arloliu/boostcore/errs"
)

// IndexEntry records one feature column in the blob index section. Entries
// are fixed at IndexEntrySize bytes and appear in column order.
type IndexEntry struct {
	// FeatureID is the xxHash64 of the feature name.
	//
	// Offset: 0, Size: 8 bytes
	FeatureID uint64

	// BinCount is the column's finalized bin count. The packing geometry is
	// fully determined by it, so bit widths are never stored.
	//
	// Offset: 8, Size: 4 bytes
	BinCount uint32

	// WordOffset is the column's first word in the decompressed payload,
	// counted in 8-byte words. Single-bin columns carry the offset where
	// their payload would start and occupy zero words.
	//
	// Offset: 12, Size: 4 bytes
	WordOffset uint32
}

// AppendTo serializes the entry and appends it to buf.
func (e IndexEntry) AppendTo(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.FeatureID)
	buf = engine.AppendUint32(buf, e.BinCount)
	buf = engine.AppendUint32(buf, e.WordOffset)

	return buf
}

// ParseIndexEntry parses one entry from the first IndexEntrySize bytes of
// data.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntry
	}

	return IndexEntry{
		FeatureID:  engine.Uint64(data[0:8]),
		BinCount:   engine.Uint32(data[8:12]),
		WordOffset: engine.Uint32(data[12:16]),
	}, nil
}
