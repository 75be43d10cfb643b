package blob

import (
	"github.com/arloliu/boostcore/errs"
)

// Header is the fixed-size section at the start of a feature blob.
//
// The Flag's own bytes are always little-endian so a decoder can read the
// byte order before it knows the byte order; every other field uses the
// order the flag records.
type Header struct {
	// Flag packs the magic number, byte order and payload compression.
	Flag Flag // byte offset 0-3

	// SampleCount is the number of samples every column holds.
	SampleCount uint32 // byte offset 4-7

	// FeatureCount is the number of index entries.
	FeatureCount uint32 // byte offset 8-11

	// IndexOffset is the byte offset of the index section, always
	// HeaderSize in v1.
	IndexOffset uint32 // byte offset 12-15

	// PayloadOffset is the byte offset of the (possibly compressed)
	// payload section.
	PayloadOffset uint32 // byte offset 16-19

	// PayloadLength is the uncompressed payload length in bytes. The
	// decoder checks the decompressed section against it before trusting
	// any index entry.
	PayloadLength uint32 // byte offset 20-23
}

// NewHeader creates a header with default flags. Counts and offsets are
// filled in when the encoder finishes.
func NewHeader() Header {
	return Header{
		Flag:        NewFlag(),
		IndexOffset: HeaderSize,
	}
}

// Parse parses a header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Reserved = data[2]
	h.Flag.CompressionType = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SampleCount = engine.Uint32(data[4:8])
	h.FeatureCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadLength = engine.Uint32(data[20:24])

	return nil
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Reserved
	b[3] = h.Flag.CompressionType

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.SampleCount)
	engine.PutUint32(b[8:12], h.FeatureCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadLength)

	return b
}
