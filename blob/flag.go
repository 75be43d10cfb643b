package blob

import (
	"github.com/arloliu/boostcore/endian"
	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/format"
)

const (
	// HeaderSize is the fixed byte length of the blob header.
	HeaderSize = 24

	// IndexEntrySize is the fixed byte length of one index entry.
	IndexEntrySize = 16

	// MagicFeatureV1Opt is the magic number in bits 4-15 of the Options
	// field identifying the feature blob format v1.
	MagicFeatureV1Opt uint16 = 0xF1B0

	endiannessMask  uint16 = 0x0001
	reservedOptMask uint16 = 0x000E
	magicNumberMask uint16 = 0xFFF0
)

// Flag is the packed flag field at the start of the blob header.
type Flag struct {
	// Options packs the magic number and byte order.
	// Bit 0 is endianness: 0 little-endian, 1 big-endian.
	// Bits 1-3 are reserved and must be zero.
	// Bits 4-15 are the format magic number.
	Options uint16

	// Reserved must be zero.
	Reserved uint8

	// CompressionType is the format.CompressionType applied to the payload
	// section.
	CompressionType uint8
}

// NewFlag creates a Flag with the v1 magic, little-endian byte order and no
// payload compression.
func NewFlag() Flag {
	return Flag{
		Options:         MagicFeatureV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the blob data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & endiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= endiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= endiannessMask
}

// GetEndianEngine returns the engine matching the recorded byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.Options&magicNumberMask != MagicFeatureV1Opt {
		return errs.ErrInvalidHeaderFlags
	}
	if f.Options&reservedOptMask != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.Compression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
