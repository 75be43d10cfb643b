// Package endian provides byte order utilities for the binary feature-blob
// format.
//
// EndianEngine merges the ByteOrder and AppendByteOrder interfaces from
// encoding/binary so the same engine value serves both fixed-offset reads
// during decoding and append-style writes during encoding. Both standard
// byte orders satisfy it, and blobs record which one they were written with
// so a decoder can pick the matching engine from the header alone.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// binary.LittleEndian and binary.BigEndian both satisfy it. Engines are
// stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host's byte order, determined by inspecting how a known
// 16-bit value is laid out in memory.
func Native() EndianEngine {
	var v uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&v))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == EndianEngine(binary.LittleEndian)
}

// GetLittleEndianEngine returns the little-endian engine, the default for
// feature blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
