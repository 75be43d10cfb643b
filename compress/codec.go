package compress

import (
	"fmt"

	"github.com/arloliu/boostcore/format"
)

// Compressor compresses a serialized payload section.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified. Implementations may reuse internal buffers between
// calls.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously compressed with the same
// algorithm. It validates the compressed framing and returns an error on
// corrupted or mismatched input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state or
// buffers between them.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type. target names
// the payload being configured and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
