package format

type (
	ColumnLayout    uint8
	CompressionType uint8
)

const (
	LayoutPacked   ColumnLayout = 0x1 // LayoutPacked represents a bit-packed word payload.
	LayoutImplicit ColumnLayout = 0x2 // LayoutImplicit represents a single-bin column with no payload.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (l ColumnLayout) String() string {
	switch l {
	case LayoutPacked:
		return "Packed"
	case LayoutImplicit:
		return "Implicit"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the value is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
