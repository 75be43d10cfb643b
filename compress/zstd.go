package compress

// ZstdCompressor is the ratio-oriented codec, suited to blobs written once
// and kept: model snapshots, archived training sets, network transfer of
// packed columns. Low-cardinality bin columns routinely shrink well past
// what the bit packing alone achieves.
//
// Two implementations exist behind the same type: a cgo binding when cgo is
// available, and a pure-Go implementation otherwise. Both read each other's
// output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
