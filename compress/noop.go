package compress

// NoOpCompressor passes payloads through untouched. It serves blobs whose
// payloads are already dense enough that compression would only add latency,
// and baseline measurements of the serialization path itself.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new passthrough codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying. The result aliases
// the input; callers must not modify the input while the result is live.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying. The result
// aliases the input; callers must not modify the input while the result is
// live.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
