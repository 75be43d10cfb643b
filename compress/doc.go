// Package compress provides compression codecs for feature-blob payloads.
//
// Bit-packed bin columns are dense but repetitive: low-cardinality features
// reuse a small set of codes, so general-purpose compression recovers
// substantial space on top of the packing itself. Compression is applied to
// the whole payload section after the columns are serialized, never to
// individual columns.
//
// Four algorithms are supported, selected through format.CompressionType:
//
//   - None: passthrough, for payloads that are already dense
//   - Zstd: best ratio, for blobs written once and read rarely
//   - S2: fastest, for blobs on the training hot path
//   - LZ4: balanced speed and ratio
//
// All codecs are stateless values and safe for concurrent use; internal
// encoder/decoder state is pooled behind the scenes.
package compress
