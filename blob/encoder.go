package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/boostcore/bitpack"
	"github.com/arloliu/boostcore/compress"
	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/format"
	"github.com/arloliu/boostcore/internal/hash"
	"github.com/arloliu/boostcore/internal/options"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !compression.IsValid() {
			return fmt.Errorf("payload compression %d: %w", compression, errs.ErrInvalidHeaderFlags)
		}
		e.header.Flag.SetCompression(compression)

		return nil
	})
}

// WithLittleEndian writes the blob in little-endian byte order, the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes the blob in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}

// Encoder builds a feature blob column by column.
//
// The encoder is not safe for concurrent use and not reusable: after Finish
// returns, create a new encoder for further encoding.
type Encoder struct {
	header  Header
	entries []IndexEntry
	payload []byte
	seen    map[uint64]string
	done    bool
}

// NewEncoder creates an encoder for blobs of the given sample count.
func NewEncoder(samples int, opts ...EncoderOption) (*Encoder, error) {
	if samples < 0 || samples > math.MaxUint32 {
		return nil, fmt.Errorf("sample count %d: %w", samples, errs.ErrSizeOverflow)
	}

	e := &Encoder{
		header: NewHeader(),
		seen:   make(map[uint64]string),
	}
	e.header.SampleCount = uint32(samples)

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// AddFeature appends one column. binCount must match the geometry the words
// were packed with; for single-bin features words must be empty. Feature
// names must hash to distinct IDs.
func (e *Encoder) AddFeature(name string, binCount int, words []bitpack.Word) error {
	if e.done {
		return fmt.Errorf("feature %q: encoder already finished", name)
	}
	if binCount < 1 || binCount > math.MaxUint32 {
		return fmt.Errorf("feature %q: bin count %d: %w", name, binCount, errs.ErrInvalidBinCount)
	}

	geom, err := bitpack.GeometryFor(binCount)
	if err != nil {
		return fmt.Errorf("feature %q: %w", name, err)
	}
	wantWords := 0
	if geom.Layout() == format.LayoutPacked {
		wantWords = geom.WordsFor(int(e.header.SampleCount))
	}
	if len(words) != wantWords {
		return fmt.Errorf("feature %q: %d words for %s layout, geometry requires %d: %w",
			name, len(words), geom.Layout(), wantWords, errs.ErrSampleCountMismatch)
	}

	id := hash.FeatureID(name)
	if prev, ok := e.seen[id]; ok {
		return fmt.Errorf("feature %q: ID collides with %q", name, prev)
	}
	e.seen[id] = name

	wordOffset := len(e.payload) / 8
	if wordOffset+len(words) > math.MaxUint32 {
		return fmt.Errorf("feature %q: %w", name, errs.ErrSizeOverflow)
	}

	engine := e.header.Flag.GetEndianEngine()
	for _, w := range words {
		e.payload = engine.AppendUint64(e.payload, uint64(w))
	}

	e.entries = append(e.entries, IndexEntry{
		FeatureID:  id,
		BinCount:   uint32(binCount),
		WordOffset: uint32(wordOffset),
	})

	return nil
}

// AddMatrix appends every column of a packed matrix. names holds one
// feature name per column and the matrix sample count must match the
// encoder's.
func (e *Encoder) AddMatrix(m *bitpack.Matrix, names []string) error {
	if m.NumSamples() != int(e.header.SampleCount) {
		return fmt.Errorf("matrix has %d samples, blob has %d: %w",
			m.NumSamples(), e.header.SampleCount, errs.ErrSampleCountMismatch)
	}
	if len(names) != m.NumFeatures() {
		return fmt.Errorf("%d names for %d features: %w",
			len(names), m.NumFeatures(), errs.ErrSampleCountMismatch)
	}

	for i, name := range names {
		if err := e.AddFeature(name, m.BinCount(i), m.Words(i)); err != nil {
			return err
		}
	}

	return nil
}

// Finish compresses the payload, assembles the blob and returns its bytes.
// The encoder cannot be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.done {
		return nil, fmt.Errorf("encoder already finished")
	}
	e.done = true

	codec, err := compress.CreateCodec(e.header.Flag.Compression(), "payload")
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(e.payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	indexLen := len(e.entries) * IndexEntrySize
	payloadOffset := HeaderSize + indexLen
	total := payloadOffset + len(compressed)
	if int64(total) > math.MaxUint32 {
		return nil, fmt.Errorf("blob size %d: %w", total, errs.ErrSizeOverflow)
	}

	e.header.FeatureCount = uint32(len(e.entries))
	e.header.PayloadOffset = uint32(payloadOffset)
	e.header.PayloadLength = uint32(len(e.payload))

	blob := make([]byte, 0, total)
	blob = append(blob, e.header.Bytes()...)

	engine := e.header.Flag.GetEndianEngine()
	for _, entry := range e.entries {
		blob = entry.AppendTo(blob, engine)
	}
	blob = append(blob, compressed...)

	return blob, nil
}
