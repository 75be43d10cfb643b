package blob

import (
	"fmt"

	"github.com/arloliu/boostcore/bitpack"
	"github.com/arloliu/boostcore/compress"
	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/format"
	"github.com/arloliu/boostcore/internal/arith"
	"github.com/arloliu/boostcore/internal/hash"
)

// FeatureSet is a decoded feature blob: a packed matrix plus the ID index
// needed to address columns by feature name. It is immutable and safe for
// concurrent readers.
type FeatureSet struct {
	header  Header
	matrix  *bitpack.Matrix
	columns map[uint64]int
}

// Decode parses and validates a feature blob. The payload is decompressed
// once; the returned set adopts the decoded words without further copying.
func Decode(data []byte) (*FeatureSet, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	indexLen := int(header.FeatureCount) * IndexEntrySize
	if header.IndexOffset != HeaderSize || int(header.PayloadOffset) != HeaderSize+indexLen {
		return nil, fmt.Errorf("index at %d, payload at %d for %d features: %w",
			header.IndexOffset, header.PayloadOffset, header.FeatureCount, errs.ErrInvalidHeaderFlags)
	}
	if len(data) < int(header.PayloadOffset) {
		return nil, errs.ErrInvalidHeaderSize
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if len(payload) != int(header.PayloadLength) || len(payload)%8 != 0 {
		return nil, fmt.Errorf("payload is %d bytes, header records %d: %w",
			len(payload), header.PayloadLength, errs.ErrInvalidIndexEntry)
	}

	engine := header.Flag.GetEndianEngine()
	words := arith.Alloc[bitpack.Word](uint(len(payload) / 8))
	for i := range words {
		words[i] = bitpack.Word(engine.Uint64(payload[i*8 : i*8+8]))
	}

	samples := int(header.SampleCount)
	matrix := bitpack.NewMatrix(samples)
	columns := make(map[uint64]int, header.FeatureCount)

	next := 0 // expected word offset of the next packed column
	index := data[HeaderSize:header.PayloadOffset]
	for i := 0; i < int(header.FeatureCount); i++ {
		entry, err := ParseIndexEntry(index[i*IndexEntrySize:], engine)
		if err != nil {
			return nil, err
		}

		geom, err := bitpack.GeometryFor(int(entry.BinCount))
		if err != nil {
			return nil, fmt.Errorf("entry %d: bin count %d: %w", i, entry.BinCount, errs.ErrInvalidIndexEntry)
		}
		span := 0
		if geom.Layout() == format.LayoutPacked {
			span = geom.WordsFor(samples)
		}
		if int(entry.WordOffset) != next || next+span > len(words) {
			return nil, fmt.Errorf("entry %d: %s layout words [%d, %d) of %d: %w",
				i, geom.Layout(), entry.WordOffset, int(entry.WordOffset)+span, len(words), errs.ErrInvalidIndexEntry)
		}

		if err := matrix.AddPackedFeature(int(entry.BinCount), words[next:next+span]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := columns[entry.FeatureID]; ok {
			return nil, fmt.Errorf("entry %d: duplicate feature ID %#016x: %w",
				i, entry.FeatureID, errs.ErrInvalidIndexEntry)
		}
		columns[entry.FeatureID] = i
		next += span
	}
	if next != len(words) {
		return nil, fmt.Errorf("%d trailing payload words: %w", len(words)-next, errs.ErrInvalidIndexEntry)
	}

	return &FeatureSet{header: header, matrix: matrix, columns: columns}, nil
}

// NumSamples returns the sample count shared by all columns.
func (s *FeatureSet) NumSamples() int { return int(s.header.SampleCount) }

// NumFeatures returns the number of columns in the set.
func (s *FeatureSet) NumFeatures() int { return int(s.header.FeatureCount) }

// Matrix returns the decoded packed matrix. Columns appear in encoding
// order.
func (s *FeatureSet) Matrix() *bitpack.Matrix { return s.matrix }

// Column returns the column index of a feature name, or
// errs.ErrFeatureNotFound.
func (s *FeatureSet) Column(name string) (int, error) {
	col, ok := s.columns[hash.FeatureID(name)]
	if !ok {
		return 0, fmt.Errorf("feature %q: %w", name, errs.ErrFeatureNotFound)
	}

	return col, nil
}

// Bin extracts one sample's bin index for a named feature in constant time.
func (s *FeatureSet) Bin(name string, sample int) (int, error) {
	col, err := s.Column(name)
	if err != nil {
		return 0, err
	}

	return s.matrix.Bin(sample, col), nil
}

// BinCount returns the bin count of a named feature.
func (s *FeatureSet) BinCount(name string) (int, error) {
	col, err := s.Column(name)
	if err != nil {
		return 0, err
	}

	return s.matrix.BinCount(col), nil
}
