package bitpack

import (
	"fmt"

	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/internal/arith"
)

// column holds one feature's packed bin indices together with the extraction
// path selected for its geometry.
type column struct {
	geom     Geometry
	binCount int
	words    []Word
	extract  extractFunc
}

// Matrix is the packed per-sample, per-feature bin index store consumed by
// the histogram builder. Columns are appended once at setup; after that the
// matrix is immutable and safe for concurrent readers.
type Matrix struct {
	samples int
	cols    []column
}

// NewMatrix creates an empty matrix for the given sample count.
func NewMatrix(samples int) *Matrix {
	if samples < 0 {
		samples = 0
	}

	return &Matrix{samples: samples}
}

// AddFeature appends a feature column. binCount is the feature's finalized
// maximum bin index plus one; bins holds one bin index per sample.
//
// A single-bin feature is recorded but occupies no storage. Any bin index
// outside [0, binCount) is rejected before packing.
func (m *Matrix) AddFeature(binCount int, bins []int) error {
	if len(bins) != m.samples {
		return fmt.Errorf("feature %d: %d bins for %d samples: %w",
			len(m.cols), len(bins), m.samples, errs.ErrSampleCountMismatch)
	}

	geom, err := GeometryFor(binCount)
	if err != nil {
		return fmt.Errorf("feature %d: bin count %d: %w", len(m.cols), binCount, err)
	}

	col := column{geom: geom, binCount: binCount}
	if geom.Packed() {
		words := arith.Alloc[Word](uint(geom.WordsFor(m.samples)))
		if words == nil && m.samples > 0 {
			return fmt.Errorf("feature %d: %w", len(m.cols), errs.ErrSizeOverflow)
		}
		for i, bin := range bins {
			if bin < 0 || bin >= binCount {
				return fmt.Errorf("feature %d sample %d: bin %d of %d: %w",
					len(m.cols), i, bin, binCount, errs.ErrBinOutOfRange)
			}
			geom.Pack(words, i, Word(bin))
		}
		col.words = words
		col.extract = geom.extractor()
	}

	m.cols = append(m.cols, col)

	return nil
}

// AddPackedFeature appends a feature column from words already packed with
// the geometry for binCount, adopting the slice without copying. It is the
// deserialization counterpart of AddFeature; words must contain exactly the
// word count the geometry requires for the matrix's sample count.
func (m *Matrix) AddPackedFeature(binCount int, words []Word) error {
	geom, err := GeometryFor(binCount)
	if err != nil {
		return fmt.Errorf("feature %d: bin count %d: %w", len(m.cols), binCount, err)
	}

	col := column{geom: geom, binCount: binCount}
	if geom.Packed() {
		if len(words) != geom.WordsFor(m.samples) {
			return fmt.Errorf("feature %d: %d words for %d samples: %w",
				len(m.cols), len(words), m.samples, errs.ErrSampleCountMismatch)
		}
		col.words = words
		col.extract = geom.extractor()
	}

	m.cols = append(m.cols, col)

	return nil
}

// NumSamples returns the sample count shared by all columns.
func (m *Matrix) NumSamples() int { return m.samples }

// NumFeatures returns the number of columns added so far.
func (m *Matrix) NumFeatures() int { return len(m.cols) }

// Geometry returns the packing geometry of a feature column.
func (m *Matrix) Geometry(feature int) Geometry { return m.cols[feature].geom }

// BinCount returns the finalized bin count of a feature column.
func (m *Matrix) BinCount(feature int) int { return m.cols[feature].binCount }

// Bin extracts the bin index of one sample/feature pair in constant time.
// Unpacked single-bin columns always yield 0.
func (m *Matrix) Bin(sample, feature int) int {
	col := &m.cols[feature]
	if !col.geom.Packed() {
		return 0
	}

	return int(col.extract(col.words, sample))
}

// Words exposes a feature's raw packed words for serialization and for
// consumers that stride whole words at a time. The returned slice must be
// treated as read-only.
func (m *Matrix) Words(feature int) []Word { return m.cols[feature].words }
