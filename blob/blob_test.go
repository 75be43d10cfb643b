package blob

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/boostcore/bitpack"
	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/format"
)

// testMatrix builds a matrix with a spread of bin counts, including a
// single-bin column, and returns it with its feature names and raw bins.
func testMatrix(t *testing.T, samples int) (*bitpack.Matrix, []string, [][]int) {
	t.Helper()
	rng := rand.New(rand.NewSource(11))

	binCounts := []int{2, 3, 17, 256, 1, 300}
	names := []string{"age", "income", "region", "device", "constant", "postcode"}

	m := bitpack.NewMatrix(samples)
	bins := make([][]int, len(binCounts))
	for f, binCount := range binCounts {
		col := make([]int, samples)
		for i := range col {
			col[i] = rng.Intn(binCount)
		}
		require.NoError(t, m.AddFeature(binCount, col))
		bins[f] = col
	}

	return m, names, bins
}

func encodeMatrix(t *testing.T, m *bitpack.Matrix, names []string, opts ...EncoderOption) []byte {
	t.Helper()
	encoder, err := NewEncoder(m.NumSamples(), opts...)
	require.NoError(t, err)
	require.NoError(t, encoder.AddMatrix(m, names))

	data, err := encoder.Finish()
	require.NoError(t, err)

	return data
}

func TestBlob_RoundTrip(t *testing.T) {
	const samples = 257
	m, names, bins := testMatrix(t, samples)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data := encodeMatrix(t, m, names, WithCompression(compression))

			set, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, samples, set.NumSamples())
			require.Equal(t, len(names), set.NumFeatures())

			for f, name := range names {
				for i := 0; i < samples; i++ {
					got, err := set.Bin(name, i)
					require.NoError(t, err)
					want := bins[f][i]
					if m.BinCount(f) == 1 {
						want = 0
					}
					require.Equal(t, want, got, "feature %s sample %d", name, i)
				}
			}
		})
	}
}

func TestBlob_BigEndianRoundTrip(t *testing.T) {
	const samples = 100
	m, names, bins := testMatrix(t, samples)

	data := encodeMatrix(t, m, names, WithBigEndian())
	set, err := Decode(data)
	require.NoError(t, err)

	got, err := set.Bin("region", 42)
	require.NoError(t, err)
	require.Equal(t, bins[2][42], got)
}

func TestBlob_DecodedMatrixMatchesSource(t *testing.T) {
	const samples = 63
	m, names, _ := testMatrix(t, samples)

	set, err := Decode(encodeMatrix(t, m, names))
	require.NoError(t, err)

	decoded := set.Matrix()
	require.Equal(t, m.NumFeatures(), decoded.NumFeatures())
	for f := 0; f < m.NumFeatures(); f++ {
		require.Equal(t, m.BinCount(f), decoded.BinCount(f), "feature %d", f)
		for i := 0; i < samples; i++ {
			require.Equal(t, m.Bin(i, f), decoded.Bin(i, f), "feature %d sample %d", f, i)
		}
	}
}

func TestBlob_FeatureLookup(t *testing.T) {
	m, names, _ := testMatrix(t, 10)
	set, err := Decode(encodeMatrix(t, m, names))
	require.NoError(t, err)

	binCount, err := set.BinCount("device")
	require.NoError(t, err)
	require.Equal(t, 256, binCount)

	_, err = set.Bin("no_such_feature", 0)
	require.ErrorIs(t, err, errs.ErrFeatureNotFound)

	_, err = set.Column("")
	require.ErrorIs(t, err, errs.ErrFeatureNotFound)
}

func TestBlob_EmptyMatrix(t *testing.T) {
	encoder, err := NewEncoder(0)
	require.NoError(t, err)
	data, err := encoder.Finish()
	require.NoError(t, err)

	set, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 0, set.NumSamples())
	require.Equal(t, 0, set.NumFeatures())
}

func TestEncoder_Validation(t *testing.T) {
	encoder, err := NewEncoder(4)
	require.NoError(t, err)

	err = encoder.AddFeature("bad", 0, nil)
	require.ErrorIs(t, err, errs.ErrInvalidBinCount)

	// packed column with the wrong word count
	err = encoder.AddFeature("short", 256, nil)
	require.ErrorIs(t, err, errs.ErrSampleCountMismatch)

	require.NoError(t, encoder.AddFeature("ok", 2, make([]bitpack.Word, 1)))
	err = encoder.AddFeature("ok", 2, make([]bitpack.Word, 1))
	require.Error(t, err, "same name hashes to the same ID")

	_, err = encoder.Finish()
	require.NoError(t, err)
	_, err = encoder.Finish()
	require.Error(t, err)
	require.Error(t, encoder.AddFeature("late", 2, make([]bitpack.Word, 1)))
}

func TestEncoder_AddMatrixMismatch(t *testing.T) {
	m, names, _ := testMatrix(t, 8)

	encoder, err := NewEncoder(9)
	require.NoError(t, err)
	require.ErrorIs(t, encoder.AddMatrix(m, names), errs.ErrSampleCountMismatch)

	encoder, err = NewEncoder(8)
	require.NoError(t, err)
	require.ErrorIs(t, encoder.AddMatrix(m, names[:2]), errs.ErrSampleCountMismatch)
}

func TestDecode_Corrupted(t *testing.T) {
	m, names, _ := testMatrix(t, 16)
	data := encodeMatrix(t, m, names)

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(data[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[1] ^= 0xff
		_, err := Decode(corrupt)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("bad compression", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[3] = 0x7f
		_, err := Decode(corrupt)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(data[:len(data)-8])
		require.Error(t, err)
	})

	t.Run("bad index bin count", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		// zero the first entry's bin count
		for i := HeaderSize + 8; i < HeaderSize+12; i++ {
			corrupt[i] = 0
		}
		_, err := Decode(corrupt)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
	})

	t.Run("bad word offset", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[HeaderSize+12] ^= 0xff
		_, err := Decode(corrupt)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
	})
}
