package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// geometryForItems builds the geometry implied by a progression value.
func geometryForItems(t *testing.T, items int) Geometry {
	t.Helper()
	require.True(t, OnProgression(items))

	return Geometry{BitsPerItem: WordBits / items, ItemsPerWord: items}
}

func TestPackExtract_RoundTrip_AllProgressionValues(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, items := range Progression() {
		g := geometryForItems(t, items)
		words := make([]Word, 2) // two words so cross-word indexing is exercised
		codes := make([]Word, 2*items)
		for i := range codes {
			if g.BitsPerItem <= 16 {
				codes[i] = Word(rng.Intn(1 << g.BitsPerItem))
			} else {
				codes[i] = rng.Uint64() & g.Mask()
			}
			g.Pack(words, i, codes[i])
		}
		for i, want := range codes {
			require.Equal(t, want, g.Extract(words, i),
				"items=%d slot=%d", items, i)
		}
	}
}

func TestPackExtract_AllCodes_SmallWidths(t *testing.T) {
	// For widths of 8 bits or less, every representable code round-trips
	// through every slot.
	for _, items := range []int{64, 32, 21, 16, 12, 10, 9, 8} {
		g := geometryForItems(t, items)
		for slot := 0; slot < items; slot++ {
			words := make([]Word, 1)
			for code := Word(0); code < 1<<g.BitsPerItem; code++ {
				words[0] = 0
				g.Pack(words, slot, code)
				require.Equal(t, code, g.Extract(words, slot),
					"items=%d slot=%d code=%d", items, slot, code)
			}
		}
	}
}

func TestExtract_SpecializedMatchesDynamic(t *testing.T) {
	// The shift-by-constant paths must agree with the runtime-width path on
	// identical storage.
	rng := rand.New(rand.NewSource(11))
	for _, items := range []int{64, 32, 16, 8} {
		g := geometryForItems(t, items)
		words := make([]Word, 4)
		for i := range words {
			words[i] = rng.Uint64()
		}
		dynamic := extractDynamic(g)
		specialized := g.extractor()
		for i := 0; i < 4*items; i++ {
			require.Equal(t, dynamic(words, i), specialized(words, i),
				"items=%d index=%d", items, i)
		}
	}
}

func TestExtractor_PanicsOffProgression(t *testing.T) {
	// 11 items per word is not a quotient of 64; reaching path selection with
	// it is a caller contract violation.
	g := Geometry{BitsPerItem: 5, ItemsPerWord: 11}
	require.Panics(t, func() { g.extractor() })
}

func TestExtractor_ExhaustiveOverProgression(t *testing.T) {
	for _, items := range Progression() {
		g := geometryForItems(t, items)
		require.NotPanics(t, func() { g.extractor() }, "items=%d", items)
	}
}
