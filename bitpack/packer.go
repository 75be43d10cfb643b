package bitpack

import "fmt"

// extractFunc reads the packed item at index from words.
type extractFunc func(words []Word, index int) Word

// Shift-by-constant extraction paths for the hot packing widths. The compiler
// turns the divisions and modulos into shifts and masks because every
// quantity is a constant power of two.
func extract64(words []Word, index int) Word {
	return words[index>>6] >> (index & 63) & 1
}

func extract32(words []Word, index int) Word {
	return words[index>>5] >> ((index & 31) << 1) & 0x3
}

func extract16(words []Word, index int) Word {
	return words[index>>4] >> ((index & 15) << 2) & 0xF
}

func extract8(words []Word, index int) Word {
	return words[index>>3] >> ((index & 7) << 3) & 0xFF
}

// extractDynamic is the runtime-width path serving every progression value
// without a dedicated extractor.
func extractDynamic(g Geometry) extractFunc {
	items := g.ItemsPerWord
	shift := g.BitsPerItem
	mask := g.Mask()

	return func(words []Word, index int) Word {
		return words[index/items] >> ((index % items) * shift) & mask
	}
}

// extractor selects the extraction path for a geometry. The selection is
// exhaustive over the progression: hot widths get their dedicated path and
// everything else falls through to the runtime-width path. A width off the
// progression is a caller contract violation and panics.
func (g Geometry) extractor() extractFunc {
	if !OnProgression(g.ItemsPerWord) || g.BitsPerItem != WordBits/g.ItemsPerWord {
		panic(fmt.Sprintf("bitpack: items per word %d is not on the packing progression", g.ItemsPerWord))
	}

	switch g.ItemsPerWord {
	case 64:
		return extract64
	case 32:
		return extract32
	case 16:
		return extract16
	case 8:
		return extract8
	default:
		return extractDynamic(g)
	}
}

// Extract returns the packed item at index. It is the generic entry point;
// hot loops should capture the column extractor through Matrix instead of
// re-selecting the path per call.
func (g Geometry) Extract(words []Word, index int) Word {
	return g.extractor()(words, index)
}

// Pack writes code into slot index of words according to the geometry. The
// slot must be zero beforehand; packing happens once per sample at matrix
// construction and is not a hot path.
func (g Geometry) Pack(words []Word, index int, code Word) {
	slot := index % g.ItemsPerWord
	words[index/g.ItemsPerWord] |= (code & g.Mask()) << (slot * g.BitsPerItem)
}
