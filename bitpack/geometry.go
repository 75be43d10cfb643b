package bitpack

import (
	"github.com/arloliu/boostcore/errs"
	"github.com/arloliu/boostcore/format"
)

// Word is the fixed-width storage unit holding one or more packed bin indices.
type Word = uint64

// WordBits is the width of a storage word in bits.
const WordBits = 64

// Sentinel items-per-word values. Real packing widths are always positive.
const (
	// ItemsNone marks a feature with only one possible bin; it carries no
	// information and is not packed at all.
	ItemsNone = -1

	// ItemsDynamic selects the runtime-width extraction path. It also
	// terminates the progression returned by NextItemsPerPack.
	ItemsDynamic = 0
)

// CountBits returns the smallest width such that 2^width > maxValue.
// The recursive halving form keeps it trivially correct; it is never called
// on a hot path.
func CountBits(maxValue uint64) int {
	if maxValue == 0 {
		return 0
	}

	return 1 + CountBits(maxValue/2)
}

// NextItemsPerPack returns the next smaller packing width after prev, walking
// the canonical progression WordBits/(WordBits/prev + 1). The progression for
// 64-bit words is 64, 32, 21, 16, 12, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1; after 1
// it yields ItemsDynamic to terminate the chain.
func NextItemsPerPack(prev int) int {
	if prev == 1 {
		return ItemsDynamic
	}

	return WordBits / (WordBits/prev + 1)
}

// Progression returns the full canonical items-per-word sequence, strictly
// decreasing from WordBits down to 1.
func Progression() []int {
	seq := make([]int, 0, 16)
	for items := WordBits; items != ItemsDynamic; items = NextItemsPerPack(items) {
		seq = append(seq, items)
	}

	return seq
}

// OnProgression reports whether items is a legal packing width, i.e. a value
// of WordBits/k for some integer k >= 1. Only progression values divide the
// word into slots whose index arithmetic round-trips exactly.
func OnProgression(items int) bool {
	return 1 <= items && items <= WordBits && items == WordBits/(WordBits/items)
}

// ItemsPerPack returns the largest progression entry whose per-item width can
// represent binCount distinct bin indices. A single-bin feature yields
// ItemsNone.
func ItemsPerPack(binCount int) (int, error) {
	if binCount < 1 {
		return 0, errs.ErrInvalidBinCount
	}
	if binCount == 1 {
		return ItemsNone, nil
	}

	bits := CountBits(uint64(binCount - 1))
	// WordBits/bits is WordBits/k by construction, so it is on the progression.
	return WordBits / bits, nil
}

// Geometry describes how one feature's bin indices are packed: how many bits
// each index occupies and how many indices share a word. Geometries are
// computed once when bin counts are finalized and are immutable afterwards.
type Geometry struct {
	BitsPerItem  int
	ItemsPerWord int
}

// GeometryFor derives the packing geometry for a feature with binCount bins.
func GeometryFor(binCount int) (Geometry, error) {
	items, err := ItemsPerPack(binCount)
	if err != nil {
		return Geometry{}, err
	}
	if items == ItemsNone {
		return Geometry{BitsPerItem: 0, ItemsPerWord: ItemsNone}, nil
	}

	return Geometry{BitsPerItem: WordBits / items, ItemsPerWord: items}, nil
}

// Packed reports whether the feature occupies storage at all.
func (g Geometry) Packed() bool {
	return g.ItemsPerWord != ItemsNone
}

// Layout returns the serialized column layout for this geometry: a packed
// word payload, or implicit for single-bin columns that store nothing.
func (g Geometry) Layout() format.ColumnLayout {
	if g.Packed() {
		return format.LayoutPacked
	}

	return format.LayoutImplicit
}

// Mask returns the bit mask covering one packed item.
func (g Geometry) Mask() Word {
	if g.BitsPerItem >= WordBits {
		return ^Word(0)
	}

	return Word(1)<<g.BitsPerItem - 1
}

// WordsFor returns the number of storage words needed for samples items,
// rounding the last partial word up. It returns 0 for unpacked geometries.
func (g Geometry) WordsFor(samples int) int {
	if !g.Packed() || samples <= 0 {
		return 0
	}

	return (samples + g.ItemsPerWord - 1) / g.ItemsPerWord
}
