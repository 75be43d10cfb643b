// Package arith provides overflow-safe size arithmetic and checked allocation
// for the packed-storage and gradient buffers used throughout boostcore.
//
// Training may request very large buffers (millions of samples times many
// bytes per sample). Every size computation in this package detects overflow
// before it happens and degrades to a nil result instead of wrapping around
// or aborting the process.
package arith

import (
	"math"
	"unsafe"
)

const maxUint = ^uint(0)

// MulOverflows reports whether a*b exceeds the maximum representable uint.
//
// The check itself never overflows and never divides by zero: a zero operand
// can never overflow, and for non-zero a the inequality
// max+1 <= a*b is rearranged to (max-a+1)/a < b.
//
// The test is deliberately conservative: for a not dividing max+1 it also
// flags b = (max+1)/a rounded down, whose product still fits. Size requests
// in that last-representable-byte band are refused rather than served.
func MulOverflows(a, b uint) bool {
	return a != 0 && (maxUint-a+1)/a < b
}

// AddOverflows reports whether a+b wraps past the maximum representable uint.
// Unsigned overflow is defined behavior in Go, so the wrapped sum being
// smaller than an operand is a reliable signal.
func AddOverflows(a, b uint) bool {
	return a+b < a
}

// Integer is the constraint for FitsIn: any fixed-width or platform-width
// Go integer type, signed or unsigned.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FitsIn reports whether v is exactly representable in type To.
//
// The check is a conversion round-trip plus a sign comparison. The round-trip
// catches truncation; the sign comparison catches the wrap between signed and
// unsigned domains where the round-trip alone would lie (for example int8(-1)
// converts to uint8(255) and back to int8(-1)). Comparisons against zero are
// well-defined for every type pair, so no branch depends on unspecified
// conversion behavior.
func FitsIn[To Integer, From Integer](v From) bool {
	t := To(v)

	return From(t) == v && (v < 0) == (t < 0)
}

// Alloc returns a slice of count items of type T, or nil when count*sizeof(T)
// is not representable or exceeds the addressable int range. The slice
// contents are zeroed, exclusively owned by the caller.
//
// Alloc never panics on an oversized request; callers must check for nil
// before use. An out-of-memory condition is still fatal (the Go runtime does
// not surface allocation failure), but every arithmetic path to a bogus size
// is closed off here.
func Alloc[T any](count uint) []T {
	var zero T
	size := uint(unsafe.Sizeof(zero))
	if count > uint(math.MaxInt) {
		return nil
	}
	// the byte total must also stay addressable: a non-wrapping product
	// past MaxInt would panic inside make instead of failing cleanly
	if size != 0 && count > uint(math.MaxInt)/size {
		return nil
	}

	return make([]T, count)
}

// AllocBytes returns a zeroed byte slice of count*bytesPerItem bytes, or nil
// when the product overflows. It serves heterogeneous buffers where the item
// size is only known at run time.
func AllocBytes(count, bytesPerItem uint) []byte {
	if MulOverflows(count, bytesPerItem) {
		return nil
	}
	total := count * bytesPerItem
	if total > uint(math.MaxInt) {
		return nil
	}

	return make([]byte, total)
}
