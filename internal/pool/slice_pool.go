// Package pool provides pooled scratch slices for hot paths that need a
// temporary buffer, such as the probability scratch of the runtime-length
// multiclass gradient path.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the
// pool. Contents are unspecified; the caller must write every element before
// reading it. The returned release function must be called, typically with
// defer, to return the slice to the pool.
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr
	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
