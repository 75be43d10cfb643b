package arith

// Record co-locates a fixed header with a variable-length buffer whose size is
// chosen at allocation time. It replaces the classic "fixed struct plus
// over-indexed trailing array" layout with an explicit header value and a
// separately indexed trailing slice, so every access stays in bounds while
// the allocation remains a single unit owned by the caller.
//
// The trailing buffer must only be reached through Trailing; callers never
// index past a fixed-size inline array.
type Record[H any, T any] struct {
	Header   H
	trailing []T
}

// NewRecord allocates a record with a trailing buffer of count items.
// It returns nil when count*sizeof(T) is not representable, mirroring the
// nil-on-overflow contract of Alloc.
func NewRecord[H any, T any](count uint) *Record[H, T] {
	trailing := Alloc[T](count)
	if trailing == nil && count != 0 {
		return nil
	}

	return &Record[H, T]{trailing: trailing}
}

// Trailing returns the variable-length buffer. The slice aliases the record's
// single allocation; it remains valid for the lifetime of the record.
func (r *Record[H, T]) Trailing() []T {
	return r.trailing
}

// Len returns the number of items in the trailing buffer.
func (r *Record[H, T]) Len() int {
	return len(r.trailing)
}
