package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulOverflows(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint
		overflow bool
	}{
		{"zero times max", 0, maxUint, false},
		{"max times zero", maxUint, 0, false},
		{"one times max", 1, maxUint, false},
		{"max times one", maxUint, 1, false},
		{"two times half", 2, maxUint / 2, false},
		{"two times half plus one", 2, maxUint/2 + 1, true},
		{"max times two", maxUint, 2, true},
		{"max times max", maxUint, maxUint, true},
		{"sqrt boundary", 1 << 32, 1 << 32, true},
		{"just under sqrt boundary", 1<<32 - 1, 1 << 32, false},
		// 3*(maxUint/3) equals maxUint exactly, yet the conservative
		// band refuses it; the behavior is documented and relied upon
		// staying stable
		{"conservative band edge", 3, maxUint / 3, true},
		{"below conservative band", 3, maxUint/3 - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.overflow, MulOverflows(tt.a, tt.b))
		})
	}
}

func TestAddOverflows(t *testing.T) {
	require.False(t, AddOverflows(0, 0))
	require.False(t, AddOverflows(maxUint, 0))
	require.False(t, AddOverflows(0, maxUint))
	require.False(t, AddOverflows(maxUint-1, 1))
	require.True(t, AddOverflows(maxUint, 1))
	require.True(t, AddOverflows(1, maxUint))
	require.True(t, AddOverflows(maxUint/2+1, maxUint/2+1))
}

func TestFitsIn_UnsignedToSigned(t *testing.T) {
	require.True(t, FitsIn[int8](uint8(127)))
	require.False(t, FitsIn[int8](uint8(128)))
	require.False(t, FitsIn[int8](uint8(255)))
	require.True(t, FitsIn[int16](uint8(255)))
	require.True(t, FitsIn[int64](uint64(math.MaxInt64)))
	require.False(t, FitsIn[int64](uint64(math.MaxInt64)+1))
}

func TestFitsIn_SignedToUnsigned(t *testing.T) {
	require.True(t, FitsIn[uint8](int8(0)))
	require.True(t, FitsIn[uint8](int8(127)))
	require.False(t, FitsIn[uint8](int8(-1)))
	require.False(t, FitsIn[uint64](int64(-1)))
	require.True(t, FitsIn[uint64](int64(math.MaxInt64)))
	require.False(t, FitsIn[uint16](int32(65536)))
	require.True(t, FitsIn[uint16](int32(65535)))
}

func TestFitsIn_SignedToSigned(t *testing.T) {
	require.True(t, FitsIn[int8](int16(-128)))
	require.False(t, FitsIn[int8](int16(-129)))
	require.True(t, FitsIn[int8](int16(127)))
	require.False(t, FitsIn[int8](int16(128)))
	require.True(t, FitsIn[int64](int8(-1)))
}

func TestFitsIn_UnsignedToUnsigned(t *testing.T) {
	require.True(t, FitsIn[uint8](uint64(255)))
	require.False(t, FitsIn[uint8](uint64(256)))
	require.True(t, FitsIn[uint64](uint8(0)))
}

func TestAlloc_Overflow(t *testing.T) {
	// Element size 8: any count above max/8 must be refused.
	require.Nil(t, Alloc[uint64](maxUint/8+1))
	require.Nil(t, Alloc[uint64](maxUint))

	buf := Alloc[uint64](16)
	require.NotNil(t, buf)
	require.Len(t, buf, 16)
	for _, v := range buf {
		require.Zero(t, v)
	}
}

func TestAlloc_OversizedWithoutWrap(t *testing.T) {
	// A byte total past MaxInt whose uint product does not wrap must still
	// come back nil rather than panicking inside make.
	require.NotPanics(t, func() {
		require.Nil(t, Alloc[uint64](uint(math.MaxInt/8)+1))
	})
	require.NotPanics(t, func() {
		require.Nil(t, Alloc[[128]byte](uint(math.MaxInt/128)+1))
	})
}

func TestAlloc_ZeroCount(t *testing.T) {
	buf := Alloc[float64](0)
	require.Len(t, buf, 0)
}

func TestAllocBytes_Overflow(t *testing.T) {
	// One deliberately overflow-triggering pair per supported item size.
	for _, itemSize := range []uint{1, 2, 4, 8, 16} {
		if itemSize == 1 {
			// count*1 can never overflow the multiply; only the int cap applies.
			require.Nil(t, AllocBytes(maxUint, itemSize))
			continue
		}
		require.Nil(t, AllocBytes(maxUint/itemSize+1, itemSize), "item size %d", itemSize)
	}

	buf := AllocBytes(128, 8)
	require.NotNil(t, buf)
	require.Len(t, buf, 1024)
}

func TestRecord_Trailing(t *testing.T) {
	type header struct {
		Samples int
		Dims    int
	}

	rec := NewRecord[header, float64](12)
	require.NotNil(t, rec)
	require.Equal(t, 12, rec.Len())

	rec.Header = header{Samples: 6, Dims: 2}
	buf := rec.Trailing()
	for i := range buf {
		buf[i] = float64(i)
	}
	require.Equal(t, 11.0, rec.Trailing()[11])
	require.Equal(t, 6, rec.Header.Samples)
}

func TestRecord_Overflow(t *testing.T) {
	require.Nil(t, NewRecord[struct{}, uint64](maxUint))
}
