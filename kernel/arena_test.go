package kernel

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaUnconfigured(t *testing.T) {
	a := NewArena(nil)

	_, err := a.Allocate(8, 8)
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, uint64(1), a.Stats().Failures)
}

func TestArenaBumpsForward(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x1000)

	addr, err := a.Allocate(8, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1000), addr)

	addr, err = a.Allocate(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1008), addr)

	addr, err = a.Allocate(8, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1010), addr)

	st := a.Stats()
	assert.Equal(t, uintptr(0x18), st.Offset)
	assert.Equal(t, uint64(3), st.Allocations)
}

func TestArenaAlignment(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x1001)

	addr, err := a.Allocate(4, 16)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1010), addr)
	assert.Zero(t, addr%16)

	// Zero alignment behaves like one.
	addr, err = a.Allocate(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x1014), addr)
}

func TestArenaZeroSize(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x2000)

	first, err := a.Allocate(0, 8)
	require.NoError(t, err)
	second, err := a.Allocate(0, 8)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Zero(t, a.Stats().Offset)
}

func TestArenaCapacity(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x10000)

	_, err := a.Allocate(Capacity, 1)
	require.NoError(t, err)

	_, err = a.Allocate(1, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uintptr(Capacity), a.Stats().Offset)
}

func TestArenaFailureKeepsCursor(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x4000)

	_, err := a.Allocate(10, 1)
	require.NoError(t, err)

	_, err = a.Allocate(Capacity, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uintptr(10), a.Stats().Offset)

	addr, err := a.Allocate(5, 1)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x4000+10), addr)

	// An alignment that would push past the end fails the same way.
	_, err = a.Allocate(1, 1<<20)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uintptr(15), a.Stats().Offset)
}

func TestArenaOverflowingRequest(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x4000)

	_, err := a.Allocate(^uintptr(0), 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Zero(t, a.Stats().Offset)
}

func TestArenaReleaseDoesNotReclaim(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x1000)

	first, err := a.Allocate(16, 8)
	require.NoError(t, err)
	a.Release(first)

	second, err := a.Allocate(16, 8)
	require.NoError(t, err)
	assert.Equal(t, first+16, second)
	assert.Equal(t, uint64(1), a.Stats().Releases)
}

func TestArenaRegionClampsToCapacity(t *testing.T) {
	buf := make([]byte, 2*Capacity)
	a := NewArena(nil)
	a.ConfigureRegion(buf)

	st := a.Stats()
	assert.Equal(t, uintptr(unsafe.Pointer(&buf[0])), st.Base)
	assert.Equal(t, uintptr(Capacity), st.Capacity)
}

func TestArenaBytes(t *testing.T) {
	buf := make([]byte, 64)
	a := NewArena(nil)
	a.ConfigureRegion(buf)

	x, err := a.Bytes(8, 8)
	require.NoError(t, err)
	y, err := a.Bytes(8, 8)
	require.NoError(t, err)

	require.Len(t, x, 8)
	assert.Equal(t, 8, cap(x))
	x[0] = 42
	y[0] = 24
	assert.Equal(t, byte(42), x[0])
	assert.NotEqual(t, unsafe.Pointer(&x[0]), unsafe.Pointer(&y[0]))

	_, err = a.Bytes(64, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = a.Bytes(-1, 1)
	require.Error(t, err)
}

func TestArenaBytesNeedsRegion(t *testing.T) {
	a := NewArena(nil)
	a.Configure(0x1000)

	_, err := a.Bytes(8, 8)
	require.ErrorIs(t, err, ErrNoRegion)
}

func TestArenaEmptyRegionStaysUnconfigured(t *testing.T) {
	a := NewArena(nil)
	a.ConfigureRegion(nil)

	_, err := a.Bytes(1, 1)
	require.ErrorIs(t, err, ErrNotConfigured)
}
