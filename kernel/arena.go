package kernel

import (
	"errors"
	"fmt"
	"unsafe"

	"pongos/hal"
)

// Capacity is the fixed size of the kernel heap arena.
const Capacity = 100 * 1024

var (
	// ErrCapacityExceeded reports a reservation that would run past the end
	// of the arena.
	ErrCapacityExceeded = errors.New("arena: capacity exceeded")

	// ErrNotConfigured reports an allocation before Configure.
	ErrNotConfigured = errors.New("arena: not configured")

	// ErrNoRegion reports a slice request on an arena configured with a bare
	// address instead of a backing region.
	ErrNoRegion = errors.New("arena: no backing region")
)

// Arena is a bump allocator over one fixed region.
//
// The cursor only moves forward: Release never reclaims space, so every
// allocation lives for the lifetime of the kernel. This is only suitable for
// a bounded allocation budget fixed at design time.
//
// Arena has no internal locking. Callers rely on interrupt handlers running
// one at a time (see HandlerTable).
type Arena struct {
	log hal.Logger

	base       uintptr
	capacity   uintptr
	offset     uintptr
	configured bool
	region     []byte

	allocs   uint64
	failures uint64
	releases uint64
}

// ArenaStats is a point-in-time view of the arena cursor and counters.
type ArenaStats struct {
	Base        uintptr
	Capacity    uintptr
	Offset      uintptr
	Allocations uint64
	Failures    uint64
	Releases    uint64
}

// NewArena returns an unconfigured arena that reports diagnostics to log.
func NewArena(log hal.Logger) *Arena {
	return &Arena{log: log}
}

// Configure sets the base address and resets the cursor. It must be called
// exactly once, before the first allocation.
func (a *Arena) Configure(base uintptr) {
	a.base = base
	a.capacity = Capacity
	a.offset = 0
	a.region = nil
	a.configured = true
	a.logf("arena: configured base=%#x capacity=%d", base, a.capacity)
}

// ConfigureRegion configures the arena over buf, using at most Capacity
// bytes of it. Allocations can then be viewed as byte slices with Bytes.
func (a *Arena) ConfigureRegion(buf []byte) {
	if len(buf) == 0 {
		a.logf("arena: empty region, arena left unconfigured")
		return
	}
	n := len(buf)
	if n > Capacity {
		n = Capacity
	}
	a.region = buf[:n:n]
	a.base = uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	a.capacity = uintptr(n)
	a.offset = 0
	a.configured = true
	a.logf("arena: configured region base=%#x capacity=%d", a.base, a.capacity)
}

// Allocate reserves size bytes aligned to align and returns their address.
//
// align must be a power of two; zero is treated as one. A failed request
// leaves the cursor untouched.
func (a *Arena) Allocate(size, align uintptr) (uintptr, error) {
	if !a.configured {
		a.failures++
		a.logf("arena: alloc failed: not configured (size=%d)", size)
		return 0, ErrNotConfigured
	}
	if align == 0 {
		align = 1
	}

	start := alignUp(a.base+a.offset, align)
	end := start + size
	if start < a.base || end < start || end-a.base > a.capacity {
		a.failures++
		a.logf("arena: alloc failed: not enough memory (size=%d align=%d used=%d capacity=%d)",
			size, align, a.offset, a.capacity)
		return 0, ErrCapacityExceeded
	}

	a.offset = end - a.base
	a.allocs++
	return start, nil
}

// Bytes allocates like Allocate and returns the reservation as a slice of
// the backing region. The slice capacity is clipped to size.
func (a *Arena) Bytes(size, align int) ([]byte, error) {
	if size < 0 || align < 0 {
		return nil, fmt.Errorf("arena: invalid request size=%d align=%d", size, align)
	}
	if a.configured && a.region == nil {
		return nil, ErrNoRegion
	}
	addr, err := a.Allocate(uintptr(size), uintptr(align))
	if err != nil {
		return nil, err
	}
	off := int(addr - a.base)
	return a.region[off : off+size : off+size], nil
}

// Release is a no-op: the arena never reclaims. The call is only logged.
func (a *Arena) Release(addr uintptr) {
	a.releases++
	a.logf("arena: release called at %#x (ignored)", addr)
}

// Stats returns the current cursor and counters.
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		Base:        a.base,
		Capacity:    a.capacity,
		Offset:      a.offset,
		Allocations: a.allocs,
		Failures:    a.failures,
		Releases:    a.releases,
	}
}

func (s ArenaStats) String() string {
	return fmt.Sprintf("base=%#x used=%d/%d allocs=%d failures=%d releases=%d",
		s.Base, s.Offset, s.Capacity, s.Allocations, s.Failures, s.Releases)
}

func (a *Arena) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

func alignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}
