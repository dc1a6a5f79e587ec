package kernel

import (
	"context"
	"sync/atomic"

	"pongos/hal"
)

// Vector identifies an interrupt source.
type Vector uint8

const (
	VectorStartup Vector = iota
	VectorTimer
	VectorKeyboard
)

func (v Vector) String() string {
	switch v {
	case VectorStartup:
		return "startup"
	case VectorTimer:
		return "timer"
	case VectorKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// pollLimit bounds how many pending interrupts one Poll call delivers.
const pollLimit = 256

// HandlerTable routes timer and keyboard interrupts to their handlers.
//
// It plays the role of the interrupt controller on a single core: exactly one
// goroutine delivers interrupts, and each handler runs to completion before
// the next one starts. Handler bodies are therefore mutually exclusive with
// each other without any locking. Poll, Run, FireTimer and FireKey must all
// be called from that one delivering goroutine.
type HandlerTable struct {
	log hal.Logger

	timer    func()
	keyboard func(hal.KeyEvent)
	startup  func()

	ticks <-chan uint64
	keys  <-chan hal.KeyEvent

	started   bool
	inService atomic.Uint32
	halted    atomic.Bool
	onPanic   func(PanicInfo)

	timerCount atomic.Uint64
	keyCount   atomic.Uint64
	nested     atomic.Uint64
	dropped    atomic.Uint64
}

// NewHandlerTable returns an empty table reporting diagnostics to log.
func NewHandlerTable(log hal.Logger) *HandlerTable {
	return &HandlerTable{log: log}
}

// Timer registers the timer interrupt handler.
func (t *HandlerTable) Timer(fn func()) *HandlerTable {
	t.timer = fn
	return t
}

// Keyboard registers the keyboard interrupt handler.
func (t *HandlerTable) Keyboard(fn func(hal.KeyEvent)) *HandlerTable {
	t.keyboard = fn
	return t
}

// Startup registers a callback run once, before the first interrupt is delivered.
func (t *HandlerTable) Startup(fn func()) *HandlerTable {
	t.startup = fn
	return t
}

// Attach connects the table to the platform's interrupt lines. Either source may be nil.
func (t *HandlerTable) Attach(tm hal.Time, kbd hal.Keyboard) *HandlerTable {
	if tm != nil {
		t.ticks = tm.Ticks()
	}
	if kbd != nil {
		t.keys = kbd.Events()
	}
	return t
}

// Poll runs the startup callback if needed, then delivers pending interrupts
// without blocking. It returns the number of handlers invoked.
func (t *HandlerTable) Poll() int {
	t.start()

	n := 0
	for n < pollLimit {
		select {
		case ev, ok := <-t.keys:
			if !ok {
				t.keys = nil
				continue
			}
			t.FireKey(ev)
		case _, ok := <-t.ticks:
			if !ok {
				t.ticks = nil
				continue
			}
			t.FireTimer()
		default:
			return n
		}
		n++
	}
	return n
}

// Run delivers interrupts until ctx is done.
func (t *HandlerTable) Run(ctx context.Context) error {
	t.start()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-t.keys:
			if !ok {
				t.keys = nil
				continue
			}
			t.FireKey(ev)
		case _, ok := <-t.ticks:
			if !ok {
				t.ticks = nil
				continue
			}
			t.FireTimer()
		}
	}
}

// FireTimer delivers one timer interrupt.
func (t *HandlerTable) FireTimer() {
	t.start()
	t.timerCount.Add(1)
	if t.timer == nil {
		return
	}
	t.dispatch(VectorTimer, t.timer)
}

// FireKey delivers one keyboard interrupt carrying ev.
func (t *HandlerTable) FireKey(ev hal.KeyEvent) {
	t.start()
	t.keyCount.Add(1)
	if t.keyboard == nil {
		return
	}
	t.dispatch(VectorKeyboard, func() { t.keyboard(ev) })
}

// IRQStats counts delivered, nested and dropped interrupts.
type IRQStats struct {
	Timer    uint64
	Keyboard uint64
	Nested   uint64
	Dropped  uint64
}

// Stats returns the interrupt counters.
func (t *HandlerTable) Stats() IRQStats {
	return IRQStats{
		Timer:    t.timerCount.Load(),
		Keyboard: t.keyCount.Load(),
		Nested:   t.nested.Load(),
		Dropped:  t.dropped.Load(),
	}
}

func (t *HandlerTable) start() {
	if t.started {
		return
	}
	t.started = true
	if t.startup != nil {
		t.dispatch(VectorStartup, t.startup)
	}
}

func (t *HandlerTable) dispatch(v Vector, fn func()) {
	if t.halted.Load() {
		t.dropped.Add(1)
		return
	}

	// A handler entered while another is in service means the single
	// delivery context was broken; it still runs, the store fields are
	// individually atomic.
	if prev := t.inService.Swap(uint32(v) + 1); prev != 0 {
		t.nested.Add(1)
		t.logf("irq: %s handler entered while %s in service", v, Vector(prev-1))
		defer t.inService.Store(prev)
	} else {
		defer t.inService.Store(0)
	}

	defer func() {
		if r := recover(); r != nil {
			t.halt(PanicInfo{Vector: v, Value: r})
		}
	}()
	fn()
}
