package kernel

import "fmt"

// PanicInfo contains details about a panic recovered from an interrupt handler.
type PanicInfo struct {
	Vector Vector
	Value  any
	Stack  []byte
}

// OnPanic installs the handler invoked when an interrupt handler panics.
//
// The handler is invoked at most once (on the first panic). It must not panic.
func (t *HandlerTable) OnPanic(fn func(PanicInfo)) *HandlerTable {
	t.onPanic = fn
	return t
}

// Halted reports whether a handler has panicked. A halted table drops every
// further interrupt, like a CPU parked in its fault loop.
func (t *HandlerTable) Halted() bool {
	return t.halted.Load()
}

func (t *HandlerTable) halt(info PanicInfo) {
	if !t.halted.CompareAndSwap(false, true) {
		return
	}
	info.Stack = captureStack()
	t.logf("irq: panic in %s handler: %v", info.Vector, info.Value)
	if t.onPanic != nil {
		t.onPanic(info)
	}
}

func (t *HandlerTable) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString(fmt.Sprintf(format, args...))
}
