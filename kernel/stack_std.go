//go:build !tinygo

package kernel

import "runtime/debug"

// maxStack bounds the dump kept in PanicInfo; the panic screen shows far less.
const maxStack = 4 << 10

func captureStack() []byte {
	s := debug.Stack()
	if len(s) > maxStack {
		s = s[:maxStack]
	}
	return s
}
