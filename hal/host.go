//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	hostScreenWidth  = 640
	hostScreenHeight = 480

	// hostUsableRAM is the usable region reported to the kernel; the heap
	// arena only claims the front of it.
	hostUsableRAM = 1 << 20
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	mem    hostMemory
}

// New returns a host HAL implementation ticking at the default 60 Hz.
func New() HAL {
	return newHostHAL(os.Stdout, time.Second/60)
}

// NewHost returns a host HAL logging to w whose timer only fires when driven
// by a runner. Tools use it to boot the kernel and deliver interrupts by hand.
func NewHost(w io.Writer) HAL {
	return newHostHAL(w, time.Second/60)
}

func newHostHAL(w io.Writer, period time.Duration) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(hostScreenWidth, hostScreenHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(period),
		mem:    hostMemory{buf: make([]byte, hostUsableRAM)},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Memory() Memory   { return h.mem }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostMemory struct {
	buf []byte
}

func (m hostMemory) Region() []byte { return m.buf }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// NewWriterLogger returns a Logger writing newline-delimited lines to w.
func NewWriterLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}
