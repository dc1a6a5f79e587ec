// Package console is the text line at the top of the screen: boot messages,
// the controls help and echoed keys land here, and every line is mirrored to
// the debug logger.
package console

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"pongos/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	// Height is the number of framebuffer rows owned by the console.
	Height = 16

	fontHeight = 12
	fontOffset = 9

	// Go to column 1, then erase the whole line.
	clearLine = "\x1b[1G\x1b[2K"
)

// Console writes to a single-row tinyterm terminal clipped to the console band.
type Console struct {
	mu   sync.Mutex
	term *tinyterm.Terminal
	disp *hal.FramebufferDisplay
	log  hal.Logger

	// col counts runes echoed on the current line.
	col int
}

// New returns a console drawing into the top band of fb. Either argument may be nil.
func New(fb hal.Framebuffer, log hal.Logger) *Console {
	c := &Console{log: log}
	if fb == nil {
		return c
	}
	c.disp = hal.NewBandDisplay(fb, 0, Height)
	c.term = tinyterm.NewTerminal(c.disp)
	c.term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        fontHeight,
		FontOffset:        fontOffset,
		UseSoftwareScroll: true,
	})
	return c
}

// Write implements io.Writer. Output goes to the screen only.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.term == nil {
		return len(p), nil
	}
	return c.term.Write(p)
}

// Println replaces the console line with the formatted text and logs it.
func (c *Console) Println(args ...any) {
	c.Line(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// Printf works like Println with a format string.
func (c *Console) Printf(format string, args ...any) {
	c.Line(fmt.Sprintf(format, args...))
}

// Line replaces the console line with s and logs it.
func (c *Console) Line(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.col = 0
	if c.term == nil {
		return
	}
	_, _ = c.term.Write([]byte(clearLine))
	_, _ = c.term.Write([]byte(s))
	c.present()
}

// EchoRune appends a typed character to the console line.
func (c *Console) EchoRune(r rune) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.term == nil {
		return
	}
	switch r {
	case '\r', '\n':
		_, _ = c.term.Write([]byte(clearLine))
		c.col = 0
	case '\b', 0x7f:
		c.backspace()
	default:
		if c.col == 0 {
			_, _ = c.term.Write([]byte(clearLine))
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		_, _ = c.term.Write(buf[:n])
		c.col++
	}
	c.present()
}

// EchoKey shows the name of a key that produced no text. Only a typed
// backspace rune edits the line.
func (c *Console) EchoKey(code hal.KeyCode) {
	c.Line("key: " + code.String())
}

func (c *Console) backspace() {
	if c.term == nil || c.col == 0 {
		return
	}
	c.col--
	// Cursor back, then erase to end of line.
	_, _ = c.term.Write([]byte("\x1b[D\x1b[K"))
}

func (c *Console) present() {
	if c.disp != nil {
		_ = c.disp.Display()
	}
}
