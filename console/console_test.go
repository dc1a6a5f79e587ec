//go:build !tinygo

package console

import (
	"testing"

	"pongos/hal"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func rowsBlank(fb hal.Framebuffer, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width(); x++ {
			if hal.PixelAt(fb, x, y) != 0 {
				return false
			}
		}
	}
	return true
}

func TestConsoleLineDrawsAndLogs(t *testing.T) {
	fb := hal.NewFramebuffer(640, 480)
	log := &lineLog{}
	c := New(fb, log)

	c.Println("Welcome to", "Pong OS!")

	if len(log.lines) != 1 || log.lines[0] != "Welcome to Pong OS!" {
		t.Fatalf("log = %q, want [Welcome to Pong OS!]", log.lines)
	}
	if rowsBlank(fb, 0, Height) {
		t.Fatal("expected text in the console band")
	}
	if !rowsBlank(fb, Height, 480) {
		t.Fatal("console drew outside its band")
	}
}

func TestConsoleStaysInBand(t *testing.T) {
	fb := hal.NewFramebuffer(640, 480)
	c := New(fb, nil)

	// Enough text to wrap the single row several times.
	for i := 0; i < 400; i++ {
		c.EchoRune(rune('a' + i%26))
	}
	c.EchoRune('\n')
	c.Printf("x + y = %d", 66)

	if !rowsBlank(fb, Height, 480) {
		t.Fatal("console drew outside its band")
	}
}

func TestConsoleEchoKeyLogsName(t *testing.T) {
	log := &lineLog{}
	c := New(hal.NewFramebuffer(640, 480), log)

	c.EchoKey(hal.KeyUp)
	c.EchoRune('z')
	c.EchoKey(hal.KeyBackspace)

	want := []string{"key: ArrowUp", "key: " + hal.KeyBackspace.String()}
	if len(log.lines) != len(want) {
		t.Fatalf("log = %q, want %q", log.lines, want)
	}
	for i := range want {
		if log.lines[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, log.lines[i], want[i])
		}
	}
	if c.col != 0 {
		t.Fatalf("col = %d after key name, want 0", c.col)
	}
}

func TestConsoleBackspaceRuneErases(t *testing.T) {
	c := New(hal.NewFramebuffer(640, 480), nil)

	c.EchoRune('a')
	c.EchoRune('b')
	c.EchoRune('\b')
	if c.col != 1 {
		t.Fatalf("col = %d after backspace rune, want 1", c.col)
	}
	c.EchoRune(0x7f)
	c.EchoRune(0x7f)
	if c.col != 0 {
		t.Fatalf("col = %d after erasing past start, want 0", c.col)
	}
}

func TestConsoleWithoutFramebuffer(t *testing.T) {
	log := &lineLog{}
	c := New(nil, log)

	c.Println("boot")
	c.EchoRune('w')
	if n, err := c.Write([]byte("abc")); n != 3 || err != nil {
		t.Fatalf("Write() = %d, %v, want 3, nil", n, err)
	}
	if len(log.lines) != 1 {
		t.Fatalf("log = %q, want one line", log.lines)
	}
}
