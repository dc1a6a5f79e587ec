// Package app boots Pong OS on a HAL: it configures the heap arena, builds the
// match and wires the interrupt handlers.
package app

import (
	"context"
	"encoding/binary"
	"fmt"

	"pongos/console"
	"pongos/hal"
	"pongos/internal/buildinfo"
	"pongos/kernel"
	"pongos/pong"
)

// Config selects the optional boot steps.
type Config struct {
	// SelfTest allocates two cells from the arena and prints their sum.
	SelfTest bool
	// Banner draws the colored boot lines before the first frame.
	Banner bool
}

// DefaultConfig is the boot sequence used on hardware and in the window.
func DefaultConfig() Config {
	return Config{SelfTest: true, Banner: true}
}

// System is a booted kernel.
type System struct {
	Arena    *kernel.Arena
	Store    *pong.Store
	Router   *pong.Router
	Sim      *pong.Sim
	Renderer *pong.Renderer
	Table    *kernel.HandlerTable
	Console  *console.Console

	log hal.Logger
}

// Boot runs the boot sequence and returns the wired system. No interrupt is
// delivered until the caller polls or runs the handler table.
func Boot(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, fmt.Errorf("boot: nil HAL")
	}
	log := h.Logger()
	logf(log, "boot: Pong OS %s", buildinfo.String())

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}

	s := &System{
		Arena:   kernel.NewArena(log),
		Console: console.New(fb, log),
		log:     log,
	}

	if m := h.Memory(); m != nil {
		s.Arena.ConfigureRegion(m.Region())
	}

	// The score line is formatted into arena memory so the timer handler
	// never allocates. Without it the score band stays blank.
	text, err := s.Arena.Bytes(pong.ScratchSize(), 1)
	if err != nil {
		logf(log, "boot: score scratch unavailable: %v", err)
		text = nil
	}
	s.Renderer = pong.NewRenderer(fb, text)

	if cfg.Banner {
		s.Renderer.PaintBanner()
	}

	s.Store = pong.NewStore()
	s.Renderer.PaintFrame(s.Store.Snapshot())
	s.Console.Println("Controls: W/S: Move left paddle, Press SPACE to start")

	if cfg.SelfTest {
		if err := s.selfTest(); err != nil {
			logf(log, "boot: self-test failed: %v", err)
		}
	}

	s.Sim = pong.NewSim(s.Store, s.Renderer)
	s.Router = pong.NewRouter(s.Store, s.Renderer, s.Console, log)

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}
	s.Table = kernel.NewHandlerTable(log).
		Keyboard(func(ev hal.KeyEvent) { s.Router.Handle(ev) }).
		Timer(s.Sim.Tick).
		Startup(func() { s.Console.Println("Welcome to Pong OS!") }).
		Attach(h.Time(), kbd).
		OnPanic(func(info kernel.PanicInfo) { showPanic(log, fb, info) })

	logf(log, "boot: starting kernel, %s", s.Arena.Stats())
	return s, nil
}

// selfTest stores 42 and 24 in two fresh heap cells and prints their sum
// along with both addresses.
func (s *System) selfTest() error {
	x, err := s.Arena.Bytes(8, 8)
	if err != nil {
		return fmt.Errorf("alloc x: %w", err)
	}
	y, err := s.Arena.Bytes(8, 8)
	if err != nil {
		return fmt.Errorf("alloc y: %w", err)
	}
	binary.LittleEndian.PutUint64(x, 42)
	binary.LittleEndian.PutUint64(y, 24)

	sum := binary.LittleEndian.Uint64(x) + binary.LittleEndian.Uint64(y)
	s.Console.Printf("x + y = %d", sum)
	logf(s.log, "boot: x at %p = %d, y at %p = %d", &x[0], binary.LittleEndian.Uint64(x), &y[0], binary.LittleEndian.Uint64(y))
	return nil
}

// Step delivers every pending interrupt once. It is the host runners' frame callback.
func (s *System) Step() error {
	s.Table.Poll()
	return nil
}

// New boots the system and returns its step function for the host runners.
func New(h hal.HAL, cfg Config) func() error {
	s, err := Boot(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.Step
}

// Run boots the system and delivers interrupts forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	s, err := Boot(h, DefaultConfig())
	if err != nil {
		if h != nil {
			logf(h.Logger(), "%v", err)
		}
		select {}
	}
	_ = s.Table.Run(context.Background())
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
