//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Script injects key events right before the numbered tick fires.
	Script map[uint64][]KeyEvent

	// Log receives the debug channel; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the kernel without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	h := newHostHAL(w, d)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			for _, ev := range cfg.Script[tick] {
				if !h.kbd.inject(ev) {
					h.logger.WriteLineString(fmt.Sprintf("headless: keyboard queue full, dropped %+v", ev))
				}
			}
			h.t.stepN(1)
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
