//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"pongos/app"
	"pongos/hal"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"
)

func main() {
	// A missing .env is normal; only explicit values matter.
	_ = godotenv.Load()
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, boots the kernel on the chosen backend and returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pongos", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg hal.HeadlessConfig
	var scale int
	var keys string
	fs.BoolVar(&cfg.Enabled, "headless", envBool("PONGOS_HEADLESS", false), "Run without a window.")
	fs.IntVar(&cfg.Hz, "hz", envInt("PONGOS_HZ", 60), "Timer interrupt rate.")
	fs.Uint64Var(&cfg.Ticks, "ticks", uint64(envInt("PONGOS_TICKS", 0)), "Stop after N ticks in headless mode (0 = run forever).")
	fs.IntVar(&scale, "scale", envInt("PONGOS_SCALE", 1), "Window scale factor.")
	fs.StringVar(&keys, "keys", os.Getenv("PONGOS_KEYS"), "Headless key script, e.g. 3:w,10:s,20:space.")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	script, err := app.ParseKeyScript(keys)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg.Script = script
	cfg.Log = stdout

	var sys *app.System
	newApp := func(h hal.HAL) func() error {
		s, err := app.Boot(h, app.DefaultConfig())
		if err != nil {
			return func() error { return err }
		}
		sys = s
		return s.Step
	}
	atexit.Register(func() {
		if sys == nil {
			return
		}
		snap := sys.Store.Snapshot()
		fmt.Fprintf(stdout, "pongos: score %d - %d, arena %s, irq %+v\n",
			snap.LeftScore, snap.RightScore, sys.Arena.Stats(), sys.Table.Stats())
	})

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if err := hal.RunWindow(hal.WindowConfig{Hz: cfg.Hz, Scale: scale}, newApp); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
