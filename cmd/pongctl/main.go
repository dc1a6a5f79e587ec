//go:build !tinygo

// Command pongctl drives the Pong OS kernel from the command line without a
// window: scripted matches and arena allocation replays.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
