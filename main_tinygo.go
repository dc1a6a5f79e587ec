//go:build tinygo

package main

import (
	"pongos/app"
	"pongos/hal"
)

func main() {
	app.Run(hal.New())
}
