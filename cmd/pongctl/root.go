//go:build !tinygo

package main

import (
	"pongos/internal/buildinfo"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pongctl",
		Short: "Pong OS developer tool.",
		Long: `pongctl boots the Pong OS kernel on the host HAL and delivers ` +
			`interrupts by hand, so matches and heap usage can be replayed ` +
			`deterministically.`,
		Version:      buildinfo.Short(),
		SilenceUsage: true,
	}
	root.AddCommand(newSimCmd(), newArenaCmd())
	return root
}
