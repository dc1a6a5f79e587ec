//go:build !tinygo

package main

import (
	"errors"
	"fmt"
	"io"

	"pongos/hal"
	"pongos/kernel"

	"github.com/spf13/cobra"
)

type arenaOptions struct {
	sizes   []int
	align   int
	base    uint64
	verbose bool
}

func newArenaCmd() *cobra.Command {
	opts := arenaOptions{}
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Replay an allocation sequence against a fresh heap arena.",
		Long: "`arena --sizes 8,16,1024 --align 8` configures a new arena and " +
			"prints the address of every allocation, or the reason it failed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArena(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", []int{8, 8}, "Allocation sizes in bytes.")
	cmd.Flags().IntVar(&opts.align, "align", 8, "Alignment for every allocation (power of two).")
	cmd.Flags().Uint64Var(&opts.base, "base", 0x100000, "Arena base address.")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Echo the arena debug log.")
	return cmd
}

func runArena(out io.Writer, opts arenaOptions) error {
	if opts.align < 0 || opts.align&(opts.align-1) != 0 {
		return fmt.Errorf("arena: align %d is not a power of two", opts.align)
	}

	var log hal.Logger
	if opts.verbose {
		log = hal.NewWriterLogger(out)
	}
	a := kernel.NewArena(log)
	a.Configure(uintptr(opts.base))

	for i, size := range opts.sizes {
		if size < 0 {
			return fmt.Errorf("arena: size %d is negative", size)
		}
		addr, err := a.Allocate(uintptr(size), uintptr(opts.align))
		switch {
		case errors.Is(err, kernel.ErrCapacityExceeded):
			fmt.Fprintf(out, "#%d size=%d: out of memory\n", i, size)
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "#%d size=%d: %#x\n", i, size, addr)
		}
	}
	fmt.Fprintf(out, "stats: %s\n", a.Stats())
	return nil
}
