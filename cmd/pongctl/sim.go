//go:build !tinygo

package main

import (
	"fmt"
	"io"

	"pongos/app"
	"pongos/hal"

	"github.com/spf13/cobra"
)

type simOptions struct {
	ticks   uint64
	keys    string
	verbose bool
	banner  bool
}

func newSimCmd() *cobra.Command {
	opts := simOptions{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a scripted match and print the final state.",
		Long: "`sim --ticks 600 --keys 3:w,10:s,20:space` boots the kernel, " +
			"delivers the scripted key presses right before the numbered " +
			"timer ticks and prints the match state after the last tick.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().Uint64Var(&opts.ticks, "ticks", 60, "Number of timer interrupts to deliver.")
	cmd.Flags().StringVar(&opts.keys, "keys", "", "Key script as tick:key pairs, e.g. 3:w,10:s,20:space.")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show the kernel debug channel on stderr.")
	cmd.Flags().BoolVar(&opts.banner, "banner", false, "Run the full boot sequence including the self-test and banner.")
	return cmd
}

func runSim(out, errOut io.Writer, opts simOptions) error {
	script, err := app.ParseKeyScript(opts.keys)
	if err != nil {
		return err
	}

	logw := io.Discard
	if opts.verbose {
		logw = errOut
	}

	cfg := app.Config{}
	if opts.banner {
		cfg = app.DefaultConfig()
	}
	sys, err := app.Boot(hal.NewHost(logw), cfg)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	for tick := uint64(1); tick <= opts.ticks; tick++ {
		for _, ev := range script[tick] {
			sys.Table.FireKey(ev)
		}
		sys.Table.FireTimer()
		if sys.Table.Halted() {
			return fmt.Errorf("sim: kernel halted at tick %d", tick)
		}
	}

	s := sys.Store.Snapshot()
	fmt.Fprintf(out, "ticks:   %d\n", opts.ticks)
	fmt.Fprintf(out, "score:   %d - %d\n", s.LeftScore, s.RightScore)
	fmt.Fprintf(out, "ball:    (%d,%d) v=(%d,%d)\n", s.BallX, s.BallY, s.VelX, s.VelY)
	fmt.Fprintf(out, "paddles: left=%d right=%d ai=%d\n", s.LeftY, s.RightY, s.AIDir)
	fmt.Fprintf(out, "input:   up=%t down=%t idle=%d\n", s.MoveUp, s.MoveDown, s.Idle)
	fmt.Fprintf(out, "arena:   %s\n", sys.Arena.Stats())
	st := sys.Table.Stats()
	fmt.Fprintf(out, "irq:     timer=%d keyboard=%d nested=%d dropped=%d\n", st.Timer, st.Keyboard, st.Nested, st.Dropped)
	return nil
}
