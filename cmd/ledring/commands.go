package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coreman2200/ledring/internal/ring"
)

func (a *app) originFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.origin, "origin", 0, "index of the front LED")
}

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Dim the ring and mark the origin in red",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.display.Init(a.cfg.Origin)
			return nil
		},
	}
	a.originFlag(cmd)
	return cmd
}

func (a *app) calibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Play the enter and exit calibration animations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := a.cfg.Origin
			a.display.Init(o)
			a.display.EnterCalibration(o)
			a.display.ExitCalibration(o)
			return nil
		},
	}
	a.originFlag(cmd)
	return cmd
}

func (a *app) directionCmd() *cobra.Command {
	var relative bool
	cmd := &cobra.Command{
		Use:   "direction PIXEL",
		Short: "Light a single LED in green",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pixel, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("pixel %q: %w", args[0], err)
			}
			if relative {
				// steps from the origin, either way round
				pixel = ring.Wrap(a.cfg.Origin + pixel)
			}
			if pixel < 0 || pixel >= ring.NumPixels {
				return fmt.Errorf("pixel %d not in [0,%d)", pixel, ring.NumPixels)
			}
			a.display.Init(a.cfg.Origin)
			a.display.SetDirection(pixel)
			return nil
		},
	}
	a.originFlag(cmd)
	cmd.Flags().BoolVar(&relative, "relative", false, "count PIXEL from the origin; negative goes counter-clockwise")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	var (
		step time.Duration
		laps int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Calibrate, sweep the direction around the ring, then return to idle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n := runDemo(ctx, a.display, a.clock, a.cfg.Origin, step, laps)
			log.Info().Int("steps", n).Msg("demo done")
			if ctx.Err() != nil {
				a.halt()
			}
			return nil
		},
	}
	a.originFlag(cmd)
	cmd.Flags().DurationVar(&step, "step", 250*time.Millisecond, "time each direction is shown")
	cmd.Flags().IntVar(&laps, "laps", 1, "number of times the direction goes around the ring")
	return cmd
}
