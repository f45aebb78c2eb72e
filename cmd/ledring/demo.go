package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledring/internal/ring"
)

// runDemo walks the ring through its whole lifecycle: idle, calibrating,
// a direction sweeping laps times around, then idle again. A cancelled ctx
// ends the sweep early; the exit animation still plays. It returns the
// number of sweep steps shown.
func runDemo(ctx context.Context, d *ring.Display, clock ring.Clock, origin int, step time.Duration, laps int) int {
	d.Init(origin)
	d.EnterCalibration(origin)

	pixel := origin
	n := 0
sweep:
	for ; n < laps*ring.NumPixels; n++ {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Int("pixel", pixel).Msg("sweep interrupted")
			break sweep
		default:
		}
		clock.Sleep(step)
		pixel = ring.Next(pixel)
		d.SetDirection(pixel)
	}

	d.ExitCalibration(origin)
	return n
}
