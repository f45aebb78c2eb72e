package ring

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/coreman2200/ledring/internal/led"
)

const (
	// Brightness is the global brightness set by Init, out of 255.
	Brightness uint8 = 10
	// ChaseDelay is how long each chase frame stays up.
	ChaseDelay = 50 * time.Millisecond
	// BlinkDelay is the on and off time of a blink.
	BlinkDelay = 250 * time.Millisecond
	// ExitBlinks is the number of blinks shown when leaving calibration.
	ExitBlinks = 2
)

var (
	// Red marks the origin while idle.
	Red = led.RGB(150, 0, 0)
	// Green marks the active direction.
	Green = led.RGB(0, 150, 0)
)

// Strip is the LED strip the display draws on. *led.Buffer implements it.
type Strip interface {
	SetPixelColor(i int, c led.Color)
	Clear()
	Show() error
	SetBrightness(b uint8)
}

// Clock blocks the calling goroutine between animation frames.
// clockwork.Clock satisfies it.
type Clock interface {
	Sleep(d time.Duration)
}

// Option configures a Display.
type Option func(*Display)

// WithClock replaces the real-time clock used for animation delays.
func WithClock(c Clock) Option {
	return func(d *Display) { d.clock = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(d *Display) { d.log = l }
}

/*
Display drives a ring of NumPixels LEDs to show calibration progress and a
direction.

Every operation runs to completion on the calling goroutine, blocking on
the clock between frames. Indices are passed to the strip as given; the
display does not range-check them.

Methods are NOT safe to call from multiple goroutines concurrently.
*/
type Display struct {
	strip Strip
	clock Clock
	log   zerolog.Logger

	state State
	lit   int
}

// New returns a Display that owns strip for the life of the process.
func New(strip Strip, opts ...Option) *Display {
	d := &Display{
		strip: strip,
		clock: clockwork.NewRealClock(),
		log:   zerolog.Nop(),
		state: Uninitialized,
		lit:   -1,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// State returns the last steady state, or Calibrating while an animation
// is running.
func (d *Display) State() State { return d.state }

// Lit returns the index of the LED the current state points at, -1 before
// Init.
func (d *Display) Lit() int { return d.lit }

// Init dims the ring and marks origin in red.
func (d *Display) Init(origin int) {
	d.log.Debug().Int("origin", origin).Msg("display init")
	d.strip.SetBrightness(Brightness)
	d.strip.Clear()
	d.strip.SetPixelColor(origin, Red)
	d.show()
	d.settle(Idle, origin)
}

// EnterCalibration lights the ring one LED at a time, starting at origin
// and going once around, then points at origin.
func (d *Display) EnterCalibration(origin int) {
	d.log.Debug().Int("origin", origin).Msg("enter calibration")
	d.state = Calibrating

	d.strip.Clear()
	d.show()

	pos := origin
	for i := 0; i < NumPixels; i++ {
		d.strip.SetPixelColor(pos, Green)
		d.show()
		d.clock.Sleep(ChaseDelay)
		pos = Next(pos)
	}

	d.SetDirection(origin)
}

// ExitCalibration blinks origin green and leaves it red.
func (d *Display) ExitCalibration(origin int) {
	d.log.Debug().Int("origin", origin).Msg("exit calibration")
	d.state = Calibrating

	d.blink(origin, ExitBlinks)

	d.strip.Clear()
	d.show()
	d.clock.Sleep(BlinkDelay)

	d.strip.SetPixelColor(origin, Red)
	d.show()
	d.settle(Idle, origin)
}

// Blink pulses pixel green the given number of times. Each pulse is an
// off frame followed by an on frame, BlinkDelay each, so the pixel is left
// lit.
func (d *Display) Blink(pixel, blinks int) {
	if blinks <= 0 {
		return
	}
	d.state = Calibrating
	d.blink(pixel, blinks)
	d.settle(Directed, pixel)
}

// SetDirection shows a single green LED at pixel.
func (d *Display) SetDirection(pixel int) {
	d.log.Debug().Int("pixel", pixel).Msg("set direction")
	d.strip.Clear()
	d.strip.SetPixelColor(pixel, Green)
	d.show()
	d.settle(Directed, pixel)
}

func (d *Display) blink(pixel, blinks int) {
	for i := 0; i < blinks; i++ {
		d.strip.Clear()
		d.show()
		d.clock.Sleep(BlinkDelay)

		d.strip.SetPixelColor(pixel, Green)
		d.show()
		d.clock.Sleep(BlinkDelay)
	}
}

// show pushes the frame. Failures are logged and the animation carries on.
func (d *Display) show() {
	if err := d.strip.Show(); err != nil {
		d.log.Warn().Err(err).Str("state", string(d.state)).Msg("show failed")
	}
}

func (d *Display) settle(s State, pixel int) {
	d.state = s
	d.lit = pixel
}
