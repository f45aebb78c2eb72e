package led

import (
	"errors"
	"fmt"
)

// ErrNoDriver is returned by Show when the buffer has nowhere to send frames.
var ErrNoDriver = errors.New("led: no driver")

/*
Buffer holds the colors of a strip until Show pushes them to a Driver.

Writes to positions outside the strip are ignored. Global brightness is
applied when the frame is serialised, so the stored colors are never
degraded by a low brightness setting.

Methods are NOT safe to call from multiple goroutines concurrently.
*/
type Buffer struct {
	drv        Driver
	pixels     []Color
	frame      []byte
	brightness uint8
}

// NewBuffer creates a buffer of count LEDs, all off, at full brightness.
func NewBuffer(drv Driver, count int) *Buffer {
	if count < 0 {
		count = 0
	}
	return &Buffer{
		drv:        drv,
		pixels:     make([]Color, count),
		frame:      make([]byte, count*3),
		brightness: 255,
	}
}

// Len returns the number of LEDs in the strip.
func (b *Buffer) Len() int { return len(b.pixels) }

// SetPixelColor records the color an LED shows at the next Show.
func (b *Buffer) SetPixelColor(i int, c Color) {
	if i < 0 || i >= len(b.pixels) {
		return
	}
	b.pixels[i] = c
}

// Pixel returns the color recorded at i, or Off when i is out of range.
func (b *Buffer) Pixel(i int) Color {
	if i < 0 || i >= len(b.pixels) {
		return Off
	}
	return b.pixels[i]
}

// Pixels returns a copy of the recorded colors.
func (b *Buffer) Pixels() []Color {
	out := make([]Color, len(b.pixels))
	copy(out, b.pixels)
	return out
}

// Clear turns every LED off. It does not call Show.
func (b *Buffer) Clear() {
	for i := range b.pixels {
		b.pixels[i] = Off
	}
}

// SetBrightness sets the global brightness, 255 being the maximum.
func (b *Buffer) SetBrightness(v uint8) { b.brightness = v }

func (b *Buffer) Brightness() uint8 { return b.brightness }

// Show scales the recorded colors by the global brightness and writes the
// frame to the driver.
func (b *Buffer) Show() error {
	if b.drv == nil {
		return ErrNoDriver
	}
	for i, c := range b.pixels {
		s := c.Scale(b.brightness)
		b.frame[i*3+0] = s.R
		b.frame[i*3+1] = s.G
		b.frame[i*3+2] = s.B
	}
	if err := b.drv.Write(b.frame); err != nil {
		return fmt.Errorf("led: show: %w", err)
	}
	return nil
}
