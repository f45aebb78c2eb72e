package led

import (
	"fmt"
	"image/color"
)

// Color is the 8-bit RGB value held for one LED.
type Color struct {
	R, G, B uint8
}

// Off is an unlit LED.
var Off = Color{}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Scale applies a global brightness the way NeoPixel strips do: each channel
// becomes c*(brightness+1)/256, and 255 leaves the color untouched.
func (c Color) Scale(brightness uint8) Color {
	if brightness == 255 {
		return c
	}
	s := uint16(brightness) + 1
	return Color{
		R: uint8((uint16(c.R) * s) >> 8),
		G: uint8((uint16(c.G) * s) >> 8),
		B: uint8((uint16(c.B) * s) >> 8),
	}
}

// IsOff reports whether every channel is zero.
func (c Color) IsOff() bool {
	return c == Off
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
