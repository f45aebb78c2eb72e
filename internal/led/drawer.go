package led

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3/display"
)

// Drawer forwards frames to a periph display.Drawer, such as an nrzled strip
// or the console screen.
type Drawer struct {
	d      display.Drawer
	closer io.Closer
	eol    io.Writer
	img    *image.NRGBA
}

// NewDrawer wraps d. closer, when not nil, is closed by Close and usually is
// the port the device was opened on.
func NewDrawer(d display.Drawer, closer io.Closer) *Drawer {
	return &Drawer{d: d, closer: closer}
}

// Write paints rgb as a single row image and draws it on the device.
func (d *Drawer) Write(rgb []byte) error {
	n := len(rgb) / 3
	if d.img == nil || d.img.Rect.Dx() != n {
		d.img = image.NewNRGBA(image.Rect(0, 0, n, 1))
	}
	for i := 0; i < n; i++ {
		d.img.SetNRGBA(i, 0, RGB(rgb[i*3+0], rgb[i*3+1], rgb[i*3+2]).NRGBA())
	}
	if err := d.d.Draw(d.d.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("draw %s: %w", d.d, err)
	}
	if d.eol != nil {
		fmt.Fprint(d.eol, "\n")
	}
	return nil
}

// Halt turns the LEDs off.
func (d *Drawer) Halt() error {
	return d.d.Halt()
}

// Close releases the underlying port. The LEDs keep their last frame.
func (d *Drawer) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}

func (d *Drawer) String() string {
	return d.d.String()
}
