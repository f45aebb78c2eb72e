package led

import (
	"os"

	"periph.io/x/extra/devices/screen"
)

// NewConsole returns a Drawer that prints each frame as a row of colored
// blocks on stdout. It stands in for the strip on machines without SPI.
func NewConsole(count int) *Drawer {
	d := NewDrawer(screen.New(count), nil)
	d.eol = os.Stdout
	return d
}
