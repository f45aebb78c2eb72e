package led

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// RefreshRate is the WS2812 data rate in kHz.
const RefreshRate physic.Frequency = 800

// DefaultFreq clocks the SPI bus so nrzled can expand each bit into three.
const DefaultFreq = ((RefreshRate * 3) + 100) * physic.KiloHertz

// OpenSPI initialises the host, opens the named SPI port ("" picks the first
// one registered) and attaches a WS2812 strip of count LEDs to it.
func OpenSPI(port string, count int, freq physic.Frequency) (*Drawer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", port, err)
	}
	d, err := NewSPI(p, count, freq)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	d.closer = p
	return d, nil
}

// NewSPI attaches a WS2812 strip of count LEDs to an already open port.
func NewSPI(p spi.Port, count int, freq physic.Frequency) (*Drawer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq <= 0 {
		freq = DefaultFreq
	}
	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return NewDrawer(d, nil), nil
}
