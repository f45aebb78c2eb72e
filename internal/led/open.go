package led

import (
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
)

// Kind names an output driver.
type Kind string

const (
	KindSPI     Kind = "spi"
	KindConsole Kind = "console"
	KindSim     Kind = "sim"
)

// Kinds lists the drivers Open understands.
var Kinds = []Kind{KindSPI, KindConsole, KindSim}

// Options selects and configures the output driver.
type Options struct {
	Kind   Kind
	Port   string
	Freq   physic.Frequency
	Count  int
	Logger zerolog.Logger
}

// Open returns the requested driver and the kind actually opened. When the
// SPI strip cannot be opened it falls back to the console; unknown kinds
// fall back to the simulator.
func Open(o Options) (Driver, Kind) {
	switch o.Kind {
	case KindSPI:
		d, err := OpenSPI(o.Port, o.Count, o.Freq)
		if err != nil {
			o.Logger.Warn().Err(err).
				Str("driver", string(KindSPI)).
				Str("port", o.Port).
				Msg("SPI init failed; falling back to console")
			return NewConsole(o.Count), KindConsole
		}
		return d, KindSPI

	case KindConsole:
		return NewConsole(o.Count), KindConsole

	case KindSim:
		return NewSim(o.Logger), KindSim

	default:
		o.Logger.Warn().Str("driver", string(o.Kind)).Msg("unknown driver; using sim")
		return NewSim(o.Logger), KindSim
	}
}
