package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/ledring/internal/led"
	"github.com/coreman2200/ledring/internal/ring"
)

var (
	ErrInvalidOrigin = errors.New("origin out of range")
	ErrUnknownDriver = errors.New("unknown driver")
	ErrInvalidFreq   = errors.New("spi frequency must be positive")
)

type SPI struct {
	Port    string `yaml:"port"`     // periph spireg name, "" picks the first port
	FreqKHz int    `yaml:"freq_khz"` // e.g. 2500
}

// Freq returns the SPI clock as a periph frequency.
func (s SPI) Freq() physic.Frequency {
	return physic.Frequency(s.FreqKHz) * physic.KiloHertz
}

type Config struct {
	Driver   string `yaml:"driver"` // "spi" | "console" | "sim"
	Origin   int    `yaml:"origin"`
	LogLevel string `yaml:"log_level"`

	SPI SPI `yaml:"spi,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Driver:   string(led.KindSPI),
		Origin:   0,
		LogLevel: zerolog.InfoLevel.String(),
		SPI: SPI{
			FreqKHz: int(led.DefaultFreq / physic.KiloHertz),
		},
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default value. The result is not validated, so command line flags
// can still replace a bad value before Validate runs.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values the ring and drivers cannot cope with.
func (c *Config) Validate() error {
	if c.Origin < 0 || c.Origin >= ring.NumPixels {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidOrigin, c.Origin, ring.NumPixels)
	}
	known := false
	for _, k := range led.Kinds {
		if string(k) == c.Driver {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Driver)
	}
	if c.SPI.FreqKHz <= 0 {
		return fmt.Errorf("%w: %d kHz", ErrInvalidFreq, c.SPI.FreqKHz)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
