package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, 2500*physic.KiloHertz, c.SPI.Freq())
	assert.Equal(t, zerolog.InfoLevel, c.Level())
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
driver: sim
origin: 15
log_level: debug
spi:
  port: SPI0.0
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "sim", c.Driver)
	assert.Equal(t, 15, c.Origin)
	assert.Equal(t, zerolog.DebugLevel, c.Level())
	assert.Equal(t, "SPI0.0", c.SPI.Port)
	assert.Equal(t, 2500, c.SPI.FreqKHz, "unset fields keep defaults")
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"origin too large", "origin: 16\n", ErrInvalidOrigin},
		{"negative origin", "origin: -1\n", ErrInvalidOrigin},
		{"unknown driver", "driver: pwm\n", ErrUnknownDriver},
		{"zero frequency", "spi:\n  freq_khz: 0\n", ErrInvalidFreq},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, yaml.Unmarshal([]byte(tt.body), c))
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	c, err := Load(writeConfig(t, "driver: pwm\norigin: 20\n"))
	require.NoError(t, err)
	assert.Equal(t, "pwm", c.Driver)
	assert.Equal(t, 20, c.Origin)
	assert.Error(t, c.Validate())

	c.Driver = "sim"
	c.Origin = 3
	assert.NoError(t, c.Validate())
}

func TestLoadBadSyntax(t *testing.T) {
	_, err := Load(writeConfig(t, "driver: [sim\n"))
	assert.Error(t, err)
}

func TestValidateBadLevel(t *testing.T) {
	c := Default()
	c.LogLevel = "loud"
	assert.Error(t, c.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
