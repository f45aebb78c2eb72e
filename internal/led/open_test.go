package led

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSim(t *testing.T) {
	drv, kind := Open(Options{Kind: KindSim, Count: 16, Logger: zerolog.Nop()})
	assert.Equal(t, KindSim, kind)
	require.IsType(t, &Sim{}, drv)
}

func TestOpenUnknownFallsBackToSim(t *testing.T) {
	var out bytes.Buffer
	drv, kind := Open(Options{Kind: "pwm", Count: 16, Logger: zerolog.New(&out)})
	assert.Equal(t, KindSim, kind)
	require.IsType(t, &Sim{}, drv)
	assert.Contains(t, out.String(), "unknown driver")
}
