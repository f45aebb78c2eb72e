package led

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorScale(t *testing.T) {
	tests := []struct {
		name       string
		in         Color
		brightness uint8
		want       Color
	}{
		{"full brightness is untouched", RGB(150, 0, 0), 255, RGB(150, 0, 0)},
		{"dim red", RGB(150, 0, 0), 10, RGB(6, 0, 0)},
		{"dim green", RGB(0, 150, 0), 10, RGB(0, 6, 0)},
		{"half white", RGB(255, 255, 255), 127, RGB(127, 127, 127)},
		{"zero brightness", RGB(255, 255, 255), 0, RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Scale(tt.brightness))
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#009600", RGB(0, 150, 0).String())
	assert.True(t, Off.IsOff())
	assert.False(t, RGB(1, 0, 0).IsOff())
	assert.Equal(t, uint8(255), RGB(1, 2, 3).NRGBA().A)
}
