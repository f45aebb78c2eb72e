package led

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
)

// fakeDrawer keeps the last image drawn on it.
type fakeDrawer struct {
	w      int
	img    *image.NRGBA
	halted bool
}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) ColorModel() color.Model { return color.NRGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, 1) }

func (f *fakeDrawer) Halt() error {
	f.halted = true
	return nil
}

func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	f.img = image.NewNRGBA(r)
	draw.Draw(f.img, r, src, sp, draw.Src)
	return nil
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestDrawerPaintsFrame(t *testing.T) {
	fd := &fakeDrawer{w: 3}
	cc := &closeCounter{}
	d := NewDrawer(fd, cc)

	require.NoError(t, d.Write([]byte{150, 0, 0, 0, 0, 0, 0, 150, 0}))
	assert.Equal(t, color.NRGBA{R: 150, A: 255}, fd.img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{A: 255}, fd.img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{G: 150, A: 255}, fd.img.NRGBAAt(2, 0))

	require.NoError(t, d.Halt())
	assert.True(t, fd.halted)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Equal(t, 1, cc.n)
	assert.Equal(t, "fake", d.String())
}

func TestSPIStripThroughBuffer(t *testing.T) {
	buf := bytes.Buffer{}
	d, err := NewSPI(spitest.NewRecordRaw(&buf), 16, 2500*physic.KiloHertz)
	require.NoError(t, err)

	b := NewBuffer(d, 16)
	b.SetBrightness(10)
	b.SetPixelColor(0, RGB(150, 0, 0))
	require.NoError(t, b.Show())

	// nrzled expands every data bit into three SPI bits.
	assert.GreaterOrEqual(t, buf.Len(), 16*3*3)
}

func TestNewSPIRejectsEmptyStrip(t *testing.T) {
	buf := bytes.Buffer{}
	_, err := NewSPI(spitest.NewRecordRaw(&buf), 0, DefaultFreq)
	assert.Error(t, err)
}
