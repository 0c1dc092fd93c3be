package framebuffer

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/fbdisplay/pixel"
)

func TestMemory(t *testing.T) {
	geom := Geometry{Width: 2, Height: 2, LineLength: 12, BitsPerPixel: 32}
	m := NewMemory(geom)

	g, err := m.Geometry()
	require.NoError(t, err)
	assert.Equal(t, geom, g)
	assert.Equal(t, make([]byte, 24), m.Frame())
	assert.Zero(t, m.Writes())

	frame := make([]byte, 24)
	frame[12], frame[13], frame[14] = 30, 20, 10
	require.NoError(t, m.WriteFrame(frame))
	assert.Equal(t, frame, m.Frame())
	assert.Equal(t, 1, m.Writes())

	frame[0] = 0xff
	assert.Zero(t, m.Frame()[0], "device must hold a copy of the frame")

	img := m.Image()
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(1, 1))
}

func TestMemoryOrder(t *testing.T) {
	m := NewMemory(Geometry{Width: 1, Height: 1, LineLength: 3, BitsPerPixel: 24, Order: pixel.OrderRGB})
	require.NoError(t, m.WriteFrame([]byte{10, 20, 30}))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, m.Image().RGBAAt(0, 0))
}

func TestMemoryWriteError(t *testing.T) {
	m := NewMemory(Geometry{Width: 1, Height: 1, LineLength: 4, BitsPerPixel: 32})
	failure := errors.New("device unplugged")

	m.SetWriteError(failure)
	assert.ErrorIs(t, m.WriteFrame(make([]byte, 4)), failure)
	assert.Zero(t, m.Writes())

	m.SetWriteError(nil)
	assert.NoError(t, m.WriteFrame(make([]byte, 4)))
	assert.Equal(t, 1, m.Writes())
}

func TestMemoryFrameSize(t *testing.T) {
	m := NewMemory(Geometry{Width: 1, Height: 1, LineLength: 4, BitsPerPixel: 32})
	assert.ErrorIs(t, m.WriteFrame(make([]byte, 5)), ErrFrameSize)
}

func TestMemoryClose(t *testing.T) {
	m := NewMemory(Geometry{Width: 1, Height: 1, LineLength: 4, BitsPerPixel: 32})
	require.NoError(t, m.Close())

	_, err := m.Geometry()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.WriteFrame(make([]byte, 4)), ErrClosed)
}
