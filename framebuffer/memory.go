package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// Memory is a framebuffer device backed by process memory.
//
// It keeps the last frame written to it. Memory is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	geom   Geometry
	frame  []byte
	writes int
	err    error
	closed bool
}

// NewMemory returns a device with the given geometry and a zeroed frame.
func NewMemory(geom Geometry) *Memory {
	return &Memory{
		geom:  geom,
		frame: make([]byte, geom.FrameSize()),
	}
}

func (m *Memory) String() string {
	return fmt.Sprintf("memory framebuffer (%s)", m.geom)
}

func (m *Memory) Geometry() (Geometry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Geometry{}, ErrClosed
	}
	return m.geom, nil
}

// WriteFrame copies frame into the device memory.
func (m *Memory) WriteFrame(frame []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.closed:
		return ErrClosed
	case m.err != nil:
		return m.err
	case len(frame) > len(m.frame):
		return fmt.Errorf("%w: %d bytes, device has %d", ErrFrameSize, len(frame), len(m.frame))
	}
	copy(m.frame, frame)
	m.writes++
	return nil
}

// SetWriteError makes subsequent writes fail with err, or succeed again if err is nil.
func (m *Memory) SetWriteError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Frame returns a copy of the device memory.
func (m *Memory) Frame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.frame...)
}

// Writes is the number of successful WriteFrame calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Image decodes the device memory into an RGBA image, as the display would show it.
func (m *Memory) Image() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		g   = m.geom
		bpp = g.BytesPerPixel()
		img = image.NewRGBA(image.Rect(0, 0, int(g.Width), int(g.Height)))
	)
	if bpp < 3 {
		return img
	}
	for y := 0; y < int(g.Height); y++ {
		for x := 0; x < int(g.Width); x++ {
			offset := y*int(g.LineLength) + x*bpp
			if offset+2 >= len(m.frame) {
				return img
			}
			c := g.Order.Get(m.frame[offset:])
			img.SetRGBA(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff})
		}
	}
	return img
}

// Close the device. Further calls fail with [ErrClosed].
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
