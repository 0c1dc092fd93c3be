//go:build !linux

package framebuffer

// Device is a framebuffer device. It is only implemented on Linux.
type Device struct{}

// Open always fails with [ErrNotSupported] on this platform.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (*Device) Geometry() (Geometry, error) { return Geometry{}, ErrNotSupported }

func (*Device) WriteFrame([]byte) error { return ErrNotSupported }

func (*Device) Close() error { return nil }
