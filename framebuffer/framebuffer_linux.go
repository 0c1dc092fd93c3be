package framebuffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/fbdisplay/internal/ioctl"
)

// Device is a Linux framebuffer device (fbdev).
type Device struct {
	name   string
	fd     int
	mem    []byte
	origin int
	geom   Geometry
	closed bool
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
//
// The geometry is queried once; frames are written to the visible area of the
// device memory, which is mapped if the driver allows it.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	var (
		fix  fixScreenInfo
		info varScreenInfo
	)
	if err = ioctl.Do(uintptr(fd), fbioGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Do(uintptr(fd), fbioGetVScreenInfo, unsafe.Pointer(&info)); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	d := &Device{
		name:   name,
		fd:     fd,
		origin: int(info.Yoffset) * int(fix.LineLength),
		geom:   parseGeometry(&fix, &info),
	}

	// Map pixel buffer. Drivers that refuse to be mapped are written to instead.
	if fix.SmemLen > 0 {
		if d.mem, err = unix.Mmap(fd, 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
			d.mem = nil
		}
	}

	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("framebuffer %s (%s)", d.name, d.geom)
}

// Geometry returns the geometry queried when the device was opened.
func (d *Device) Geometry() (Geometry, error) {
	if d.closed {
		return Geometry{}, ErrClosed
	}
	return d.geom, nil
}

// WriteFrame copies frame to the visible area of the device in one operation.
func (d *Device) WriteFrame(frame []byte) error {
	if d.closed {
		return ErrClosed
	}

	if d.mem != nil {
		if d.origin+len(frame) > len(d.mem) {
			return fmt.Errorf("%w: %d bytes at offset %d, device has %d", ErrFrameSize, len(frame), d.origin, len(d.mem))
		}
		copy(d.mem[d.origin:], frame)
		return nil
	}

	n, err := unix.Pwrite(d.fd, frame, int64(d.origin))
	if err != nil {
		return &os.PathError{Op: "write", Path: d.name, Err: err}
	}
	if n < len(frame) {
		return &os.PathError{Op: "write", Path: d.name, Err: io.ErrShortWrite}
	}
	return nil
}

// Close the framebuffer device.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	var err error
	if d.mem != nil {
		err = os.NewSyscallError("munmap", unix.Munmap(d.mem))
		d.mem = nil
	}
	return errors.Join(err, os.NewSyscallError("close", unix.Close(d.fd)))
}
