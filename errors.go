package fbdisplay

import "fmt"

// ConstructionError is returned when a Display can not be created. It is not retried.
type ConstructionError struct {
	// Op is the step that failed.
	Op string

	// Path of the device, if known.
	Path string

	Err error
}

func (e *ConstructionError) Error() string {
	return "fbdisplay: " + e.Op + ": " + e.Err.Error()
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// FlushError is returned when the shadow buffer could not be written to the device.
type FlushError struct {
	// Size of the frame in bytes.
	Size int

	Err error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("fbdisplay: flushing %d bytes: %v", e.Size, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}
