// Package ioctl issues the ioctl system call and describes ioctl requests.
package ioctl

import "fmt"

// Direction bits of an encoded request.
const (
	modeWrite = 1 << iota
	modeRead
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	var (
		mode = c >> 30 & 0x03
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&modeWrite > 0 {
		str += " write"
	}
	if mode&modeRead > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}
