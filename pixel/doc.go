// Package pixel implements the color and image types used to address framebuffer memory.
//
// This module provides an RGB color capability and a byte-aligned image, compatible with
// Go's native [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
