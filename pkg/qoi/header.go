package qoi

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. All format errors match ErrFormat via errors.Is, so callers
// can branch on the family or on the specific failure.
var (
	ErrFormat = errors.New("qoi: invalid format")

	ErrBufferTooShort = fmt.Errorf("%w: buffer too short for header", ErrFormat)
	ErrBadMagic       = fmt.Errorf("%w: bad magic", ErrFormat)
	ErrBadDimensions  = fmt.Errorf("%w: bad dimensions", ErrFormat)
	ErrBadChannels    = fmt.Errorf("%w: bad channels", ErrFormat)
	ErrBadColorspace  = fmt.Errorf("%w: bad colorspace", ErrFormat)
)

// Header is the fixed 14-byte QOI header. Width and height are stored
// big-endian in the file. Channels is 3 (RGB) or 4 (RGBA); Colorspace is
// 0 (sRGB with linear alpha) or 1 (all channels linear).
type Header struct {
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
	Channels   uint8  `json:"channels"`
	Colorspace uint8  `json:"colorspace"`
}

// PixelBufferSize returns the byte length of the decoded pixel buffer.
func (h Header) PixelBufferSize() int {
	return int(h.Width) * int(h.Height) * int(h.Channels)
}

// ParseHeader reads and validates the header at the start of data.
// It does not touch the opcode stream.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrBufferTooShort, len(data))
	}

	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: %q", ErrBadMagic, data[0:4])
	}

	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}

	if h.Width == 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, h.Width, h.Height)
	}
	// Bounds width*height without a 64-bit multiply. The division order is
	// deliberate: height must be strictly below MaxPixels/width.
	if h.Height >= MaxPixels/h.Width {
		return Header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrBadDimensions, h.Width, h.Height, MaxPixels)
	}
	if h.Channels != 3 && h.Channels != 4 {
		return Header{}, fmt.Errorf("%w: %d", ErrBadChannels, h.Channels)
	}
	if h.Colorspace > 1 {
		return Header{}, fmt.Errorf("%w: %d", ErrBadColorspace, h.Colorspace)
	}

	return h, nil
}

// Validate reports whether data starts with a well-formed QOI header.
// It allocates no pixel data; use it to sniff buffers cheaply.
func Validate(data []byte) bool {
	_, err := ParseHeader(data)
	return err == nil
}
