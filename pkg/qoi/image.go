package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("qoi", Magic, DecodeReader, DecodeConfig)
}

// Image is a decoded QOI image. It implements image.Image over the flat
// pixel buffer, so it can be handed straight to image/png and friends.
type Image struct {
	Header Header
	// Pix holds the pixels in row-major order, Channels bytes each.
	Pix []byte
}

func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.Header.Width), int(m.Header.Height))
}

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.NRGBA{}
	}
	i := (y*int(m.Header.Width) + x) * int(m.Header.Channels)
	c := color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 255}
	if m.Header.Channels == 4 {
		c.A = m.Pix[i+3]
	}
	return c
}

// Opaque reports whether the image has no transparent pixels. 3-channel
// images are opaque by construction.
func (m *Image) Opaque() bool {
	if m.Header.Channels == 3 {
		return true
	}
	for i := 3; i < len(m.Pix); i += 4 {
		if m.Pix[i] != 255 {
			return false
		}
	}
	return true
}

// NRGBA copies the image into a stdlib *image.NRGBA, expanding 3-channel
// pixels with full alpha.
func (m *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(m.Bounds())
	step := int(m.Header.Channels)
	di := 0
	for si := 0; si < len(m.Pix); si += step {
		dst.Pix[di+0] = m.Pix[si+0]
		dst.Pix[di+1] = m.Pix[si+1]
		dst.Pix[di+2] = m.Pix[si+2]
		if step == 4 {
			dst.Pix[di+3] = m.Pix[si+3]
		} else {
			dst.Pix[di+3] = 255
		}
		di += 4
	}
	return dst
}

// DecodeReader reads an entire QOI stream and decodes it. The format has no
// incremental mode; the whole buffer is pulled into memory first.
func DecodeReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	return Decode(data)
}

// DecodeConfig returns the color model and dimensions without decoding
// pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrBufferTooShort, err)
	}
	h, err := ParseHeader(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
