package qoi

// decoder holds the running state for one decode pass. Each call to Decode
// gets its own decoder; nothing is shared across calls.
type decoder struct {
	data   []byte
	cursor int

	prev  Color
	cache colorCache
	run   int
}

// next returns the byte at the cursor and advances it. Callers only pull
// operand bytes after seeing an opcode byte below the end-marker boundary,
// which keeps every read inside the buffer.
func (d *decoder) next() byte {
	b := d.data[d.cursor]
	d.cursor++
	return b
}

// Decode decodes a complete QOI byte buffer into an Image. The returned
// pixel buffer is Width*Height*Channels bytes, row-major; when Channels is 3
// no alpha bytes are emitted at all.
//
// Decode either succeeds with a full-size pixel buffer or fails during
// header validation with one of the Err* values. A stream that runs out of
// opcodes before the end-marker boundary is not an error: the remaining
// pixels repeat the last resolved color, matching the reference decoder.
func Decode(data []byte) (*Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	d := &decoder{
		data:   data,
		cursor: HeaderSize,
		prev:   Color{A: 255},
		cache:  newColorCache(),
	}

	img := &Image{
		Header: h,
		Pix:    make([]byte, h.PixelBufferSize()),
	}
	d.decodePixels(img)
	return img, nil
}

// decodePixels runs the opcode loop, filling img.Pix in decode order.
func (d *decoder) decodePixels(img *Image) {
	step := int(img.Header.Channels)
	// Opcode bytes live strictly below the 8-byte end marker.
	chunksLen := len(d.data) - endMarkerSize

	for pxPos := 0; pxPos < len(img.Pix); pxPos += step {
		switch {
		case d.run > 0:
			d.run--
		case d.cursor < chunksLen:
			switch o := classifyOp(d.next()); o.kind {
			case kindRGB:
				d.prev.R = d.next()
				d.prev.G = d.next()
				d.prev.B = d.next()
			case kindRGBA:
				d.prev.R = d.next()
				d.prev.G = d.next()
				d.prev.B = d.next()
				d.prev.A = d.next()
			case kindIndex:
				d.prev = d.cache[o.index]
			case kindDiff:
				d.prev.R += o.dr
				d.prev.G += o.dg
				d.prev.B += o.db
			case kindLuma:
				b2 := d.next()
				d.prev.R += o.vg - 8 + (b2>>4)&mask4
				d.prev.G += o.vg
				d.prev.B += o.vg - 8 + b2&mask4
			case kindRun:
				d.run = o.run
			}
			// Only opcode-resolved pixels touch the cache. Run
			// continuations and the padded tail must not, or every
			// later INDEX lookup silently diverges.
			d.cache.put(d.prev)
		}

		img.Pix[pxPos] = d.prev.R
		img.Pix[pxPos+1] = d.prev.G
		img.Pix[pxPos+2] = d.prev.B
		if step == 4 {
			img.Pix[pxPos+3] = d.prev.A
		}
	}
}
