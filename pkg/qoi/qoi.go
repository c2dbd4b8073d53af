// Package qoi provides a native Go decoder for the QOI ("Quite OK Image") format.
//
// This package is decode-only and provides:
//   - Header parsing and validation
//   - Full opcode-stream decoding to a flat RGB/RGBA pixel buffer
//   - image.Image integration, including image.RegisterFormat wiring
//
// Basic usage:
//
//	// Decode a QOI byte buffer
//	img, err := qoi.Decode(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Access the raw pixel bytes
//	pix := img.Pix // len = Width * Height * Channels
//
//	// Or sniff a buffer without decoding pixels
//	if qoi.Validate(data) {
//		// Process QOI data
//	}
package qoi

const (
	// Magic is the 4-byte tag at the start of every QOI file.
	Magic = "qoif"

	// HeaderSize is the fixed byte length of the QOI header.
	HeaderSize = 14

	// MaxPixels bounds width*height for a decodable image. Anything larger
	// is rejected during header validation.
	MaxPixels = 400_000_000

	// endMarkerSize is the fixed trailing padding; those bytes are never
	// interpreted as opcodes.
	endMarkerSize = 8
)

// Opcode tags. The 8-bit tags are checked before the 2-bit tags since
// 0xFE/0xFF would otherwise match the RUN pattern.
const (
	opRGB  byte = 0b11111110
	opRGBA byte = 0b11111111

	opIndex byte = 0b00000000
	opDiff  byte = 0b01000000
	opLuma  byte = 0b10000000
	opRun   byte = 0b11000000
)

const (
	maskOp byte = 0b11000000
	mask6  byte = 0b00111111
	mask4  byte = 0b00001111
	mask2  byte = 0b00000011
)
