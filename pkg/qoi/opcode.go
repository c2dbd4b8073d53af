package qoi

// opKind tags a classified opcode byte.
type opKind uint8

const (
	kindRGB opKind = iota
	kindRGBA
	kindIndex
	kindDiff
	kindLuma
	kindRun
)

// op is one classified opcode with only the fields its kind uses.
// RGB/RGBA carry no fields here; their channel bytes follow in the stream.
type op struct {
	kind opKind

	index      uint8 // kindIndex: 6-bit cache slot
	dr, dg, db uint8 // kindDiff: per-channel deltas, bias already applied
	vg         uint8 // kindLuma: green delta, bias already applied
	run        int   // kindRun: additional repeats beyond the current pixel
}

// classifyOp dispatches on the opcode byte. The two 8-bit tags are checked
// first; after that the four 2-bit patterns cover every remaining byte
// value, so classification cannot fail.
func classifyOp(b byte) op {
	switch {
	case b == opRGB:
		return op{kind: kindRGB}
	case b == opRGBA:
		return op{kind: kindRGBA}
	}
	switch b & maskOp {
	case opIndex:
		return op{kind: kindIndex, index: b & mask6}
	case opDiff:
		return op{
			kind: kindDiff,
			dr:   (b>>4)&mask2 - 2,
			dg:   (b>>2)&mask2 - 2,
			db:   b&mask2 - 2,
		}
	case opLuma:
		return op{kind: kindLuma, vg: b&mask6 - 32}
	default:
		return op{kind: kindRun, run: int(b & mask6)}
	}
}
