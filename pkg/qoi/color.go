package qoi

// Color is one decoded pixel. All channel arithmetic in the format is
// modular 8-bit: deltas wrap on overflow rather than saturate, which the
// uint8 fields give us directly.
type Color struct {
	R, G, B, A uint8
}

// hash maps a color to its cache slot. The multiplies wrap modulo 256
// before the final reduction, matching the reference behavior.
func (c Color) hash() uint8 {
	return (c.R*3 + c.G*5 + c.B*7 + c.A*11) % cacheSize
}

const cacheSize = 64

// colorCache is the 64-slot direct-mapped table behind the INDEX opcode.
// Writes are last-write-wins per slot; there is no eviction.
type colorCache [cacheSize]Color

// newColorCache returns a cache with every slot holding opaque black.
// An INDEX opcode referencing a never-written slot yields that value, so
// the initial fill is observable and must not change.
func newColorCache() colorCache {
	var cc colorCache
	for i := range cc {
		cc[i] = Color{A: 255}
	}
	return cc
}

// put stores c in its hash slot.
func (cc *colorCache) put(c Color) {
	cc[c.hash()] = c
}
