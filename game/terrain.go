package game

// BaseGrid is the bitmap of one base: 8 rows of 16 pixels, bit x is
// pixel x. Bits are only ever cleared during a level.
type BaseGrid [BaseHeight]uint16

// Pairs is the erosion granularity: 8 two-pixel columns per row
const Pairs = BaseWidth / 2

// PairMask returns the two bits of column pair p
func PairMask(p int) uint16 {
	return 0b11 << (2 * uint(p))
}

// ClearBits erodes the masked bits of a row. Setting bits is not possible.
func (g *BaseGrid) ClearBits(row int, mask uint16) {
	if row < 0 || row >= BaseHeight {
		return
	}
	g[row] &^= mask
}

// Has reports whether any masked bit of the row is still standing
func (g *BaseGrid) Has(row int, mask uint16) bool {
	if row < 0 || row >= BaseHeight {
		return false
	}
	return g[row]&mask != 0
}

// Count returns the number of standing pixels
func (g *BaseGrid) Count() int {
	n := 0
	for _, row := range g {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

// Covers reports whether every bit standing in g is also standing in other
func (g *BaseGrid) Covers(other *BaseGrid) bool {
	for i := range g {
		if g[i]&^other[i] != 0 {
			return false
		}
	}
	return true
}

// GridFromXBM loads a 16x8 XBM image (two bytes per row, LSB leftmost)
func GridFromXBM(xbm []byte) BaseGrid {
	var g BaseGrid
	for row := 0; row < BaseHeight && 2*row+1 < len(xbm); row++ {
		g[row] = uint16(xbm[2*row]) | uint16(xbm[2*row+1])<<8
	}
	return g
}

// XBM writes the grid into dst in the layout GridFromXBM reads
func (g *BaseGrid) XBM(dst *[BaseHeight * 2]byte) {
	for row, bits := range g {
		dst[2*row] = byte(bits)
		dst[2*row+1] = byte(bits >> 8)
	}
}
