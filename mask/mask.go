// Package mask implements opaque-pixel bitmaps and the overlap test used for
// per-pixel collision between sprites and track tiles.
package mask

import (
	"image"
	"image/color"
	"math/bits"
)

// DefaultThreshold marks a pixel opaque when its 8-bit alpha is above it.
const DefaultThreshold = 127

// Mask is a fixed-size bitmap. Bit j of word i in a row is column i*64+j.
// Loaders in this package never modify a mask after returning it, so masks
// can be shared between entities and read concurrently.
type Mask struct {
	w, h   int
	stride int
	bits   []uint64
}

// New returns an empty w x h mask.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, bits: make([]uint64, stride*h)}
}

// FromImage builds a mask of the whole image.
func FromImage(img image.Image, threshold uint8) *Mask {
	return FromImageRect(img, img.Bounds(), threshold)
}

// FromImageRect builds a mask of the pixels of img inside r. The mask origin
// is r.Min.
func FromImageRect(img image.Image, r image.Rectangle, threshold uint8) *Mask {
	r = r.Intersect(img.Bounds())
	m := New(r.Dx(), r.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if alphaAt(img, r.Min.X+x, r.Min.Y+y) > threshold {
				m.set(x, y)
			}
		}
	}
	return m
}

func alphaAt(img image.Image, x, y int) uint8 {
	switch src := img.(type) {
	case *image.NRGBA:
		return src.Pix[src.PixOffset(x, y)+3]
	case *image.RGBA:
		return src.Pix[src.PixOffset(x, y)+3]
	case *image.Alpha:
		return src.Pix[src.PixOffset(x, y)]
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.w, m.h)
}

// Get reports whether the pixel at (x, y) is opaque. Out of range is false.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Set changes one pixel. It is meant for building masks by hand; loaded masks
// are treated as read-only.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	if on {
		m.set(x, y)
		return
	}
	m.bits[y*m.stride+x/64] &^= 1 << uint(x%64)
}

func (m *Mask) set(x, y int) {
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Fill marks every pixel opaque.
func (m *Mask) Fill() {
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			m.set(x, y)
		}
	}
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports the first pixel that is opaque in both masks when other is
// placed with its origin at offset in m's coordinates. Rows are scanned top to
// bottom and columns left to right starting at m's origin, so the result is
// stable for a fixed input. The returned point is in m's coordinates.
func (m *Mask) Overlap(other *Mask, offset image.Point) (image.Point, bool) {
	if m == nil || other == nil {
		return image.Point{}, false
	}
	x0 := max(0, offset.X)
	x1 := min(m.w, offset.X+other.w)
	y0 := max(0, offset.Y)
	y1 := min(m.h, offset.Y+other.h)
	if x0 >= x1 || y0 >= y1 {
		return image.Point{}, false
	}

	for y := y0; y < y1; y++ {
		row := m.bits[y*m.stride : (y+1)*m.stride]
		oy := y - offset.Y
		for i := x0 / 64; i*64 < x1; i++ {
			aw := row[i] & spanBits(x0-i*64, x1-i*64)
			if aw == 0 {
				continue
			}
			if hit := aw & other.span(oy, i*64-offset.X); hit != 0 {
				return image.Pt(i*64+bits.TrailingZeros64(hit), y), true
			}
		}
	}
	return image.Point{}, false
}

// span returns 64 pixels of row y starting at column x; bit j is column x+j.
// Columns outside the mask read as transparent.
func (m *Mask) span(y, x int) uint64 {
	if x >= m.w || x <= -64 {
		return 0
	}
	row := m.bits[y*m.stride : (y+1)*m.stride]
	if x < 0 {
		return row[0] << uint(-x)
	}
	i, s := x/64, uint(x%64)
	v := row[i] >> s
	if s != 0 && i+1 < len(row) {
		v |= row[i+1] << (64 - s)
	}
	return v
}

// spanBits returns a word with bits [lo, hi) set, clamped to [0, 64).
func spanBits(lo, hi int) uint64 {
	lo = max(lo, 0)
	hi = min(hi, 64)
	if lo >= hi {
		return 0
	}
	var upper uint64 = ^uint64(0)
	if hi < 64 {
		upper = (1 << uint(hi)) - 1
	}
	return upper &^ ((1 << uint(lo)) - 1)
}
