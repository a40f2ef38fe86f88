package collision

import (
	"image"
)

// AlphaThreshold is the minimum alpha (0-255) for a pixel to count as solid
const AlphaThreshold = 127

// Mask is a per-pixel occupancy map of a sprite frame.
// Bits are stored row-major; a nil or zero-size mask never overlaps.
type Mask struct {
	W, H  int
	bits  []bool
	count int
}

// NewMask creates an empty mask of the given size
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// FromImage builds a mask from the non-transparent pixels of img.
// The mask origin is img.Bounds().Min.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Full creates a fully solid mask
func Full(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	m.count = len(m.bits)
	return m
}

// Set marks a pixel solid or clear; out-of-range coordinates are ignored
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	i := y*m.W + x
	if m.bits[i] == solid {
		return
	}
	m.bits[i] = solid
	if solid {
		m.count++
	} else {
		m.count--
	}
}

// At reports whether the pixel is solid; out-of-range is never solid
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Count returns the number of solid pixels
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Bounds returns the mask rectangle placed at (x, y)
func (m *Mask) Bounds(x, y int) Rect {
	if m == nil {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, W: m.W, H: m.H}
}

// Overlap reports whether mask a placed at (ax, ay) and mask b placed at
// (bx, by) share at least one solid pixel.
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	if a.Count() == 0 || b.Count() == 0 {
		return false
	}
	area := a.Bounds(ax, ay).Intersection(b.Bounds(bx, by))
	if area.Empty() {
		return false
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
