// Package collision provides rectangle and pixel-mask overlap tests.
//
// Rectangles are used for UI hit-testing and screen bounds; masks are used
// for every gameplay collision because sprite rectangles are larger than the
// visible silhouette.
package collision

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains returns true if the point (x, y) is inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects returns true if the rectangles overlap by at least one pixel
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersection returns the overlapping area, or an empty rect if none
func (r Rect) Intersection(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampInside moves r so it lies within bounds. If r is larger than bounds
// on an axis, it is pinned to the bounds' top-left on that axis.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	return r
}

// Clamp restricts val to [lo, hi]. When hi < lo, lo wins.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
