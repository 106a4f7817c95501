// Package core holds the frame types shared by the board adapter and the
// terminal front end: screen buffer, colors, input frames and layout math.
// It does not import Bubble Tea.
package core

// Rect is an axis-aligned screen area. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n on every side. Sizes floor at zero.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// CenterIn returns the offset that centers a span of w inside total.
// It never goes negative, so oversized spans hug the left edge.
func CenterIn(total, w int) int {
	return max(0, (total-w)/2)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
