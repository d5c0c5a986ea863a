// Package invaders implements a single wave of an Alien Invaders game: the
// player's ship, the marching alien formation, the bolts both sides fire, and
// the per-frame rules that tie them together.
//
// World coordinates are y-up with the origin at the bottom-left corner of the
// playfield. Renderers are expected to flip y.
package invaders

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its bottom-left corner.
type Rect struct {
	Left, Bottom  float64
	Width, Height float64
}

// Right returns the x of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Top returns the y of the top edge.
func (r Rect) Top() float64 { return r.Bottom + r.Height }

// Contains reports whether p lies inside r. Bounds are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Bottom && p.Y <= r.Top()
}

// Corners returns the four corners: bottom-left, top-left, bottom-right, top-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Left, r.Bottom},
		{r.Left, r.Top()},
		{r.Right(), r.Bottom},
		{r.Right(), r.Top()},
	}
}

// containsAnyCorner reports whether any corner of other lies inside r.
func (r Rect) containsAnyCorner(other Rect) bool {
	for _, c := range other.Corners() {
		if r.Contains(c) {
			return true
		}
	}
	return false
}
