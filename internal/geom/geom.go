// Package geom provides the vector and axis-aligned box primitives used for
// tile collision.
package geom

// Vec2 is a position or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Splat returns a vector with both components set to v.
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero returns true if both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned bounding box described by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered on center with the given full size.
func NewBox(center Vec2, size float64) Box {
	return Box{Center: center, Half: Splat(size / 2)}
}

// Min returns the bottom-left corner of the box.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner of the box.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps returns true if the two boxes intersect.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b.Center, b.Half, other.Center, other.Half)
}

// Overlaps returns true if the boxes around centerA and centerB intersect.
// Boxes that only share an edge do not overlap.
func Overlaps(centerA, halfA, centerB, halfB Vec2) bool {
	return centerA.X-halfA.X < centerB.X+halfB.X &&
		centerA.X+halfA.X > centerB.X-halfB.X &&
		centerA.Y-halfA.Y < centerB.Y+halfB.Y &&
		centerA.Y+halfA.Y > centerB.Y-halfB.Y
}
