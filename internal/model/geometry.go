package model

import "math"

// Epsilon is the coordinate comparison tolerance in inches. Wall layouts are
// cut to 1/64" at best, so two coordinates closer than this are the same.
const Epsilon = 0.01

// Point2D represents a 2D coordinate in room space, in inches.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by the given vector.
func (p Point2D) Add(v Point2D) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Scale returns the point with both components multiplied by f.
func (p Point2D) Scale(f float64) Point2D {
	return Point2D{X: p.X * f, Y: p.Y * f}
}

// DistanceTo returns the Euclidean distance to q.
func (p Point2D) DistanceTo(q Point2D) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotate rotates the point around the origin by an angle in degrees,
// counter-clockwise.
func (p Point2D) Rotate(angleDeg float64) Point2D {
	v := UnitVector(angleDeg)
	return Point2D{
		X: p.X*v.X - p.Y*v.Y,
		Y: p.X*v.Y + p.Y*v.X,
	}
}

// UnitVector returns the direction vector for an angle in degrees.
// Multiples of 90 return exact axis vectors so that chained wall segments
// do not accumulate floating-point drift around a room.
func UnitVector(angleDeg float64) Point2D {
	norm := math.Mod(angleDeg, 360)
	if norm < 0 {
		norm += 360
	}
	switch norm {
	case 0:
		return Point2D{X: 1, Y: 0}
	case 90:
		return Point2D{X: 0, Y: 1}
	case 180:
		return Point2D{X: -1, Y: 0}
	case 270:
		return Point2D{X: 0, Y: -1}
	}
	rad := angleDeg * math.Pi / 180
	return Point2D{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Bounds is an axis-aligned rectangle on a wall face, in wall-local
// coordinates: X runs left to right along the wall, Y runs bottom to top.
// The same type describes obstacle keep-out zones and placed sections.
type Bounds struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// Area returns the rectangle area, zero for degenerate bounds.
func (b Bounds) Area() float64 {
	if b.Right <= b.Left || b.Top <= b.Bottom {
		return 0
	}
	return b.Width() * b.Height()
}

// Overlaps reports whether two rectangles share interior area.
// Touching edges do not count as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return !(b.Right <= o.Left || b.Left >= o.Right ||
		b.Top <= o.Bottom || b.Bottom >= o.Top)
}

// OverlapArea returns the area shared by two rectangles, zero if disjoint.
func (b Bounds) OverlapArea(o Bounds) float64 {
	w := math.Min(b.Right, o.Right) - math.Max(b.Left, o.Left)
	h := math.Min(b.Top, o.Top) - math.Max(b.Bottom, o.Bottom)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Contains reports whether b fully contains o, within Epsilon.
func (b Bounds) Contains(o Bounds) bool {
	return b.Left <= o.Left+Epsilon && b.Bottom <= o.Bottom+Epsilon &&
		b.Right >= o.Right-Epsilon && b.Top >= o.Top-Epsilon
}

// orientation classifies the turn p -> q -> r: 0 collinear, 1 clockwise,
// 2 counter-clockwise.
func orientation(p, q, r Point2D) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) < 1e-9 {
		return 0
	}
	if val > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether q lies on segment p-r, assuming collinearity.
func onSegment(p, q, r Point2D) bool {
	return q.X <= math.Max(p.X, r.X)+Epsilon && q.X >= math.Min(p.X, r.X)-Epsilon &&
		q.Y <= math.Max(p.Y, r.Y)+Epsilon && q.Y >= math.Min(p.Y, r.Y)-Epsilon
}

// SegmentsIntersect reports whether segments p1-p2 and q1-q2 intersect,
// including collinear overlap. Standard orientation test.
func SegmentsIntersect(p1, p2, q1, q2 Point2D) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases: endpoint of one segment lies on the other.
	if o1 == 0 && onSegment(p1, q1, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, p2) {
		return true
	}
	if o3 == 0 && onSegment(q1, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(q1, p2, q2) {
		return true
	}
	return false
}
