package model

import (
	"math"
	"testing"
)

func TestUnitVectorExactAxes(t *testing.T) {
	tests := []struct {
		angle float64
		want  Point2D
	}{
		{0, Point2D{X: 1, Y: 0}},
		{90, Point2D{X: 0, Y: 1}},
		{180, Point2D{X: -1, Y: 0}},
		{270, Point2D{X: 0, Y: -1}},
		{360, Point2D{X: 1, Y: 0}},
		{-90, Point2D{X: 0, Y: -1}},
		{-180, Point2D{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		got := UnitVector(tt.angle)
		// Exact, not approximate: chained walls must not drift.
		if got != tt.want {
			t.Errorf("UnitVector(%g) = %+v, want %+v", tt.angle, got, tt.want)
		}
	}
}

func TestUnitVectorOffAxis(t *testing.T) {
	got := UnitVector(45)
	want := math.Sqrt(2) / 2
	if math.Abs(got.X-want) > 1e-12 || math.Abs(got.Y-want) > 1e-12 {
		t.Errorf("UnitVector(45) = %+v", got)
	}
}

func TestPointOps(t *testing.T) {
	p := Point2D{X: 3, Y: 4}
	if got := p.Add(Point2D{X: 1, Y: -2}); got != (Point2D{X: 4, Y: 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Scale(2); got != (Point2D{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := p.DistanceTo(Point2D{}); got != 5 {
		t.Errorf("DistanceTo = %g", got)
	}
	if got := (Point2D{X: 1, Y: 0}).Rotate(90); got != (Point2D{X: 0, Y: 1}) {
		t.Errorf("Rotate(90) = %+v", got)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Left: 10, Right: 30, Bottom: 0, Top: 84}
	if b.Width() != 20 || b.Height() != 84 {
		t.Errorf("Width/Height = %g/%g", b.Width(), b.Height())
	}
	if b.Area() != 20*84 {
		t.Errorf("Area = %g", b.Area())
	}
	if (Bounds{Left: 5, Right: 5, Bottom: 0, Top: 10}).Area() != 0 {
		t.Error("degenerate bounds should have zero area")
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := Bounds{Left: 0, Right: 20, Bottom: 0, Top: 84}
	if !a.Overlaps(Bounds{Left: 10, Right: 30, Bottom: 40, Top: 90}) {
		t.Error("expected overlap")
	}
	// Touching edges are not an overlap.
	if a.Overlaps(Bounds{Left: 20, Right: 40, Bottom: 0, Top: 84}) {
		t.Error("touching edges must not overlap")
	}
	if got := a.OverlapArea(Bounds{Left: 10, Right: 30, Bottom: 40, Top: 90}); got != 10*44 {
		t.Errorf("OverlapArea = %g", got)
	}
	if got := a.OverlapArea(Bounds{Left: 50, Right: 60, Bottom: 0, Top: 10}); got != 0 {
		t.Errorf("disjoint OverlapArea = %g", got)
	}
}

func TestBoundsContains(t *testing.T) {
	outer := Bounds{Left: 0, Right: 96, Bottom: 0, Top: 84}
	if !outer.Contains(Bounds{Left: 10, Right: 20, Bottom: 10, Top: 20}) {
		t.Error("expected containment")
	}
	if outer.Contains(Bounds{Left: 90, Right: 100, Bottom: 0, Top: 84}) {
		t.Error("should not contain bounds past the right edge")
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 Point2D
		want           bool
	}{
		{"crossing", Point2D{0, 0}, Point2D{10, 10}, Point2D{0, 10}, Point2D{10, 0}, true},
		{"parallel", Point2D{0, 0}, Point2D{10, 0}, Point2D{0, 5}, Point2D{10, 5}, false},
		{"collinear overlap", Point2D{0, 0}, Point2D{10, 0}, Point2D{5, 0}, Point2D{15, 0}, true},
		{"collinear disjoint", Point2D{0, 0}, Point2D{10, 0}, Point2D{20, 0}, Point2D{30, 0}, false},
		{"shared endpoint", Point2D{0, 0}, Point2D{10, 0}, Point2D{10, 0}, Point2D{10, 10}, true},
		{"near miss", Point2D{0, 0}, Point2D{10, 0}, Point2D{5, 1}, Point2D{5, 10}, false},
	}
	for _, tt := range tests {
		if got := SegmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
