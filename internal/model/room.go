// Package model defines the data types shared by the layout engine,
// cut-list generator, and exporters: rooms built from chained wall
// segments, obstacles with keep-out clearances, section requests, and
// the layout results produced for them. All dimensions are in inches.
package model

import (
	"fmt"
	"math"
)

// DefaultClosureTolerance is the maximum gap allowed between the end of the
// last wall and the start of the first wall in a closed room, in inches.
const DefaultClosureTolerance = 0.1

// GeometryError describes a fatal problem with room or obstacle geometry.
// Layout cannot proceed for the affected wall once one is raised.
type GeometryError struct {
	Wall int // wall index the problem relates to, -1 for room-level problems
	Msg  string
}

func (e *GeometryError) Error() string {
	if e.Wall < 0 {
		return "geometry: " + e.Msg
	}
	return fmt.Sprintf("geometry: wall %d: %s", e.Wall, e.Msg)
}

// WallSegment describes one straight run of wall. Angle is the turn relative
// to the previous wall's direction; the first wall in a room must have
// Angle == 0 and runs along the +X axis.
type WallSegment struct {
	Length float64 `json:"length"`         // inches along the wall face
	Height float64 `json:"height"`         // inches floor to ceiling
	Angle  float64 `json:"angle"`          // degrees relative to previous wall: -90, 0, or 90
	Depth  float64 `json:"depth"`          // inches available in front of the wall
	Name   string  `json:"name,omitempty"` // optional display name, e.g. "North"
}

// WallPosition is a wall's derived placement in room space.
type WallPosition struct {
	Start     Point2D `json:"start"`
	End       Point2D `json:"end"`
	Direction float64 `json:"direction"` // cumulative angle in degrees from +X
}

// Room chains wall segments into a shared coordinate space. Construct with
// NewRoom; a Room and its obstacles are immutable for the duration of layout.
type Room struct {
	Name             string        `json:"name"`
	Walls            []WallSegment `json:"walls"`
	Obstacles        []Obstacle    `json:"obstacles,omitempty"`
	Closed           bool          `json:"closed"`
	ClosureTolerance float64       `json:"closure_tolerance,omitempty"`

	positions []WallPosition
}

// NewRoom validates the wall chain and computes each wall's position.
// Validation failures return a *GeometryError and no room.
func NewRoom(name string, walls []WallSegment, obstacles []Obstacle, closed bool) (*Room, error) {
	r := &Room{
		Name:             name,
		Walls:            walls,
		Obstacles:        obstacles,
		Closed:           closed,
		ClosureTolerance: DefaultClosureTolerance,
	}
	if err := r.computePositions(); err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// computePositions accumulates length and rotation from the origin:
// dir[i] = dir[i-1] + angle[i], start[i] = end[i-1].
func (r *Room) computePositions() error {
	if len(r.Walls) == 0 {
		return &GeometryError{Wall: -1, Msg: "room has no walls"}
	}
	r.positions = make([]WallPosition, len(r.Walls))
	dir := 0.0
	cursor := Point2D{}
	for i, w := range r.Walls {
		if w.Length <= 0 {
			return &GeometryError{Wall: i, Msg: fmt.Sprintf("length must be positive, got %g", w.Length)}
		}
		if w.Height <= 0 {
			return &GeometryError{Wall: i, Msg: fmt.Sprintf("height must be positive, got %g", w.Height)}
		}
		if w.Depth <= 0 {
			return &GeometryError{Wall: i, Msg: fmt.Sprintf("depth must be positive, got %g", w.Depth)}
		}
		if w.Angle != -90 && w.Angle != 0 && w.Angle != 90 {
			return &GeometryError{Wall: i, Msg: fmt.Sprintf("angle must be -90, 0, or 90, got %g", w.Angle)}
		}
		if i == 0 && w.Angle != 0 {
			return &GeometryError{Wall: 0, Msg: "first wall must have angle 0"}
		}
		dir += w.Angle
		end := cursor.Add(UnitVector(dir).Scale(w.Length))
		r.positions[i] = WallPosition{Start: cursor, End: end, Direction: dir}
		cursor = end
	}
	return nil
}

func (r *Room) validate() error {
	n := len(r.Walls)
	if r.Closed {
		gap := r.positions[n-1].End.DistanceTo(r.positions[0].Start)
		if gap > r.ClosureTolerance {
			return &GeometryError{Wall: n - 1, Msg: fmt.Sprintf(
				"closed room does not close: %.3f\" gap exceeds %.3f\" tolerance", gap, r.ClosureTolerance)}
		}
	}

	// Non-adjacent walls must not cross. Adjacent walls share an endpoint by
	// construction; in a closed room the last and first walls are adjacent too.
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if r.Closed && i == 0 && j == n-1 {
				continue
			}
			a, b := r.positions[i], r.positions[j]
			if SegmentsIntersect(a.Start, a.End, b.Start, b.End) {
				return &GeometryError{Wall: j, Msg: fmt.Sprintf("wall %d crosses wall %d", j, i)}
			}
		}
	}

	for i, obs := range r.Obstacles {
		if err := obs.validateBasic(i, n); err != nil {
			return err
		}
	}
	return nil
}

// Positions returns the derived position of every wall, in wall order.
func (r *Room) Positions() []WallPosition {
	out := make([]WallPosition, len(r.positions))
	copy(out, r.positions)
	return out
}

// Position returns the derived position of wall i.
func (r *Room) Position(i int) WallPosition {
	return r.positions[i]
}

// TotalLength returns the sum of all wall lengths.
func (r *Room) TotalLength() float64 {
	var total float64
	for _, w := range r.Walls {
		total += w.Length
	}
	return total
}

// BoundingBox returns the min and max corners over all wall endpoints.
func (r *Room) BoundingBox() (min, max Point2D) {
	min = r.positions[0].Start
	max = r.positions[0].Start
	for _, p := range r.positions {
		for _, pt := range []Point2D{p.Start, p.End} {
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
		}
	}
	return min, max
}

// WallObstacles returns the obstacles attached to wall i, preserving their
// index in the room's obstacle list.
func (r *Room) WallObstacles(i int) []Obstacle {
	var out []Obstacle
	for _, o := range r.Obstacles {
		if o.WallIndex == i {
			out = append(out, o)
		}
	}
	return out
}
