package model

import (
	"fmt"
	"math"
)

// ObstacleType identifies what a wall obstacle is, which determines its
// default clearance.
type ObstacleType string

const (
	ObstacleWindow   ObstacleType = "window"
	ObstacleDoor     ObstacleType = "door"
	ObstacleOutlet   ObstacleType = "outlet"
	ObstacleSwitch   ObstacleType = "switch"
	ObstacleVent     ObstacleType = "vent"
	ObstacleSkylight ObstacleType = "skylight"
	ObstacleCustom   ObstacleType = "custom"
)

// ObstacleTypes lists every known obstacle type.
var ObstacleTypes = []ObstacleType{
	ObstacleWindow, ObstacleDoor, ObstacleOutlet, ObstacleSwitch,
	ObstacleVent, ObstacleSkylight, ObstacleCustom,
}

// Valid reports whether t is one of the known obstacle types.
func (t ObstacleType) Valid() bool {
	for _, k := range ObstacleTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Clearance is the extra keep-out margin around an obstacle, per edge.
// All values are non-negative inches.
type Clearance struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

func uniformClearance(v float64) Clearance {
	return Clearance{Top: v, Bottom: v, Left: v, Right: v}
}

// DefaultClearance returns the built-in clearance for the obstacle type.
// Windows and vents get 2" on every side, doors need 3" of swing margin on
// the sides and top, small electrical fixtures get 1", and custom obstacles
// get none.
func (t ObstacleType) DefaultClearance() Clearance {
	switch t {
	case ObstacleWindow, ObstacleVent, ObstacleSkylight:
		return uniformClearance(2)
	case ObstacleDoor:
		return Clearance{Top: 3, Bottom: 0, Left: 3, Right: 3}
	case ObstacleOutlet, ObstacleSwitch:
		return uniformClearance(1)
	default:
		return Clearance{}
	}
}

// Obstacle is a fixed feature on a wall face that sections must avoid.
// Offset and Bottom position its lower-left corner in wall-local
// coordinates. Immutable after creation.
type Obstacle struct {
	Type      ObstacleType `json:"type"`
	WallIndex int          `json:"wall_index"`
	Offset    float64      `json:"offset"` // inches from the wall's left edge
	Bottom    float64      `json:"bottom"` // inches from the floor
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Clearance *Clearance   `json:"clearance,omitempty"` // override; nil uses the type default
	Name      string       `json:"name,omitempty"`
}

// EffectiveClearance returns the override clearance if set, else the
// type's built-in default.
func (o Obstacle) EffectiveClearance() Clearance {
	if o.Clearance != nil {
		return *o.Clearance
	}
	return o.Type.DefaultClearance()
}

// RawBounds returns the obstacle rectangle without clearance.
func (o Obstacle) RawBounds() Bounds {
	return Bounds{
		Left:   o.Offset,
		Right:  o.Offset + o.Width,
		Bottom: o.Bottom,
		Top:    o.Bottom + o.Height,
	}
}

// Zone returns the obstacle rectangle expanded by its effective clearance.
// The zone always contains the raw rectangle since clearances are
// non-negative.
func (o Obstacle) Zone() Bounds {
	c := o.EffectiveClearance()
	return Bounds{
		Left:   o.Offset - c.Left,
		Right:  o.Offset + o.Width + c.Right,
		Bottom: o.Bottom - c.Bottom,
		Top:    o.Bottom + o.Height + c.Top,
	}
}

// ObstacleZone is a resolved keep-out rectangle on one wall, tagged with the
// obstacle it came from so collisions can be reported by name.
type ObstacleZone struct {
	Bounds
	ObstacleIndex int          `json:"obstacle_index"` // index into the room's obstacle list
	Type          ObstacleType `json:"type"`
}

// validateBasic checks the fields every obstacle must satisfy regardless of
// its wall's dimensions. Zone-versus-wall bounds are checked by the engine
// when zones are resolved.
func (o Obstacle) validateBasic(index, wallCount int) error {
	if !o.Type.Valid() {
		return &GeometryError{Wall: o.WallIndex, Msg: fmt.Sprintf("obstacle %d: unknown type %q", index, o.Type)}
	}
	if o.WallIndex < 0 || o.WallIndex >= wallCount {
		return &GeometryError{Wall: -1, Msg: fmt.Sprintf("obstacle %d: wall index %d out of range", index, o.WallIndex)}
	}
	for _, v := range []float64{o.Offset, o.Bottom, o.Width, o.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &GeometryError{Wall: o.WallIndex, Msg: fmt.Sprintf("obstacle %d: non-finite dimension", index)}
		}
	}
	if o.Offset < 0 || o.Bottom < 0 {
		return &GeometryError{Wall: o.WallIndex, Msg: fmt.Sprintf("obstacle %d: offset and bottom must be non-negative", index)}
	}
	if o.Width <= 0 || o.Height <= 0 {
		return &GeometryError{Wall: o.WallIndex, Msg: fmt.Sprintf("obstacle %d: width and height must be positive", index)}
	}
	c := o.EffectiveClearance()
	if c.Top < 0 || c.Bottom < 0 || c.Left < 0 || c.Right < 0 {
		return &GeometryError{Wall: o.WallIndex, Msg: fmt.Sprintf("obstacle %d: clearance must be non-negative", index)}
	}
	return nil
}
