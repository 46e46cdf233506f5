package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// HeightMode says which part of the wall a section wants to occupy.
type HeightMode string

const (
	HeightFull  HeightMode = "full"  // floor to ceiling
	HeightLower HeightMode = "lower" // below an obstacle
	HeightUpper HeightMode = "upper" // above an obstacle
	HeightAuto  HeightMode = "auto"  // take whatever is available: full, then lower, then upper
)

// RegionType classifies a valid region by where it sits on the wall face.
type RegionType string

const (
	RegionFull  RegionType = "full"
	RegionLower RegionType = "lower"
	RegionUpper RegionType = "upper"
	RegionGap   RegionType = "gap" // between stacked obstacles, touching neither floor nor ceiling
)

// ValidRegion is a maximal obstacle-free rectangle usable for section
// placement.
type ValidRegion struct {
	Bounds
	Type RegionType `json:"type"`
}

// SectionRequest is the caller's ask for one cabinet section. Width is
// either a fixed number of inches or "fill" in JSON, which distributes the
// remaining span across all fill sections in the same region.
type SectionRequest struct {
	ID         string     `json:"id"`
	Label      string     `json:"label,omitempty"`
	Width      float64    `json:"-"` // fixed width; meaningless when Fill is set
	Fill       bool       `json:"-"`
	MinWidth   float64    `json:"min_width,omitempty"` // default 6"
	MaxWidth   float64    `json:"max_width,omitempty"` // 0 = unbounded
	HeightMode HeightMode `json:"height_mode,omitempty"`
	Shelves    int        `json:"shelves,omitempty"`
	Depth      float64    `json:"depth,omitempty"` // 0 = use the wall's depth
}

// MinSectionWidth is the hard floor for any section width, regardless of
// what a request asks for.
const MinSectionWidth = 6.0

// NewSectionRequest creates a fixed-width request with defaults applied.
func NewSectionRequest(label string, width float64) SectionRequest {
	return SectionRequest{
		ID:         uuid.New().String()[:8],
		Label:      label,
		Width:      width,
		MinWidth:   MinSectionWidth,
		HeightMode: HeightFull,
	}
}

// NewFillSection creates a request that claims a share of the leftover span.
func NewFillSection(label string) SectionRequest {
	s := NewSectionRequest(label, 0)
	s.Fill = true
	return s
}

// EffectiveMinWidth returns the request's minimum width with the hard floor
// applied.
func (s SectionRequest) EffectiveMinWidth() float64 {
	if s.MinWidth > MinSectionWidth {
		return s.MinWidth
	}
	return MinSectionWidth
}

// sectionRequestJSON mirrors SectionRequest for (un)marshaling, with Width
// widened to accept either a number or the string "fill".
type sectionRequestJSON struct {
	ID         string          `json:"id,omitempty"`
	Label      string          `json:"label,omitempty"`
	Width      json.RawMessage `json:"width"`
	MinWidth   float64         `json:"min_width,omitempty"`
	MaxWidth   float64         `json:"max_width,omitempty"`
	HeightMode HeightMode      `json:"height_mode,omitempty"`
	Shelves    int             `json:"shelves,omitempty"`
	Depth      float64         `json:"depth,omitempty"`
}

// UnmarshalJSON decodes a request, accepting width as a number or "fill"
// and filling in defaults for min width and height mode.
func (s *SectionRequest) UnmarshalJSON(data []byte) error {
	var raw sectionRequestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Label = raw.Label
	s.MinWidth = raw.MinWidth
	s.MaxWidth = raw.MaxWidth
	s.HeightMode = raw.HeightMode
	s.Shelves = raw.Shelves
	s.Depth = raw.Depth

	if s.ID == "" {
		s.ID = uuid.New().String()[:8]
	}
	if s.MinWidth <= 0 {
		s.MinWidth = MinSectionWidth
	}
	if s.HeightMode == "" {
		s.HeightMode = HeightFull
	}

	switch {
	case len(raw.Width) == 0:
		return fmt.Errorf("section %s: width is required (a number or \"fill\")", s.ID)
	case string(raw.Width) == `"fill"`:
		s.Fill = true
		s.Width = 0
	default:
		var w float64
		if err := json.Unmarshal(raw.Width, &w); err != nil {
			return fmt.Errorf("section %s: width must be a number or \"fill\"", s.ID)
		}
		if w <= 0 {
			return fmt.Errorf("section %s: width must be positive, got %g", s.ID, w)
		}
		s.Width = w
	}
	return nil
}

// MarshalJSON encodes the request, writing "fill" for fill-width sections.
func (s SectionRequest) MarshalJSON() ([]byte, error) {
	raw := sectionRequestJSON{
		ID:         s.ID,
		Label:      s.Label,
		MinWidth:   s.MinWidth,
		MaxWidth:   s.MaxWidth,
		HeightMode: s.HeightMode,
		Shelves:    s.Shelves,
		Depth:      s.Depth,
	}
	if s.Fill {
		raw.Width = json.RawMessage(`"fill"`)
	} else {
		w, err := json.Marshal(s.Width)
		if err != nil {
			return nil, err
		}
		raw.Width = w
	}
	return json.Marshal(raw)
}

// PlacedSection is one successfully placed section. Its bounds never overlap
// any obstacle zone on the wall.
type PlacedSection struct {
	Request SectionRequest `json:"request"`
	Bounds  Bounds         `json:"bounds"`
	Region  RegionType     `json:"region"` // the region type the section landed in
}

// LayoutWarning records a compromise the engine made while placing sections.
// Warnings never block a result.
type LayoutWarning struct {
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SkippedArea records wall space a request wanted but could not have.
type SkippedArea struct {
	Bounds Bounds `json:"bounds"`
	Reason string `json:"reason"`
}

// LayoutResult is the outcome for one wall: what was placed, what was
// compromised, and what was skipped.
type LayoutResult struct {
	Sections []PlacedSection `json:"sections"`
	Warnings []LayoutWarning `json:"warnings,omitempty"`
	Skipped  []SkippedArea   `json:"skipped,omitempty"`
}

// PlacedWidth returns the total width of all placed sections.
func (r LayoutResult) PlacedWidth() float64 {
	var total float64
	for _, s := range r.Sections {
		total += s.Bounds.Width()
	}
	return total
}

// SkippedWidth returns the total width of all skipped areas.
func (r LayoutResult) SkippedWidth() float64 {
	var total float64
	for _, s := range r.Skipped {
		total += s.Bounds.Width()
	}
	return total
}
