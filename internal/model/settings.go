package model

// SlackPolicy decides what happens when every section has an explicit width
// and those widths leave part of the span unclaimed.
type SlackPolicy string

const (
	// SlackError fails the wall: every inch must be claimed by a section.
	SlackError SlackPolicy = "error"
	// SlackWarn places the sections left-aligned and reports the leftover
	// span as a warning.
	SlackWarn SlackPolicy = "warn"
)

// LayoutSettings holds layout and construction configuration.
type LayoutSettings struct {
	// Layout settings
	DividerThickness float64     `json:"divider_thickness"` // shared panel between adjacent sections, inches
	MinSectionWidth  float64     `json:"min_section_width"` // narrowest section worth building
	MinSectionHeight float64     `json:"min_section_height"`
	SlackPolicy      SlackPolicy `json:"slack_policy"`

	// Construction settings used by the cut-list generator
	PanelThickness float64 `json:"panel_thickness"` // carcass panel stock, inches
	BackThickness  float64 `json:"back_thickness"`  // back panel stock, inches
	DefaultDepth   float64 `json:"default_depth"`   // section depth when a request has none
}

// DefaultSettings returns the standard 3/4" plywood closet build.
func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		DividerThickness: 0.75,
		MinSectionWidth:  MinSectionWidth,
		MinSectionHeight: 12.0,
		SlackPolicy:      SlackError,
		PanelThickness:   0.75,
		BackThickness:    0.25,
		DefaultDepth:     14.0,
	}
}

// Normalize clamps settings to their hard floors so caller overrides cannot
// produce unbuildable output.
func (s *LayoutSettings) Normalize() {
	if s.MinSectionWidth < MinSectionWidth {
		s.MinSectionWidth = MinSectionWidth
	}
	if s.MinSectionHeight <= 0 {
		s.MinSectionHeight = 12.0
	}
	if s.DividerThickness < 0 {
		s.DividerThickness = 0
	}
	if s.SlackPolicy != SlackWarn {
		s.SlackPolicy = SlackError
	}
}
