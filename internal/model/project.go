package model

// Project ties a room definition, its section requests, and the latest
// layout results together for save/load.
type Project struct {
	Name      string             `json:"name"`
	Walls     []WallSegment      `json:"walls"`
	Closed    bool               `json:"closed"`
	Obstacles []Obstacle         `json:"obstacles,omitempty"`
	Sections  [][]SectionRequest `json:"sections"` // per wall, parallel to Walls
	Settings  LayoutSettings     `json:"settings"`
	Results   []LayoutResult     `json:"results,omitempty"` // per wall, parallel to Walls
}

// NewProject returns an empty project with default settings.
func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Settings: DefaultSettings(),
	}
}

// BuildRoom validates the project's walls and obstacles and returns the
// derived room geometry.
func (p Project) BuildRoom() (*Room, error) {
	return NewRoom(p.Name, p.Walls, p.Obstacles, p.Closed)
}

// WallSections returns the section requests for wall i, nil when none were
// defined.
func (p Project) WallSections(i int) []SectionRequest {
	if i < 0 || i >= len(p.Sections) {
		return nil
	}
	return p.Sections[i]
}
