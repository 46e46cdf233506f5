// Package project persists room projects and application configuration as
// JSON files, and enforces the input ranges the layout engine is allowed
// to assume.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// Input limits the engine is allowed to assume once a project validates.
const (
	MaxWalls           = 8
	MaxWallLength      = 480.0 // inches
	MaxWallHeight      = 144.0
	MaxSectionsPerWall = 20
)

// LoadProject reads a project JSON file, applies the standard defaults, and
// validates it.
func LoadProject(path string) (model.Project, error) {
	return LoadProjectWithDefaults(path, model.DefaultSettings())
}

// LoadProjectWithDefaults is LoadProject with caller-supplied settings to use
// when the project file carries none. The CLI passes defaults derived from
// the app config.
func LoadProjectWithDefaults(path string, defaults model.LayoutSettings) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if p.Settings == (model.LayoutSettings{}) {
		p.Settings = defaults
	}
	p.Settings.Normalize()
	if err := ValidateProject(p); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// SaveProject writes the project to the specified JSON file, creating
// parent directories if needed.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ValidateProject enforces the input ranges of the layout core: wall count
// and dimensions, obstacle types and wall references, and section counts.
// Geometric validity (chaining, closure, zone bounds) is checked later by
// the room constructor and the engine.
func ValidateProject(p model.Project) error {
	if len(p.Walls) == 0 {
		return fmt.Errorf("project has no walls")
	}
	if len(p.Walls) > MaxWalls {
		return fmt.Errorf("too many walls: %d (max %d)", len(p.Walls), MaxWalls)
	}
	for i, w := range p.Walls {
		if w.Length <= 0 || w.Length > MaxWallLength {
			return fmt.Errorf("wall %d: length %g out of range (0, %g]", i, w.Length, MaxWallLength)
		}
		if w.Height <= 0 || w.Height > MaxWallHeight {
			return fmt.Errorf("wall %d: height %g out of range (0, %g]", i, w.Height, MaxWallHeight)
		}
	}
	for i, o := range p.Obstacles {
		if !o.Type.Valid() {
			return fmt.Errorf("obstacle %d: unknown type %q", i, o.Type)
		}
		if o.WallIndex < 0 || o.WallIndex >= len(p.Walls) {
			return fmt.Errorf("obstacle %d: wall index %d out of range", i, o.WallIndex)
		}
	}
	if len(p.Sections) > len(p.Walls) {
		return fmt.Errorf("sections defined for %d walls but room has %d", len(p.Sections), len(p.Walls))
	}
	for wi, reqs := range p.Sections {
		if len(reqs) > MaxSectionsPerWall {
			return fmt.Errorf("wall %d: %d sections exceeds the %d limit", wi, len(reqs), MaxSectionsPerWall)
		}
	}
	return nil
}
