package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/ClosetCut/internal/model"
)

func sampleProject() model.Project {
	return model.Project{
		Name: "hall closet",
		Walls: []model.WallSegment{
			{Length: 72, Height: 84, Depth: 14, Name: "Back"},
		},
		Sections: [][]model.SectionRequest{{
			model.NewSectionRequest("tower", 24),
			model.NewFillSection("hang"),
		}},
		Settings: model.DefaultSettings(),
	}
}

func TestSaveLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "closet.json")

	if err := SaveProject(path, sampleProject()); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "hall closet" || len(loaded.Walls) != 1 {
		t.Errorf("loaded %+v", loaded)
	}
	reqs := loaded.WallSections(0)
	if len(reqs) != 2 {
		t.Fatalf("sections: %+v", reqs)
	}
	if reqs[0].Fill || reqs[0].Width != 24 {
		t.Errorf("fixed section: %+v", reqs[0])
	}
	if !reqs[1].Fill {
		t.Errorf("fill section: %+v", reqs[1])
	}
}

func TestLoadProjectAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.json")
	raw := `{"walls":[{"length":72,"height":84,"depth":14}],"sections":[[{"width":"fill"}]]}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "Untitled" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Settings != model.DefaultSettings() {
		t.Errorf("settings = %+v", p.Settings)
	}
}

func TestLoadProjectWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.json")
	raw := `{"walls":[{"length":72,"height":84,"depth":14}],"sections":[[{"width":"fill"}]]}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	custom := model.DefaultSettings()
	custom.DefaultDepth = 20
	p, err := LoadProjectWithDefaults(path, custom)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Settings.DefaultDepth != 20 {
		t.Errorf("depth = %g", p.Settings.DefaultDepth)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadProject(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestValidateProject(t *testing.T) {
	longWalls := make([]model.WallSegment, MaxWalls+1)
	for i := range longWalls {
		longWalls[i] = model.WallSegment{Length: 48, Height: 84, Depth: 14}
	}
	manySections := make([]model.SectionRequest, MaxSectionsPerWall+1)
	for i := range manySections {
		manySections[i] = model.NewFillSection("s")
	}

	tests := []struct {
		name    string
		mutate  func(*model.Project)
		wantErr string
	}{
		{"ok", func(p *model.Project) {}, ""},
		{"no walls", func(p *model.Project) { p.Walls = nil }, "no walls"},
		{"too many walls", func(p *model.Project) { p.Walls = longWalls }, "too many walls"},
		{"wall too long", func(p *model.Project) { p.Walls[0].Length = MaxWallLength + 1 }, "length"},
		{"wall too tall", func(p *model.Project) { p.Walls[0].Height = MaxWallHeight + 1 }, "height"},
		{"bad obstacle type", func(p *model.Project) {
			p.Obstacles = []model.Obstacle{{Type: "chimney", Width: 10, Height: 10}}
		}, "unknown type"},
		{"obstacle wall index", func(p *model.Project) {
			p.Obstacles = []model.Obstacle{{Type: model.ObstacleWindow, WallIndex: 5, Width: 10, Height: 10}}
		}, "out of range"},
		{"too many section lists", func(p *model.Project) {
			p.Sections = append(p.Sections, nil)
		}, "sections defined for"},
		{"too many sections", func(p *model.Project) {
			p.Sections[0] = manySections
		}, "exceeds"},
	}
	for _, tt := range tests {
		p := sampleProject()
		tt.mutate(&p)
		err := ValidateProject(p)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: got %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}
