package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ClosetCut/internal/cutlist"
	"github.com/piwi3910/ClosetCut/internal/engine"
	"github.com/piwi3910/ClosetCut/internal/model"
)

// layoutFixture builds a small two-wall room with a window and runs the
// layout engine over it, so every exporter is fed realistic results.
func layoutFixture(t *testing.T) (*model.Room, []model.LayoutResult, cutlist.CutList) {
	t.Helper()

	walls := []model.WallSegment{
		{Length: 96, Height: 84, Depth: 14, Name: "Back"},
		{Length: 48, Height: 84, Angle: 90, Depth: 14, Name: "Side"},
	}
	obstacles := []model.Obstacle{{
		Type: model.ObstacleWindow, WallIndex: 0,
		Offset: 24, Bottom: 36, Width: 48, Height: 24,
	}}
	room, err := model.NewRoom("test closet", walls, obstacles, false)
	if err != nil {
		t.Fatalf("room: %v", err)
	}

	settings := model.DefaultSettings()
	e := engine.New(settings)
	tower := model.NewSectionRequest("tower", 22)
	under := model.NewFillSection("under window")
	under.HeightMode = model.HeightLower
	under.Shelves = 2
	above := model.NewFillSection("above window")
	above.HeightMode = model.HeightUpper
	right := model.NewSectionRequest("right tower", 22)
	hang := model.NewFillSection("hang")

	results, err := e.LayoutRoom(room, [][]model.SectionRequest{
		{tower, under, above, right},
		{hang},
	})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return room, results, cutlist.Generate(results, walls, settings)
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output %s is empty", path)
	}
}

func TestWriteElevationsPDF(t *testing.T) {
	room, results, _ := layoutFixture(t)
	path := filepath.Join(t.TempDir(), "elevations.pdf")

	if err := WriteElevationsPDF(path, room, results); err != nil {
		t.Fatalf("write: %v", err)
	}
	requireFile(t, path)
}

func TestWriteLabelsPDF(t *testing.T) {
	_, _, list := layoutFixture(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := WriteLabelsPDF(path, list); err != nil {
		t.Fatalf("write: %v", err)
	}
	requireFile(t, path)
}

func TestWriteLabelsPDFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := WriteLabelsPDF(path, cutlist.CutList{}); err == nil {
		t.Error("empty cut list should fail")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	_, _, list := layoutFixture(t)

	labels := CollectLabelInfos(list)
	if len(labels) != len(list.Parts) {
		t.Fatalf("%d labels for %d parts", len(labels), len(list.Parts))
	}
	for i, l := range labels {
		if l.PartID != list.Parts[i].ID || l.Quantity != list.Parts[i].Quantity {
			t.Errorf("label %d = %+v", i, l)
		}
	}
}

func TestWriteCutListXLSX(t *testing.T) {
	_, _, list := layoutFixture(t)
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")

	if err := WriteCutListXLSX(path, list); err != nil {
		t.Fatalf("write: %v", err)
	}
	requireFile(t, path)
}

func TestWriteCutListXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")
	if err := WriteCutListXLSX(path, cutlist.CutList{}); err == nil {
		t.Error("empty cut list should fail")
	}
}

func TestWriteDXF(t *testing.T) {
	room, results, _ := layoutFixture(t)
	path := filepath.Join(t.TempDir(), "closet.dxf")

	if err := WriteDXF(path, room, results); err != nil {
		t.Fatalf("write: %v", err)
	}
	requireFile(t, path)
}
