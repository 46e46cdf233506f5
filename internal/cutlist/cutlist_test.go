package cutlist

import (
	"testing"

	"github.com/piwi3910/ClosetCut/internal/model"
)

func sampleResults() ([]model.LayoutResult, []model.WallSegment) {
	// Wall depth differs from the settings default on purpose: sections
	// without their own depth must take the wall's.
	walls := []model.WallSegment{{Length: 72, Height: 84, Depth: 16}}
	results := []model.LayoutResult{{
		Sections: []model.PlacedSection{
			{
				Request: model.SectionRequest{ID: "t1", Label: "tower", Shelves: 4},
				Bounds:  model.Bounds{Left: 0, Right: 24, Bottom: 0, Top: 84},
				Region:  model.RegionFull,
			},
			{
				Request: model.SectionRequest{ID: "t2", Label: "hang", Depth: 20},
				Bounds:  model.Bounds{Left: 24.75, Right: 48, Bottom: 0, Top: 84},
				Region:  model.RegionFull,
			},
		},
	}}
	return results, walls
}

func TestGenerateParts(t *testing.T) {
	results, walls := sampleResults()
	settings := model.DefaultSettings()

	list := Generate(results, walls, settings)

	// First section: sides, top, bottom, back, shelves. Second: no shelves.
	if len(list.Parts) != 9 {
		t.Fatalf("got %d parts", len(list.Parts))
	}

	byRole := map[string][]CutPart{}
	for _, p := range list.Parts {
		byRole[p.Role] = append(byRole[p.Role], p)
	}

	sides := byRole["side"]
	if len(sides) != 2 || sides[0].Quantity != 2 {
		t.Fatalf("sides: %+v", sides)
	}
	// Side panels are depth x section height; the wall's depth wins over
	// the settings default when the request has none.
	if sides[0].Width != 16 || sides[0].Height != 84 {
		t.Errorf("side dims %gx%g", sides[0].Width, sides[0].Height)
	}
	// A per-request depth overrides both.
	if sides[1].Width != 20 {
		t.Errorf("override depth side = %g", sides[1].Width)
	}

	tops := byRole["top"]
	if len(tops) != 2 {
		t.Fatalf("tops: %+v", tops)
	}
	// Top spans the inner width between the two side panels.
	if tops[0].Width != 24-2*settings.PanelThickness {
		t.Errorf("top width = %g", tops[0].Width)
	}

	backs := byRole["back"]
	if len(backs) != 2 || backs[0].Thickness != settings.BackThickness {
		t.Fatalf("backs: %+v", backs)
	}
	if backs[0].Width != 24 || backs[0].Height != 84 {
		t.Errorf("back dims %gx%g", backs[0].Width, backs[0].Height)
	}

	shelves := byRole["shelf"]
	if len(shelves) != 1 || shelves[0].Quantity != 4 {
		t.Fatalf("shelves: %+v", shelves)
	}
}

func TestGenerateHardware(t *testing.T) {
	results, walls := sampleResults()
	list := Generate(results, walls, model.DefaultSettings())

	want := map[string]int{
		"cam lock":               8,  // 4 per section
		"shelf pin":              16, // 4 per shelf
		"wood screw #8 x 1-1/4\"": 16, // 8 per section
	}
	if len(list.Hardware) != len(want) {
		t.Fatalf("hardware: %+v", list.Hardware)
	}
	for _, h := range list.Hardware {
		if want[h.Name] != h.Quantity {
			t.Errorf("%s = %d, want %d", h.Name, h.Quantity, want[h.Name])
		}
	}
	// Deterministic ordering by name.
	for i := 1; i < len(list.Hardware); i++ {
		if list.Hardware[i-1].Name > list.Hardware[i].Name {
			t.Errorf("hardware out of order: %q before %q", list.Hardware[i-1].Name, list.Hardware[i].Name)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	list := Generate(nil, nil, model.DefaultSettings())
	if len(list.Parts) != 0 || len(list.Hardware) != 0 {
		t.Errorf("empty results produced %+v", list)
	}
	if list.TotalPartArea() != 0 {
		t.Errorf("area = %g", list.TotalPartArea())
	}
}

func TestEstimateSheets(t *testing.T) {
	list := CutList{Parts: []CutPart{
		{Width: 48, Height: 96, Quantity: 2},
	}}

	// Two 48x96 parts on 48x96 sheets with no kerf: exactly two sheets.
	est := EstimateSheets(list, 48, 96, 0, 0, 50)
	if est.SheetsNeededMin != 2 || est.SheetsWithWaste != 2 {
		t.Errorf("sheets = %d/%d", est.SheetsNeededMin, est.SheetsWithWaste)
	}
	if est.EstimatedCost != 100 {
		t.Errorf("cost = %g", est.EstimatedCost)
	}
	if est.TotalBoardFeet != 2*48*96/144.0 {
		t.Errorf("board feet = %g", est.TotalBoardFeet)
	}

	// Waste percentage rounds up to an extra sheet.
	est = EstimateSheets(list, 48, 96, 0, 10, 50)
	if est.SheetsWithWaste != 3 {
		t.Errorf("with waste = %d", est.SheetsWithWaste)
	}

	// Kerf grows each part.
	est = EstimateSheets(list, 48, 96, 0.125, 0, 50)
	if est.SheetsNeededMin != 3 {
		t.Errorf("with kerf = %d", est.SheetsNeededMin)
	}

	// Degenerate sheet size still reports areas.
	est = EstimateSheets(list, 0, 0, 0, 0, 50)
	if est.SheetsNeededMin != 0 || est.TotalPartArea == 0 {
		t.Errorf("degenerate estimate: %+v", est)
	}
}
