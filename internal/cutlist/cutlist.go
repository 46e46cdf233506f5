// Package cutlist expands placed sections into the rectangular panels and
// hardware needed to build them, and estimates sheet purchases for the
// resulting parts.
package cutlist

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// CutPart is one rectangular panel to cut.
type CutPart struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Role      string  `json:"role"`   // side, top, bottom, back, shelf
	Width     float64 `json:"width"`  // inches
	Height    float64 `json:"height"` // inches
	Thickness float64 `json:"thickness"`
	Quantity  int     `json:"quantity"`
	Wall      int     `json:"wall"`
}

// HardwareItem is a tally of one kind of fastener or fitting.
type HardwareItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CutList holds every part and hardware item for a room.
type CutList struct {
	Parts    []CutPart      `json:"parts"`
	Hardware []HardwareItem `json:"hardware"`
}

// TotalPartArea returns the combined face area of all parts in square
// inches, quantities included.
func (c CutList) TotalPartArea() float64 {
	var total float64
	for _, p := range c.Parts {
		total += p.Width * p.Height * float64(p.Quantity)
	}
	return total
}

func newPart(wall int, label, role string, w, h, thickness float64, qty int) CutPart {
	return CutPart{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Role:      role,
		Width:     w,
		Height:    h,
		Thickness: thickness,
		Quantity:  qty,
		Wall:      wall,
	}
}

// Generate expands every placed section in the per-wall results into panel
// cut parts and a hardware tally. Sections share dividers, so each section
// contributes one side panel plus the run's final panel per region; for
// simplicity of assembly each section here carries two sides, which builders
// can merge when sections are adjacent.
func Generate(results []model.LayoutResult, walls []model.WallSegment, settings model.LayoutSettings) CutList {
	var list CutList
	hardware := map[string]int{}

	for wi, res := range results {
		depthFor := func(req model.SectionRequest) float64 {
			if req.Depth > 0 {
				return req.Depth
			}
			if walls[wi].Depth > 0 {
				return walls[wi].Depth
			}
			return settings.DefaultDepth
		}

		for si, s := range res.Sections {
			w := s.Bounds.Width()
			h := s.Bounds.Height()
			depth := depthFor(s.Request)
			inner := w - 2*settings.PanelThickness
			if inner < 0 {
				inner = w
			}

			name := s.Request.Label
			if name == "" {
				name = fmt.Sprintf("section %d", si+1)
			}
			prefix := fmt.Sprintf("Wall %d / %s", wi+1, name)

			list.Parts = append(list.Parts,
				newPart(wi, prefix+" side", "side", depth, h, settings.PanelThickness, 2),
				newPart(wi, prefix+" top", "top", inner, depth, settings.PanelThickness, 1),
				newPart(wi, prefix+" bottom", "bottom", inner, depth, settings.PanelThickness, 1),
				newPart(wi, prefix+" back", "back", w, h, settings.BackThickness, 1),
			)
			if s.Request.Shelves > 0 {
				list.Parts = append(list.Parts,
					newPart(wi, prefix+" shelf", "shelf", inner, depth, settings.PanelThickness, s.Request.Shelves))
				hardware["shelf pin"] += 4 * s.Request.Shelves
			}
			hardware["cam lock"] += 4
			hardware["wood screw #8 x 1-1/4\""] += 8
		}
	}

	names := make([]string, 0, len(hardware))
	for n := range hardware {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		list.Hardware = append(list.Hardware, HardwareItem{Name: n, Quantity: hardware[n]})
	}
	return list
}
