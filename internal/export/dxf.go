package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// elevationGap is the vertical spacing between the plan view and the
// elevation strip, and between elevations, in drawing units (inches).
const elevationGap = 24.0

// WriteDXF writes the room to a DXF drawing: the floor plan on a PLAN
// layer, and each wall's elevation (with obstacles and placed sections)
// laid out in a strip below it on ELEVATION, OBSTACLES, and SECTIONS
// layers. Elevations are produced from each wall's derived position by
// unrolling the wall chain left to right.
func WriteDXF(path string, room *model.Room, results []model.LayoutResult) error {
	if len(room.Walls) == 0 {
		return fmt.Errorf("no walls to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PLAN", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, pos := range room.Positions() {
		if _, err := d.Line(pos.Start.X, pos.Start.Y, 0, pos.End.X, pos.End.Y, 0); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer("ELEVATION", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}

	// Elevation strip: walls unrolled end to end below the plan.
	minPt, _ := room.BoundingBox()
	baseY := minPt.Y - elevationGap
	offsetX := 0.0
	for _, wall := range room.Walls {
		// wall top sits one gap below the plan's lowest point
		top := baseY - elevationGap
		if err := drawRect(d, offsetX, top-wall.Height, wall.Length, wall.Height); err != nil {
			return err
		}
		offsetX += wall.Length + elevationGap
	}

	if _, err := d.AddLayer("OBSTACLES", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if err := drawWallRects(d, room, baseY, func(wi int) []model.Bounds {
		var out []model.Bounds
		for _, obs := range room.Obstacles {
			if obs.WallIndex == wi {
				out = append(out, obs.RawBounds())
			}
		}
		return out
	}); err != nil {
		return err
	}

	if _, err := d.AddLayer("SECTIONS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if err := drawWallRects(d, room, baseY, func(wi int) []model.Bounds {
		if wi >= len(results) {
			return nil
		}
		var out []model.Bounds
		for _, s := range results[wi].Sections {
			out = append(out, s.Bounds)
		}
		return out
	}); err != nil {
		return err
	}

	return d.SaveAs(path)
}

// drawWallRects draws wall-local rectangles into the elevation strip,
// applying each wall's horizontal offset.
func drawWallRects(d *drawing.Drawing, room *model.Room, baseY float64, boundsFor func(wi int) []model.Bounds) error {
	offsetX := 0.0
	for wi, wall := range room.Walls {
		top := baseY - elevationGap
		for _, b := range boundsFor(wi) {
			if err := drawRect(d, offsetX+b.Left, top-b.Top, b.Width(), b.Height()); err != nil {
				return err
			}
		}
		offsetX += wall.Length + elevationGap
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four lines. x, y is the
// lower-left corner in drawing coordinates.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
