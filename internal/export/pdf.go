// Package export renders layout results to shop-ready documents: PDF wall
// elevations, QR-coded part labels, spreadsheet cut lists, and DXF drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// sectionColor represents an RGB color for a placed section.
type sectionColor struct {
	R, G, B int
}

// sectionColors cycles per section so adjacent sections read apart.
var sectionColors = []sectionColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WriteElevationsPDF generates a PDF with one elevation page per wall,
// drawing obstacles, their clearance zones, placed sections, and skipped
// areas to scale, followed by a summary page.
func WriteElevationsPDF(path string, room *model.Room, results []model.LayoutResult) error {
	if len(room.Walls) == 0 {
		return fmt.Errorf("no walls to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, wall := range room.Walls {
		var res model.LayoutResult
		if i < len(results) {
			res = results[i]
		}
		pdf.AddPage()
		renderWallPage(pdf, room, wall, i, res)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, room, results)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws one wall elevation on the current PDF page.
func renderWallPage(pdf *fpdf.Fpdf, room *model.Room, wall model.WallSegment, wallIndex int, res model.LayoutResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	name := wall.Name
	if name == "" {
		name = fmt.Sprintf("Wall %d", wallIndex+1)
	}
	title := fmt.Sprintf("%s (%.0f\" x %.0f\")", name, wall.Length, wall.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Sections: %d | Skipped: %d | Warnings: %d",
		len(res.Sections), len(res.Skipped), len(res.Warnings))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/wall.Length, drawHeight/wall.Height)
	originX := marginLeft + (drawWidth-wall.Length*scale)/2
	// PDF Y grows downward; wall Y grows upward from the floor.
	floorY := drawAreaTop + (drawHeight+wall.Height*scale)/2
	toPage := func(b model.Bounds) (x, y, w, h float64) {
		return originX + b.Left*scale, floorY - b.Top*scale, b.Width() * scale, b.Height() * scale
	}

	// Wall outline
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	pdf.Rect(originX, floorY-wall.Height*scale, wall.Length*scale, wall.Height*scale, "D")

	// Clearance zones first (light), raw obstacles on top (dark).
	for _, obs := range room.Obstacles {
		if obs.WallIndex != wallIndex {
			continue
		}
		zx, zy, zw, zh := toPage(obs.Zone())
		pdf.SetFillColor(245, 225, 225)
		pdf.Rect(zx, zy, zw, zh, "F")
	}
	for _, obs := range room.Obstacles {
		if obs.WallIndex != wallIndex {
			continue
		}
		ox, oy, ow, oh := toPage(obs.RawBounds())
		pdf.SetFillColor(160, 160, 160)
		pdf.SetDrawColor(90, 90, 90)
		pdf.Rect(ox, oy, ow, oh, "FD")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(40, 40, 40)
		pdf.SetXY(ox, oy+oh/2-2)
		pdf.CellFormat(ow, 4, string(obs.Type), "", 0, "C", false, 0, "")
	}

	// Skipped areas hatched with a border only.
	for _, s := range res.Skipped {
		sx, sy, sw, sh := toPage(s.Bounds)
		pdf.SetDrawColor(200, 60, 60)
		pdf.SetLineWidth(0.3)
		pdf.Rect(sx, sy, sw, sh, "D")
		pdf.Line(sx, sy, sx+sw, sy+sh)
		pdf.Line(sx+sw, sy, sx, sy+sh)
	}

	// Placed sections.
	for i, s := range res.Sections {
		c := sectionColors[i%len(sectionColors)]
		sx, sy, sw, sh := toPage(s.Bounds)
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.SetAlpha(0.55, "Normal")
		pdf.Rect(sx, sy, sw, sh, "FD")
		pdf.SetAlpha(1.0, "Normal")

		label := s.Request.Label
		if label == "" {
			label = s.Request.ID
		}
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(sx, sy+sh/2-4)
		pdf.CellFormat(sw, 4, label, "", 2, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(sx, sy+sh/2)
		dims := fmt.Sprintf("%.1f\" x %.1f\"", s.Bounds.Width(), s.Bounds.Height())
		pdf.CellFormat(sw, 4, dims, "", 0, "C", false, 0, "")
	}

	// Legend / warnings strip at the bottom.
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 60, 60)
	y := pageHeight - marginBottom - legendHeight + 4
	for _, w := range res.Warnings {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(drawWidth, 4, "! "+w.Message, "", 0, "L", false, 0, "")
		y += 4
		if y > pageHeight-marginBottom {
			break
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws overall statistics and the full warning list.
func renderSummaryPage(pdf *fpdf.Fpdf, room *model.Room, results []model.LayoutResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Layout Summary - "+room.Name, "", 1, "L", false, 0, "")

	totalSections, totalSkipped, totalWarnings := 0, 0, 0
	placedWidth := 0.0
	for _, r := range results {
		totalSections += len(r.Sections)
		totalSkipped += len(r.Skipped)
		totalWarnings += len(r.Warnings)
		placedWidth += r.PlacedWidth()
	}

	pdf.SetFont("Helvetica", "", 11)
	y := marginTop + headerHeight + 4
	lines := []string{
		fmt.Sprintf("Walls: %d | Total wall length: %.1f\"", len(room.Walls), room.TotalLength()),
		fmt.Sprintf("Sections placed: %d (%.1f\" of cabinetry)", totalSections, placedWidth),
		fmt.Sprintf("Areas skipped: %d", totalSkipped),
		fmt.Sprintf("Warnings: %d", totalWarnings),
	}
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 1, "L", false, 0, "")
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "Advisories", "", 1, "L", false, 0, "")
	y += 7
	pdf.SetFont("Helvetica", "", 9)
	for wi, r := range results {
		for _, w := range r.Warnings {
			pdf.SetXY(marginLeft, y)
			msg := fmt.Sprintf("Wall %d: %s", wi+1, w.Message)
			if w.Suggestion != "" {
				msg += " - " + w.Suggestion
			}
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, msg, "", 1, "L", false, 0, "")
			y += 5
			if y > pageHeight-marginBottom {
				return
			}
		}
	}
	if totalWarnings == 0 {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, "None - clean layout.", "", 0, "L", false, 0, "")
	}
}
