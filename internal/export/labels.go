package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ClosetCut/internal/cutlist"
)

// LabelInfo holds the data encoded into each part label's QR code.
type LabelInfo struct {
	PartID    string  `json:"id"`
	PartLabel string  `json:"label"`
	Role      string  `json:"role"`
	Width     float64 `json:"width_in"`
	Height    float64 `json:"height_in"`
	Thickness float64 `json:"thickness_in"`
	Quantity  int     `json:"quantity"`
	Wall      int     `json:"wall"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// WriteLabelsPDF generates a PDF of QR-coded labels for every cut part.
// Each label carries the part name, dimensions, and a QR code encoding the
// part metadata as JSON, laid out on an Avery 5160 sheet.
func WriteLabelsPDF(path string, list cutlist.CutList) error {
	labels := CollectLabelInfos(list)
	if len(labels) == 0 {
		return fmt.Errorf("no parts to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PartLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.PartID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	partLabel := info.PartLabel
	if pdf.GetStringWidth(partLabel) > textW {
		for len(partLabel) > 0 && pdf.GetStringWidth(partLabel+"...") > textW {
			partLabel = partLabel[:len(partLabel)-1]
		}
		partLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, partLabel, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f x %.2f in", info.Width, info.Height, info.Thickness)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	meta := fmt.Sprintf("%s | wall %d | qty %d", info.Role, info.Wall+1, info.Quantity)
	pdf.CellFormat(textW, 3, meta, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a cut list for use in
// testing or alternative export formats.
func CollectLabelInfos(list cutlist.CutList) []LabelInfo {
	var labels []LabelInfo
	for _, p := range list.Parts {
		labels = append(labels, LabelInfo{
			PartID:    p.ID,
			PartLabel: p.Label,
			Role:      p.Role,
			Width:     p.Width,
			Height:    p.Height,
			Thickness: p.Thickness,
			Quantity:  p.Quantity,
			Wall:      p.Wall,
		})
	}
	return labels
}
