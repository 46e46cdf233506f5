package cutlist

import "math"

// PurchaseEstimate holds the results of a sheet purchasing calculation.
type PurchaseEstimate struct {
	TotalPartArea     float64 `json:"total_part_area"`     // sq inches
	TotalBoardFeet    float64 `json:"total_board_feet"`    // 1 bf = 144 sq in of 1" stock
	SheetArea         float64 `json:"sheet_area"`          // sq inches per sheet
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // fractional sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // ceiling of exact
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // recommended, waste factor applied
	WastePercent      float64 `json:"waste_percent"`
	EstimatedCost     float64 `json:"estimated_cost"`
	PricePerSheet     float64 `json:"price_per_sheet"`
	KerfWidth         float64 `json:"kerf_width"`
}

// sqinPerBoardFoot: 1 board foot = 12" x 12" x 1" = 144 sq inches of face.
const sqinPerBoardFoot = 144.0

// EstimateSheets computes how many stock sheets to buy for the cut list,
// with a kerf allowance per part and an additional waste percentage.
func EstimateSheets(list CutList, sheetWidth, sheetHeight, kerfWidth, wastePercent, pricePerSheet float64) PurchaseEstimate {
	var totalPartArea float64
	for _, p := range list.Parts {
		totalPartArea += (p.Width + kerfWidth) * (p.Height + kerfWidth) * float64(p.Quantity)
	}

	sheetArea := sheetWidth * sheetHeight
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPartArea:  totalPartArea,
			TotalBoardFeet: totalPartArea / sqinPerBoardFoot,
			WastePercent:   wastePercent,
			KerfWidth:      kerfWidth,
		}
	}

	exact := totalPartArea / sheetArea
	minSheets := int(math.Ceil(exact))
	withWaste := int(math.Ceil(exact * (1.0 + wastePercent/100.0)))
	if withWaste < minSheets {
		withWaste = minSheets
	}

	return PurchaseEstimate{
		TotalPartArea:     totalPartArea,
		TotalBoardFeet:    totalPartArea / sqinPerBoardFoot,
		SheetArea:         sheetArea,
		SheetsNeededExact: exact,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   withWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     float64(withWaste) * pricePerSheet,
		PricePerSheet:     pricePerSheet,
		KerfWidth:         kerfWidth,
	}
}
