package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ClosetCut/internal/cutlist"
)

// WriteCutListXLSX writes the cut list to a spreadsheet: one sheet with a
// row per panel, a second sheet with the hardware tally.
func WriteCutListXLSX(path string, list cutlist.CutList) error {
	if len(list.Parts) == 0 {
		return fmt.Errorf("no parts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const partsSheet = "Cut List"
	if err := f.SetSheetName("Sheet1", partsSheet); err != nil {
		return err
	}

	headers := []string{"Part", "Role", "Wall", "Width (in)", "Height (in)", "Thickness (in)", "Qty"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(partsSheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range list.Parts {
		values := []interface{}{p.Label, p.Role, p.Wall + 1, p.Width, p.Height, p.Thickness, p.Quantity}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(partsSheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(partsSheet, "A", "A", 36); err != nil {
		return err
	}

	const hardwareSheet = "Hardware"
	if _, err := f.NewSheet(hardwareSheet); err != nil {
		return err
	}
	if err := f.SetCellValue(hardwareSheet, "A1", "Item"); err != nil {
		return err
	}
	if err := f.SetCellValue(hardwareSheet, "B1", "Qty"); err != nil {
		return err
	}
	for row, h := range list.Hardware {
		nameCell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		qtyCell, err := excelize.CoordinatesToCellName(2, row+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(hardwareSheet, nameCell, h.Name); err != nil {
			return err
		}
		if err := f.SetCellValue(hardwareSheet, qtyCell, h.Quantity); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(hardwareSheet, "A", "A", 28); err != nil {
		return err
	}

	return f.SaveAs(path)
}
