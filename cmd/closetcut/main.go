// ClosetCut is an obstacle-aware closet and cabinet layout generator.
//
// Reads a JSON room definition (walls, obstacles, section requests),
// computes a non-overlapping section layout per wall, and writes the
// results as PDF elevations, a spreadsheet cut list, QR part labels,
// or a DXF drawing.
//
// Build:
//   go build -o closetcut ./cmd/closetcut
//
// Usage:
//   closetcut -room room.json -pdf elevations.pdf -xlsx cutlist.xlsx
//
// Exit codes: 0 clean layout, 2 layout completed with advisories,
// 1 fatal error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/ClosetCut/internal/cutlist"
	"github.com/piwi3910/ClosetCut/internal/engine"
	"github.com/piwi3910/ClosetCut/internal/export"
	"github.com/piwi3910/ClosetCut/internal/model"
	"github.com/piwi3910/ClosetCut/internal/project"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("closetcut", flag.ExitOnError)
	roomPath := fs.String("room", "", "path to the room definition JSON file (required)")
	pdfPath := fs.String("pdf", "", "write wall elevations to this PDF file")
	xlsxPath := fs.String("xlsx", "", "write the cut list to this spreadsheet")
	labelsPath := fs.String("labels", "", "write QR part labels to this PDF file")
	dxfPath := fs.String("dxf", "", "write plan and elevations to this DXF file")
	outPath := fs.String("out", "", "write the project with layout results back to this JSON file")
	sheetPrice := fs.Float64("sheet-price", 0, "price per 48x96 sheet, included in the purchase estimate")
	quiet := fs.Bool("quiet", false, "suppress the placement listing")
	exportConfig := fs.String("export-config", "", "write the app configuration to this backup JSON file")
	importConfig := fs.String("import-config", "", "restore the app configuration from a backup JSON file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, cfgPath, err := project.LoadOrCreateAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "closetcut: config: %v (using defaults)\n", err)
	}

	if *importConfig != "" {
		backup, err := project.ImportAllData(*importConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: %v\n", err)
			return 1
		}
		cfg = backup.Config
		if cfgPath != "" {
			if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "closetcut: config save: %v\n", err)
				return 1
			}
		}
	}
	if *exportConfig != "" {
		if err := project.ExportAllData(*exportConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: %v\n", err)
			return 1
		}
	}

	if *roomPath == "" {
		// Config backup flags work as standalone operations.
		if *importConfig != "" || *exportConfig != "" {
			return 0
		}
		fmt.Fprintln(os.Stderr, "closetcut: -room is required")
		fs.Usage()
		return 1
	}

	var defaults model.LayoutSettings
	cfg.ApplyToSettings(&defaults)

	proj, err := project.LoadProjectWithDefaults(*roomPath, defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "closetcut: %v\n", err)
		return 1
	}

	room, err := proj.BuildRoom()
	if err != nil {
		fmt.Fprintf(os.Stderr, "closetcut: %v\n", err)
		return 1
	}

	eng := engine.New(proj.Settings)
	results, err := eng.LayoutRoom(room, proj.Sections)
	if err != nil {
		fmt.Fprintf(os.Stderr, "closetcut: %v\n", err)
		return 1
	}
	proj.Results = results

	advisories := 0
	for wi, res := range results {
		if !*quiet {
			printWall(room, wi, res)
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: wall %d: %s\n", wi+1, w.Message)
			if w.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "  suggestion: %s\n", w.Suggestion)
			}
		}
		advisories += len(res.Warnings) + len(res.Skipped)
	}

	list := cutlist.Generate(results, room.Walls, proj.Settings)
	if !*quiet && len(list.Parts) > 0 {
		est := cutlist.EstimateSheets(list, 48, 96, 0.125, 15, *sheetPrice)
		fmt.Printf("Cut list: %d parts, %.1f board ft, about %d sheets of 48x96\n",
			len(list.Parts), est.TotalBoardFeet, est.SheetsWithWaste)
		if *sheetPrice > 0 {
			fmt.Printf("Estimated sheet cost: %.2f\n", est.EstimatedCost)
		}
	}

	if *pdfPath != "" {
		if err := export.WriteElevationsPDF(*pdfPath, room, results); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: pdf export: %v\n", err)
			return 1
		}
	}
	if *xlsxPath != "" {
		if err := export.WriteCutListXLSX(*xlsxPath, list); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: xlsx export: %v\n", err)
			return 1
		}
	}
	if *labelsPath != "" {
		if err := export.WriteLabelsPDF(*labelsPath, list); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: labels export: %v\n", err)
			return 1
		}
	}
	if *dxfPath != "" {
		if err := export.WriteDXF(*dxfPath, room, results); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: dxf export: %v\n", err)
			return 1
		}
	}
	if *outPath != "" {
		if err := project.SaveProject(*outPath, proj); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: save: %v\n", err)
			return 1
		}
	}

	if cfgPath != "" {
		cfg.AddRecentProject(*roomPath)
		if err := project.SaveAppConfig(cfgPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "closetcut: config save: %v\n", err)
		}
	}

	if advisories > 0 {
		return 2
	}
	return 0
}

// printWall lists the placements and skips for one wall.
func printWall(room *model.Room, wi int, res model.LayoutResult) {
	wall := room.Walls[wi]
	name := wall.Name
	if name == "" {
		name = fmt.Sprintf("Wall %d", wi+1)
	}
	fmt.Printf("%s (%.0f\" x %.0f\")\n", name, wall.Length, wall.Height)
	for _, s := range res.Sections {
		label := s.Request.Label
		if label == "" {
			label = s.Request.ID
		}
		fmt.Printf("  %-20s %7.2f\" - %7.2f\"  (%.2f\" wide, %s)\n",
			label, s.Bounds.Left, s.Bounds.Right, s.Bounds.Width(), s.Region)
	}
	for _, s := range res.Skipped {
		fmt.Printf("  skipped %7.2f\" - %7.2f\": %s\n", s.Bounds.Left, s.Bounds.Right, s.Reason)
	}
}
