package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ClosetCut/internal/project"
)

func TestRunConfigBackupRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	backupPath := filepath.Join(t.TempDir(), "backup.json")

	// Export and import work without a room file.
	if code := run([]string{"-export-config", backupPath}); code != 0 {
		t.Fatalf("export exit %d", code)
	}
	backup, err := project.ImportAllData(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if backup.Config.DefaultDividerThickness != 0.75 {
		t.Errorf("divider = %g", backup.Config.DefaultDividerThickness)
	}

	if code := run([]string{"-import-config", backupPath}); code != 0 {
		t.Fatalf("import exit %d", code)
	}
}

func TestRunImportConfigBadFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "nope.json")
	if code := run([]string{"-import-config", missing}); code != 1 {
		t.Errorf("exit %d", code)
	}
}

func TestRunMissingRoom(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if code := run(nil); code != 1 {
		t.Errorf("exit %d", code)
	}
}

func TestRunLayout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	roomPath := filepath.Join(dir, "room.json")
	roomJSON := `{"name":"hall","walls":[{"length":72,"height":84,"depth":14}],"sections":[[{"label":"hang","width":"fill"}]]}`
	if err := os.WriteFile(roomPath, []byte(roomJSON), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.json")

	if code := run([]string{"-room", roomPath, "-out", outPath, "-quiet"}); code != 0 {
		t.Fatalf("exit %d", code)
	}

	saved, err := project.LoadProject(outPath)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(saved.Results) != 1 || len(saved.Results[0].Sections) != 1 {
		t.Fatalf("results: %+v", saved.Results)
	}
	if w := saved.Results[0].Sections[0].Bounds.Width(); w != 72 {
		t.Errorf("section width = %g", w)
	}
}
