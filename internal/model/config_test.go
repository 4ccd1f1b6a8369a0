package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DBPath == "" {
		t.Error("expected a default db path")
	}
	if cfg.Display.HeatmapDays != 90 {
		t.Errorf("HeatmapDays = %d, want 90", cfg.Display.HeatmapDays)
	}
	if cfg.Tracking.MinHoursIncrement != 0.25 {
		t.Errorf("MinHoursIncrement = %v, want 0.25", cfg.Tracking.MinHoursIncrement)
	}
}

func TestLoadConfigReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(
		"db_path: /tmp/custom.db\n" +
			"display:\n" +
			"  theme: default\n" +
			"  heatmap_days: 30\n" +
			"tracking:\n" +
			"  min_hours_increment: 0.5\n",
	)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q, want /tmp/custom.db", cfg.DBPath)
	}
	if cfg.Display.HeatmapDays != 30 {
		t.Errorf("HeatmapDays = %d, want 30", cfg.Display.HeatmapDays)
	}
	if cfg.Tracking.MinHoursIncrement != 0.5 {
		t.Errorf("MinHoursIncrement = %v, want 0.5", cfg.Tracking.MinHoursIncrement)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := &AppConfig{
		DBPath: "/tmp/roundtrip.db",
		Display: DisplayConfig{
			Theme:       "default",
			HeatmapDays: 60,
		},
		Tracking: TrackingConfig{
			MinHoursIncrement: 1,
		},
	}
	if err := SaveConfig(path, in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if out.DBPath != in.DBPath {
		t.Errorf("DBPath = %q, want %q", out.DBPath, in.DBPath)
	}
	if out.Display.HeatmapDays != in.Display.HeatmapDays {
		t.Errorf("HeatmapDays = %d, want %d",
			out.Display.HeatmapDays, in.Display.HeatmapDays)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("chores") {
		t.Error(`ValidCategory("chores") = true, want false`)
	}
}
