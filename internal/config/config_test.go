package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Venues.Multiplex != "cinepolis" {
		t.Fatalf("unexpected multiplex default: %q", cfg.Venues.Multiplex)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
catalog_path = "` + filepath.Join(dir, "films.json") + `"
store_path = "` + filepath.Join(dir, "schedule.json") + `"

[venues]
order = ["Cinepolis", "openair"]
multiplex = "CINEPOLIS"
forum_venue = "forum"
forum_screen = "Open Forum"

[slots]
screen = ["10:00", "12:30"]
openair = ["19:00"]
forum = ["11:00"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Venues.Multiplex != "cinepolis" {
		t.Fatalf("multiplex not lowercased: %q", cfg.Venues.Multiplex)
	}
	if cfg.Venues.Order[0] != "cinepolis" {
		t.Fatalf("order not normalized: %v", cfg.Venues.Order)
	}
}

func TestLoadRejectsInvalidSlotTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[slots]
screen = ["ten o'clock"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad slot time")
	} else if !strings.Contains(err.Error(), "slots.screen") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSlotTableClassMapping(t *testing.T) {
	cfg := config.Default()

	cases := []struct {
		venue, screen string
		wantFirst     string
		wantLen       int
	}{
		{"cinepolis", "1", "10:00", 5},
		{"cinepolis", "8", "10:00", 5},
		{"cinepolis", "Open Forum", "11:00", 3},
		{"openair", "1", "19:00", 1},
		{"rajkumar", "1", "10:30", 3},
	}
	for _, tc := range cases {
		slots := cfg.SlotTable(tc.venue, tc.screen)
		if len(slots) != tc.wantLen || slots[0] != tc.wantFirst {
			t.Errorf("SlotTable(%q, %q) = %v, want len %d starting %s", tc.venue, tc.screen, slots, tc.wantLen, tc.wantFirst)
		}
	}

	if slots := cfg.SlotTable("unknown-venue", "1"); slots != nil {
		t.Fatalf("expected nil table for unknown venue, got %v", slots)
	}
}

func TestValidateCatchesDuplicateVenue(t *testing.T) {
	cfg := config.Default()
	cfg.Venues.Order = []string{"cinepolis", "cinepolis"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected duplicate venue error")
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	sample := config.SampleConfig()
	for _, fragment := range []string{"[paths]", "[venues]", "[slots]", "[logging]", "Open Forum"} {
		if !strings.Contains(sample, fragment) {
			t.Fatalf("sample config missing %q", fragment)
		}
	}
}
