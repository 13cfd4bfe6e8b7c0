package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// NewConfig returns a default config rooted in a fresh temp directory so
// tests never touch user paths.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogPath = filepath.Join(dir, "films.json")
	cfg.Paths.StorePath = filepath.Join(dir, "schedule.json")
	cfg.Paths.ExtractDir = filepath.Join(dir, "extracted")
	cfg.Paths.JournalDir = dir
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fixture config invalid: %v", err)
	}
	return &cfg
}
