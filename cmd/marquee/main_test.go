package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
	"marquee/internal/schedule"
	"marquee/internal/testsupport"
)

func writeConfigFile(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestExtractWritesDayFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalogFile(t, filepath.Dir(cfg.Paths.CatalogPath))
	configPath := writeConfigFile(t, cfg)
	page := testsupport.WritePageFile(t, t.TempDir(), "page1.txt", testsupport.SamplePageText)

	out, err := runCLI(t, "--config", configPath, "extract", page)
	if err != nil {
		t.Fatalf("extract: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2026-02-03") {
		t.Errorf("output missing extracted date:\n%s", out)
	}

	dayPath := filepath.Join(cfg.Paths.ExtractDir, "day-2026-02-03.json")
	data, err := os.ReadFile(dayPath)
	if err != nil {
		t.Fatalf("read day file: %v", err)
	}
	var day schedule.Day
	if err := json.Unmarshal(data, &day); err != nil {
		t.Fatalf("parse day file: %v", err)
	}
	if day.ShowingCount() != 3 {
		t.Errorf("ShowingCount() = %d, want 3", day.ShowingCount())
	}
	if !strings.Contains(out, "Catalog preview") {
		t.Errorf("output missing match preview:\n%s", out)
	}
}

func TestExtractAnalyzeReportsSignals(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	configPath := writeConfigFile(t, cfg)
	page := testsupport.WritePageFile(t, t.TempDir(), "page1.txt", testsupport.SamplePageText)

	out, err := runCLI(t, "--config", configPath, "extract", "--analyze", page)
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	if !strings.Contains(out, "cinepolis") || !strings.Contains(out, "2026-02-03") {
		t.Errorf("analyze output missing recognition signals:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.ExtractDir, "day-2026-02-03.json")); err == nil {
		t.Error("analyze must not write day files")
	}
}

func TestMergeAppendsAndJournals(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalogFile(t, filepath.Dir(cfg.Paths.CatalogPath))
	testsupport.WriteStoreFile(t, filepath.Dir(cfg.Paths.StorePath))
	configPath := writeConfigFile(t, cfg)

	day := schedule.Day{
		Date:      "2026-01-31",
		DayNumber: 2,
		Label:     "Day 2 - Saturday",
		Screenings: []schedule.Screening{{
			Venue:  "cinepolis",
			Screen: "2",
			Showings: []schedule.Showing{{
				Time:     "12:30",
				Film:     schedule.StrPtr("Shape of Momo"),
				Director: schedule.StrPtr("Tribeny Rai"),
				Country:  "India",
				Year:     2025,
				Language: "Nepali",
				Duration: 115,
			}},
		}},
	}
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal day: %v", err)
	}
	dayPath := filepath.Join(t.TempDir(), "day-2026-01-31.json")
	if err := os.WriteFile(dayPath, data, 0o644); err != nil {
		t.Fatalf("write day file: %v", err)
	}

	out, err := runCLI(t, "--config", configPath, "merge", "--source", "bulletin 2", dayPath)
	if err != nil {
		t.Fatalf("merge: %v\n%s", err, out)
	}

	doc, err := schedule.Read(cfg.Paths.StorePath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if len(doc.Days) != 2 {
		t.Fatalf("store has %d days, want 2", len(doc.Days))
	}
	if doc.Schedule.Source != "bulletin 2" {
		t.Errorf("Source = %q, want %q", doc.Schedule.Source, "bulletin 2")
	}

	runsOut, err := runCLI(t, "--config", configPath, "runs")
	if err != nil {
		t.Fatalf("runs: %v\n%s", err, runsOut)
	}
	if !strings.Contains(runsOut, "append") || !strings.Contains(runsOut, "bulletin 2") {
		t.Errorf("runs output missing journal entry:\n%s", runsOut)
	}
}

func TestMergeRequiresCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteStoreFile(t, filepath.Dir(cfg.Paths.StorePath))
	configPath := writeConfigFile(t, cfg)

	if _, err := runCLI(t, "--config", configPath, "merge", "missing-day.json"); err == nil {
		t.Fatal("merge without a catalog must fail")
	}
}

func TestMergeRejectsDayFileWithoutDayNumber(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalogFile(t, filepath.Dir(cfg.Paths.CatalogPath))
	testsupport.WriteStoreFile(t, filepath.Dir(cfg.Paths.StorePath))
	configPath := writeConfigFile(t, cfg)

	dayPath := filepath.Join(t.TempDir(), "day-2026-01-31.json")
	bad := `{"date": "2026-01-31", "dayNumber": 0, "label": "Day 0", "screenings": []}`
	if err := os.WriteFile(dayPath, []byte(bad), 0o644); err != nil {
		t.Fatalf("write day file: %v", err)
	}

	if _, err := runCLI(t, "--config", configPath, "merge", dayPath); err == nil {
		t.Fatal("merge must reject a day file with a zero dayNumber")
	}

	doc, err := schedule.Read(cfg.Paths.StorePath)
	if err != nil {
		t.Fatalf("store no longer readable after rejected merge: %v", err)
	}
	if len(doc.Days) != 1 {
		t.Fatalf("store changed by rejected merge: %d days, want 1", len(doc.Days))
	}
}

func TestMatchCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalogFile(t, filepath.Dir(cfg.Paths.CatalogPath))
	configPath := writeConfigFile(t, cfg)

	out, err := runCLI(t, "--config", configPath, "match", "MAHAKAVI")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	if !strings.Contains(out, "exact") || !strings.Contains(out, "Mahakavi") {
		t.Errorf("match output:\n%s", out)
	}

	out, err = runCLI(t, "--config", configPath, "match", "NO", "SUCH", "FILM")
	if err != nil {
		t.Fatalf("match miss: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No catalog match") {
		t.Errorf("match miss output:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteStoreFile(t, filepath.Dir(cfg.Paths.StorePath))
	configPath := writeConfigFile(t, cfg)

	out, err := runCLI(t, "--config", configPath, "show")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Day 1 - Friday") || !strings.Contains(out, "Mahakavi") {
		t.Errorf("show output:\n%s", out)
	}

	if _, err := runCLI(t, "--config", configPath, "show", "2030-01-01"); err == nil {
		t.Error("show with an unknown date must fail")
	}
}

func TestExportCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteStoreFile(t, filepath.Dir(cfg.Paths.StorePath))
	configPath := writeConfigFile(t, cfg)
	outPath := filepath.Join(t.TempDir(), "schedule.xlsx")

	out, err := runCLI(t, "--config", configPath, "export", "--out", outPath)
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat workbook: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}

func TestInitCreatesStoreOnce(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	configPath := writeConfigFile(t, cfg)

	out, err := runCLI(t, "--config", configPath, "init", "--source", "seed")
	if err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}
	doc, err := schedule.Read(cfg.Paths.StorePath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if doc.Schedule.Source != "seed" || len(doc.Days) != 0 {
		t.Errorf("unexpected store: source=%q days=%d", doc.Schedule.Source, len(doc.Days))
	}

	if _, err := runCLI(t, "--config", configPath, "init"); err == nil {
		t.Error("init over an existing store must fail")
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Errorf("sample config missing paths section:\n%s", data)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Error("config init must refuse to overwrite without --force")
	}
	if _, err := runCLI(t, "config", "init", "--path", target, "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}
}
