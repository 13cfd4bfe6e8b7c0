package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"marquee/internal/extract"
	"marquee/internal/schedule"
)

// lastUpdatedFormat is the store metadata timestamp shape, millisecond
// precision with a literal Z suffix.
const lastUpdatedFormat = "2006-01-02T15:04:05.000Z"

func nowStamp() string {
	return time.Now().UTC().Format(lastUpdatedFormat)
}

// readPages loads OCR page text files in argument order. The page number is
// the 1-based argument position.
func readPages(paths []string) ([]extract.Page, error) {
	pages := make([]extract.Page, 0, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", path, err)
		}
		pages = append(pages, extract.Page{Number: i + 1, Text: string(data)})
	}
	return pages, nil
}

// readDayFiles loads assembled day documents produced by extract.
func readDayFiles(paths []string) ([]schedule.Day, error) {
	days := make([]schedule.Day, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read day file %s: %w", path, err)
		}
		var day schedule.Day
		if err := json.Unmarshal(data, &day); err != nil {
			return nil, fmt.Errorf("parse day file %s: %w", path, err)
		}
		if strings.TrimSpace(day.Date) == "" {
			return nil, fmt.Errorf("day file %s: date is required", path)
		}
		if day.DayNumber < 1 {
			return nil, fmt.Errorf("day file %s: dayNumber must be 1 or higher, got %d", path, day.DayNumber)
		}
		days = append(days, day)
	}
	return days, nil
}

// writeDayFile persists one assembled day as day-<date>.json in dir and
// returns the written path.
func writeDayFile(dir string, day schedule.Day) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create extract directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("day-%s.json", day.Date))
	data, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode day %s: %w", day.Date, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write day file %s: %w", path, err)
	}
	return path, nil
}
