package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marquee/internal/config"
	"marquee/internal/schedule"
)

var sheetHeaders = []string{"Venue", "Screen", "Time", "Film", "Director", "Country", "Year", "Language", "Duration"}

var titleCaser = cases.Title(language.English)

// WriteXLSX renders the document as workbook bytes: one sheet per day, one
// row per showing. Days keep their store order.
func WriteXLSX(cfg *config.Config, doc *schedule.Document) ([]byte, error) {
	if len(doc.Days) == 0 {
		return nil, fmt.Errorf("store has no days to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, day := range doc.Days {
		sheet := fmt.Sprintf("Day %d", day.DayNumber)
		if day.DayNumber == 0 {
			sheet = day.Date
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeDay(cfg, f, sheet, day); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDay(cfg *config.Config, f *excelize.File, sheet string, day schedule.Day) error {
	write := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, value)
	}

	if err := write(1, 1, day.Label); err != nil {
		return fmt.Errorf("write day header: %w", err)
	}
	if err := write(2, 1, day.Date); err != nil {
		return fmt.Errorf("write day date: %w", err)
	}
	for col, header := range sheetHeaders {
		if err := write(col+1, 2, header); err != nil {
			return fmt.Errorf("write header row: %w", err)
		}
	}

	row := 3
	for _, screening := range day.Screenings {
		for _, showing := range screening.Showings {
			values := []any{
				displayVenue(cfg, screening.Venue),
				screening.Screen,
				showing.Time,
				showing.FilmTitle(),
				directorOrBlank(showing),
				showing.Country,
				showing.Year,
				showing.Language,
				showing.Duration,
			}
			for col, value := range values {
				if err := write(col+1, row, value); err != nil {
					return fmt.Errorf("write showing row: %w", err)
				}
			}
			row++
		}
	}
	return nil
}

// displayVenue prefers the configured display name and falls back to
// title-casing the identifier.
func displayVenue(cfg *config.Config, venue string) string {
	if name := cfg.DisplayName(venue); name != venue {
		return name
	}
	return titleCaser.String(venue)
}

func directorOrBlank(showing schedule.Showing) string {
	if showing.Director == nil {
		return ""
	}
	return *showing.Director
}
