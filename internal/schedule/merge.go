package schedule

import (
	"sort"

	"marquee/internal/catalog"
)

// MetaUpdate carries the store metadata values supplied for a merge run.
// The venue directory is never part of an update; it is carried over from
// the prior store unchanged.
type MetaUpdate struct {
	LastUpdated string
	Source      string
	Note        string
}

// Report summarizes a merge for the run's diagnostic output. It is advisory
// and never blocks persistence.
type Report struct {
	Mode            string
	DaysAdded       int
	ShowingsAdded   int
	Matched         int
	Unmatched       int
	UnmatchedTitles []string
	DuplicateDates  []string
}

// Append adds the given days to the store document in order and overwrites
// the metadata block with this run's values. Days whose date already exists
// in the store are retained alongside the existing copy — the collision is
// surfaced in the report as a warning, not resolved.
func Append(doc *Document, days []Day, meta MetaUpdate, cat *catalog.Catalog) Report {
	report := MatchDays(days, cat)
	report.Mode = "append"

	seen := make(map[string]bool, len(doc.Days)+len(days))
	for _, day := range doc.Days {
		seen[day.Date] = true
	}
	for _, day := range days {
		if seen[day.Date] {
			report.DuplicateDates = append(report.DuplicateDates, day.Date)
		}
		seen[day.Date] = true
		doc.Days = append(doc.Days, day)
	}

	applyMeta(doc, meta)
	return report
}

// Replace swaps the store's day list for the given freshly assembled days,
// keeping the venue directory from the prior store.
func Replace(doc *Document, days []Day, meta MetaUpdate, cat *catalog.Catalog) Report {
	report := MatchDays(days, cat)
	report.Mode = "replace"

	seen := make(map[string]bool, len(days))
	for _, day := range days {
		if seen[day.Date] {
			report.DuplicateDates = append(report.DuplicateDates, day.Date)
		}
		seen[day.Date] = true
	}

	doc.Days = append([]Day(nil), days...)
	applyMeta(doc, meta)
	return report
}

func applyMeta(doc *Document, meta MetaUpdate) {
	doc.Schedule.LastUpdated = meta.LastUpdated
	doc.Schedule.Source = meta.Source
	doc.Schedule.Note = meta.Note
}

// MatchDays resolves every film title in the given days against the
// catalog and builds the diagnostic report. Non-film program items (nil
// title) count as showings but are excluded from match statistics.
func MatchDays(days []Day, cat *catalog.Catalog) Report {
	report := Report{DaysAdded: len(days)}
	unmatched := make(map[string]struct{})
	for _, day := range days {
		for _, screening := range day.Screenings {
			for _, showing := range screening.Showings {
				report.ShowingsAdded++
				title := showing.FilmTitle()
				if title == "" {
					continue
				}
				if _, ok := catalog.Resolve(cat, title); ok {
					report.Matched++
				} else {
					report.Unmatched++
					unmatched[title] = struct{}{}
				}
			}
		}
	}
	report.UnmatchedTitles = make([]string, 0, len(unmatched))
	for title := range unmatched {
		report.UnmatchedTitles = append(report.UnmatchedTitles, title)
	}
	sort.Strings(report.UnmatchedTitles)
	return report
}
