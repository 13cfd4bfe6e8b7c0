package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"marquee/internal/config"
)

// DayInput carries the extracted showings for one calendar day, grouped by
// venue and screen, before assembly into the canonical document shape.
type DayInput struct {
	Date      string
	DayNumber int
	Label     string
	Venues    map[string]map[string][]Showing
}

// Assemble turns a day's extracted showings into a Day document. Screenings
// are ordered by the canonical venue order and then by screen identifier;
// the forum program is folded into the multiplex under the configured screen
// label; screens with no showings are omitted entirely.
func Assemble(cfg *config.Config, in DayInput) Day {
	day := Day{
		Date:       in.Date,
		DayNumber:  in.DayNumber,
		Label:      in.Label,
		Screenings: []Screening{},
	}
	if day.Label == "" {
		day.Label = DeriveLabel(in.Date, in.DayNumber)
	}

	consumed := make(map[string]bool, len(in.Venues))
	for _, venue := range cfg.Venues.Order {
		screens := in.Venues[venue]
		consumed[venue] = true

		var folded []Showing
		if venue == cfg.Venues.Multiplex && cfg.Venues.ForumVenue != "" {
			folded = flattenVenue(in.Venues[cfg.Venues.ForumVenue])
			consumed[cfg.Venues.ForumVenue] = true
		}

		day.Screenings = append(day.Screenings, assembleVenue(venue, screens)...)
		if len(folded) > 0 {
			day.Screenings = append(day.Screenings, Screening{
				Venue:    cfg.Venues.Multiplex,
				Screen:   cfg.Venues.ForumScreen,
				Showings: sortShowings(folded),
			})
		}
	}

	// Venues outside the canonical order are kept rather than dropped.
	var extras []string
	for venue := range in.Venues {
		if !consumed[venue] {
			extras = append(extras, venue)
		}
	}
	sort.Strings(extras)
	for _, venue := range extras {
		day.Screenings = append(day.Screenings, assembleVenue(venue, in.Venues[venue])...)
	}

	return day
}

// DeriveLabel builds the human day label from the date and sequential day
// number, e.g. "Day 5 - Tuesday".
func DeriveLabel(date string, dayNumber int) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Sprintf("Day %d", dayNumber)
	}
	return fmt.Sprintf("Day %d - %s", dayNumber, parsed.Weekday())
}

func assembleVenue(venue string, screens map[string][]Showing) []Screening {
	if len(screens) == 0 {
		return nil
	}
	names := make([]string, 0, len(screens))
	for name := range screens {
		if len(screens[name]) == 0 {
			continue
		}
		names = append(names, name)
	}
	sortScreens(names)

	out := make([]Screening, 0, len(names))
	for _, name := range names {
		out = append(out, Screening{
			Venue:    venue,
			Screen:   name,
			Showings: sortShowings(screens[name]),
		})
	}
	return out
}

func flattenVenue(screens map[string][]Showing) []Showing {
	if len(screens) == 0 {
		return nil
	}
	names := make([]string, 0, len(screens))
	for name := range screens {
		names = append(names, name)
	}
	sortScreens(names)
	var out []Showing
	for _, name := range names {
		out = append(out, screens[name]...)
	}
	return out
}

// sortScreens orders screen identifiers numerically where possible so
// "10" sorts after "9"; non-numeric labels sort after numbered screens.
func sortScreens(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		a, aErr := strconv.Atoi(names[i])
		b, bErr := strconv.Atoi(names[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return names[i] < names[j]
		}
	})
}

func sortShowings(showings []Showing) []Showing {
	out := append([]Showing(nil), showings...)
	sort.SliceStable(out, func(i, j int) bool {
		return timeKey(out[i].Time) < timeKey(out[j].Time)
	})
	return out
}

// timeKey converts "H:MM"/"HH:MM" to minutes since midnight; unparsable
// times sort last while keeping their relative order.
func timeKey(value string) int {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 1 << 20
	}
	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 1 << 20
	}
	return hours*60 + minutes
}
