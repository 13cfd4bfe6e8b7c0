package schedule

import "encoding/json"

// Showing is a single scheduled screening instance. Film and Director are
// nullable: announcements such as panel discussions carry no film title, and
// retrospective program items sometimes list no director.
type Showing struct {
	Time     string  `json:"time"`
	Film     *string `json:"film"`
	Director *string `json:"director"`
	Country  string  `json:"country"`
	Year     int     `json:"year"`
	Language string  `json:"language"`
	Duration int     `json:"duration"`
}

// StrPtr returns a pointer to value, for the nullable Film and Director
// fields.
func StrPtr(value string) *string { return &value }

// FilmTitle returns the film title or "" for non-film program items.
func (s Showing) FilmTitle() string {
	if s.Film == nil {
		return ""
	}
	return *s.Film
}

// Screening is one (venue, screen) pair and its ordered showings for a day.
type Screening struct {
	Venue    string    `json:"venue"`
	Screen   string    `json:"screen"`
	Showings []Showing `json:"showings"`
}

// Day is one calendar date of the festival schedule.
type Day struct {
	Date       string      `json:"date"`
	DayNumber  int         `json:"dayNumber"`
	Label      string      `json:"label"`
	Screenings []Screening `json:"screenings"`
}

// Meta is the store-level metadata block. Venues is an opaque directory
// passed through unchanged; the pipeline never interprets or mutates it.
type Meta struct {
	LastUpdated string          `json:"lastUpdated"`
	Source      string          `json:"source"`
	Note        string          `json:"note,omitempty"`
	Venues      json.RawMessage `json:"venues,omitempty"`
}

// Document is the top-level persisted schedule store.
type Document struct {
	Schedule Meta  `json:"schedule"`
	Days     []Day `json:"days"`
}

// ShowingCount counts the day's showings across all screenings.
func (d Day) ShowingCount() int {
	total := 0
	for _, screening := range d.Screenings {
		total += len(screening.Showings)
	}
	return total
}

// TotalShowings counts every showing across all days.
func (d *Document) TotalShowings() int {
	total := 0
	for _, day := range d.Days {
		for _, screening := range day.Screenings {
			total += len(screening.Showings)
		}
	}
	return total
}

// FindDay returns the first day with the given ISO date, or nil.
func (d *Document) FindDay(date string) *Day {
	for i := range d.Days {
		if d.Days[i].Date == date {
			return &d.Days[i]
		}
	}
	return nil
}
