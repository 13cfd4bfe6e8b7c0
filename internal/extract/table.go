package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/schedule"
)

// Tuple is one hand-curated showing entry:
// [time, title-or-null, director-or-null, country, year, language, duration].
type Tuple []any

// DayTable is the manually-curated variant of a day's input: tuples already
// carry their times, so extraction reduces to type coercion and
// venue/screen tagging.
type DayTable struct {
	Date      string                        `json:"date"`
	DayNumber int                           `json:"dayNumber"`
	Label     string                        `json:"label,omitempty"`
	Venues    map[string]map[string][]Tuple `json:"venues"`
}

// LoadDayTable reads a day-table document from disk.
func LoadDayTable(path string) (DayTable, error) {
	var table DayTable
	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("read day table %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("parse day table %s: %w", path, err)
	}
	if strings.TrimSpace(table.Date) == "" {
		return table, fmt.Errorf("day table %s: date is required", path)
	}
	if table.DayNumber < 1 {
		return table, fmt.Errorf("day table %s: dayNumber must be 1 or higher, got %d", path, table.DayNumber)
	}
	return table, nil
}

// Coerce converts the table's tuples into typed showings grouped by venue
// and screen. A tuple whose year or duration does not parse as an integer
// is dropped with a diagnostic; the rest of the table survives. The second
// return value counts dropped tuples.
func (t DayTable) Coerce(logger *slog.Logger) (schedule.DayInput, int) {
	if logger == nil {
		logger = logging.NewNop()
	}
	in := schedule.DayInput{
		Date:      t.Date,
		DayNumber: t.DayNumber,
		Label:     t.Label,
		Venues:    make(map[string]map[string][]schedule.Showing, len(t.Venues)),
	}
	dropped := 0
	for venue, screens := range t.Venues {
		venue = strings.ToLower(strings.TrimSpace(venue))
		for screen, tuples := range screens {
			for _, tuple := range tuples {
				showing, err := coerceTuple(tuple)
				if err != nil {
					dropped++
					logger.Warn("dropping malformed day-table entry",
						logging.String(logging.FieldVenue, venue),
						logging.String(logging.FieldScreen, screen),
						logging.String(logging.FieldDate, t.Date),
						logging.Error(err),
					)
					continue
				}
				if in.Venues[venue] == nil {
					in.Venues[venue] = make(map[string][]schedule.Showing)
				}
				in.Venues[venue][screen] = append(in.Venues[venue][screen], showing)
			}
		}
	}
	return in, dropped
}

func coerceTuple(tuple Tuple) (schedule.Showing, error) {
	if len(tuple) != 7 {
		return schedule.Showing{}, fmt.Errorf("want 7 fields, got %d", len(tuple))
	}
	timeValue, err := stringField(tuple[0], "time")
	if err != nil {
		return schedule.Showing{}, err
	}
	country, err := stringField(tuple[3], "country")
	if err != nil {
		return schedule.Showing{}, err
	}
	year, err := intField(tuple[4], "year")
	if err != nil {
		return schedule.Showing{}, err
	}
	language, err := stringField(tuple[5], "language")
	if err != nil {
		return schedule.Showing{}, err
	}
	duration, err := intField(tuple[6], "duration")
	if err != nil {
		return schedule.Showing{}, err
	}

	showing := schedule.Showing{
		Time:     timeValue,
		Country:  country,
		Year:     year,
		Language: language,
		Duration: duration,
	}
	if title, ok := optionalString(tuple[1]); ok {
		showing.Film = schedule.StrPtr(title)
	}
	if director, ok := optionalString(tuple[2]); ok {
		showing.Director = schedule.StrPtr(director)
	}
	return showing, nil
}

func stringField(value any, name string) (string, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s: want non-empty string, got %v", name, value)
	}
	return strings.TrimSpace(s), nil
}

func optionalString(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// intField accepts JSON numbers and numeric strings; anything else fails
// the tuple.
func intField(value any, name string) (int, error) {
	switch v := value.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s: %v is not an integer", name, v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s: %q does not parse as integer", name, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s: unsupported value %v", name, value)
	}
}
