package extract

import (
	"errors"
	"fmt"

	"marquee/internal/schedule"
)

// ErrSlotOverflow reports a screen with more recognized showings than its
// venue's slot table has slots. The screen is rejected rather than assigning
// an entry to a nonexistent slot.
var ErrSlotOverflow = errors.New("more showings than time slots")

// ErrNoSlotTable reports a venue/screen class without a configured slot
// table; positional assignment is impossible without one.
var ErrNoSlotTable = errors.New("no slot table for venue")

// AssignSlots zips recognized records with the venue's fixed slot table by
// position: the Nth record takes the Nth slot. Fewer records than slots is
// permitted (a masterclass may occupy a single slot); more records than
// slots is an ErrSlotOverflow.
func AssignSlots(slots []string, records []Record) ([]schedule.Showing, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlotTable
	}
	if len(records) > len(slots) {
		return nil, fmt.Errorf("%w: %d showings for %d slots", ErrSlotOverflow, len(records), len(slots))
	}
	showings := make([]schedule.Showing, 0, len(records))
	for i, record := range records {
		showings = append(showings, showingFromRecord(slots[i], record))
	}
	return showings, nil
}

func showingFromRecord(slot string, record Record) schedule.Showing {
	showing := schedule.Showing{
		Time:     slot,
		Country:  record.Country,
		Year:     record.Year,
		Language: record.Language,
		Duration: record.Duration,
	}
	if record.Title != "" {
		showing.Film = schedule.StrPtr(record.Title)
	}
	if record.Director != "" {
		showing.Director = schedule.StrPtr(record.Director)
	}
	return showing
}
