package extract_test

import (
	"errors"
	"testing"

	"marquee/internal/extract"
)

func record(title string) extract.Record {
	return extract.Record{
		Title: title, Director: "Someone", Country: "India",
		Year: 2025, Language: "Kannada", Duration: 100,
	}
}

func TestAssignSlotsPositional(t *testing.T) {
	slots := []string{"10:00", "12:30", "14:50", "17:10", "19:40"}
	showings, err := extract.AssignSlots(slots, []extract.Record{record("A"), record("B"), record("C")})
	if err != nil {
		t.Fatalf("AssignSlots failed: %v", err)
	}
	if len(showings) != 3 {
		t.Fatalf("showings = %d, want 3", len(showings))
	}
	for i, want := range []string{"10:00", "12:30", "14:50"} {
		if showings[i].Time != want {
			t.Errorf("showing %d time = %q, want %q", i, showings[i].Time, want)
		}
	}
	if showings[0].FilmTitle() != "A" || showings[0].Year != 2025 {
		t.Fatalf("fields not carried over: %+v", showings[0])
	}
}

func TestAssignSlotsSingleSlotVenue(t *testing.T) {
	showings, err := extract.AssignSlots([]string{"19:00"}, []extract.Record{record("Ammang Helbeda")})
	if err != nil {
		t.Fatalf("AssignSlots failed: %v", err)
	}
	if len(showings) != 1 || showings[0].Time != "19:00" {
		t.Fatalf("unexpected showings: %+v", showings)
	}
}

func TestAssignSlotsOverflowRejected(t *testing.T) {
	_, err := extract.AssignSlots([]string{"19:00"}, []extract.Record{record("First"), record("Second")})
	if !errors.Is(err, extract.ErrSlotOverflow) {
		t.Fatalf("expected ErrSlotOverflow, got %v", err)
	}
}

func TestAssignSlotsFewerThanSlots(t *testing.T) {
	showings, err := extract.AssignSlots([]string{"11:00", "15:00", "18:00"}, []extract.Record{record("Masterclass")})
	if err != nil {
		t.Fatalf("partial slot fill must succeed: %v", err)
	}
	if len(showings) != 1 || showings[0].Time != "11:00" {
		t.Fatalf("unexpected showings: %+v", showings)
	}
}

func TestAssignSlotsMissingTable(t *testing.T) {
	if _, err := extract.AssignSlots(nil, []extract.Record{record("A")}); !errors.Is(err, extract.ErrNoSlotTable) {
		t.Fatalf("expected ErrNoSlotTable, got %v", err)
	}
}
