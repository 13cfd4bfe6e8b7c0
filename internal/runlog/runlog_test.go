package runlog_test

import (
	"context"
	"testing"
	"time"

	"marquee/internal/runlog"
	"marquee/internal/testsupport"
)

func TestRecordAndList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := runlog.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	run := runlog.Begin("append", "pages.pdf")
	run.Days = 4
	run.Showings = 131
	run.Matched = 118
	run.Unmatched = 13
	run.UnmatchedTitles = []string{"BHAKTA KANAKADASA", "SHANKAR GURU"}
	run.DuplicateDates = []string{"2026-02-03"}
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Mode != "append" || got.Source != "pages.pdf" {
		t.Fatalf("unexpected run: %+v", got)
	}
	if got.Showings != 131 || got.Unmatched != 13 {
		t.Fatalf("counts not preserved: %+v", got)
	}
	if len(got.UnmatchedTitles) != 2 || got.UnmatchedTitles[0] != "BHAKTA KANAKADASA" {
		t.Fatalf("unmatched titles not preserved: %v", got.UnmatchedTitles)
	}
	if len(got.DuplicateDates) != 1 {
		t.Fatalf("duplicate dates not preserved: %v", got.DuplicateDates)
	}
	if got.FinishedAt.IsZero() {
		t.Fatal("finish timestamp should be filled in")
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := runlog.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		run := runlog.Begin("append", "seed")
		run.StartedAt = base.Add(time.Duration(i) * time.Hour)
		run.FinishedAt = run.StartedAt.Add(time.Minute)
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Fatalf("runs not newest first: %v then %v", runs[0].StartedAt, runs[1].StartedAt)
	}
}

func TestRecordRequiresID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := runlog.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := store.Record(context.Background(), runlog.Run{Mode: "append"}); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first, err := runlog.Open(cfg)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := runlog.Open(cfg)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	if _, err := second.List(context.Background(), 0); err != nil {
		t.Fatalf("List on reopened store failed: %v", err)
	}
}
