package main

import (
	"strings"
	"testing"
)

func TestRenderTableDashesEmptyCells(t *testing.T) {
	out := renderTable(
		[]column{col("Venue"), col("Film"), numericCol("Year")},
		[][]string{
			{"cinepolis", "Mahakavi", "2025"},
			{"cinepolis", "", ""},
		},
	)
	if !strings.Contains(out, "Mahakavi") {
		t.Fatalf("row values missing:\n%s", out)
	}
	if !strings.Contains(out, "-") {
		t.Fatalf("empty cells should render as a dash:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]column{col("A"), col("B"), col("C")},
		[][]string{{"only"}},
	)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected bordered table output:\n%s", out)
	}
	if !strings.Contains(out, "only") {
		t.Fatalf("row value missing:\n%s", out)
	}
}

func TestRenderTableEmptyColumns(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("no columns should render nothing, got:\n%s", out)
	}
}
