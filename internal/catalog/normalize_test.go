package catalog_test

import (
	"testing"

	"marquee/internal/catalog"
)

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Man of Marble", "MAN OF MARBLE"},
		{"MAN, OF MARBLE!", "MAN OF MARBLE"},
		{"MAN, OF, MARBLE (RESTORED)", "MAN OF MARBLE RESTORED"},
		{"  leading   and trailing  ", "LEADING AND TRAILING"},
		{"tab\tand\nnewline", "TAB AND NEWLINE"},
		{"CLEO FROM 5 TO 7", "CLEO FROM 5 TO 7"},
		{"", ""},
		{"!!!", ""},
		{"re-make", "REMAKE"},
	}
	for _, tc := range cases {
		if got := catalog.NormalizeTitle(tc.in); got != tc.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Man of Marble",
		"THE HOURGLASS SANATORIUM",
		"UMMATHAT - THE RHYTHM OF KODAVA",
		"Dr. Rajkumar: Hero of Subalterns",
		"",
	}
	for _, in := range inputs {
		once := catalog.NormalizeTitle(in)
		twice := catalog.NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
