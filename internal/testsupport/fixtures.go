package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

const catalogJSON = `{
  "films": [
    {"title": "Mahakavi", "director": "Baragur Ramachandrappa", "country": "India", "year": 2025, "language": "Kannada", "runtime": 121},
    {"title": "Shape of Momo", "director": "Tribeny Rai", "country": "India", "year": 2025, "language": "Nepali", "runtime": 115}
  ]
}`

const storeJSON = `{
  "schedule": {
    "lastUpdated": "2026-01-28T12:00:00.000Z",
    "source": "seed",
    "note": "fixture store",
    "venues": {
      "cinepolis": {"name": "Cinepolis", "screens": 8}
    }
  },
  "days": [
    {
      "date": "2026-01-30",
      "dayNumber": 1,
      "label": "Day 1 - Friday",
      "screenings": [
        {
          "venue": "cinepolis",
          "screen": "1",
          "showings": [
            {"time": "10:00", "film": "Mahakavi", "director": "Baragur Ramachandrappa", "country": "India", "year": 2025, "language": "Kannada", "duration": 121}
          ]
        }
      ]
    }
  ]
}`

// SamplePageText mimics one OCR'd schedule page: a date header, a handful of
// record-pattern entries, one inline entry, and some layout noise.
const SamplePageText = `BIFFES 2026 | 03-Feb-2026 | CINEPOLIS SCREEN 1

10:00  12:30  14:50

MAHAKAVI
Dir: Baragur Ramachandrappa | India | 2025 | Kannada | 121'

SHAPE OF MOMO
Dir: Tribeny Rai | India | 2025 | Nepali | 115'

INVISIBLE TALES Dir: Mehdi Fard Ghaderi | Iran | 2025 | Farsi | 100'

~~ curved page gutter artefacts ~~
`

// WriteCatalogFile writes the fixture catalog document into dir and returns
// its path.
func WriteCatalogFile(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "films.json", catalogJSON)
}

// WriteStoreFile writes a one-day fixture schedule store into dir and
// returns its path.
func WriteStoreFile(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "schedule.json", storeJSON)
}

// WritePageFile writes OCR page text into dir and returns its path.
func WritePageFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	return writeFile(t, dir, name, text)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
