package extract

import (
	"errors"
	"log/slog"
	"sort"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/schedule"
)

// Page is one page of OCR output, identified by its page number in the
// source document.
type Page struct {
	Number int
	Text   string
}

// Stats summarizes a freeform extraction pass.
type Stats struct {
	Pages         int
	Records       int
	Showings      int
	SlotOverflows int
	SkippedPages  int
}

// Extractor recognizes showings in OCR page text and groups them into
// per-day inputs for the assembler.
type Extractor struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns an extractor bound to the given configuration. A nil logger
// falls back to a no-op logger.
func New(cfg *config.Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// ExtractPages scans every page and groups recognized showings by date,
// venue, and screen. Pages are processed strictly in order; a page with no
// recognizable entries contributes zero showings and the pass continues. A
// screen whose recognized showings exceed its slot table is rejected and
// counted, never silently mis-timed.
func (e *Extractor) ExtractPages(pages []Page) ([]schedule.DayInput, Stats) {
	stats := Stats{Pages: len(pages)}
	byDate := make(map[string]*schedule.DayInput)
	var dateOrder []string
	currentDate := ""

	for _, page := range pages {
		scan := ScanPage(page.Number, page.Text)
		stats.Records += len(scan.Records)

		if len(scan.Dates) > 0 {
			currentDate = scan.Dates[0]
		}
		if currentDate == "" {
			if len(scan.Records) > 0 {
				stats.SkippedPages++
				e.logger.Warn("page has records but no recognizable date",
					logging.Int(logging.FieldPage, page.Number),
					logging.Int(logging.FieldCount, len(scan.Records)),
				)
			}
			continue
		}
		if len(scan.Records) == 0 {
			e.logger.Debug("page yielded no entries",
				logging.Int(logging.FieldPage, page.Number),
				logging.String(logging.FieldDate, currentDate),
			)
			continue
		}

		venue := e.primaryVenue(scan)
		screen := scan.Screen
		if screen == "" {
			screen = "1"
		}

		slots := e.cfg.SlotTable(venue, screen)
		showings, err := AssignSlots(slots, scan.Records)
		if err != nil {
			if errors.Is(err, ErrSlotOverflow) {
				stats.SlotOverflows++
			}
			e.logger.Warn("rejecting screen on this page",
				logging.Int(logging.FieldPage, page.Number),
				logging.String(logging.FieldVenue, venue),
				logging.String(logging.FieldScreen, screen),
				logging.Error(err),
			)
			continue
		}

		day, ok := byDate[currentDate]
		if !ok {
			day = &schedule.DayInput{
				Date:   currentDate,
				Venues: make(map[string]map[string][]schedule.Showing),
			}
			byDate[currentDate] = day
			dateOrder = append(dateOrder, currentDate)
		}
		if day.Venues[venue] == nil {
			day.Venues[venue] = make(map[string][]schedule.Showing)
		}
		day.Venues[venue][screen] = append(day.Venues[venue][screen], showings...)
		stats.Showings += len(showings)

		e.logger.Info("page extracted",
			logging.Int(logging.FieldPage, page.Number),
			logging.String(logging.FieldDate, currentDate),
			logging.String(logging.FieldVenue, venue),
			logging.String(logging.FieldScreen, screen),
			logging.Int(logging.FieldCount, len(showings)),
		)
	}

	sort.Strings(dateOrder)
	days := make([]schedule.DayInput, 0, len(dateOrder))
	for _, date := range dateOrder {
		days = append(days, *byDate[date])
	}
	return days, stats
}

// Analyze reports the raw recognition signals per page without assembling
// showings, mirroring what an operator wants to see before trusting a new
// source document.
func (e *Extractor) Analyze(pages []Page) []PageScan {
	scans := make([]PageScan, 0, len(pages))
	for _, page := range pages {
		scans = append(scans, ScanPage(page.Number, page.Text))
	}
	return scans
}

// primaryVenue picks the page's venue: the first marker found, falling back
// to the multiplex for pages whose venue header the OCR mangled.
func (e *Extractor) primaryVenue(scan PageScan) string {
	if len(scan.Venues) == 0 {
		return e.cfg.Venues.Multiplex
	}
	return scan.Venues[0]
}
