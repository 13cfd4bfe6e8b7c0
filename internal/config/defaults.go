package config

const (
	defaultCatalogPath = "~/.local/share/marquee/films.json"
	defaultStorePath   = "~/.local/share/marquee/schedule.json"
	defaultExtractDir  = "~/.local/share/marquee/extracted"
	defaultJournalDir  = "~/.local/share/marquee"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultMultiplex   = "cinepolis"
	defaultForumVenue  = "forum"
	defaultForumScreen = "Open Forum"
)

// Default returns a Config populated with repository defaults. The slot
// tables mirror the festival's published grid: five daily slots on the
// numbered multiplex screens, three at each satellite venue, a single
// evening slot at the open-air venue.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
			StorePath:   defaultStorePath,
			ExtractDir:  defaultExtractDir,
			JournalDir:  defaultJournalDir,
		},
		Venues: Venues{
			Order: []string{"cinepolis", "rajkumar", "banashankari", "openair"},
			Display: map[string]string{
				"cinepolis":    "Cinepolis",
				"rajkumar":     "Dr. Rajkumar Bhavana",
				"banashankari": "Suchitra Banashankari",
				"openair":      "Open Air",
			},
			Multiplex:   defaultMultiplex,
			ForumVenue:  defaultForumVenue,
			ForumScreen: defaultForumScreen,
		},
		Slots: map[string][]string{
			"screen":       {"10:00", "12:30", "14:50", "17:10", "19:40"},
			"forum":        {"11:00", "15:00", "18:00"},
			"openair":      {"19:00"},
			"rajkumar":     {"10:30", "14:00", "17:30"},
			"banashankari": {"10:30", "15:00", "18:00"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
