package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory configuration.
type Paths struct {
	CatalogPath string `toml:"catalog_path"`
	StorePath   string `toml:"store_path"`
	ExtractDir  string `toml:"extract_dir"`
	JournalDir  string `toml:"journal_dir"`
}

// Venues describes the canonical venue ordering and the forum fold rule.
// The forum program is a display-grouping convention: its showings are
// folded into the multiplex under a distinguished screen label instead of
// being kept as a separate venue.
type Venues struct {
	Order       []string          `toml:"order"`
	Display     map[string]string `toml:"display"`
	Multiplex   string            `toml:"multiplex"`
	ForumVenue  string            `toml:"forum_venue"`
	ForumScreen string            `toml:"forum_screen"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Marquee.
//
// Configuration sections by subsystem:
//   - Paths: catalog/store documents, extract output, run journal
//   - Venues: canonical ordering, display names, forum fold rule
//   - Slots: per-venue-class ordered daily showing times
//   - Logging: log format and level
type Config struct {
	Paths   Paths               `toml:"paths"`
	Venues  Venues              `toml:"venues"`
	Slots   map[string][]string `toml:"slots"`
	Logging Logging             `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/marquee/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return value
// is the resolved path, the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("marquee.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the pipeline writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ExtractDir, c.Paths.JournalDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SlotTable returns the fixed ordered list of daily showing times for a
// venue/screen pair, or nil when the venue has no configured table. Numbered
// screens at the multiplex share the "screen" class; the forum screen has its
// own table.
func (c *Config) SlotTable(venue, screen string) []string {
	class := c.SlotClass(venue, screen)
	if class == "" {
		return nil
	}
	return c.Slots[class]
}

// SlotClass maps a venue/screen pair to its slot-table key.
func (c *Config) SlotClass(venue, screen string) string {
	venue = strings.ToLower(strings.TrimSpace(venue))
	switch venue {
	case "":
		return ""
	case c.Venues.Multiplex:
		if strings.EqualFold(strings.TrimSpace(screen), c.Venues.ForumScreen) {
			return c.Venues.ForumVenue
		}
		return "screen"
	default:
		return venue
	}
}

// DisplayName returns the human label for a venue identifier.
func (c *Config) DisplayName(venue string) string {
	if name, ok := c.Venues.Display[venue]; ok {
		return name
	}
	return venue
}

// ExpandPath resolves tilde shortcuts and returns an absolute cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

func (c *Config) normalize() error {
	for _, field := range []*string{
		&c.Paths.CatalogPath,
		&c.Paths.StorePath,
		&c.Paths.ExtractDir,
		&c.Paths.JournalDir,
	} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Venues.Multiplex = strings.ToLower(strings.TrimSpace(c.Venues.Multiplex))
	c.Venues.ForumVenue = strings.ToLower(strings.TrimSpace(c.Venues.ForumVenue))
	for i, venue := range c.Venues.Order {
		c.Venues.Order[i] = strings.ToLower(strings.TrimSpace(venue))
	}
	return nil
}
