package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var slotTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateVenues(); err != nil {
		return err
	}
	if err := c.validateSlots(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return errors.New("paths.catalog_path must be set")
	}
	if strings.TrimSpace(c.Paths.StorePath) == "" {
		return errors.New("paths.store_path must be set")
	}
	return nil
}

func (c *Config) validateVenues() error {
	if len(c.Venues.Order) == 0 {
		return errors.New("venues.order must list at least one venue")
	}
	seen := make(map[string]struct{}, len(c.Venues.Order))
	for _, venue := range c.Venues.Order {
		if venue == "" {
			return errors.New("venues.order must not contain empty entries")
		}
		if _, ok := seen[venue]; ok {
			return fmt.Errorf("venues.order lists %q twice", venue)
		}
		seen[venue] = struct{}{}
	}
	if c.Venues.Multiplex == "" {
		return errors.New("venues.multiplex must be set")
	}
	if _, ok := seen[c.Venues.Multiplex]; !ok {
		return fmt.Errorf("venues.multiplex %q is not in venues.order", c.Venues.Multiplex)
	}
	if c.Venues.ForumVenue != "" && strings.TrimSpace(c.Venues.ForumScreen) == "" {
		return errors.New("venues.forum_screen must be set when venues.forum_venue is set")
	}
	return nil
}

func (c *Config) validateSlots() error {
	for class, slots := range c.Slots {
		if len(slots) == 0 {
			return fmt.Errorf("slots.%s must list at least one time", class)
		}
		for _, slot := range slots {
			if !slotTimePattern.MatchString(slot) {
				return fmt.Errorf("slots.%s contains invalid time %q (want H:MM or HH:MM)", class, slot)
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
