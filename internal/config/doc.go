// Package config loads, normalizes, and validates Marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the pipeline needs: catalog and store locations, the canonical venue
// order, per-venue slot tables, and logging output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical venue names, and clear validation errors.
package config
