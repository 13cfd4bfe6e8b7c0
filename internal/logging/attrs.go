package logging

import (
	"log/slog"
)

type Attr = slog.Attr

func Any(key string, value any) Attr { return slog.Any(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Common field names shared by pipeline log lines.
const (
	FieldPage   = "page"
	FieldVenue  = "venue"
	FieldScreen = "screen"
	FieldDate   = "date"
	FieldTitle  = "title"
	FieldCount  = "count"
)
