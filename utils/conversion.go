package utils

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02",
}

// ParseDate parses a date sent by the client. The web client sends plain
// calendar dates; API consumers may send full RFC3339 timestamps.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date value %q", value)
}
