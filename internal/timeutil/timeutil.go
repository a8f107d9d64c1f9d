package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout defines the canonical display date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// CompactLayout is the YYYYMMDD form ESPN expects in the dates parameter.
	CompactLayout = "20060102"
	// USLayout is the MM/DD/YYYY form accepted as input.
	USLayout = "01/02/2006"
)

var inputLayouts = []string{CompactLayout, DateLayout, USLayout}

// ParseDate parses a date in YYYYMMDD, YYYY-MM-DD or MM/DD/YYYY form.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYYMMDD, YYYY-MM-DD or MM/DD/YYYY", value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompact formats a time as YYYYMMDD in its current location.
func FormatCompact(t time.Time) string {
	return t.Format(CompactLayout)
}

// NormalizeCompact parses any accepted input form and returns YYYYMMDD.
func NormalizeCompact(value string) (string, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatCompact(parsed), nil
}

// DatePart returns the YYYY-MM-DD prefix of an ESPN timestamp such as
// "2025-11-17T00:30Z", or "" when the value does not start with a date.
func DatePart(timestamp string) string {
	day, _, _ := strings.Cut(timestamp, "T")
	if _, err := time.Parse(DateLayout, day); err != nil {
		return ""
	}
	return day
}
