// Package dates parses and formats sidecar timestamps for exiftool.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ExifTimeFormat is the datetime layout exiftool expects for tag values.
const ExifTimeFormat = "2006:01:02 15:04:05"

// FormatExifDatetime formats a time for exiftool tag arguments.
func FormatExifDatetime(t time.Time) string {
	return t.Format(ExifTimeFormat)
}

// ParseUnixString parses a unix-seconds string (as found in sidecar
// timestamp fields) into a local time.
func ParseUnixString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp string")
	}

	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse unix timestamp %q: %w", s, err)
	}
	if secs < 0 {
		return time.Time{}, fmt.Errorf("negative unix timestamp %q", s)
	}
	return time.Unix(secs, 0), nil
}

// ParseFormattedDate parses a human-formatted date string (e.g. the
// sidecar's "formatted" field) as a fallback when the unix field is unusable.
func ParseFormattedDate(dateString string) (time.Time, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(dateString))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateString)
	}
	return t, nil
}
