// Package metadata reads companion JSON sidecar files and extracts capture timestamps.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/dates"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/enums"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// ReadSidecar decodes the sidecar JSON file at the given path.
func ReadSidecar(path string) (*models.Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sidecar %q: %w", path, err)
	}

	sc := &models.Sidecar{}
	if err := json.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to decode sidecar %q: %w", path, err)
	}
	return sc, nil
}

// ExtractTimestamp pulls the capture time from a sidecar according to the
// selected source. Returns false when no usable timestamp exists.
func ExtractTimestamp(sc *models.Sidecar, source enums.TimestampSource) (time.Time, bool) {
	if sc == nil {
		return time.Time{}, false
	}

	switch source {
	case enums.TimestampTaken:
		return timeFromEntry(sc.PhotoTakenTime)

	case enums.TimestampCreation:
		return timeFromEntry(sc.CreationTime)

	default: // Auto: photoTakenTime wins, creationTime is the fallback
		if t, ok := timeFromEntry(sc.PhotoTakenTime); ok {
			return t, true
		}
		return timeFromEntry(sc.CreationTime)
	}
}

// timeFromEntry parses one sidecar time entry, preferring the unix field.
func timeFromEntry(entry models.SidecarTime) (time.Time, bool) {
	if t, err := dates.ParseUnixString(entry.Timestamp); err == nil {
		return t, true
	} else if entry.Timestamp != "" {
		logging.D(2, "Could not parse unix timestamp %q: %v", entry.Timestamp, err)
	}

	// Fall back to the human-formatted rendering.
	if entry.Formatted != "" {
		if t, err := dates.ParseFormattedDate(entry.Formatted); err == nil {
			return t, true
		} else {
			logging.D(2, "Could not parse formatted date %q: %v", entry.Formatted, err)
		}
	}
	return time.Time{}, false
}
