package exiftool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// maxReportedWarnings limits how many exiftool warnings print per batch.
const maxReportedWarnings = 5

// BatchSetTimestamps writes timestamps on multiple files in one exiftool
// invocation using an argfile. Returns the number of files exiftool
// accounted for (updated or unchanged) and the number it did not.
func BatchSetTimestamps(ctx context.Context, tasks []models.FileTask) (success, errCount int, err error) {
	if len(tasks) == 0 {
		return 0, 0, nil
	}

	// Write argfile
	argfile, err := os.CreateTemp("", "entefix-args-*.txt")
	if err != nil {
		return 0, len(tasks), fmt.Errorf("failed to create argfile: %w", err)
	}
	argfilePath := argfile.Name()
	defer func() {
		if removeErr := os.Remove(argfilePath); removeErr != nil && !os.IsNotExist(removeErr) {
			logging.E("Failed to remove argfile %q: %v", argfilePath, removeErr)
		}
	}()

	content := newArgfileBuilder(tasks).buildArgfile()
	if _, err := argfile.WriteString(content); err != nil {
		_ = argfile.Close()
		return 0, len(tasks), fmt.Errorf("failed to write argfile: %w", err)
	}
	if err := argfile.Close(); err != nil {
		return 0, len(tasks), fmt.Errorf("failed to close argfile: %w", err)
	}

	// Run exiftool with argfile
	cmd := exec.CommandContext(ctx, Binary(), "-@", argfilePath)
	logging.D(2, "Constructed exiftool timestamp command:\n\n%v\n", cmd.String())

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// exiftool exits non-zero when any file in the batch errors, the
	// summary lines still account for the rest.
	if runErr := cmd.Run(); runErr != nil && stdout.Len() == 0 {
		return 0, len(tasks), fmt.Errorf("exiftool batch timestamp run failed: %w (%s)", runErr, strings.TrimSpace(stderr.String()))
	}

	// With -execute, exiftool outputs one summary per option group.
	updated, unchanged := ParseWriteSummary(stdout.String())

	// Files are either updated, unchanged, or errored.
	accountedFor := updated + unchanged
	errCount = len(tasks) - accountedFor
	if errCount < 0 {
		logging.D(1, "exiftool accounted for more files (%d) than tasks (%d)", accountedFor, len(tasks))
		errCount = 0
	}

	reportWarnings(FilterWarnings(stderr.String()))

	return accountedFor, errCount, nil
}

// ParseWriteSummary counts exiftool's per-execute summary lines
// ("N image files updated" / "N image files unchanged").
func ParseWriteSummary(stdout string) (updated, unchanged int) {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "image files updated"):
			if n, err := strconv.Atoi(firstField(line)); err == nil {
				updated += n
			}
		case strings.Contains(line, "image files unchanged"):
			if n, err := strconv.Atoi(firstField(line)); err == nil {
				unchanged += n
			}
		}
	}
	return updated, unchanged
}

// FilterWarnings strips expected noise from exiftool's stderr and returns
// the remaining lines.
//
// FileCreateDate warnings are expected on non-Mac/Windows platforms where
// the creation date cannot be set.
func FilterWarnings(stderr string) []string {
	if strings.TrimSpace(stderr) == "" {
		return nil
	}

	var real []string
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "FileCreateDate") {
			continue
		}
		real = append(real, line)
	}
	return real
}

// reportWarnings logs a capped list of exiftool warnings.
func reportWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	logging.W("exiftool reported %d warning(s):", len(warnings))
	for i, warning := range warnings {
		if i >= maxReportedWarnings {
			logging.P("    ... and %d more", len(warnings)-maxReportedWarnings)
			break
		}
		logging.P("    %s", warning)
	}
}

// firstField returns the first whitespace-separated field of a line.
func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
