package exiftool

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// fileTypeEntry is one record of exiftool's -json file type output.
type fileTypeEntry struct {
	FileName string `json:"FileName"`
	FileType string `json:"FileType"`
}

// DetectFileTypes detects true file types for multiple files in one exiftool
// call. Returns a map of base filename to canonical extension; files whose
// type exiftool does not recognize are absent or mapped to "".
//
// A failed detection run degrades to an empty map, it never fails the album.
func DetectFileTypes(ctx context.Context, files []string) map[string]string {
	if len(files) == 0 {
		return map[string]string{}
	}

	args := append([]string{"-FileType", "-FileName", "-json"}, files...)
	cmd := exec.CommandContext(ctx, Binary(), args...)
	logging.D(2, "Constructed exiftool detection command:\n\n%v\n", cmd.String())

	var stderr strings.Builder
	cmd.Stderr = &stderr

	// exiftool exits non-zero when any single file fails, the remaining
	// JSON output is still usable.
	out, err := cmd.Output()
	if err != nil && len(out) == 0 {
		logging.W("exiftool batch detection failed: %s", strings.TrimSpace(stderr.String()))
		return map[string]string{}
	}

	return ParseDetectOutput(out)
}

// ParseDetectOutput decodes exiftool's -json detection output into a
// filename → canonical extension map.
func ParseDetectOutput(out []byte) map[string]string {
	var entries []fileTypeEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		logging.W("Failed to parse exiftool detection output: %v", err)
		return map[string]string{}
	}

	typeMap := make(map[string]string, len(entries))
	for _, entry := range entries {
		typeMap[entry.FileName] = consts.FiletypeToExt[entry.FileType]
	}
	return typeMap
}

// CorrectedFilename checks whether the file's extension matches the detected
// type and returns the corrected base filename. Equivalent extensions
// (e.g. .jpeg vs .jpg) are not corrections.
func CorrectedFilename(path, detectedExt string) (name string, corrected bool) {
	base := filepath.Base(path)
	if detectedExt == "" {
		return base, false
	}

	currentExt := strings.ToLower(filepath.Ext(base))
	normalizedCurrent := normalizeExt(currentExt)
	normalizedDetected := normalizeExt(detectedExt)

	if normalizedCurrent == normalizedDetected {
		return base, false
	}

	// Extension mismatch, swap in the canonical extension
	return strings.TrimSuffix(base, filepath.Ext(base)) + detectedExt, true
}

// normalizeExt resolves extension aliases before comparison.
func normalizeExt(ext string) string {
	if alias, exists := consts.ExtAliases[ext]; exists {
		return alias
	}
	return ext
}
