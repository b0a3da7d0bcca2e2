// Package naming applies filename renaming conventions to output files.
package naming

import (
	"path/filepath"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/enums"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ApplyNamingStyle applies renaming conventions to a filename, leaving the
// extension untouched.
func ApplyNamingStyle(style enums.ReplaceToStyle, filename string) string {
	if style == enums.RenamingSkip {
		return filename
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	switch style {
	case enums.RenamingSpaces:
		base = strings.ReplaceAll(base, "_", " ")
	case enums.RenamingUnderscores:
		base = strings.ReplaceAll(base, " ", "_")
	case enums.RenamingTitle:
		base = titleCaser.String(strings.ReplaceAll(base, "_", " "))
	default:
		logging.D(1, "Skipping space or underscore renaming conventions...")
	}
	return base + ext
}
