// Package validation handles validation of user flag input.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/enums"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"

	"github.com/spf13/viper"
)

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)
	dir = filepath.Clean(dir)

	if dir == "" || dir == "." {
		return nil, errors.New("directory must be entered")
	}

	// Stat path
	info, err := os.Stat(dir)
	if err == nil { // Err IS nil
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil
	}

	// Error other than non-existence
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}

	// Does not exist, should not create
	if !createIfNotFound {
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}

	// Generate new directories
	logging.D(3, "Directory %q does not exist, creating it...", dir)
	if err := os.MkdirAll(dir, consts.PermsGenericDir); err != nil {
		return nil, fmt.Errorf("directory %q does not exist and failed to create: %w", dir, err)
	}

	// Stat newly generated directory
	info, err = os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q", dir)
	}
	return info, nil
}

// ValidateAndSetTimestampSource verifies the timestamp source selection.
func ValidateAndSetTimestampSource(src string) error {
	var source enums.TimestampSource

	switch strings.ToLower(strings.TrimSpace(src)) {
	case "", "auto":
		source = enums.TimestampAuto

	case "taken", "photo-taken", "phototakentime":
		source = enums.TimestampTaken

	case "creation", "created", "creationtime":
		source = enums.TimestampCreation

	default:
		return fmt.Errorf("invalid timestamp source %q, should be 'auto', 'taken', or 'creation'", src)
	}
	viper.Set(keys.TimestampSourceEnum, source)
	return nil
}

// ValidateAndSetRenameFlag verifies the format of the renaming style flag.
func ValidateAndSetRenameFlag(argRenameFlag string) {
	var renameFlag enums.ReplaceToStyle

	argRenameFlag = strings.ToLower(strings.TrimSpace(argRenameFlag))

	switch argRenameFlag {
	case "spaces", "space":
		renameFlag = enums.RenamingSpaces
		logging.I("Rename style selected: %v", argRenameFlag)

	case "underscores", "underscore":
		renameFlag = enums.RenamingUnderscores
		logging.I("Rename style selected: %v", argRenameFlag)

	case "title", "titlecase", "title-case":
		renameFlag = enums.RenamingTitle
		logging.I("Rename style selected: %v", argRenameFlag)

	default:
		logging.D(1, "'Spaces', 'underscores' or 'title' not selected for renaming style, skipping these modifications.")
		renameFlag = enums.RenamingSkip
	}
	viper.Set(keys.RenameStyleEnum, renameFlag)
}

// ValidateAndSetFileFilters strips empty filter entries and stores the rest.
func ValidateAndSetFileFilters(viperKey string, argsInput []string) {
	if !viper.IsSet(viperKey) {
		return
	}
	fileFilters := make([]string, 0, len(argsInput))

	for _, arg := range argsInput {
		if arg != "" {
			fileFilters = append(fileFilters, arg)
		}
	}
	if len(fileFilters) > 0 {
		viper.Set(viperKey, fileFilters)
	}
}

// ValidateAndSetMinFreeSpace verifies the format of the free disk space flag.
func ValidateAndSetMinFreeSpace(minFree string) {
	if minFree == "" || minFree == "0" {
		return
	}

	minFree = strings.ToUpper(strings.TrimSuffix(minFree, "B"))
	multiplyFactor := uint64(1) // Default (bytes)

	switch {
	case strings.HasSuffix(minFree, "G"):
		minFree = strings.TrimSuffix(minFree, "G")
		multiplyFactor = consts.GB
	case strings.HasSuffix(minFree, "M"):
		minFree = strings.TrimSuffix(minFree, "M")
		multiplyFactor = consts.MB
	case strings.HasSuffix(minFree, "K"):
		minFree = strings.TrimSuffix(minFree, "K")
		multiplyFactor = consts.KB
	}

	minFreeInt, err := strconv.Atoi(minFree)
	if err != nil || minFreeInt < 0 {
		logging.E("Could not parse free space requirement from invalid argument %q, ignoring it: %v", minFree, err)
		return
	}

	parsedMinFree := uint64(minFreeInt) * multiplyFactor
	if parsedMinFree > 0 {
		logging.I("Min free disk space to copy files: %v bytes", parsedMinFree)
	}
	viper.Set(keys.MinFreeSpaceBytes, parsedMinFree)
}
