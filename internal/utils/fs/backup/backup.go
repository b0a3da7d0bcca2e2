package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// GenerateBackupFilename creates a backup filename by appending the backup tag to the original filename
func GenerateBackupFilename(originalFilePath string) string {
	ext := filepath.Ext(originalFilePath)
	base := strings.TrimSuffix(originalFilePath, ext)
	return base + consts.BackupTag + ext
}

// RenameToBackup renames the passed in file
func RenameToBackup(filename string) (backupName string, err error) {

	if filename == "" {
		logging.E("filename was passed in to backup empty")
	}

	backupName = GenerateBackupFilename(filename)

	if err := os.Rename(filename, backupName); err != nil {
		return "", fmt.Errorf("failed to backup filename %q to %q: %w", filename, backupName, err)
	}

	logging.D(3, "Backed up existing file %q as %q", filename, backupName)
	return backupName, nil
}
