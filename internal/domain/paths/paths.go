// Package paths initializes the program's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
)

const (
	homeDir = ".entefix"
	logFile = "entefix.log"
)

// File and directory path strings.
var (
	HomeEntefixDir string
	LogFilePath    string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	dir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}
	HomeEntefixDir = filepath.Join(dir, homeDir)
	if _, err := os.Stat(HomeEntefixDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeEntefixDir, consts.PermsHomeDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	LogFilePath = filepath.Join(HomeEntefixDir, logFile)
	return nil
}
