package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/paths"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/exiftool"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// initializeApplication sets up the application for the current run.
func initializeApplication() {
	// Setup files/dirs
	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Printf("Entefix exiting with error: %v\n", err)
		os.Exit(1)
	}

	// Start logging
	logDir := filepath.Dir(paths.LogFilePath)
	if err := logging.SetupLogging(logDir); err != nil {
		fmt.Printf("\n\nWarning: Log file was not created\nReason: %s\n\n", err)
	}

	// Verify the external metadata tool exists before doing any work
	if err := exiftool.Verify(); err != nil {
		logging.E("%v", err)
		os.Exit(1)
	}
}
