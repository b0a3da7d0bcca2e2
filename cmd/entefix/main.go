// Package main is the main entrypoint of the program.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/processing"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/prompt"
)

// Main program string constants.
const (
	timeFormat     = "2006-01-02 15:04:05.00 MST"
	startLogFormat = "Entefix started at: %s"
	endLogFormat   = "Entefix finished at: %s"
	elapsedFormat  = "Time elapsed: %.2f seconds\n"
)

// main is the program entrypoint.
func main() {
	startTime := time.Now()
	logging.I(startLogFormat, startTime.Format(timeFormat))

	// Panic recovery with proper cleanup
	defer func() {
		if r := recover(); r != nil {
			logging.E("Panic recovered: %v", r)
			logging.E("Stack trace:\n\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	// Parse configuration
	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "\n")
		os.Exit(1)
	}

	// Early exit if not executing
	if !cfg.GetBool("execute") {
		fmt.Fprintf(os.Stderr, "\n")
		return
	}

	// Initialize application
	initializeApplication()

	// Setup context for cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer cancel()

	core := &models.Core{
		Ctx: ctx,
	}

	// Initialize user input reader (used for prompting the user during program run)
	prompt.InitUserInputReader()

	// Process albums
	totals, err := processing.ProcessAlbums(core)
	if err != nil {
		logging.E("error during album loop: %v", err)
		cancel()
		os.Exit(1)
	}

	// Check if shutdown was triggered by signal
	select {
	case <-ctx.Done():
		logging.I("Shutdown was triggered by signal")
	default:
	}

	// Run summary
	fmt.Fprintf(os.Stderr, "\n")
	logging.I("Albums: %d | Processed: %d | Renamed: %d | Skipped: %d | Errors: %d",
		totals.Albums, totals.Processed, totals.Renamed, totals.Skipped, totals.Errors)

	// End program run
	endTime := time.Now()
	logging.I(endLogFormat, endTime.Format(timeFormat))
	logging.I(elapsedFormat, endTime.Sub(startTime).Seconds())

	if totals.Errors > 0 {
		os.Exit(1)
	}
}
