// Package processing is the primary entefix process, handling albums of media files.
package processing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/enums"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/exiftool"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/metadata"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/naming"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/fs/backup"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/fs/fsread"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/fs/fswrite"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/prompt"
)

type failedFile struct {
	filename string
	err      error
}

// stageResult classifies what happened while staging one media file.
type stageResult int

const (
	stageOK stageResult = iota
	stageSkip
	stageFail
)

// albumProcessor accumulates counts and failures across one run.
type albumProcessor struct {
	core            *models.Core
	outputDir       string
	dryRun          bool
	noOverwrite     bool
	timestampSource enums.TimestampSource
	renameStyle     enums.ReplaceToStyle

	totals   models.Totals
	failures []failedFile
}

// ProcessAlbums walks the export root and repairs every album found in it.
func ProcessAlbums(core *models.Core) (models.Totals, error) {
	ap := &albumProcessor{
		core:        core,
		outputDir:   cfg.GetString(keys.OutputDir),
		dryRun:      cfg.GetBool(keys.DryRun),
		noOverwrite: cfg.GetBool(keys.NoFileOverwrite),
		failures:    make([]failedFile, 0, 32),
	}

	if e, ok := cfg.Get(keys.TimestampSourceEnum).(enums.TimestampSource); ok {
		ap.timestampSource = e
	}
	if e, ok := cfg.Get(keys.RenameStyleEnum).(enums.ReplaceToStyle); ok {
		ap.renameStyle = e
	}

	inputDir := cfg.GetString(keys.InputDir)

	if err := checkFreeSpace(ap.outputDir); err != nil {
		return ap.totals, err
	}

	albums, err := fsread.FindAlbums(inputDir)
	if err != nil {
		return ap.totals, err
	}
	if len(albums) == 0 {
		return ap.totals, fmt.Errorf("no albums found in %q", inputDir)
	}
	logging.I("Got %d album(s) to process.", len(albums))

	if !ap.dryRun {
		if err := ap.confirmOutputDir(); err != nil {
			return ap.totals, err
		}
	}

	job := 1
	failCount := 0
	for i := range albums {
		albums[i].OutputDir = filepath.Join(ap.outputDir, albums[i].Name)

		logging.I("Starting album job %d of %d: %q", job, len(albums), albums[i].Name)
		if err := ap.processAlbum(albums[i]); err != nil {
			logging.E("Album %q failed: %v", albums[i].Name, err)
			ap.addFailure(failedFile{filename: albums[i].Name, err: err})
			failCount++
		} else {
			ap.totals.Albums++
		}
		job++
	}

	ap.logFailures()

	if failCount == len(albums) {
		return ap.totals, errors.New("all albums failed")
	}

	if len(logging.GetErrorArray()) == 0 {
		logging.S(0, "Successfully processed all albums in %q with no errors.", inputDir)
	}
	logging.I("All album tasks finished!")
	return ap.totals, nil
}

// processAlbum stages, copies, and timestamp-repairs one album's media files.
func (ap *albumProcessor) processAlbum(album models.Album) error {
	mediaFiles, err := fsread.GetMediaFiles(album)
	if err != nil {
		return err
	}
	if len(mediaFiles) == 0 {
		logging.I("Album %q holds no media files, skipping...", album.Name)
		return nil
	}

	// First pass: batch detect real file types
	typeMap := exiftool.DetectFileTypes(ap.core.Ctx, mediaFiles)

	if !ap.dryRun {
		if err := fswrite.EnsureDir(album.OutputDir); err != nil {
			return err
		}
	}

	tasks := make([]models.FileTask, 0, len(mediaFiles))
	albumCounts := models.Totals{}

	for _, mediaPath := range mediaFiles {
		task, result := ap.stageFile(album, mediaPath, typeMap)
		switch result {
		case stageSkip:
			albumCounts.Skipped++
			continue
		case stageFail:
			albumCounts.Errors++
			continue
		}

		if task.Renamed {
			albumCounts.Renamed++
		}

		if ap.dryRun {
			logging.I("[dry run] Would copy %q to %q and set timestamps to %s",
				mediaPath, task.OutputPath, task.Timestamp.Format("2006-01-02 15:04:05"))
			albumCounts.Processed++
			continue
		}

		if err := ap.writeDestination(task); err != nil {
			logging.E("Failed to write %q: %v", task.OutputPath, err)
			ap.addFailure(failedFile{filename: filepath.Base(mediaPath), err: err})
			albumCounts.Errors++
			continue
		}
		tasks = append(tasks, task)
	}

	// Second pass: batch write timestamps on the copied files
	if len(tasks) > 0 {
		success, errCount, err := exiftool.BatchSetTimestamps(ap.core.Ctx, tasks)
		if err != nil {
			// A dead batch means none of the staged files got timestamps,
			// every one of them counts as an error
			albumCounts.Errors += len(tasks)
			ap.totals.Add(albumCounts)
			return err
		}
		albumCounts.Processed += success
		albumCounts.Errors += errCount
		if errCount > 0 {
			ap.addFailure(failedFile{
				filename: album.Name,
				err:      fmt.Errorf("%d file(s) unaccounted for in timestamp batch", errCount),
			})
		}
	}

	logging.S(0, "Album %q: %d processed, %d renamed, %d skipped, %d errors",
		album.Name, albumCounts.Processed, albumCounts.Renamed, albumCounts.Skipped, albumCounts.Errors)

	ap.totals.Add(albumCounts)
	return nil
}

// stageFile resolves one media file into a copy and timestamp task.
// Files without a sidecar or a usable timestamp are skipped, sidecars that
// exist but fail to decode count as errors.
func (ap *albumProcessor) stageFile(album models.Album, mediaPath string, typeMap map[string]string) (models.FileTask, stageResult) {
	baseName := filepath.Base(mediaPath)

	sidecarPath := fsread.SidecarPath(album, mediaPath)
	if _, err := os.Stat(sidecarPath); err != nil {
		logging.W("Skipping %q: no sidecar at %q", baseName, sidecarPath)
		return models.FileTask{}, stageSkip
	}

	sc, err := metadata.ReadSidecar(sidecarPath)
	if err != nil {
		logging.E("Unreadable sidecar for %q: %v", baseName, err)
		ap.addFailure(failedFile{filename: baseName, err: err})
		return models.FileTask{}, stageFail
	}

	ts, ok := metadata.ExtractTimestamp(sc, ap.timestampSource)
	if !ok {
		logging.W("Skipping %q: sidecar holds no usable timestamp", baseName)
		return models.FileTask{}, stageSkip
	}

	// Correct the extension when detection disagrees with the name
	outName, corrected := exiftool.CorrectedFilename(mediaPath, typeMap[baseName])
	if corrected {
		logging.I("Correcting extension: %q becomes %q", baseName, outName)
	}

	styled := naming.ApplyNamingStyle(ap.renameStyle, outName)
	if styled != outName {
		logging.D(1, "Renaming style applied: %q becomes %q", outName, styled)
	}

	// Only extension corrections count toward the renamed total, style
	// normalization is cosmetic
	return models.FileTask{
		SourcePath: mediaPath,
		OutputPath: filepath.Join(album.OutputDir, styled),
		Timestamp:  ts,
		Renamed:    corrected,
	}, stageOK
}

// writeDestination copies the staged file into the output album, honoring
// the overwrite policy.
func (ap *albumProcessor) writeDestination(task models.FileTask) error {
	if ap.noOverwrite {
		if _, err := os.Stat(task.OutputPath); err == nil {
			backupName, err := backup.RenameToBackup(task.OutputPath)
			if err != nil {
				return err
			}
			logging.I("Existing file preserved as %q", backupName)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("error checking destination %q: %w", task.OutputPath, err)
		}
	}
	return fswrite.CopyFile(task.SourcePath, task.OutputPath)
}

// confirmOutputDir prompts before writing into a non-empty output directory.
func (ap *albumProcessor) confirmOutputDir() error {
	entries, err := os.ReadDir(ap.outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading output directory %q: %w", ap.outputDir, err)
	}
	if len(entries) == 0 {
		return nil
	}

	proceed, err := prompt.ConfirmProceed(ap.core.Ctx,
		fmt.Sprintf("Output directory %q is not empty, files inside may be overwritten. Proceed? (y/n)", ap.outputDir))
	if err != nil {
		return err
	}
	if !proceed {
		return errors.New("aborted by user at output directory prompt")
	}
	return nil
}

// addFailure adds a new failed file to the array.
func (ap *albumProcessor) addFailure(f failedFile) {
	ap.failures = append(ap.failures, f)
	logging.AddToErrorArray(fmt.Errorf("%s: %w", f.filename, f.err))
}

// logFailures logs files which failed during this run.
func (ap *albumProcessor) logFailures() {
	if len(ap.failures) == 0 {
		return
	}

	for i, failed := range ap.failures {
		if i == 0 {
			logging.E("Run finished, but some errors were encountered:")
		}
		fmt.Fprintf(os.Stderr, "\n")
		logging.P("Filename: %v", failed.filename)
		logging.P("Error: %v", failed.err)
	}
	fmt.Fprintf(os.Stderr, "\n")
}
