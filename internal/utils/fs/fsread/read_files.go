// Package fsread handles filesystem reads.
package fsread

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// FindAlbums scans the export root for album directories.
//
// A top-level subdirectory qualifies as an album when it holds at least one
// regular file (ignoring .DS_Store) or has a metadata/ subdirectory. Hidden
// directories are skipped. Albums return in lexical order.
func FindAlbums(inputDir string) ([]models.Album, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("error reading export directory %q: %w", inputDir, err)
	}

	var albums []models.Album
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		albumPath := filepath.Join(inputDir, entry.Name())
		hasFiles, err := dirHasMediaFiles(albumPath)
		if err != nil {
			logging.E("Failed to read album candidate %q: %v", albumPath, err)
			continue
		}

		metadataDir := filepath.Join(albumPath, consts.MetadataDirName)
		hasMetadata := false
		if mInfo, err := os.Stat(metadataDir); err == nil && mInfo.IsDir() {
			hasMetadata = true
		}

		if hasFiles || hasMetadata {
			albums = append(albums, models.Album{
				Name:        entry.Name(),
				Path:        albumPath,
				MetadataDir: metadataDir,
			})
			logging.D(2, "Found album %q", entry.Name())
		}
	}
	return albums, nil
}

// GetMediaFiles fetches media files from an album root, filtered by the
// user's file filters. The metadata/ directory and macOS junk are excluded.
func GetMediaFiles(album models.Album) ([]string, error) {
	entries, err := os.ReadDir(album.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading album directory %q: %w", album.Path, err)
	}

	mediaFiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Name() == consts.MetadataDirName || entry.Name() == consts.MacJunkFile {
			continue
		}

		// Text filters
		if cfg.IsSet(keys.FilePrefixes) {
			if !matchesFileFilter(entry.Name(), cfg.GetStringSlice(keys.FilePrefixes), strings.HasPrefix) {
				continue
			}
		}
		if cfg.IsSet(keys.FileSuffixes) {
			if !matchesFileFilter(entry.Name(), cfg.GetStringSlice(keys.FileSuffixes), strings.HasSuffix) {
				continue
			}
		}
		if cfg.IsSet(keys.FileContains) {
			if !matchesFileFilter(entry.Name(), cfg.GetStringSlice(keys.FileContains), strings.Contains) {
				continue
			}
		}
		if cfg.IsSet(keys.FileOmits) {
			if matchesFileFilter(entry.Name(), cfg.GetStringSlice(keys.FileOmits), strings.Contains) {
				continue
			}
		}

		// Skip backup remnants from earlier runs
		if strings.Contains(entry.Name(), consts.BackupTag) {
			logging.I("Skipping file %q containing backup tag (%q)", entry.Name(), consts.BackupTag)
			continue
		}

		mediaFiles = append(mediaFiles, filepath.Join(album.Path, entry.Name()))
	}
	return mediaFiles, nil
}

// SidecarPath returns the expected sidecar location for a media file.
func SidecarPath(album models.Album, mediaPath string) string {
	return filepath.Join(album.MetadataDir, filepath.Base(mediaPath)+consts.SidecarExt)
}

// dirHasMediaFiles reports whether a directory holds any regular file worth
// treating as album content.
func dirHasMediaFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() != consts.MacJunkFile {
			return true, nil
		}
	}
	return false, nil
}

// matchesFileFilter determines if the input file has the desired suffix or prefix.
func matchesFileFilter(fileName string, slice []string, f func(string, string) bool) bool {
	if len(slice) == 0 {
		return false
	}
	for _, s := range slice {
		if f(fileName, s) {
			return true
		}
	}
	return false
}
