// Package fswrite handles filesystem writes.
package fswrite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

// EnsureDir creates the directory if it does not already exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, consts.PermsAlbumDir); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CopyFile copies a media file to a target destination, preserving the
// source's permissions and modification time.
//
// The named return arms the deferred cleanup: any error path removes the
// partial destination file.
func CopyFile(src, dst string) (err error) {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	if src == dst {
		return fmt.Errorf("entered source file %q and destination %q file as the same name and same path", src, dst)
	}

	logging.D(2, "Copying:\n%q\nto\n%q...", src, dst)

	// Validate source file
	sourceInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}
	if !sourceInfo.Mode().IsRegular() {
		return fmt.Errorf("source is not a regular file: %s", src)
	}

	if destInfo, err := os.Stat(dst); err == nil {
		if os.SameFile(sourceInfo, destInfo) {
			return nil // Same file
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking destination file: %w", err)
	}

	// Ensure destination directory exists
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	// Open source file
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		if err := sourceFile.Close(); err != nil {
			logging.E("Failed to close %q: %v", sourceFile.Name(), err)
		}
	}()

	// Create destination file
	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file, do you have adequate permissions on the destination folder?: %w", err)
	}
	// Cleanup on function exit
	defer func() {
		if err := destFile.Close(); err != nil {
			logging.E("Failed to close %q: %v", destFile.Name(), err)
		}
		if err != nil {
			if err := os.Remove(dst); err != nil {
				logging.E("Failed to remove %q: %v", dst, err)
			}
		}
	}()

	// Copy contents with buffer
	bufferedSource := bufio.NewReaderSize(sourceFile, consts.Buffer4MB)
	bufferedDest := bufio.NewWriterSize(destFile, consts.Buffer4MB)

	buf := make([]byte, consts.Buffer4MB)

	if _, err = io.CopyBuffer(bufferedDest, bufferedSource, buf); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = bufferedDest.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer for %q: %w", destFile.Name(), err)
	}

	// Sync to ensure write is complete
	if err = destFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination file: %w", err)
	}

	// Set same permissions as source
	if chmodErr := os.Chmod(dst, sourceInfo.Mode()); chmodErr != nil {
		logging.I("Failed to set file permissions, is destination folder remote? (%v)", chmodErr)
	}

	// Verify destination file
	check, err := destFile.Stat()
	if err != nil {
		return fmt.Errorf("error statting destination file: %w", err)
	}
	if check.Size() != sourceInfo.Size() {
		return fmt.Errorf("destination file size (%d) does not match source size (%d)",
			check.Size(), sourceInfo.Size())
	}

	// Carry the source modification time over so later timestamp writes
	// start from the same state the source had
	if err := os.Chtimes(dst, sourceInfo.ModTime(), sourceInfo.ModTime()); err != nil {
		logging.W("Failed to preserve modification time for %q: %v", dst, err)
	}
	return nil
}
