package processing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/enums"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeExportAlbum builds one album with a media file and matching sidecar.
func makeExportAlbum(t *testing.T, root, name, mediaName, sidecarJSON string) models.Album {
	t.Helper()
	albumDir := filepath.Join(root, name)
	metaDir := filepath.Join(albumDir, "metadata")
	require.NoError(t, os.MkdirAll(metaDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(albumDir, mediaName), []byte("media"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(metaDir, mediaName+".json"), []byte(sidecarJSON), 0o644))

	return models.Album{
		Name:        name,
		Path:        albumDir,
		MetadataDir: metaDir,
		OutputDir:   filepath.Join(root, "out", name),
	}
}

const sidecarWithTaken = `{"photoTakenTime": {"timestamp": "1623767405"}}`

func TestStageFile(t *testing.T) {
	newProcessor := func() *albumProcessor {
		return &albumProcessor{
			core:            &models.Core{Ctx: context.Background()},
			timestampSource: enums.TimestampAuto,
			renameStyle:     enums.RenamingSkip,
		}
	}

	t.Run("stages a file with sidecar timestamp", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", sidecarWithTaken)
		mediaPath := filepath.Join(album.Path, "IMG_001.jpg")

		task, result := newProcessor().stageFile(album, mediaPath, map[string]string{})
		require.Equal(t, stageOK, result)
		assert.Equal(t, mediaPath, task.SourcePath)
		assert.Equal(t, filepath.Join(album.OutputDir, "IMG_001.jpg"), task.OutputPath)
		assert.Equal(t, time.Unix(1623767405, 0), task.Timestamp)
		assert.False(t, task.Renamed)
	})

	t.Run("corrects a mismatched extension", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "IMG_001.png", sidecarWithTaken)
		mediaPath := filepath.Join(album.Path, "IMG_001.png")

		typeMap := map[string]string{"IMG_001.png": ".jpg"}
		task, result := newProcessor().stageFile(album, mediaPath, typeMap)
		require.Equal(t, stageOK, result)
		assert.Equal(t, filepath.Join(album.OutputDir, "IMG_001.jpg"), task.OutputPath)
		assert.True(t, task.Renamed)
	})

	t.Run("applies renaming style to the output name", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "beach day.jpg", sidecarWithTaken)
		mediaPath := filepath.Join(album.Path, "beach day.jpg")

		ap := newProcessor()
		ap.renameStyle = enums.RenamingUnderscores

		task, result := ap.stageFile(album, mediaPath, map[string]string{})
		require.Equal(t, stageOK, result)
		assert.Equal(t, filepath.Join(album.OutputDir, "beach_day.jpg"), task.OutputPath)

		// Style normalization alone is not a rename
		assert.False(t, task.Renamed)
	})

	t.Run("missing sidecar skips the file", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", sidecarWithTaken)

		// A second media file with no sidecar
		orphan := filepath.Join(album.Path, "IMG_002.jpg")
		require.NoError(t, os.WriteFile(orphan, []byte("media"), 0o644))

		_, result := newProcessor().stageFile(album, orphan, map[string]string{})
		assert.Equal(t, stageSkip, result)
	})

	t.Run("sidecar without timestamps skips the file", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", `{"title": "IMG_001.jpg"}`)
		mediaPath := filepath.Join(album.Path, "IMG_001.jpg")

		_, result := newProcessor().stageFile(album, mediaPath, map[string]string{})
		assert.Equal(t, stageSkip, result)
	})

	t.Run("malformed sidecar fails the file", func(t *testing.T) {
		root := t.TempDir()
		album := makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", `{"broken`)
		mediaPath := filepath.Join(album.Path, "IMG_001.jpg")

		ap := newProcessor()
		_, result := ap.stageFile(album, mediaPath, map[string]string{})
		assert.Equal(t, stageFail, result)
		assert.Len(t, ap.failures, 1)
	})
}

func TestProcessAlbumsNoAlbums(t *testing.T) {
	root := t.TempDir()

	viper.Set(keys.InputDir, root)
	viper.Set(keys.OutputDir, filepath.Join(root, "out"))
	t.Cleanup(func() {
		viper.Set(keys.InputDir, nil)
		viper.Set(keys.OutputDir, nil)
	})

	_, err := ProcessAlbums(&models.Core{Ctx: context.Background()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no albums found")
}

func TestProcessAlbumsBatchFailureCounts(t *testing.T) {
	root := t.TempDir()
	makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", sidecarWithTaken)

	// A second album that succeeds trivially, so the run itself survives
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Empty", "metadata"), 0o755))

	outputDir := filepath.Join(root, "out")

	viper.Set(keys.InputDir, root)
	viper.Set(keys.OutputDir, outputDir)
	// A failing binary stands in for an exiftool that dies mid-batch
	viper.Set(keys.ExiftoolPath, "false")
	t.Cleanup(func() {
		viper.Set(keys.InputDir, nil)
		viper.Set(keys.OutputDir, nil)
		viper.Set(keys.ExiftoolPath, nil)
	})

	totals, err := ProcessAlbums(&models.Core{Ctx: context.Background()})
	require.NoError(t, err)

	// The staged file was copied but never got its timestamps, it must
	// surface in the error total so the run exits non-zero
	assert.Equal(t, 1, totals.Errors)
	assert.Equal(t, 0, totals.Processed)
	assert.Equal(t, 1, totals.Albums)
	assert.FileExists(t, filepath.Join(outputDir, "Holiday", "IMG_001.jpg"))
}

func TestProcessAlbumsDryRun(t *testing.T) {
	root := t.TempDir()
	makeExportAlbum(t, root, "Holiday", "IMG_001.jpg", sidecarWithTaken)
	outputDir := filepath.Join(root, "out")

	viper.Set(keys.InputDir, root)
	viper.Set(keys.OutputDir, outputDir)
	viper.Set(keys.DryRun, true)
	// A no-op binary stands in for exiftool during detection
	viper.Set(keys.ExiftoolPath, "true")
	t.Cleanup(func() {
		viper.Set(keys.InputDir, nil)
		viper.Set(keys.OutputDir, nil)
		viper.Set(keys.DryRun, nil)
		viper.Set(keys.ExiftoolPath, nil)
	})

	totals, err := ProcessAlbums(&models.Core{Ctx: context.Background()})
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Albums)
	assert.Equal(t, 1, totals.Processed)
	assert.Equal(t, 0, totals.Errors)

	// Dry run never writes
	assert.NoDirExists(t, outputDir)
}
