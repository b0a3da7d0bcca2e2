package fsread

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeAlbum builds an album directory with media files and optional sidecars.
func makeAlbum(t *testing.T, root, name string, files []string, withMetadata bool) string {
	t.Helper()
	albumDir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(albumDir, 0o755))

	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(albumDir, f), []byte("media"), 0o644))
	}
	if withMetadata {
		require.NoError(t, os.MkdirAll(filepath.Join(albumDir, "metadata"), 0o755))
	}
	return albumDir
}

func TestFindAlbums(t *testing.T) {
	t.Run("finds directories with files or metadata", func(t *testing.T) {
		root := t.TempDir()
		makeAlbum(t, root, "Holiday", []string{"IMG_001.jpg"}, true)
		makeAlbum(t, root, "Empty But Metadata", nil, true)
		makeAlbum(t, root, "Truly Empty", nil, false)
		makeAlbum(t, root, ".hidden", []string{"IMG_002.jpg"}, false)

		// Loose files at the root are not albums
		require.NoError(t, os.WriteFile(filepath.Join(root, "stray.jpg"), []byte("x"), 0o644))

		albums, err := FindAlbums(root)
		require.NoError(t, err)
		require.Len(t, albums, 2)
		assert.Equal(t, "Empty But Metadata", albums[0].Name)
		assert.Equal(t, "Holiday", albums[1].Name)
		assert.Equal(t, filepath.Join(root, "Holiday", "metadata"), albums[1].MetadataDir)
	})

	t.Run("directory with only .DS_Store and no metadata is not an album", func(t *testing.T) {
		root := t.TempDir()
		makeAlbum(t, root, "MacJunk", []string{".DS_Store"}, false)

		albums, err := FindAlbums(root)
		require.NoError(t, err)
		assert.Empty(t, albums)
	})

	t.Run("missing root errors", func(t *testing.T) {
		_, err := FindAlbums(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestGetMediaFiles(t *testing.T) {
	newAlbum := func(t *testing.T, files []string) models.Album {
		t.Helper()
		root := t.TempDir()
		path := makeAlbum(t, root, "Holiday", files, true)
		return models.Album{
			Name:        "Holiday",
			Path:        path,
			MetadataDir: filepath.Join(path, "metadata"),
		}
	}

	t.Run("returns media, skips junk and metadata dir", func(t *testing.T) {
		album := newAlbum(t, []string{"IMG_001.jpg", "clip.mp4", ".DS_Store"})

		files, err := GetMediaFiles(album)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, filepath.Join(album.Path, "IMG_001.jpg"), files[0])
		assert.Equal(t, filepath.Join(album.Path, "clip.mp4"), files[1])
	})

	t.Run("skips backup remnants", func(t *testing.T) {
		album := newAlbum(t, []string{"IMG_001.jpg", "IMG_001_entefixbackup.jpg"})

		files, err := GetMediaFiles(album)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(album.Path, "IMG_001.jpg"), files[0])
	})

	t.Run("applies prefix and omit filters", func(t *testing.T) {
		album := newAlbum(t, []string{"IMG_001.jpg", "IMG_002_edited.jpg", "VID_001.mp4"})

		viper.Set(keys.FilePrefixes, []string{"IMG"})
		viper.Set(keys.FileOmits, []string{"edited"})
		t.Cleanup(func() {
			viper.Set(keys.FilePrefixes, nil)
			viper.Set(keys.FileOmits, nil)
		})

		files, err := GetMediaFiles(album)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(album.Path, "IMG_001.jpg"), files[0])
	})
}

func TestSidecarPath(t *testing.T) {
	album := models.Album{
		Path:        "/export/Holiday",
		MetadataDir: "/export/Holiday/metadata",
	}
	got := SidecarPath(album, "/export/Holiday/IMG_001.jpg")
	assert.Equal(t, filepath.Join("/export/Holiday/metadata", "IMG_001.jpg.json"), got)
}
