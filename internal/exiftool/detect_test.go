package exiftool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDetectOutput(t *testing.T) {
	t.Run("maps detected types to canonical extensions", func(t *testing.T) {
		out := []byte(`[
			{"SourceFile":"/a/IMG_001.png","FileName":"IMG_001.png","FileType":"JPEG"},
			{"SourceFile":"/a/clip.mp4","FileName":"clip.mp4","FileType":"MP4"},
			{"SourceFile":"/a/pic.heic","FileName":"pic.heic","FileType":"HEIC"}
		]`)

		typeMap := ParseDetectOutput(out)
		assert.Equal(t, ".jpg", typeMap["IMG_001.png"])
		assert.Equal(t, ".mp4", typeMap["clip.mp4"])
		assert.Equal(t, ".heic", typeMap["pic.heic"])
	})

	t.Run("unknown file types map to empty extension", func(t *testing.T) {
		out := []byte(`[{"FileName":"weird.bin","FileType":"ZIP"}]`)

		typeMap := ParseDetectOutput(out)
		assert.Equal(t, "", typeMap["weird.bin"])
	})

	t.Run("malformed output degrades to empty map", func(t *testing.T) {
		typeMap := ParseDetectOutput([]byte("not json at all"))
		assert.Empty(t, typeMap)
	})

	t.Run("entries without a FileType do not rename", func(t *testing.T) {
		out := []byte(`[{"FileName":"IMG_001.jpg"}]`)

		typeMap := ParseDetectOutput(out)
		name, corrected := CorrectedFilename("/a/IMG_001.jpg", typeMap["IMG_001.jpg"])
		assert.Equal(t, "IMG_001.jpg", name)
		assert.False(t, corrected)
	})
}

func TestCorrectedFilename(t *testing.T) {
	t.Run("mismatched extension is corrected", func(t *testing.T) {
		name, corrected := CorrectedFilename("/export/album/IMG_001.png", ".jpg")
		assert.Equal(t, "IMG_001.jpg", name)
		assert.True(t, corrected)
	})

	t.Run("matching extension is untouched", func(t *testing.T) {
		name, corrected := CorrectedFilename("/export/album/IMG_001.jpg", ".jpg")
		assert.Equal(t, "IMG_001.jpg", name)
		assert.False(t, corrected)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		name, corrected := CorrectedFilename("/export/album/IMG_001.JPG", ".jpg")
		assert.Equal(t, "IMG_001.JPG", name)
		assert.False(t, corrected)
	})

	t.Run("equivalent extensions are not corrections", func(t *testing.T) {
		for _, tc := range []struct {
			path     string
			detected string
		}{
			{"photo.jpeg", ".jpg"},
			{"photo.jpe", ".jpg"},
			{"clip.m4v", ".mp4"},
			{"scan.tif", ".tiff"},
			{"pic.heif", ".heic"},
		} {
			name, corrected := CorrectedFilename(tc.path, tc.detected)
			assert.Equal(t, tc.path, name, "path %q", tc.path)
			assert.False(t, corrected, "path %q", tc.path)
		}
	})

	t.Run("empty detection leaves name alone", func(t *testing.T) {
		name, corrected := CorrectedFilename("/export/album/mystery", "")
		assert.Equal(t, "mystery", name)
		assert.False(t, corrected)
	})

	t.Run("file without extension gains one", func(t *testing.T) {
		name, corrected := CorrectedFilename("/export/album/IMG_002", ".jpg")
		assert.Equal(t, "IMG_002.jpg", name)
		assert.True(t, corrected)
	})
}
