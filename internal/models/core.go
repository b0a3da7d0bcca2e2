// Package models holds structs used throughout the program.
package models

import (
	"context"
	"time"
)

// Core contains variables important to the program core.
type Core struct {
	Ctx context.Context
}

// Album is one top-level export directory containing media files at its root
// and JSON sidecars in a metadata/ subdirectory.
type Album struct {
	Name        string
	Path        string
	MetadataDir string
	OutputDir   string
}

// FileTask describes one media file staged for copying and timestamp repair.
type FileTask struct {
	SourcePath string
	OutputPath string
	Timestamp  time.Time
	Renamed    bool
}

// Totals accumulates per-album and whole-run counts.
type Totals struct {
	Albums    int
	Processed int
	Renamed   int
	Skipped   int
	Errors    int
}

// Add merges another set of counts into t.
func (t *Totals) Add(o Totals) {
	t.Albums += o.Albums
	t.Processed += o.Processed
	t.Renamed += o.Renamed
	t.Skipped += o.Skipped
	t.Errors += o.Errors
}
