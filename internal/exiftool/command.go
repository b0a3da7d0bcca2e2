package exiftool

import (
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/dates"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/models"
)

// Timestamp tags written for each file.
const (
	tagDateTimeOriginal = "-DateTimeOriginal="
	tagCreateDate       = "-CreateDate="
	tagFileModifyDate   = "-FileModifyDate="
	tagFileCreateDate   = "-FileCreateDate="
)

// argfileBuilder assembles the exiftool argfile for a batch of timestamp writes.
type argfileBuilder struct {
	tasks   []models.FileTask
	builder *strings.Builder
}

// newArgfileBuilder creates a new argfile builder for the given tasks.
func newArgfileBuilder(tasks []models.FileTask) *argfileBuilder {
	return &argfileBuilder{
		tasks:   tasks,
		builder: &strings.Builder{},
	}
}

// buildArgfile constructs the complete argfile content.
//
// Each file gets its own option group terminated by -execute, otherwise
// options accumulate and the last timestamp applies to every file.
func (b *argfileBuilder) buildArgfile() string {
	b.builder.Grow(b.calculateArgfileCapacity())

	for _, task := range b.tasks {
		exifDt := dates.FormatExifDatetime(task.Timestamp)

		b.writeLine("-overwrite_original")
		b.writeLine(tagDateTimeOriginal + exifDt)
		b.writeLine(tagCreateDate + exifDt)
		b.writeLine(tagFileModifyDate + exifDt)
		b.writeLine(tagFileCreateDate + exifDt)
		b.writeLine(task.OutputPath)
		b.writeLine("-execute")
	}
	return b.builder.String()
}

// writeLine appends one argfile line.
func (b *argfileBuilder) writeLine(line string) {
	b.builder.WriteString(line)
	b.builder.WriteByte('\n')
}

// calculateArgfileCapacity estimates the total length needed for the argfile.
func (b *argfileBuilder) calculateArgfileCapacity() int {
	const perFileOverhead = len("-overwrite_original") +
		len(tagDateTimeOriginal) + len(tagCreateDate) +
		len(tagFileModifyDate) + len(tagFileCreateDate) +
		4*len(dates.ExifTimeFormat) +
		len("-execute") +
		7 // newlines

	total := 0
	for _, task := range b.tasks {
		total += perFileOverhead + len(task.OutputPath)
	}
	return total
}
