// Package enums holds enumerated variables.
package enums

// TimestampSource selects which sidecar timestamp field wins.
type TimestampSource int

const (
	TimestampAuto TimestampSource = iota // photoTakenTime, falling back to creationTime
	TimestampTaken
	TimestampCreation
)

// ReplaceToStyle dictates a naming convention to use, e.g. spaces or underscores.
type ReplaceToStyle int

const (
	RenamingSkip ReplaceToStyle = iota
	RenamingSpaces
	RenamingUnderscores
	RenamingTitle
)
