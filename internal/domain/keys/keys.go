// Package keys holds Viper keys for flags and other stored variables.
package keys

// Terminal keys.
const (
	InputDir  string = "input-dir"
	OutputDir string = "output-dir"

	ConfigPath string = "config-file"

	DryRun     string = "dry-run"
	AssumeYes  string = "yes"
	DebugLevel string = "debug-level"

	TimestampSourceInput string = "timestamp-source"
	RenameStyle          string = "rename-style"

	FilePrefixes string = "prefix"
	FileSuffixes string = "suffix"
	FileContains string = "contains"
	FileOmits    string = "omit"

	NoFileOverwrite string = "no-file-overwrite"
	MinFreeSpace    string = "min-free-space"

	ExiftoolPath string = "exiftool-path"
)

// Internal store keys (validated values, not bound to flags).
const (
	TimestampSourceEnum string = "timestampSourceEnum"
	RenameStyleEnum     string = "renameStyleEnum"
	MinFreeSpaceBytes   string = "minFreeSpaceBytes"
)
