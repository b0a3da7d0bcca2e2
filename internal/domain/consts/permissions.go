package consts

// Recommended permissions for files and directories the program might create.
const (
	// Media directories - world readable
	PermsGenericDir = 0o755
	PermsAlbumDir   = 0o755
	PermsHomeDir    = 0o700

	// Media files - world readable
	PermsMediaFile = 0o644

	// Other files
	PermsLogFile = 0o644
)
