package consts

// File prefix and suffix
const (
	BackupTag = "_entefixbackup"
)

// Names excluded from album and media enumeration.
const (
	MetadataDirName = "metadata"
	MacJunkFile     = ".DS_Store"
)

// SidecarExt is the extension of companion metadata files.
const SidecarExt = ".json"

// Buffer4MB is the buffer size for file copies.
const Buffer4MB = 4 * 1024 * 1024

// Byte size units.
const (
	KB uint64 = 1024
	MB        = KB * 1024
	GB        = MB * 1024
)
