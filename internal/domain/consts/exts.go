package consts

// Canonical media extensions.
const (
	ExtJPG  = ".jpg"
	ExtPNG  = ".png"
	ExtGIF  = ".gif"
	ExtWEBP = ".webp"
	ExtHEIC = ".heic"
	ExtMP4  = ".mp4"
	ExtMOV  = ".mov"
	ExtAVI  = ".avi"
	ExtWEBM = ".webm"
	ExtMKV  = ".mkv"
	ExtTIFF = ".tiff"
	ExtBMP  = ".bmp"
	ExtCR2  = ".cr2"
	ExtNEF  = ".nef"
	ExtARW  = ".arw"
	ExtDNG  = ".dng"
	ExtRAF  = ".raf"
	ExtORF  = ".orf"
	ExtRW2  = ".rw2"
)

// FiletypeToExt maps exiftool FileType values to canonical extensions.
var FiletypeToExt = map[string]string{
	"JPEG":      ExtJPG,
	"PNG":       ExtPNG,
	"GIF":       ExtGIF,
	"WEBP":      ExtWEBP,
	"HEIC":      ExtHEIC,
	"HEIF":      ExtHEIC,
	"MP4":       ExtMP4,
	"MOV":       ExtMOV,
	"QuickTime": ExtMOV,
	"AVI":       ExtAVI,
	"WEBM":      ExtWEBM,
	"MKV":       ExtMKV,
	"TIFF":      ExtTIFF,
	"BMP":       ExtBMP,
	"CR2":       ExtCR2,
	"NEF":       ExtNEF,
	"ARW":       ExtARW,
	"DNG":       ExtDNG,
	"RAF":       ExtRAF,
	"ORF":       ExtORF,
	"RW2":       ExtRW2,
}

// ExtAliases normalizes equivalent extensions before comparison.
var ExtAliases = map[string]string{
	".jpeg": ExtJPG,
	".jpe":  ExtJPG,
	".m4v":  ExtMP4,
	".heif": ExtHEIC,
	".tif":  ExtTIFF,
}
