package models

// Sidecar mirrors the companion JSON metadata files written alongside each
// media file in an Ente export.
type Sidecar struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	PhotoTakenTime SidecarTime `json:"photoTakenTime"`
	CreationTime   SidecarTime `json:"creationTime"`
}

// SidecarTime holds one timestamp entry: unix seconds as a string, plus a
// human-formatted rendering of the same moment.
type SidecarTime struct {
	Timestamp string `json:"timestamp"`
	Formatted string `json:"formatted"`
}
