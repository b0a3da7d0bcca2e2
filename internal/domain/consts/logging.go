package consts

// Log file keys
const (
	LogError   = "ERROR: "
	LogSuccess = "Success: "
	LogInfo    = "Info: "
	LogWarning = "Warning: "
	LogDebug   = "Debug: "
	LogBasic   = ""
)
