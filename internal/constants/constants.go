// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	AppName              = "commonutils"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultIndexDecimals = 3
	MaxIndexDecimals     = 64
)

// Environment variables
const (
	EnvLogLevel      = "COMMONUTILS_LOG_LEVEL"
	EnvLogFormat     = "COMMONUTILS_LOG_FORMAT"
	EnvIndexDecimals = "COMMONUTILS_INDEX_DECIMALS"
	EnvConfigFile    = "COMMONUTILS_CONFIG"
)

// Log levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Directory Permissions
const DirPermissions = 0755

// Text
const (
	// ASCIIPunctuation is the set stripped from the end of a string.
	ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	DoubleSpace      = "  "
)

// Staging prefix for cross-device moves
const StagingPrefix = ".commonutils-move-"
