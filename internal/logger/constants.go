package logger

// ============================================================================
// LOG LEVELS
// ============================================================================

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// ============================================================================
// LOG FORMATS
// ============================================================================

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// ============================================================================
// SERVICE METADATA
// ============================================================================

const (
	DefaultServiceName = "panchangam-api"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"

	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
)

// ============================================================================
// ATTRIBUTE KEYS
// ============================================================================

const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
