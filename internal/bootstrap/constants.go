package bootstrap

// Log messages for application lifecycle
const (
	LogMsgStartingService      = "Starting panchangam API"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgDatabaseConnected    = "Database pool established"
	LogMsgMigrationsApplied    = "Migrations applied"
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)
