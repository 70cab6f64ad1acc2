package config

import "time"

// Defaults applied when the environment does not set a value
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultLogDir              = "logs"
	DefaultEnvironment         = "dev"
	DefaultVersion             = "dev"
	DefaultItemsConfigPath     = "configs/items/items.json"
	DefaultScenarioDir         = "configs/scenarios"
	DefaultSessionCacheSize    = 256
	DefaultSessionTTL          = 2 * time.Hour
	DefaultSessionHistoryDepth = 32
	DefaultDBMaxConns          = 10
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
)

const (
	EnvProduction = "prod"

	insecureDBPassword = "postgres"
)

// Warnings
const (
	WarnMsgNoAPIKeyInProd     = "API_KEY is empty in production - the API is unauthenticated"
	WarnMsgDefaultDBPassword  = "DB_PASSWORD is the default value while snapshots are enabled"
	WarnMsgSnapshotsNoHistory = "SESSION_HISTORY_DEPTH is 0 - undo is disabled"
)
