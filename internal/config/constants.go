package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "ROSTER_REFRESH_INTERVAL"
	envProvider        = "SQUAD_PROVIDER"
	envStore           = "STORE"
	envSQLitePath      = "SQLITE_PATH"
	envTacticsDir      = "TACTICS_DIR"
	envAdminToken      = "ADMIN_TOKEN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Rosters change on transfers, injuries, and suspensions; a slow cadence
	// is plenty and keeps the provider boundary quiet.
	defaultRefreshInterval = 5 * Duration(time.Minute)
	defaultProvider        = "fixture"
	defaultStore           = "memory"
	defaultSQLitePath      = "./club_lineup.db"
	defaultTacticsDir      = "./data/tactics"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "club-lineup-service"
)
