package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	Store           StoreConfig
	Tactics         TacticsConfig
	AdminToken      string
	Metrics         MetricsConfig
}

// StoreConfig selects and parameterizes the squad store backend.
type StoreConfig struct {
	Backend    string // memory or sqlite
	SQLitePath string
}

// TacticsConfig controls tactics-session persistence.
type TacticsConfig struct {
	Dir string
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		Store: StoreConfig{
			Backend:    envOrDefault(envStore, defaultStore),
			SQLitePath: envOrDefault(envSQLitePath, defaultSQLitePath),
		},
		Tactics: TacticsConfig{
			Dir: envOrDefault(envTacticsDir, defaultTacticsDir),
		},
		AdminToken: envOrDefault(envAdminToken, ""),
		Metrics:    loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
