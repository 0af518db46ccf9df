package evolution

import (
	"time"

	"encore.dev/config"
)

type LedgerConfig struct {
	ChainID           config.Int64
	CollectionAddress config.String
	// GatewayAddress is the permit verifying contract.
	GatewayAddress             config.String
	ConfirmationTimeoutSeconds config.Int
}

type EvolutionConfig struct {
	LockTTLSeconds      config.Int
	RunTimeoutSeconds   config.Int
	PermitTTLSeconds    config.Int
	PermitMaxTTLSeconds config.Int
}

type JobsConfig struct {
	TemporalNamespace        config.String
	TaskQueue                config.String
	MaxAttempts              config.Int
	BackoffInitialSeconds    config.Int
	BackoffCoefficient       config.Float64
	BackoffMaxSeconds        config.Int
	WorkerConcurrency        config.Int
	GenerationTimeoutSeconds config.Int
}

type ImagesConfig struct {
	Provider config.String
	ComfyURL config.String
}

type ContentConfig struct {
	Endpoint       config.String
	MaxBytes       config.Int64
	TimeoutSeconds config.Int
}

type SnapshotsConfig struct {
	CacheSize       config.Int
	CacheTTLSeconds config.Int
}

type MaintenanceConfig struct {
	DraftRetentionHours config.Int
	StaleJobMinutes     config.Int
}

type Config struct {
	Ledger      LedgerConfig
	Evolution   EvolutionConfig
	Jobs        JobsConfig
	Images      ImagesConfig
	Content     ContentConfig
	Snapshots   SnapshotsConfig
	Maintenance MaintenanceConfig
}

var cfg = config.Load[*Config]()

var secrets struct {
	// PermitSignerKey signs evolution permits (hex, with or without 0x).
	PermitSignerKey string
	// OperatorKey pays for direct-mode burns and mints.
	OperatorKey       string
	LedgerRPCURL      string
	RedisURL          string
	ContentStoreToken string
	TemporalHost      string
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
