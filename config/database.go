package config

import (
	"quicknotes/utils"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	Driver          string
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	UsersCollection string
	NotesCollection string
	RetryWrites     bool
	PostgresDSN     string
	Timeout         time.Duration
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:          utils.GetEnvAsString("STORE_DRIVER", DriverMongo),
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "quicknotes"),
		UsersCollection: utils.GetEnvAsString("USERS_COLLECTION", "users"),
		NotesCollection: utils.GetEnvAsString("NOTES_COLLECTION", "notes"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
		PostgresDSN:     utils.GetEnvAsString("POSTGRES_DSN", ""),
		Timeout:         utils.GetEnvAsDuration("STORE_TIMEOUT", 10*time.Second),
	}
}
