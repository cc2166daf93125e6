package config

import (
	"log"
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds object storage settings for the S3-compatible backend.
type StorageConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PresignExpirySec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once at startup and treated as read-only afterwards.
type AppConfig struct {
	ListenAddr string
	// StrictStartup makes bootstrap fail fast on database or storage
	// initialization errors instead of logging and continuing.
	StrictStartup bool
	Database      DatabaseConfig
	Storage       StorageConfig
}

// DefaultVarsFile is the variables file consulted when VARS_FILE is unset.
const DefaultVarsFile = "./depot.tfvars"

// Load builds the application configuration. Resolution order per setting:
// real environment variable, then the declarative variables file, then the
// hard-coded default. A missing or unreadable variables file is logged and
// every setting falls back to env/default.
func Load() *AppConfig {
	path := getEnv("VARS_FILE", DefaultVarsFile)
	vars, err := ParseVarsFile(path)
	if err != nil {
		log.Printf("vars file %s not loaded: %v (using environment and defaults)", path, err)
		vars = Vars{}
	}
	return FromVars(vars)
}

// FromVars resolves the typed configuration against a parsed variables map.
func FromVars(vars Vars) *AppConfig {
	return &AppConfig{
		ListenAddr:    getEnv("LISTEN_ADDR", vars.Str("listen_addr", ":5000")),
		StrictStartup: getEnvBool("STRICT_STARTUP", vars.Str("strict_startup", "false") == "true"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", vars.Str("postgresql_server_name", "localhost")),
			Port:               getEnv("DB_PORT", vars.Str("db_port", "5432")),
			User:               getEnv("DB_USER", vars.Str("postgresql_admin_username", "postgres")),
			Password:           getEnv("DB_PASSWORD", vars.Str("postgresql_admin_password", "")),
			Name:               getEnv("DB_NAME", vars.Str("postgresql_db_name", "filedepot")),
			SSLMode:            getEnv("DB_SSLMODE", vars.Str("db_sslmode", "disable")),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", vars.Int("db_max_open_conns", 10)),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", vars.Int("db_max_idle_conns", 5)),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", vars.Int("db_conn_max_lifetime_sec", 300)),
		},
		Storage: StorageConfig{
			Endpoint:         getEnv("STORAGE_ENDPOINT", vars.Str("storage_endpoint", "localhost:9000")),
			AccessKey:        getEnv("STORAGE_ACCESS_KEY", vars.Str("storage_account_name", "")),
			SecretKey:        getEnv("STORAGE_SECRET_KEY", vars.Str("storage_account_key", "")),
			Bucket:           getEnv("STORAGE_BUCKET", vars.Str("storage_container_name", "filedepot")),
			UseSSL:           getEnvBool("STORAGE_USE_SSL", vars.Str("storage_use_ssl", "false") == "true"),
			PresignExpirySec: getEnvInt("PRESIGN_EXPIRY_SEC", vars.Int("presign_expiry_sec", 3600)),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
