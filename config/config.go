package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Session SessionConfig
	Seed    SeedConfig
	Metrics MetricsConfig
	Scanner ScannerConfig
}

type ServerConfig struct {
	AppEnv  string
	AppName string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SessionConfig struct {
	DBPath     string
	SecretKey  string
	BcryptCost int
}

type SeedConfig struct {
	File string // empty means the embedded sample data
}

type MetricsConfig struct {
	TextfilePath string // empty disables the textfile export
}

type ScannerConfig struct {
	Prefix string
	Device string // decoded-text source for `scan --device`, e.g. a zbarcam FIFO
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:  getEnv("APP_ENV", "dev"),
			AppName: getEnv("APP_NAME", "GardenTrack"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "warn"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Session: SessionConfig{
			DBPath:     getEnv("SESSION_DB_PATH", "gardentrack.db"),
			SecretKey:  getEnv("SESSION_SECRET_KEY", "your-secret-key-change-this-in-prod"),
			BcryptCost: getEnvInt("SESSION_BCRYPT_COST", 10),
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
		Scanner: ScannerConfig{
			Prefix: getEnv("SCANNER_PREFIX", "QR-Code:"),
			Device: getEnv("SCANNER_DEVICE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
