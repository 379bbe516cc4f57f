package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config for the devicetrack HTTP API.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Seed     struct {
		// SampleData inserts one device, two staff and two wards into
		// empty tables on startup.
		SampleData bool `yaml:"sample_data"`
	} `yaml:"seed"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DatabaseConfig describes the embedded SQLite file and its lifecycle.
type DatabaseConfig struct {
	DataDir string `yaml:"data_dir"`
	File    string `yaml:"file"`
	// DisableWAL switches off write-ahead logging for filesystems that
	// cannot share the WAL sidecar files.
	DisableWAL    bool `yaml:"disable_wal"`
	BusyTimeoutMS int  `yaml:"busy_timeout_ms"`
	// RecreateOnStart wipes the database file on every startup. Only for
	// ephemeral/demo deployments; the default keeps data across restarts.
	RecreateOnStart bool `yaml:"recreate_on_start"`
}

// Path is the full path of the database file inside the data directory.
func (c DatabaseConfig) Path() string {
	return filepath.Join(c.DataDir, c.File)
}

// Load builds the config from defaults, then an optional YAML file named by
// CONFIG_FILE, then environment variables (highest precedence).
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = ":8080"
	cfg.Database.DataDir = "./data"
	cfg.Database.File = "devicetrack.db"
	cfg.Database.BusyTimeoutMS = 5000
	cfg.Seed.SampleData = true
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.Database.DataDir = getEnv("DATA_DIR", cfg.Database.DataDir)
	cfg.Database.File = getEnv("DB_FILE", cfg.Database.File)
	cfg.Database.DisableWAL = parseBool(getEnv("SQLITE_DISABLE_WAL", ""), cfg.Database.DisableWAL)
	cfg.Database.BusyTimeoutMS = parseInt(getEnv("DB_BUSY_TIMEOUT_MS", ""), cfg.Database.BusyTimeoutMS)
	cfg.Database.RecreateOnStart = parseBool(getEnv("DB_RECREATE_ON_START", ""), cfg.Database.RecreateOnStart)
	cfg.Seed.SampleData = parseBool(getEnv("SEED_SAMPLE_DATA", ""), cfg.Seed.SampleData)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
