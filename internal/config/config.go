package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "PRANIKOV_CONFIG_PATH"

// Config defines application configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	DB        DBConfig        `yaml:"db"`
	Backup    BackupConfig    `yaml:"backup"`
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
}

// APIConfig locates the site backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"PRANIKOV_API_BASE_URL"`
	Key     string        `yaml:"key" env:"PRANIKOV_ADMIN_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"PRANIKOV_API_TIMEOUT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"PRANIKOV_DB_PATH"`
}

type BackupConfig struct {
	Dir string `yaml:"dir" env:"PRANIKOV_BACKUP_DIR"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"PRANIKOV_SERVER_HOST"`
	Port int    `yaml:"port" env:"PRANIKOV_SERVER_PORT"`
}

type TransportConfig struct {
	Mode string `yaml:"mode" env:"PRANIKOV_TRANSPORT_MODE"` // "stdio" or "http"
}

// AuthConfig holds the bearer token required by the HTTP admin surface.
type AuthConfig struct {
	Token string `yaml:"token" env:"PRANIKOV_AUTH_TOKEN"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"PRANIKOV_LOG_LEVEL"`
	Path  string `yaml:"path" env:"PRANIKOV_LOG_PATH"`
	// MaxSize caps the log file, e.g. "6MB" or "512KiB".
	MaxSize string `yaml:"max_size" env:"PRANIKOV_LOG_MAX_SIZE"`
}

// MaxBytes returns MaxSize in bytes. Validate rejects unparsable sizes.
func (l LogConfig) MaxBytes() uint64 {
	n, _ := humanize.ParseBytes(l.MaxSize)
	return n
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
		},
		DB: DBConfig{
			Path: "pranikov.db",
		},
		Backup: BackupConfig{
			Dir: ".",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8090,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Log: LogConfig{
			Level:   "info",
			MaxSize: "6MB",
		},
	}
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in that order of precedence. An empty path falls
// back to PRANIKOV_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option combinations.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	if c.Transport.Mode == "http" {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid server port %d", c.Server.Port)
		}
		if c.Auth.Token == "" {
			return errors.New("auth.token is required in http mode")
		}
	}
	if n, err := humanize.ParseBytes(c.Log.MaxSize); err != nil || n == 0 {
		return fmt.Errorf("invalid log max size %q", c.Log.MaxSize)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid api timeout %s", c.API.Timeout)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
