// Package config loads telos settings from defaults, an optional config.yaml,
// a .env file and TELOS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TELOS_DATABASE_PATH.
const EnvPrefix = "TELOS"

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Export   ExportConfig   `mapstructure:"export"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	// Path is the SQLite file; ":memory:" keeps everything in process.
	Path string `mapstructure:"path"`
}

// ServerConfig controls `telos serve`.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// SeedConfig controls first-run sample data.
type SeedConfig struct {
	// OnEmpty loads the sample portfolio when the database has no drivers.
	OnEmpty bool `mapstructure:"on_empty"`
}

// ExportConfig controls the default export destination.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(DataDir(), "telos.db")},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		Log:    LogConfig{Level: "info", Pretty: true},
		Seed:   SeedConfig{OnEmpty: true},
		Export: ExportConfig{Dir: "."},
	}
}

// SetDefaults registers defaults on v so unset keys unmarshal to Default().
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("database.path", defaults.Database.Path)

	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.pretty", defaults.Log.Pretty)

	v.SetDefault("seed.on_empty", defaults.Seed.OnEmpty)

	v.SetDefault("export.dir", defaults.Export.Dir)
}

// New returns a viper instance with defaults and env overrides wired. When
// file is empty, config.yaml is looked up in ConfigDir and the working
// directory; a missing file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ConfigDir returns the directory holding config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "telos")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".telos"
	}
	return filepath.Join(home, ".config", "telos")
}

// DataDir returns the directory holding the default database.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".telos"
	}
	return filepath.Join(home, ".telos")
}
