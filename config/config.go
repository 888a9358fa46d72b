// file: config/config.go

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete psforge configuration
type Config struct {
	Logging  LogConfig      `mapstructure:"logging"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
	Editor   EditorConfig   `mapstructure:"editor"`
	NATS     NATSConfig     `mapstructure:"nats"`
}

// LogConfig defines logging behavior
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Encoding   string `mapstructure:"encoding"`
	OutputPath string `mapstructure:"outputPath"`
}

// ScaffoldConfig carries the fixed fields stamped into every generated
// function: the #requires version, the .NOTES version marker, and an
// optional author override (empty means resolve from the OS user).
type ScaffoldConfig struct {
	MinimumVersion string `mapstructure:"minimumVersion"`
	Version        string `mapstructure:"version"`
	Author         string `mapstructure:"author"`
}

// EditorConfig selects the editor command for --editor delivery.
// Empty falls back to $EDITOR.
type EditorConfig struct {
	Command string `mapstructure:"command"`
}

// NATSConfig defines the connection for the publish sink
type NATSConfig struct {
	URLs      []string  `mapstructure:"urls"`
	Subject   string    `mapstructure:"subject"`
	Username  string    `mapstructure:"username"`
	Password  string    `mapstructure:"password"`
	Token     string    `mapstructure:"token"`
	NKey      string    `mapstructure:"nkey"`
	CredsFile string    `mapstructure:"credsFile"`
	TLS       TLSConfig `mapstructure:"tls"`

	// Seed file for signing published artifacts; empty disables signing
	SigningSeedFile string `mapstructure:"signingSeedFile"`
}

// TLSConfig defines TLS settings for the NATS connection
type TLSConfig struct {
	Enable   bool   `mapstructure:"enable"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
	CAFile   string `mapstructure:"caFile"`
	Insecure bool   `mapstructure:"insecure"`
}

// Load reads configuration from file using Viper. With an empty path the
// usual locations are searched and a missing file is fine: defaults plus
// environment variables are a complete configuration.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("psforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "psforge"))
		}
	}

	// Environment variable support
	v.SetEnvPrefix("PSFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	setDefaults(&cfg)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults applies sensible defaults
func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Encoding == "" {
		cfg.Logging.Encoding = "console"
	}
	// Scaffolds go to stdout, so logs default to stderr
	if cfg.Logging.OutputPath == "" {
		cfg.Logging.OutputPath = "stderr"
	}
	if cfg.Scaffold.MinimumVersion == "" {
		cfg.Scaffold.MinimumVersion = "2.0"
	}
	if cfg.Scaffold.Version == "" {
		cfg.Scaffold.Version = "0.1"
	}
	if len(cfg.NATS.URLs) == 0 {
		cfg.NATS.URLs = []string{"nats://localhost:4222"}
	}
	if cfg.NATS.Subject == "" {
		cfg.NATS.Subject = "scaffold.generated"
	}
}

// validate ensures configuration is valid
func validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level '%s' (must be debug, info, warn or error)", cfg.Logging.Level)
	}
	switch cfg.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding '%s' (must be json or console)", cfg.Logging.Encoding)
	}

	if cfg.Scaffold.MinimumVersion == "" {
		return fmt.Errorf("scaffold minimum version cannot be empty")
	}
	if cfg.Scaffold.Version == "" {
		return fmt.Errorf("scaffold version cannot be empty")
	}

	if len(cfg.NATS.URLs) == 0 {
		return fmt.Errorf("at least one NATS URL required")
	}
	if cfg.NATS.Subject == "" {
		return fmt.Errorf("NATS subject cannot be empty")
	}

	// Auth method validation (only one allowed)
	authCount := 0
	if cfg.NATS.Username != "" {
		authCount++
	}
	if cfg.NATS.Token != "" {
		authCount++
	}
	if cfg.NATS.NKey != "" {
		authCount++
	}
	if cfg.NATS.CredsFile != "" {
		authCount++
	}
	if authCount > 1 {
		return fmt.Errorf("only one NATS auth method allowed")
	}

	// TLS validation
	if cfg.NATS.TLS.Enable {
		if cfg.NATS.TLS.CertFile != "" && cfg.NATS.TLS.KeyFile == "" {
			return fmt.Errorf("NATS TLS key file required when cert file provided")
		}
		if cfg.NATS.TLS.KeyFile != "" && cfg.NATS.TLS.CertFile == "" {
			return fmt.Errorf("NATS TLS cert file required when key file provided")
		}
	}

	// Validate referenced files exist
	if cfg.NATS.CredsFile != "" {
		if _, err := os.Stat(cfg.NATS.CredsFile); os.IsNotExist(err) {
			return fmt.Errorf("NATS creds file does not exist: %s", cfg.NATS.CredsFile)
		}
	}
	if cfg.NATS.SigningSeedFile != "" {
		if _, err := os.Stat(cfg.NATS.SigningSeedFile); os.IsNotExist(err) {
			return fmt.Errorf("signing seed file does not exist: %s", cfg.NATS.SigningSeedFile)
		}
	}

	return nil
}
