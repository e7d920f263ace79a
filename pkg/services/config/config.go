package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "EDI"

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Config struct {
	Log    Log    `mapstructure:"log"`
	Server Server `mapstructure:"server"`
}

// Load reads configuration from defaults, the optional file at path and
// EDI_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadLog is Load restricted to the log section; server settings are not
// decoded, so they cannot fail a caller that does not serve HTTP.
func LoadLog(path string) (*Log, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return &Log{
		Level: v.GetString("log.level"),
		File:  v.GetString("log.file"),
	}, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.file", "edi_analytics_dashboard.log")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func (c *Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q", c.Log.Level)
		}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Server.Port)
	}
	return nil
}
