package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/wheelibin/lightify/internal/constants"
)

type API struct {
	Listen string `mapstructure:"listen"`
	URL    string `mapstructure:"url"`
}

type DB struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"pollInterval"`
	API          API           `mapstructure:"api"`
	DB           DB            `mapstructure:"db"`
	Log          Log           `mapstructure:"log"`
}

// InitialiseConfig reads the config file, environment overrides and
// defaults. An explicit configFile must exist; otherwise config.json|yaml is
// searched for and may be absent.
func InitialiseConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", constants.DefaultBridgePort)
	v.SetDefault("timeout", constants.DefaultBridgeTimeout)
	v.SetDefault("pollInterval", constants.DefaultPollInterval)
	v.SetDefault("api.listen", ":8080")
	v.SetDefault("api.url", "http://localhost:8080")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// host has no default but must still be visible to env overrides
	v.SetDefault("host", "")

	v.SetEnvPrefix("lightify")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")                  // name of config file (without extension)
		v.AddConfigPath("/etc/lightify/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/lightify/") // call multiple times to add many search paths
		v.AddConfigPath(".")                       // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("Error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("Error decoding config: %w", err)
	}
	return cfg, nil
}

// LogLevel maps the configured level name, falling back to info.
func (c *Config) LogLevel() log.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
