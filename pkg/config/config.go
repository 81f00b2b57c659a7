// Package config provides centralized configuration management for the Open Library MCP server.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// Server identity announced during the MCP handshake
	Server struct {
		Name    string
		Version string
	}

	// Open Library API configuration
	OpenLibrary struct {
		BaseURL     string
		UserAgent   string
		MinInterval time.Duration
		HTTPTimeout time.Duration
	}

	LogLevel string
}

var (
	once    sync.Once
	config  *Config
	loadErr error
)

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "mcp-open-library")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("base_url", "https://openlibrary.org")
	v.SetDefault("user_agent", "mcp-open-library/1.0.0")
	v.SetDefault("min_interval", 200*time.Millisecond)
	v.SetDefault("http_timeout", time.Duration(0))
	v.SetDefault("log_level", "info")
}

// Load initializes and loads the configuration from the environment and,
// when OPENLIBRARY_CONFIG names one, a config file. The first call wins.
func Load() (*Config, error) {
	once.Do(func() {
		v := viper.New()
		v.SetEnvPrefix("openlibrary")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if file := v.GetString("config"); file != "" {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				loadErr = errors.Wrapf(err, "read config file %s", file)
				return
			}
		}

		config = New(v)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return config, nil
}

// New builds a Config from v, falling back to the defaults for unset keys.
func New(v *viper.Viper) *Config {
	SetDefaults(v)

	cfg := &Config{}

	cfg.Server.Name = v.GetString("server.name")
	cfg.Server.Version = v.GetString("server.version")

	cfg.OpenLibrary.BaseURL = strings.TrimRight(v.GetString("base_url"), "/")
	cfg.OpenLibrary.UserAgent = v.GetString("user_agent")
	cfg.OpenLibrary.MinInterval = v.GetDuration("min_interval")
	cfg.OpenLibrary.HTTPTimeout = v.GetDuration("http_timeout")

	cfg.LogLevel = v.GetString("log_level")

	return cfg
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	// List of validation problems
	var problems []string

	u, err := url.Parse(c.OpenLibrary.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("base URL %q must be an absolute http(s) URL", c.OpenLibrary.BaseURL))
	}

	if c.OpenLibrary.UserAgent == "" {
		problems = append(problems, "user agent must not be empty")
	}

	if c.OpenLibrary.MinInterval < 0 {
		problems = append(problems, "minimum request interval must not be negative")
	}

	if c.OpenLibrary.HTTPTimeout < 0 {
		problems = append(problems, "HTTP timeout must not be negative")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if c.Server.Name == "" || c.Server.Version == "" {
		problems = append(problems, "server name and version are required")
	}

	// If any problems were found, return them as a combined error
	if len(problems) > 0 {
		return errors.Newf("configuration validation failed: %v", problems)
	}

	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
