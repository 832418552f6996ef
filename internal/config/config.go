package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "PROMPTLENS"
	defaultConfigName = "promptlens"
	DefaultModel      = "llama-3.1-8b-instant"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LLMConfig struct {
	// Provider is one of groq, openai or azure
	Provider   string `mapstructure:"provider"`
	Endpoint   string `mapstructure:"endpoint"`
	APIVersion string `mapstructure:"api_version"`
	Model      string `mapstructure:"model"`

	// Models is the set offered in the model selector
	Models []string `mapstructure:"models"`

	// APIKey is only read for CLI use; browser submissions carry their own key
	APIKey string `mapstructure:"api_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	// the provider call is cut off 5s before this so its error is still written
	v.SetDefault("server.write_timeout", "120s")

	v.SetDefault("llm.provider", "groq")
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_version", "2024-06-01")
	v.SetDefault("llm.model", DefaultModel)
	v.SetDefault("llm.models", []string{DefaultModel})
	v.SetDefault("llm.api_key", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads defaults, then the config file, then PROMPTLENS_* environment
// variables. An empty path looks for promptlens.{yaml,toml,json} in the working
// directory and tolerates its absence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", envPrefix+"_LLM_API_KEY", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded", "file", v.ConfigFileUsed(), "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	return &cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if len(c.LLM.Models) == 0 {
		c.LLM.Models = []string{c.LLM.Model}
	}
	if !slices.Contains(c.LLM.Models, c.LLM.Model) {
		return fmt.Errorf("llm.model %q is not listed in llm.models", c.LLM.Model)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// ParseLevel maps a textual level to slog; unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
