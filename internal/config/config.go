package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	ServerAddr          string   `mapstructure:"server_addr"`
	StaticDir           string   `mapstructure:"static_dir"`
	BlogDir             string   `mapstructure:"blog_dir"`
	Watch               bool     `mapstructure:"watch"`
	LogLevel            string   `mapstructure:"log_level"`
	CookieMaxAgeDays    int      `mapstructure:"cookie_max_age_days"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	KeepEmptyCategories bool     `mapstructure:"keep_empty_categories"`
}

// CookieMaxAge is how long preference cookies live
func (c *Config) CookieMaxAge() time.Duration {
	return time.Duration(c.CookieMaxAgeDays) * 24 * time.Hour
}

// EnvPrefix prefixes every environment variable the config reads
const EnvPrefix = "PORTFOLIO"

// New returns a viper instance with defaults, env binding and, when cfgFile
// is empty, a lookup for ./config.yaml
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("static_dir", "static")
	v.SetDefault("blog_dir", "")
	v.SetDefault("watch", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("cookie_max_age_days", 365)
	v.SetDefault("allowed_origins", []string{"http://localhost:8080"})
	v.SetDefault("keep_empty_categories", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads .env (if present), the config file (if present) and the
// environment into a Config. A config file named explicitly must exist.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromViper(New(cfgFile), cfgFile != "")
}

// FromViper decodes a prepared viper instance
func FromViper(v *viper.Viper, requireFile bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if requireFile || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.CookieMaxAgeDays <= 0 {
		return nil, fmt.Errorf("cookie_max_age_days must be positive, got %d", cfg.CookieMaxAgeDays)
	}
	return &cfg, nil
}
