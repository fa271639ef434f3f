package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     int
	Login    string
	Password string

	LogLevel  string
	LogFormat string

	FetchTimeout   time.Duration
	MaxRedirects   int
	RequestTimeout time.Duration

	AllowedDomains          []string
	MaxConcurrentTranscodes int
}

// AuthEnabled reports whether both credentials are configured.
func (c Config) AuthEnabled() bool {
	return c.Login != "" && c.Password != ""
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads an optional .env file and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8081")
	v.SetDefault("LOGIN", "")
	v.SetDefault("PASSWORD", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("MAX_REDIRECTS", "5")
	v.SetDefault("REQUEST_TIMEOUT", "1m")
	v.SetDefault("ALLOWED_DOMAINS", "*")
	v.SetDefault("MAX_CONCURRENT_TRANSCODES", "0")

	return v
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Login:          v.GetString("LOGIN"),
		Password:       v.GetString("PASSWORD"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		AllowedDomains: splitList(v.GetString("ALLOWED_DOMAINS")),
	}

	var err error
	if cfg.Port, err = parseInt(v, "PORT", 1, 65535); err != nil {
		return Config{}, err
	}
	if cfg.MaxRedirects, err = parseInt(v, "MAX_REDIRECTS", 0, 100); err != nil {
		return Config{}, err
	}
	if cfg.MaxConcurrentTranscodes, err = parseInt(v, "MAX_CONCURRENT_TRANSCODES", 0, 1<<16); err != nil {
		return Config{}, err
	}
	if cfg.FetchTimeout, err = parseDuration(v, "FETCH_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = parseDuration(v, "REQUEST_TIMEOUT"); err != nil {
		return Config{}, err
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: expected json or console", cfg.LogFormat)
	}

	if len(cfg.AllowedDomains) == 0 {
		cfg.AllowedDomains = []string{"*"}
	}

	return cfg, nil
}

func parseInt(v *viper.Viper, key string, lo, hi int) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("invalid %s %d: must be between %d and %d", key, value, lo, hi)
	}
	return value, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return value, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
