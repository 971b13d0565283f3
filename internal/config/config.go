package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	envPrefix         = "PORTAL"
)

type Config struct {
	HTTPAddr string

	APIBaseURL string
	APITimeout time.Duration

	LoginURL  string
	SignupURL string

	CounterSteps    int
	CounterInterval time.Duration

	// Locale is the BCP 47 tag used when a visitor's Accept-Language matches nothing
	Locale string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel slog.Level
}

// Load reads .env (if present), then the config file and environment
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("auth.login_url", "http://localhost:5000/login.php")
	v.SetDefault("auth.signup_url", "http://localhost:5000/signup.php")
	v.SetDefault("counter.steps", 100)
	v.SetDefault("counter.interval", "20ms")
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")

	// Config file is optional; env-only is fine.
	_ = v.ReadInConfig()

	cfg := Config{
		HTTPAddr:        strings.TrimSpace(v.GetString("http.addr")),
		APIBaseURL:      strings.TrimSpace(v.GetString("api.base_url")),
		APITimeout:      v.GetDuration("api.timeout"),
		LoginURL:        strings.TrimSpace(v.GetString("auth.login_url")),
		SignupURL:       strings.TrimSpace(v.GetString("auth.signup_url")),
		CounterSteps:    v.GetInt("counter.steps"),
		CounterInterval: v.GetDuration("counter.interval"),
		Locale:          strings.TrimSpace(v.GetString("ui.locale")),
		RedisAddr:       strings.TrimSpace(v.GetString("redis.addr")),
		RedisPassword:   v.GetString("redis.password"),
		RedisDB:         v.GetInt("redis.db"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return Config{}, fmt.Errorf("invalid log.level %q", v.GetString("log.level"))
	}

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("http.addr must not be empty")
	}
	for key, raw := range map[string]string{
		"api.base_url":    cfg.APIBaseURL,
		"auth.login_url":  cfg.LoginURL,
		"auth.signup_url": cfg.SignupURL,
	} {
		if err := validateURL(raw); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	if cfg.APITimeout < 0 {
		return Config{}, fmt.Errorf("invalid api.timeout %s", cfg.APITimeout)
	}
	if cfg.CounterSteps <= 0 {
		return Config{}, fmt.Errorf("invalid counter.steps %d", cfg.CounterSteps)
	}
	if cfg.CounterInterval <= 0 {
		return Config{}, fmt.Errorf("invalid counter.interval %s", cfg.CounterInterval)
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("redis.addr must not be empty")
	}
	if cfg.RedisDB < 0 {
		return Config{}, fmt.Errorf("invalid redis.db %d", cfg.RedisDB)
	}

	return cfg, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	return nil
}
