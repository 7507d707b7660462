package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// devSecret signs tokens when ENV=development and no JWT_SECRET is set.
const devSecret = "cloudcare-development-secret"

type Config struct {
	Port           string        `mapstructure:"API_PORT"`
	Env            string        `mapstructure:"ENV"`
	MongoURI       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"TOKEN_TTL"`
	AuthRequired   bool          `mapstructure:"AUTH_REQUIRED"`
	AllowedOrigins []string      `mapstructure:"-"`
	TextbeltAPIKey string        `mapstructure:"TEXTBELT_API_KEY"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
}

var keys = []string{
	"API_PORT",
	"ENV",
	"MONGO_URI",
	"MONGO_DATABASE",
	"JWT_SECRET",
	"TOKEN_TTL",
	"AUTH_REQUIRED",
	"ALLOWED_ORIGINS",
	"TEXTBELT_API_KEY",
	"REQUEST_TIMEOUT",
}

// Load reads a .env file if present, then the environment.
func Load(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGO_DATABASE", "hospital")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))

	if cfg.JWTSecret == "" && cfg.IsDev() {
		log.Warn().Msg("JWT_SECRET is not set, using the development secret; do not run like this in production")
		cfg.JWTSecret = devSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
