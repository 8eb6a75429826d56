// Package config loads CLI configuration: .env via godotenv, then
// viper with a flat ENV-var namespace and explicit defaults.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LogConfig controls the zap logger pkg/logger builds.
type LogConfig struct {
	Level  string
	Format string
}

// AnnealConfig carries the SA-related settings loaded from the
// environment. Only Seed is read by the CLI; the driver uses its own
// fixed stagnation cap and has no time budget, so StagnationCap and
// TimeBudget do not affect a run.
type AnnealConfig struct {
	Seed          int64
	StagnationCap int
	TimeBudget    time.Duration
}

// Config is the whole process's resolved configuration.
type Config struct {
	Env string
	Log LogConfig

	Anneal AnnealConfig

	InputPath  string
	OutputPath string
}

// Load reads .env (if present) and the environment, applying defaults
// for anything unset. Cobra flags take precedence over these values
// at the call site; Load only establishes the baseline.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Anneal: AnnealConfig{
			Seed:          v.GetInt64("UCTP_SEED"),
			StagnationCap: v.GetInt("UCTP_STAGNATION_CAP"),
			TimeBudget:    parseDuration(v.GetString("UCTP_TIME_BUDGET"), 0),
		},
		InputPath:  v.GetString("UCTP_INPUT"),
		OutputPath: v.GetString("UCTP_OUTPUT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")

	v.SetDefault("UCTP_SEED", 0)
	v.SetDefault("UCTP_STAGNATION_CAP", 8000)
	v.SetDefault("UCTP_TIME_BUDGET", "0s")

	v.SetDefault("UCTP_INPUT", "")
	v.SetDefault("UCTP_OUTPUT", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
