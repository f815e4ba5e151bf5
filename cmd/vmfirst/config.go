package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/vmfirst/internal/model"
)

// cliConfig holds the application configuration.
type cliConfig struct {
	StartRoute        string        `mapstructure:"start-route"`
	CatalogPath       string        `mapstructure:"catalog-path"`
	ToastDuration     time.Duration `mapstructure:"toast-duration"`
	LongToastDuration time.Duration `mapstructure:"long-toast-duration"`
	LogFile           string        `mapstructure:"log-file"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("VMFIRST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("start-route", model.DefaultStartRoute)
	v.SetDefault("catalog-path", "")
	v.SetDefault("toast-duration", model.DefaultToastDuration)
	v.SetDefault("long-toast-duration", model.DefaultLongToast)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "vmfirst", "vmfirst.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "vmfirst", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	cfg.StartRoute = strings.TrimSpace(cfg.StartRoute)
	if cfg.StartRoute == "" {
		return cfg, errors.New("start-route must not be empty")
	}
	if cfg.ToastDuration <= 0 || cfg.LongToastDuration <= 0 {
		return cfg, fmt.Errorf("toast durations must be positive (got %s and %s)", cfg.ToastDuration, cfg.LongToastDuration)
	}

	return cfg, nil
}
