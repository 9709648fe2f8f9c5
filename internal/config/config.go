package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"logdash/internal/repository"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Port string `mapstructure:"port"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   string `mapstructure:"file"`
	} `mapstructure:"log"`

	API struct {
		BaseURL string        `mapstructure:"base_url"`
		Host    string        `mapstructure:"host"`
		Port    int           `mapstructure:"port"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"api"`

	Dashboard struct {
		PageSize        int           `mapstructure:"page_size"`
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`
		TimeLayout      string        `mapstructure:"time_layout"`
		Timezone        string        `mapstructure:"timezone"`
	} `mapstructure:"dashboard"`
}

const envPrefix = "LOGDASH"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "logdash.log")
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.host", "")
	v.SetDefault("api.port", repository.DefaultAPIPort)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("dashboard.page_size", 100)
	v.SetDefault("dashboard.refresh_interval", 30*time.Second)
	v.SetDefault("dashboard.time_layout", "02/01/2006 15:04:05")
	v.SetDefault("dashboard.timezone", "Local")
}

// Load reads configs/config.yml (or path when set), applies LOGDASH_* env
// overrides and defaults. A missing default config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the dashboard cannot run with.
func (c Config) Validate() error {
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("dashboard.page_size must be positive, got %d", c.Dashboard.PageSize)
	}
	if c.Dashboard.RefreshInterval <= 0 {
		return fmt.Errorf("dashboard.refresh_interval must be positive, got %s", c.Dashboard.RefreshInterval)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	return nil
}

// APIBaseURL resolves the log service root. Without an explicit base URL or
// host, the dashboard's own hostname is used, like a page talking to a
// backend on its own host.
func (c Config) APIBaseURL() string {
	host := c.API.Host
	if c.API.BaseURL == "" && host == "" {
		if h, err := os.Hostname(); err == nil {
			host = h
		}
	}
	return repository.ResolveBaseURL(c.API.BaseURL, host, c.API.Port)
}
