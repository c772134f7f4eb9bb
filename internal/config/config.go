package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ACL"

// Config holds the process settings shared by all subcommands.
type Config struct {
	Port    string       `mapstructure:"port"`
	Log     LogConfig    `mapstructure:"log"`
	Configs StoreConfig  `mapstructure:"configs"`
	DB      DBConfig     `mapstructure:"db"`
	Device  DeviceConfig `mapstructure:"device"`
	Auth    AuthConfig   `mapstructure:"auth"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig locates the AC config file.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// DeviceConfig tunes IR device discovery and capture polling.
type DeviceConfig struct {
	DiscoveryTimeout time.Duration `mapstructure:"discovery_timeout"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	Host             string        `mapstructure:"host"` // discovered device used by send and serve
	LocalIP          string        `mapstructure:"local_ip"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("configs.path", "ac_configs.json")
	v.SetDefault("db.path", "ac_learner.db")
	v.SetDefault("device.discovery_timeout", 5*time.Second)
	v.SetDefault("device.poll_interval", 200*time.Millisecond)
	v.SetDefault("device.host", "")
	v.SetDefault("device.local_ip", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
}

// Load reads settings from file, or from config.yml under ./configs or the
// working directory when file is empty. A missing default file is not an
// error. ACL_* environment variables override file values, with dots in
// keys written as underscores (ACL_DEVICE_HOST).
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("configs")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if cfg.Device.PollInterval <= 0 {
		return nil, fmt.Errorf("device.poll_interval must be positive, got %s", cfg.Device.PollInterval)
	}
	return &cfg, nil
}
