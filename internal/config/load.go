package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/oba-ldap/aci/internal/envsubst"
)

// EnvPrefix prefixes the environment variables overriding configuration keys.
const EnvPrefix = "ACITOOL"

// ErrConfigNotFound is returned when an explicitly named file does not exist.
var ErrConfigNotFound = errors.New("config: file not found")

// Load reads the configuration from configPath, or from the default
// location when configPath is empty, and applies environment overrides.
// Only a missing default file is tolerated.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v)

	path := configPath
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(envsubst.Expand(data))); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && configPath == "":
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	default:
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if errs := ValidateConfig(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// setupViper registers every key with its default so that environment
// variables apply even when no file sets the key.
func setupViper(v *viper.Viper) {
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("schema.file", def.Schema.File)
	v.SetDefault("directory.url", def.Directory.URL)
	v.SetDefault("directory.bind_dn", def.Directory.BindDN)
	v.SetDefault("directory.bind_password", def.Directory.BindPassword)
	v.SetDefault("directory.base_dn", def.Directory.BaseDN)
	v.SetDefault("directory.timeout", def.Directory.Timeout)
	v.SetDefault("directory.insecure_skip_verify", def.Directory.InsecureSkipVerify)
	v.SetDefault("watch.debounce", def.Watch.Debounce)
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		trimStringHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// trimStringHook strips surrounding whitespace from string values, which
// environment variables often carry.
func trimStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(reflect.ValueOf(data).String()), nil
	}
}

// configDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to the
// current directory if the home directory cannot be determined.
func configDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "acitool")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "acitool")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}
