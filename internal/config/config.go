package config

import "time"

// Config holds the complete acitool configuration.
type Config struct {
	Logging   LogConfig       `mapstructure:"logging" yaml:"logging"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Schema    SchemaConfig    `mapstructure:"schema" yaml:"schema"`
	Directory DirectoryConfig `mapstructure:"directory" yaml:"directory"`
	Watch     WatchConfig     `mapstructure:"watch" yaml:"watch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// OutputConfig holds the default rendering of command results.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=table json yaml" yaml:"format"`
}

// SchemaConfig points at attribute type definitions loaded on top of the
// built-in catalog.
type SchemaConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file" yaml:"file,omitempty"`
}

// DirectoryConfig holds the connection to the directory server.
type DirectoryConfig struct {
	URL                string        `mapstructure:"url" validate:"omitempty,url" yaml:"url,omitempty"`
	BindDN             string        `mapstructure:"bind_dn" validate:"omitempty,ldapdn" yaml:"bind_dn,omitempty"`
	BindPassword       string        `mapstructure:"bind_password" yaml:"bind_password,omitempty"`
	BaseDN             string        `mapstructure:"base_dn" validate:"omitempty,ldapdn" yaml:"base_dn,omitempty"`
	Timeout            time.Duration `mapstructure:"timeout" validate:"gte=0" yaml:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify,omitempty"`
}

// WatchConfig holds the draft watcher settings.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0" yaml:"debounce"`
}
