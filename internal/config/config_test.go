package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, 30*time.Second, cfg.Directory.Timeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	assert.Empty(t, ValidateConfig(cfg))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Logging: LogConfig{Level: "debug"}}
	ApplyDefaults(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("TEST_LDAP_PASSWORD", "s3cret")

	path := writeConfig(t, `
logging:
  level: debug
  format: json
  output: stdout
output:
  format: yaml
directory:
  url: ldaps://ldap.example.com
  bind_dn: cn=Directory Manager
  bind_password: ${TEST_LDAP_PASSWORD}
  base_dn: dc=example,dc=com
  timeout: 10s
watch:
  debounce: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "ldaps://ldap.example.com", cfg.Directory.URL)
	assert.Equal(t, "cn=Directory Manager", cfg.Directory.BindDN)
	assert.Equal(t, "s3cret", cfg.Directory.BindPassword)
	assert.Equal(t, "dc=example,dc=com", cfg.Directory.BaseDN)
	assert.Equal(t, 10*time.Second, cfg.Directory.Timeout)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestLoad_Partial(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Directory.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACITOOL_LOGGING_LEVEL", "error")
	t.Setenv("ACITOOL_DIRECTORY_BIND_PASSWORD", " from-env ")
	t.Setenv("ACITOOL_DIRECTORY_TIMEOUT", "5s")

	path := writeConfig(t, "logging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "from-env", cfg.Directory.BindPassword)
	assert.Equal(t, 5*time.Second, cfg.Directory.Timeout)
}

func TestLoad_DefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, os.MkdirAll(filepath.Dir(DefaultConfigPath()), 0700))
	require.NoError(t, os.WriteFile(DefaultConfigPath(), []byte("output:\n  format: yaml\n"), 0600))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = Load(writeConfig(t, "logging: [unclosed\n"))
	assert.ErrorContains(t, err, "failed to parse")

	_, err = Load(writeConfig(t, "output:\n  format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format: must be one of [table json yaml]")

	_, err = Load(writeConfig(t, "watch:\n  debounce: soon\n"))
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestValidateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Output = ""
	cfg.Schema.File = filepath.Join(t.TempDir(), "none.schema")
	cfg.Directory.URL = "not a url"
	cfg.Directory.BaseDN = "example.com"
	cfg.Directory.Timeout = -time.Second

	errs := ValidateConfig(cfg)

	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		fields = append(fields, verr.Field)
	}

	assert.ElementsMatch(t, []string{
		"logging.level",
		"logging.output",
		"schema.file",
		"directory.url",
		"directory.base_dn",
		"directory.timeout",
	}, fields)
}

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "output.format", Message: "is required"}
	assert.Equal(t, "output.format: is required", err.Error())
}
