package nexus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Host    string        `env:"NEXUS_TEST_HOST" yaml:"host" validate:"required"`
	Port    string        `env:"NEXUS_TEST_PORT" yaml:"port"`
	Timeout time.Duration `env:"NEXUS_TEST_TIMEOUT" yaml:"timeout"`
}

type strictConfig struct {
	Port int `env:"NEXUS_TEST_STRICT_PORT"`
}

func (c *strictConfig) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func TestLoader_EnvironmentAndDefaults(t *testing.T) {
	t.Setenv("NEXUS_TEST_HOST", "example.test")

	cfg := &sampleConfig{}
	err := NewLoader(
		WithOnlyEnvironment(),
		WithDefaults(&sampleConfig{Port: "8080", Timeout: time.Second}),
	).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "example.test", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestLoader_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("host: from-file\nport: \"9000\"\n"), 0o600))
	t.Setenv("NEXUS_TEST_PORT", "9100")

	cfg := &sampleConfig{}
	err := NewLoader(WithFileName(file)).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Host)
	assert.Equal(t, "9100", cfg.Port)
}

func TestLoader_MissingFile(t *testing.T) {
	err := NewLoader(WithFileName("/does/not/exist.yml")).Load(&sampleConfig{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}

func TestLoader_ValidationFailure(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(&sampleConfig{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
}

func TestLoader_SelfValidator(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(&strictConfig{})
	require.Error(t, err)
	assert.Contains(t, errors.Unwrap(err).Error(), "port must be positive")

	t.Setenv("NEXUS_TEST_STRICT_PORT", "80")
	assert.NoError(t, NewLoader(WithOnlyEnvironment()).Load(&strictConfig{}))
}

func TestLoader_RejectsNonPointer(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(sampleConfig{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestDefaultValidator_Context(t *testing.T) {
	v := &DefaultValidator{}
	assert.NoError(t, v.Validate(context.Background(), &sampleConfig{Host: "x"}))
}
