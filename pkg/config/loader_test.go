package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"KB_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"KB_TEST_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"KB_TEST_DEBUG" envDefault:"true"`
}

type overrideConfig struct {
	Name string `env:"KB_TEST_NAME" envDefault:"default"`
	Port int    `env:"KB_TEST_PORT" envDefault:"1"`
}

type cachedConfig struct {
	Value string `env:"KB_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Secret string `env:"KB_TEST_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("KB_TEST_ADDR")
	os.Unsetenv("KB_TEST_TIMEOUT")
	os.Unsetenv("KB_TEST_DEBUG")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("KB_TEST_NAME", "kbooks")
	t.Setenv("KB_TEST_PORT", "9090")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "kbooks", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("KB_TEST_CACHED", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))

	t.Setenv("KB_TEST_CACHED", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("KB_TEST_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.LoadFrom[requiredConfig](nil, nil), config.ErrNilPointer)
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	require.NoError(t, config.LoadFrom(map[string]string{"KB_TEST_SECRET": "k"}, &cfg))
	assert.Equal(t, "k", cfg.Secret)

	var missing requiredConfig
	assert.ErrorIs(t, config.LoadFrom(map[string]string{}, &missing), config.ErrParsingConfig)
}
