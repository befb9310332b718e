package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.uber.org/config"
)

func TestLoadPopulatesFromBakeryKey(t *testing.T) {
	cfg := []byte(`
bakery:
  seed_recipes_path: "recipes.yaml"
  lenient: true
  log_level: "debug"`)

	provider := config.NewYAMLProviderFromBytes(cfg)
	s, err := Load(provider)
	assert.NoError(t, err)
	assert.Equal(t, "recipes.yaml", s.SeedRecipesPath)
	assert.True(t, s.Lenient)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadDefaultsLogLevel(t *testing.T) {
	provider := config.NewYAMLProviderFromBytes([]byte(`bakery:`))
	s, err := Load(provider)
	assert.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Lenient)
}

func TestGetEnvDefaultsToDevelopment(t *testing.T) {
	os.Unsetenv(EnvKey)
	assert.Equal(t, Env("development"), getEnv())
}

func TestGetEnvReadsVariable(t *testing.T) {
	os.Setenv(EnvKey, "production")
	defer os.Unsetenv(EnvKey)
	assert.Equal(t, Env("production"), getEnv())
}
