// Package settings loads the operational configuration for a bakery run:
// everything the process needs besides the protocol stream itself. It
// follows the teacher's main.go/server.go pattern exactly — an environment
// variable selects a YAML file, and the subsystem populates its own typed
// config from a top-level key via go.uber.org/config.
package settings

import (
	"fmt"
	"os"

	"go.uber.org/config"
)

// EnvKey is the environment variable naming the runtime environment.
const EnvKey = "BAKERY_ENV"

// Env is the runtime environment name, e.g. "development" or "production".
type Env string

// getEnv reads BAKERY_ENV, defaulting to "development" when unset or empty —
// mirrors the teacher's getEnv in main.go.
func getEnv() Env {
	env, exists := os.LookupEnv(EnvKey)
	if !exists || len(env) == 0 {
		return "development"
	}
	return Env(env)
}

// LoadConfig resolves env to config/<env>.yaml and returns a ready provider.
func LoadConfig(env Env) config.Provider {
	path := fmt.Sprintf("config/%s.yaml", env)
	return config.NewYAMLProviderFromFiles(path)
}

// ProvideEnv and ProvideConfig are fx constructors, named after the
// teacher's ProvideEnv/ProvideConfig in main.go.
func ProvideEnv() Env {
	return getEnv()
}

func ProvideConfig(env Env) config.Provider {
	return LoadConfig(env)
}

// Settings is the bakery subsystem's own config, populated from the
// top-level "bakery" key — the same shape as the teacher's kitchenConfig/
// server.Config structs. None of this carries courier_interval or
// courier_capacity: those are wire values read from stdin's first line,
// not configuration.
type Settings struct {
	// SeedRecipesPath, if non-empty, names a YAML file of recipes to
	// register before the protocol stream is read (an operational
	// convenience for demos/load tests; the protocol itself never requires
	// pre-seeded recipes).
	SeedRecipesPath string `yaml:"seed_recipes_path"`

	// Lenient, when true, logs malformed command lines to stderr and skips
	// them instead of aborting — useful when piping noisy generated streams
	// through cmd/bakery-loadgen during development. The zero value (false)
	// keeps the strict default: abort on the first malformed line, no
	// recovery.
	Lenient bool `yaml:"lenient"`

	// LogLevel is loaded and defaulted to "info", but nothing in this module
	// reads it: internal/rundiag always writes its start and exit lines
	// whatever the level. It never affects stdout, which is pure protocol
	// output.
	LogLevel string `yaml:"log_level"`
}

// Load populates Settings from provider's "bakery" key, applying the same
// zero-value defaulting the teacher's server.loadConfig uses for Port.
func Load(provider config.Provider) (Settings, error) {
	var s Settings
	if err := provider.Get("bakery").Populate(&s); err != nil {
		return Settings{}, err
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s, nil
}
