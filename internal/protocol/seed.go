package protocol

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ben-mays/bakery/internal/bakery"
)

// SeedRecipe is one recipe entry in a seed file: the same (name, ingredient
// list) shape aggiungi_ricetta carries on the wire, just sourced from a
// config-adjacent YAML file instead of stdin.
type SeedRecipe struct {
	Name        string                  `yaml:"name"`
	Ingredients []bakery.IngredientSpec `yaml:"ingredients"`
}

// ParseSeedFile reads and decodes a seed recipe file. It is the only place
// in this package that touches the filesystem or YAML — the protocol
// stream proper is stdin-only.
func ParseSeedFile(path string) ([]SeedRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recipes []SeedRecipe
	if err := yaml.Unmarshal(data, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
