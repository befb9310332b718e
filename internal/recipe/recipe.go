// Package recipe owns immutable recipe records: their weight, ingredient
// list, and outstanding-order counter.
package recipe

import (
	"github.com/ben-mays/bakery/internal/directory"
	"github.com/ben-mays/bakery/internal/pantry"
)

// Ingredient is one (ingredient handle, units per batch) line of a recipe.
type Ingredient struct {
	Handle        directory.Handle
	UnitsPerBatch int64
}

// Recipe is an immutable record: weight is fixed at creation and never
// changes.
type Recipe struct {
	Name        string
	Weight      int64
	Ingredients []Ingredient
	OrderCount  int
}

// AddResult is the outcome of Store.Add.
type AddResult int

const (
	Added AddResult = iota
	Exists
)

// RemoveResult is the outcome of Store.Remove.
type RemoveResult int

const (
	Removed RemoveResult = iota
	NotFound
	HasOrders
)

// Store owns every recipe added during a run, indexed through a name
// directory for O(|name|) lookup.
type Store struct {
	dir     *directory.Directory
	recipes map[directory.Handle]*Recipe
}

// New creates an empty recipe store.
func New(dir *directory.Directory) *Store {
	return &Store{
		dir:     dir,
		recipes: make(map[directory.Handle]*Recipe),
	}
}

// Add interns name (ingredients arrive as already-interned handles), builds
// the recipe with
// weight = Σ units-per-batch, and binds it. If name already names a recipe,
// Add changes nothing and returns Exists — the caller is responsible for
// having already consumed the ingredient list tokens from the input line.
func (s *Store) Add(name string, ingredients []Ingredient) (directory.Handle, AddResult) {
	if h, ok := s.dir.Lookup(name); ok {
		return h, Exists
	}

	h := s.dir.Intern(name)
	var weight int64
	for _, ing := range ingredients {
		weight += ing.UnitsPerBatch
	}
	s.recipes[h] = &Recipe{
		Name:        name,
		Weight:      weight,
		Ingredients: ingredients,
	}
	return h, Added
}

// Find resolves name to its Recipe and handle, if bound.
func (s *Store) Find(name string) (directory.Handle, *Recipe, bool) {
	h, ok := s.dir.Lookup(name)
	if !ok {
		return directory.Invalid, nil, false
	}
	r, ok := s.recipes[h]
	return h, r, ok
}

// Get resolves an already-known handle to its Recipe.
func (s *Store) Get(h directory.Handle) *Recipe {
	return s.recipes[h]
}

// Remove unbinds name and frees its Recipe, refusing if orders are still
// outstanding against it. Order count is only inspected, never mutated, by
// Remove — see DESIGN.md's note on the source's metrics-ordering bug, which
// this deliberately does not reproduce: the presence check happens before
// any state is touched, full stop.
func (s *Store) Remove(name string) RemoveResult {
	h, ok := s.dir.Lookup(name)
	if !ok {
		return NotFound
	}
	r := s.recipes[h]
	if r.OrderCount != 0 {
		return HasOrders
	}

	s.dir.Delete(name)
	delete(s.recipes, h)
	return Removed
}

// Requirements expands a recipe's per-batch ingredient list into the
// pantry.Requirement set needed for qty batches.
func Requirements(r *Recipe, qty int64) []pantry.Requirement {
	reqs := make([]pantry.Requirement, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		reqs[i] = pantry.Requirement{Ingredient: ing.Handle, Units: ing.UnitsPerBatch * qty}
	}
	return reqs
}
