// Package bakery is the event engine: the deterministic, single-threaded
// tick driver that couples the pantry, the recipe store, the order log, and
// the courier dispatcher. It is the sole stateful coordinator for a run —
// structurally the role the teacher's kitchen.Kitchen plays (one struct,
// built from config, exposing one method per externally observable
// operation) — reshaped from shelf-placement-by-decay to
// pantry-reservation-by-expiration because the domain changed.
package bakery

import (
	"sort"

	"github.com/ben-mays/bakery/internal/directory"
	"github.com/ben-mays/bakery/internal/orderlog"
	"github.com/ben-mays/bakery/internal/pantry"
	"github.com/ben-mays/bakery/internal/recipe"
)

// Engine owns current_time, the directories, the pantry, the recipe store
// and the order log for one run. There is exactly one Engine per process;
// rather than reach for package-level globals, every piece of run state
// lives on this struct and is threaded through explicitly.
type Engine struct {
	ingredients *directory.Directory
	pantry      *pantry.Pantry
	recipes     *recipe.Store
	orders      *orderlog.Log

	courierInterval int64
	courierCapacity int64
	currentTime     int64
	shippableOrders int
}

// New creates an Engine with the given courier schedule. courierInterval and
// courierCapacity must be positive; callers are expected to validate the
// wire header before constructing an Engine.
func New(courierInterval, courierCapacity int64) *Engine {
	ingredients := directory.New()
	return &Engine{
		ingredients:     ingredients,
		pantry:          pantry.New(ingredients),
		recipes:         recipe.New(directory.New()),
		orders:          orderlog.New(),
		courierInterval: courierInterval,
		courierCapacity: courierCapacity,
	}
}

// CurrentTime exposes the clock for diagnostics and tests.
func (e *Engine) CurrentTime() int64 { return e.currentTime }

// IngredientSpec is one (name, units-per-batch) pair of an aggiungi_ricetta
// line. The yaml tags let internal/protocol decode the same shape from a
// seed recipe file.
type IngredientSpec struct {
	Name          string `yaml:"name"`
	UnitsPerBatch int64  `yaml:"units_per_batch"`
}

// AddRecipeResult mirrors recipe.AddResult for the protocol layer.
type AddRecipeResult = recipe.AddResult

const (
	Added  = recipe.Added
	Exists = recipe.Exists
)

// AddRecipe interns ingredient names and registers a new recipe.
func (e *Engine) AddRecipe(name string, ingredients []IngredientSpec) AddRecipeResult {
	specs := make([]recipe.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		specs[i] = recipe.Ingredient{
			Handle:        e.pantry.Intern(ing.Name),
			UnitsPerBatch: ing.UnitsPerBatch,
		}
	}
	_, result := e.recipes.Add(name, specs)
	return result
}

// RemoveRecipeResult mirrors recipe.RemoveResult for the protocol layer.
type RemoveRecipeResult = recipe.RemoveResult

const (
	Removed   = recipe.Removed
	NotFound  = recipe.NotFound
	HasOrders = recipe.HasOrders
)

// RemoveRecipe unbinds a recipe, refusing while orders are outstanding.
func (e *Engine) RemoveRecipe(name string) RemoveRecipeResult {
	return e.recipes.Remove(name)
}

// ReplenishSpec is one (ingredient name, qty, expiration) triple of a
// rifornimento line.
type ReplenishSpec struct {
	Name       string
	Quantity   int64
	Expiration int64
}

// Replenish adds new lots for each ingredient, then re-evaluates every
// Pending order in arrival order against the clock one tick ahead — the
// same lookahead rule PlaceOrder uses for admission. The clock itself is
// never mutated; only the rule (reserve against current_time+1) is applied.
func (e *Engine) Replenish(items []ReplenishSpec) {
	for _, it := range items {
		h := e.pantry.Intern(it.Name)
		e.pantry.Replenish(h, it.Quantity, it.Expiration)
	}

	lookahead := e.currentTime + 1
	e.orders.PromotePending(func(o *orderlog.Order) bool {
		r := e.recipes.Get(o.Recipe)
		ok := e.pantry.Reserve(recipe.Requirements(r, o.Quantity), lookahead)
		if ok {
			e.shippableOrders++
		}
		return ok
	})
}

// OrderResult is the outcome of PlaceOrder.
type OrderResult int

const (
	Accepted OrderResult = iota
	Rejected
)

// PlaceOrder admits an order for quantity batches of recipeName, marking it
// Shippable immediately if the pantry can already cover it one tick ahead.
func (e *Engine) PlaceOrder(recipeName string, quantity int64) OrderResult {
	h, r, ok := e.recipes.Find(recipeName)
	if !ok {
		return Rejected
	}

	order := &orderlog.Order{
		Time:       e.currentTime,
		Recipe:     h,
		RecipeName: r.Name,
		Quantity:   quantity,
		Weight:     r.Weight * quantity,
	}

	lookahead := e.currentTime + 1
	if e.pantry.Reserve(recipe.Requirements(r, quantity), lookahead) {
		order.MarkShippable()
		e.shippableOrders++
	}

	e.orders.Append(order)
	r.OrderCount++
	return Accepted
}

// Shipment is one order loaded by the courier.
type Shipment struct {
	Time     int64
	Recipe   string
	Quantity int64
}

// RunCourier scans Shippable orders in arrival order, greedily loading until
// capacity would be exceeded, stopping immediately on the first order that
// doesn't fit. The returned slice is sorted by (weight desc, arrival asc);
// nil means "camioncino vuoto".
func (e *Engine) RunCourier() []Shipment {
	if e.shippableOrders == 0 {
		return nil
	}

	remaining := e.courierCapacity
	collected := e.orders.DrainShippable(func(o *orderlog.Order) (accept bool, stop bool) {
		if o.Weight > remaining {
			return false, true
		}
		remaining -= o.Weight
		return true, false
	})

	if len(collected) == 0 {
		return nil
	}

	sort.Slice(collected, func(i, j int) bool {
		if collected[i].Weight != collected[j].Weight {
			return collected[i].Weight > collected[j].Weight
		}
		return collected[i].Time < collected[j].Time
	})

	shipments := make([]Shipment, len(collected))
	for i, o := range collected {
		shipments[i] = Shipment{Time: o.Time, Recipe: o.RecipeName, Quantity: o.Quantity}
		e.recipes.Get(o.Recipe).OrderCount--
		e.shippableOrders--
	}
	return shipments
}

// Advance moves the clock forward by one tick and reports whether the
// courier condition now holds (current_time is a positive multiple of
// courier_interval). It does not itself run the courier — callers decide
// when to invoke RunCourier so that output ordering stays under their
// control (the status line for the triggering command must be emitted
// first).
func (e *Engine) Advance() (courierDue bool) {
	e.currentTime++
	return e.currentTime > 0 && e.currentTime%e.courierInterval == 0
}
