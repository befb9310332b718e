// Package pantry tracks perishable ingredient inventory as per-ingredient
// lots ordered by expiration, with earliest-deadline-first consumption.
package pantry

import (
	"container/list"

	"github.com/ben-mays/bakery/internal/directory"
)

// Lot is a batch of a single ingredient with a uniform expiration tick.
type Lot struct {
	Quantity   int64
	Expiration int64
}

// ingredient is the per-ingredient bag: a running total and its lots kept in
// ascending-expiration order. lots is a container/list instead of a hand
// rolled next_lot chain (see DESIGN.md) — it gives O(1) head-eviction during
// sweep and O(1) splice for the stable tail insert in Replenish.
type ingredient struct {
	total       int64
	lots        *list.List // of *Lot
	lastSweptAt int64
	sweptOnce   bool
}

// Pantry owns every ingredient encountered during a run. Ingredients are
// created lazily on first replenish and are never destroyed.
type Pantry struct {
	dir         *directory.Directory
	ingredients map[directory.Handle]*ingredient
}

// New creates an empty pantry backed by dir for name→handle resolution.
func New(dir *directory.Directory) *Pantry {
	return &Pantry{
		dir:         dir,
		ingredients: make(map[directory.Handle]*ingredient),
	}
}

// Intern resolves (creating if necessary) the handle for an ingredient name.
// Ingredient records themselves are created lazily on first Replenish, not
// here — interning a name does not imply the ingredient has any stock.
func (p *Pantry) Intern(name string) directory.Handle {
	return p.dir.Intern(name)
}

func (p *Pantry) getOrCreate(handle directory.Handle) *ingredient {
	ing, ok := p.ingredients[handle]
	if !ok {
		ing = &ingredient{lots: list.New()}
		p.ingredients[handle] = ing
	}
	return ing
}

// Replenish adds a new lot of qty units expiring at exp. Ties in expiration
// break in insertion order: the new lot is placed after all existing lots
// with an equal or earlier deadline.
func (p *Pantry) Replenish(handle directory.Handle, qty int64, exp int64) {
	ing := p.getOrCreate(handle)
	ing.total += qty

	for e := ing.lots.Front(); e != nil; e = e.Next() {
		if e.Value.(*Lot).Expiration > exp {
			ing.lots.InsertBefore(&Lot{Quantity: qty, Expiration: exp}, e)
			return
		}
	}
	ing.lots.PushBack(&Lot{Quantity: qty, Expiration: exp})
}

// sweep removes every head lot with Expiration < now, subtracting each from
// the running total. Idempotent: repeated calls at the same now are no-ops
// after the first.
//
// Callers consult the pantry only through the admission/re-evaluation
// lookahead, passing now = current_time+1, never the raw clock. Given that,
// this condition is exactly equivalent to "live iff Expiration > current_time":
// a lot expiring on the admission tick itself is not usable for that
// admission, but a lot expiring one tick later already is. The strict "<"
// here (rather than "<=") matters only at that boundary tick.
func (ing *ingredient) sweep(now int64) {
	if ing.sweptOnce && ing.lastSweptAt == now {
		return
	}
	for e := ing.lots.Front(); e != nil; {
		lot := e.Value.(*Lot)
		if lot.Expiration >= now {
			break
		}
		next := e.Next()
		ing.total -= lot.Quantity
		ing.lots.Remove(e)
		e = next
	}
	ing.lastSweptAt = now
	ing.sweptOnce = true
}

// Total returns the live total quantity for handle as of now, sweeping
// expired lots first. A never-replenished ingredient has total 0.
func (p *Pantry) Total(handle directory.Handle, now int64) int64 {
	ing, ok := p.ingredients[handle]
	if !ok {
		return 0
	}
	ing.sweep(now)
	return ing.total
}

// consume removes exactly units from the head lots of handle, splitting the
// last touched lot if it has more than the residual need. Caller must have
// already confirmed sufficient live quantity via Total.
func (p *Pantry) consume(handle directory.Handle, units int64, now int64) {
	ing := p.ingredients[handle]
	ing.sweep(now)

	need := units
	for e := ing.lots.Front(); need > 0; {
		lot := e.Value.(*Lot)
		if lot.Quantity <= need {
			need -= lot.Quantity
			next := e.Next()
			ing.lots.Remove(e)
			e = next
		} else {
			lot.Quantity -= need
			need = 0
		}
	}
	ing.total -= units
}

// Requirement is one ingredient demand of a reservation attempt.
type Requirement struct {
	Ingredient directory.Handle
	Units      int64
}

// Reserve attempts to atomically consume every requirement in reqs, checked
// against inventory swept as of now. If any requirement cannot be met, no
// ingredient is mutated beyond the sweep (sweeping is always applied, since
// it only discards stock that was never usable anyway) and Reserve returns
// false. Otherwise every requirement is consumed and Reserve returns true.
func (p *Pantry) Reserve(reqs []Requirement, now int64) bool {
	for _, r := range reqs {
		if p.Total(r.Ingredient, now) < r.Units {
			return false
		}
	}
	for _, r := range reqs {
		p.consume(r.Ingredient, r.Units, now)
	}
	return true
}
