// Package orderlog is a time-ordered queue of accepted orders, each tagged
// Pending or Shippable, supporting append, in-place state transition, and
// in-place removal during forward iteration.
package orderlog

import (
	"container/list"
	"fmt"

	"github.com/ben-mays/bakery/internal/directory"
)

// State is an order's admission state.
type State int

const (
	Pending State = iota
	Shippable
)

// Order is the basic accepted-order primitive. Time is strictly monotonic
// across accepted orders: it is assigned once, at admission, and never
// changes, which is what makes the log's arrival ordering equivalent to
// sorting by Time.
type Order struct {
	Time       int64
	Recipe     directory.Handle
	RecipeName string
	Quantity   int64
	Weight     int64
	state      State
}

// State returns the order's current admission state.
func (o *Order) State() State {
	return o.state
}

// transition moves the order from an expected state to a new one, refusing
// (and reporting) a transition attempted from the wrong state. The bakery
// domain has only two states and no terminal one, so unlike the teacher's
// order state machine this has no notion of a terminal-state guard — every
// transition here is Pending→Shippable.
func (o *Order) transition(expected, next State) error {
	if o.state != expected {
		return fmt.Errorf("order placed at tick %d in state %d, expected %d", o.Time, o.state, expected)
	}
	o.state = next
	return nil
}

// Log is the arrival-ordered queue of live orders, backed by container/list
// for O(1) removal during forward iteration (the courier's detach-in-place
// walk) — the idiomatic replacement for a hand-built next_order singly
// linked list.
type Log struct {
	orders *list.List // of *Order
}

// New creates an empty order log.
func New() *Log {
	return &Log{orders: list.New()}
}

// Append adds order to the tail of the log. Callers must assign Time before
// calling Append; Append does not validate monotonicity (the engine, which
// owns the clock, is the only caller and only ever appends with the current
// tick).
func (l *Log) Append(o *Order) {
	l.orders.PushBack(o)
}

// Len returns the number of live orders in the log.
func (l *Log) Len() int {
	return l.orders.Len()
}

// PromotePending walks every Pending order in arrival order, invoking
// tryFill for each. Orders for which tryFill returns true transition to
// Shippable. PromotePending never reorders, drops, or re-prices an order —
// a later Pending order may remain pending even though an earlier one's
// promotion consumed ingredients it would have needed.
func (l *Log) PromotePending(tryFill func(*Order) bool) {
	for e := l.orders.Front(); e != nil; e = e.Next() {
		o := e.Value.(*Order)
		if o.state != Pending {
			continue
		}
		if tryFill(o) {
			_ = o.transition(Pending, Shippable)
		}
	}
}

// MarkShippable transitions a freshly admitted order straight to Shippable
// (used by admission when the initial reservation succeeds).
func (o *Order) MarkShippable() { _ = o.transition(Pending, Shippable) }

// DrainShippable walks the log in arrival order, passing each Shippable
// order to consider. consider returns (accept, stop): accept detaches and
// collects the order; stop halts the walk immediately without consuming any
// further order, matching the courier's stop-on-first-fit-failure rule —
// later, possibly-lighter Shippable orders are deliberately left in place
// rather than packed around the blocker. Pending orders are always skipped
// and left untouched.
func (l *Log) DrainShippable(consider func(*Order) (accept bool, stop bool)) []*Order {
	var collected []*Order
	for e := l.orders.Front(); e != nil; {
		o := e.Value.(*Order)
		if o.state != Shippable {
			e = e.Next()
			continue
		}
		accept, stop := consider(o)
		if stop {
			break
		}
		if accept {
			next := e.Next()
			l.orders.Remove(e)
			collected = append(collected, o)
			e = next
			continue
		}
		e = e.Next()
	}
	return collected
}
