package orderlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendPreservesArrivalOrder(t *testing.T) {
	l := New()
	l.Append(&Order{Time: 1})
	l.Append(&Order{Time: 2})
	l.Append(&Order{Time: 3})
	assert.Equal(t, 3, l.Len())

	var times []int64
	l.DrainShippable(func(o *Order) (bool, bool) { return false, false }) // no-op walk, Pending skipped
	for e := l.orders.Front(); e != nil; e = e.Next() {
		times = append(times, e.Value.(*Order).Time)
	}
	assert.Equal(t, []int64{1, 2, 3}, times)
}

func TestPromotePendingOnlyTouchesPending(t *testing.T) {
	l := New()
	pending := &Order{Time: 1, state: Pending}
	shippable := &Order{Time: 2, state: Shippable}
	l.Append(pending)
	l.Append(shippable)

	calls := 0
	l.PromotePending(func(o *Order) bool {
		calls++
		return true
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, Shippable, pending.State())
}

func TestPromotePendingLeavesLaterOrderPendingIfEarlierConsumedStock(t *testing.T) {
	l := New()
	a := &Order{Time: 1, state: Pending}
	b := &Order{Time: 2, state: Pending}
	l.Append(a)
	l.Append(b)

	stock := int64(1)
	l.PromotePending(func(o *Order) bool {
		if stock > 0 {
			stock--
			return true
		}
		return false
	})
	assert.Equal(t, Shippable, a.State())
	assert.Equal(t, Pending, b.State())
}

func TestDrainShippableStopsOnFirstFitFailure(t *testing.T) {
	l := New()
	heavy := &Order{Time: 1, Weight: 8, state: Shippable}
	light := &Order{Time: 2, Weight: 2, state: Shippable}
	l.Append(heavy)
	l.Append(light)

	remaining := int64(5)
	collected := l.DrainShippable(func(o *Order) (bool, bool) {
		if o.Weight <= remaining {
			remaining -= o.Weight
			return true, false
		}
		return false, true
	})

	assert.Empty(t, collected, "heavy order blocks, light order must not be skip-packed")
	assert.Equal(t, 2, l.Len())
}

func TestDrainShippableSkipsPendingOrders(t *testing.T) {
	l := New()
	pending := &Order{Time: 1, Weight: 1, state: Pending}
	shippable := &Order{Time: 2, Weight: 1, state: Shippable}
	l.Append(pending)
	l.Append(shippable)

	remaining := int64(10)
	collected := l.DrainShippable(func(o *Order) (bool, bool) {
		remaining -= o.Weight
		return true, false
	})

	assert.Len(t, collected, 1)
	assert.Same(t, shippable, collected[0])
	assert.Equal(t, 1, l.Len()) // pending order left in place
}

func TestDrainShippableDetachesCollectedOrders(t *testing.T) {
	l := New()
	l.Append(&Order{Time: 1, Weight: 1, state: Shippable})
	l.Append(&Order{Time: 2, Weight: 1, state: Shippable})

	collected := l.DrainShippable(func(o *Order) (bool, bool) { return true, false })
	assert.Len(t, collected, 2)
	assert.Equal(t, 0, l.Len())
}
