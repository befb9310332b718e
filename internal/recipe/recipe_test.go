package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ben-mays/bakery/internal/directory"
)

func TestAddComputesWeightAsSumOfUnits(t *testing.T) {
	s := New(directory.New())
	_, result := s.Add("cake", []Ingredient{
		{Handle: 0, UnitsPerBatch: 2},
		{Handle: 1, UnitsPerBatch: 1},
	})
	assert.Equal(t, Added, result)

	_, r, ok := s.Find("cake")
	assert.True(t, ok)
	assert.Equal(t, int64(3), r.Weight)
}

func TestAddDuplicateIsIgnoredAndLeavesOriginalIntact(t *testing.T) {
	s := New(directory.New())
	s.Add("cake", []Ingredient{{Handle: 0, UnitsPerBatch: 2}})
	_, result := s.Add("cake", []Ingredient{{Handle: 0, UnitsPerBatch: 99}})
	assert.Equal(t, Exists, result)

	_, r, _ := s.Find("cake")
	assert.Equal(t, int64(2), r.Weight)
}

func TestRemoveUnknownIsNotFound(t *testing.T) {
	s := New(directory.New())
	assert.Equal(t, NotFound, s.Remove("ghost"))
	assert.Equal(t, NotFound, s.Remove("ghost")) // idempotent
}

func TestRemoveRefusesWhileOrdersOutstanding(t *testing.T) {
	s := New(directory.New())
	h, _ := s.Add("cake", nil)
	s.Get(h).OrderCount = 1

	assert.Equal(t, HasOrders, s.Remove("cake"))

	_, _, ok := s.Find("cake")
	assert.True(t, ok, "refused removal must leave the recipe bound")
}

func TestRemoveThenReaddSucceeds(t *testing.T) {
	s := New(directory.New())
	s.Add("cake", []Ingredient{{Handle: 0, UnitsPerBatch: 2}})
	assert.Equal(t, Removed, s.Remove("cake"))

	_, result := s.Add("cake", []Ingredient{{Handle: 0, UnitsPerBatch: 5}})
	assert.Equal(t, Added, result)

	_, r, _ := s.Find("cake")
	assert.Equal(t, int64(5), r.Weight)
}

func TestRequirementsScalesByQuantity(t *testing.T) {
	r := &Recipe{Ingredients: []Ingredient{{Handle: 3, UnitsPerBatch: 2}}}
	reqs := Requirements(r, 4)
	assert.Equal(t, int64(8), reqs[0].Units)
}
