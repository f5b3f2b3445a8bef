package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

const (
	// WeightMinGrams is the smallest weight an order item may carry.
	WeightMinGrams int64 = 1
	// WeightMaxGrams is a sanity ceiling for a single weight value.
	WeightMaxGrams int64 = 1_000_000
)

// Weight represents a physical weight in grams. Keeping weights integral
// avoids floating point in capacity invariants: the default 7-unit bag
// capacity is 7000 g and a half-unit overage is exactly 500 g.
//
// The zero value is a legitimate empty weight (e.g. an empty bag total);
// NewWeight validates item weights, which must be positive.
type Weight int64

// NewWeight creates a validated item weight. Grams must be within
// [WeightMinGrams, WeightMaxGrams].
func NewWeight(grams int64) (Weight, error) {
	if grams < WeightMinGrams || grams > WeightMaxGrams {
		return 0, errs.NewValueIsOutOfRangeError("weight", grams, WeightMinGrams, WeightMaxGrams)
	}
	return Weight(grams), nil
}

// Grams returns the weight in grams.
func (w Weight) Grams() int64 {
	return int64(w)
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return w + other
}

// Sub returns the difference of two weights. Negative results are clamped to
// zero; aggregate totals never go below empty.
func (w Weight) Sub(other Weight) Weight {
	if other >= w {
		return 0
	}
	return w - other
}

// Exceeds reports whether the weight is strictly greater than the limit.
func (w Weight) Exceeds(limit Weight) bool {
	return w > limit
}

// String renders the weight in kilograms, e.g. "3.500kg".
func (w Weight) String() string {
	return fmt.Sprintf("%d.%03dkg", w/1000, w%1000)
}
