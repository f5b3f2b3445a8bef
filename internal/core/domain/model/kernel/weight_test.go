package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight within bounds", func(t *testing.T) {
		w, err := kernel.NewWeight(3000)

		require.NoError(t, err)
		assert.Equal(t, int64(3000), w.Grams())
	})

	t.Run("should reject non-positive grams", func(t *testing.T) {
		for _, grams := range []int64{0, -1, -500} {
			_, err := kernel.NewWeight(grams)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject grams above ceiling", func(t *testing.T) {
		_, err := kernel.NewWeight(kernel.WeightMaxGrams + 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWeight_Arithmetic(t *testing.T) {
	w3, _ := kernel.NewWeight(3000)
	w2, _ := kernel.NewWeight(2000)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, int64(5000), w3.Add(w2).Grams())
	})

	t.Run("sub clamps at zero", func(t *testing.T) {
		assert.Equal(t, int64(1000), w3.Sub(w2).Grams())
		assert.Equal(t, int64(0), w2.Sub(w3).Grams())
	})

	t.Run("exceeds", func(t *testing.T) {
		capacity := kernel.Weight(7000)
		assert.False(t, w3.Add(w3).Exceeds(capacity))
		assert.True(t, w3.Add(w3).Add(w2).Exceeds(capacity))
		assert.False(t, capacity.Exceeds(capacity))
	})
}

func TestWeight_String(t *testing.T) {
	w, _ := kernel.NewWeight(7500)
	assert.Equal(t, "7.500kg", w.String())

	assert.Equal(t, "0.000kg", kernel.Weight(0).String())
}
