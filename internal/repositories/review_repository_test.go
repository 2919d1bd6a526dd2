package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRating(t *testing.T) {
	t.Run("first review sets the aggregate", func(t *testing.T) {
		rating, count := aggregateRating([]int{5})
		assert.Equal(t, 5.0, rating)
		assert.Equal(t, int64(1), count)
	})

	t.Run("further reviews move the mean", func(t *testing.T) {
		rating, count := aggregateRating([]int{5, 4})
		assert.Equal(t, 4.5, rating)
		assert.Equal(t, int64(2), count)
	})

	t.Run("mean is rounded to two decimals", func(t *testing.T) {
		rating, _ := aggregateRating([]int{5, 4, 4})
		assert.InDelta(t, 4.33, rating, 1e-9)

		rating, _ = aggregateRating([]int{1, 2, 2})
		assert.InDelta(t, 1.67, rating, 1e-9)
	})

	t.Run("removing a review shrinks the set", func(t *testing.T) {
		before, _ := aggregateRating([]int{5, 1})
		assert.Equal(t, 3.0, before)

		after, count := aggregateRating([]int{5})
		assert.Equal(t, 5.0, after)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unapproving the last review resets to zero", func(t *testing.T) {
		rating, count := aggregateRating(nil)
		assert.Equal(t, 0.0, rating)
		assert.Equal(t, int64(0), count)
	})
}
