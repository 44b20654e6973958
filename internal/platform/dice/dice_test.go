package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_RollStaysInRange(t *testing.T) {
	t.Parallel()

	d := New(42)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := d.Roll(-5, 5)
		require.GreaterOrEqual(t, v, -5)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 11, "every value in [-5,5] should appear")
}

func TestRand_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a, b := New(7), New(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Roll(50, 90), b.Roll(50, 90))
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(New(3), items)

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}

func TestFixedAndScript(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Fixed(0).Roll(-5, 5))
	assert.Equal(t, 50, Fixed(0).Roll(50, 90))
	assert.Equal(t, 2, Fixed(9).Roll(0, 2))

	s := &Script{Values: []int{3, -9}}
	assert.Equal(t, 3, s.Roll(-5, 5))
	assert.Equal(t, -5, s.Roll(-5, 5))
	assert.Equal(t, 0, s.Roll(-5, 5))
	assert.Equal(t, 2, s.Drawn())
}
