package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture_Lifecycle(t *testing.T) {
	t.Parallel()

	f := New(3, 1, 2)
	assert.Equal(t, StatusScheduled, f.Status)
	assert.False(t, f.IsFinished())
	assert.Nil(t, f.HomeGoals)
	assert.True(t, f.Involves(1))
	assert.True(t, f.Involves(2))
	assert.False(t, f.Involves(0))

	f.Finish(2, 1)
	require.True(t, f.IsFinished())
	assert.Equal(t, 2, *f.HomeGoals)
	assert.Equal(t, 1, *f.AwayGoals)
}

func TestFixture_CloneCopiesScore(t *testing.T) {
	t.Parallel()

	f := New(0, 0, 1)
	f.Finish(1, 1)

	clone := f.Clone()
	*clone.HomeGoals = 4

	assert.Equal(t, 1, *f.HomeGoals)
	assert.Equal(t, 4, *clone.HomeGoals)
	assert.Equal(t, f.Seq, clone.Seq)
}
