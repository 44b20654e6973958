package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/foot-manager/internal/domain/championship"
	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

func TestOddsService_ChampionshipOdds(t *testing.T) {
	t.Parallel()

	champ := newOddsChampionship(t, 4)
	service := NewOddsService(4, 99, logging.NewNop())

	got, err := service.ChampionshipOdds(context.Background(), champ, 200)
	require.NoError(t, err)
	require.Len(t, got, 4)

	total := 0.0
	for i, p := range got {
		total += p.Probability
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Probability, p.Probability)
		}
	}
	assert.InDelta(t, 100.0, total, 0.05)
	assert.Zero(t, champ.Cursor(), "estimation must not play the real season")
	for _, item := range champ.Teams() {
		assert.Zero(t, item.Stats.Played)
	}
}

func TestOddsService_IsReproducible(t *testing.T) {
	t.Parallel()

	champ := newOddsChampionship(t, 5)

	first, err := NewOddsService(3, 7, logging.NewNop()).ChampionshipOdds(context.Background(), champ, 120)
	require.NoError(t, err)
	second, err := NewOddsService(1, 7, logging.NewNop()).ChampionshipOdds(context.Background(), champ, 120)
	require.NoError(t, err)

	assert.Equal(t, first, second, "worker count must not change the estimate")
}

func TestOddsService_CompletedSeasonIsCertain(t *testing.T) {
	t.Parallel()

	champ := newOddsChampionship(t, 3)
	for champ.HasNext() {
		_, err := champ.Play()
		require.NoError(t, err)
	}
	leader := champ.Table()[0]

	got, err := NewOddsService(2, 1, logging.NewNop()).ChampionshipOdds(context.Background(), champ, 10)
	require.NoError(t, err)
	assert.Equal(t, leader.ID, got[0].TeamID)
	assert.Equal(t, 100.0, got[0].Probability)
}

func TestOddsService_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewOddsService(2, 1, logging.NewNop())

	_, err := service.ChampionshipOdds(context.Background(), nil, 10)
	assert.ErrorIs(t, err, ErrSeasonNotStarted)

	_, err = service.ChampionshipOdds(context.Background(), newOddsChampionship(t, 2), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOddsService_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOddsService(2, 1, logging.NewNop()).ChampionshipOdds(ctx, newOddsChampionship(t, 4), 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func newOddsChampionship(t *testing.T, n int) *championship.Championship {
	t.Helper()

	d := dice.New(uint64(n))
	teams := make([]*team.Team, n)
	for i := range teams {
		teams[i] = team.NewRoster(fmt.Sprintf("Club %d", i), d)
		teams[i].ID = i
	}
	champ, err := championship.New(teams, d)
	require.NoError(t, err)
	return champ
}
