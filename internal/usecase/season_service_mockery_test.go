package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
	teammock "github.com/riskibarqy/foot-manager/internal/mocks/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

func TestSeasonService_Start_RegistryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewSeasonService(teamRepo, dice.New(1), stubIDGenerator{id: "s"}, logging.NewNop(), SeasonOptions{})

	storeDown := errors.New("store down")
	teamRepo.
		On("Reset", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil).
		Once()
	teamRepo.
		On("Add", mock.Anything, mock.MatchedBy(func(item *team.Team) bool { return item.Name == "Paris FC" })).
		Return(nil, storeDown).
		Once()

	_, err := service.Start(ctx, StartSeasonInput{Clubs: []string{"Paris FC", "Monaco"}})
	if !errors.Is(err, storeDown) {
		t.Fatalf("expected registry error, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("registry failure must not be reported as invalid input: %v", err)
	}
	if service.HasNextFixture() {
		t.Fatalf("season must not start after a registry failure")
	}
}

func TestSeasonService_SetLineup_UnknownTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewSeasonService(teamRepo, dice.New(1), stubIDGenerator{id: "s"}, logging.NewNop(), SeasonOptions{})

	registered := []*team.Team{}
	teamRepo.On("Reset", mock.Anything).Return(nil).Once()
	teamRepo.
		On("Add", mock.Anything, mock.AnythingOfType("*team.Team")).
		Return(func(_ context.Context, item *team.Team) (*team.Team, error) {
			item.ID = len(registered)
			registered = append(registered, item)
			return item, nil
		}).
		Twice()
	teamRepo.
		On("List", mock.Anything).
		Return(func(context.Context) ([]*team.Team, error) { return registered, nil }).
		Once()
	teamRepo.
		On("GetByID", mock.Anything, 7).
		Return(nil, false, nil).
		Once()

	if _, err := service.Start(ctx, StartSeasonInput{Clubs: []string{"Paris FC", "Monaco"}}); err != nil {
		t.Fatalf("start season: %v", err)
	}

	err := service.SetLineup(ctx, 7, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
