package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/foot-manager/internal/domain/championship"
	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/cache"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
	idgen "github.com/riskibarqy/foot-manager/internal/platform/id"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

type StartSeasonInput struct {
	Clubs       []string `validate:"min=2,max=20,unique,dive,required,max=32"`
	ManagedClub int      `validate:"gte=0"`
	Coach       string   `validate:"max=64"`
}

type Season struct {
	ID       string
	Coach    string
	Managed  *team.Team
	Teams    []*team.Team
	Fixtures int
}

type FixtureView struct {
	Seq             int
	Home            *team.Team
	Away            *team.Team
	InvolvesManaged bool
}

type SeasonOptions struct {
	SwapReturnLeg bool
}

// SeasonService is the entry point adapters use to drive one championship
// with a single human-managed club.
type SeasonService struct {
	teamRepo team.Repository
	dice     dice.Dice
	ids      idgen.Generator
	validate *validator.Validate
	logger   *logging.Logger
	opts     SeasonOptions
	odds     *OddsService
	oddsMemo *cache.Store[[]Prediction]

	seasonID  string
	champ     *championship.Championship
	managedID int
	coach     string
}

func NewSeasonService(
	teamRepo team.Repository,
	d dice.Dice,
	ids idgen.Generator,
	logger *logging.Logger,
	opts SeasonOptions,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{
		teamRepo: teamRepo,
		dice:     d,
		ids:      ids,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		opts:     opts,
		oddsMemo: cache.NewStore[[]Prediction](0),
	}
}

func (s *SeasonService) SetOddsEstimator(odds *OddsService) {
	s.odds = odds
}

// Start generates a roster per club, registers them and draws the schedule.
// Starting again discards the previous season.
func (s *SeasonService) Start(ctx context.Context, input StartSeasonInput) (Season, error) {
	clubs := make([]string, 0, len(input.Clubs))
	for _, name := range input.Clubs {
		clubs = append(clubs, strings.TrimSpace(name))
	}
	input.Clubs = clubs
	input.Coach = strings.TrimSpace(input.Coach)

	if err := s.validate.StructCtx(ctx, input); err != nil {
		return Season{}, crerr.Mark(crerr.Wrap(err, "validate season input"), ErrInvalidInput)
	}
	if input.ManagedClub >= len(input.Clubs) {
		return Season{}, crerr.Wrapf(ErrInvalidInput, "managed club %d out of range [0,%d)", input.ManagedClub, len(input.Clubs))
	}

	seasonID, err := s.ids.NewID()
	if err != nil {
		return Season{}, crerr.Wrap(err, "generate season id")
	}

	if err := s.teamRepo.Reset(ctx); err != nil {
		return Season{}, crerr.Wrap(err, "reset team registry")
	}
	for _, name := range input.Clubs {
		if _, err := s.teamRepo.Add(ctx, team.NewRoster(name, s.dice)); err != nil {
			if crerr.Is(err, team.ErrDuplicateName) {
				return Season{}, crerr.Mark(err, ErrInvalidInput)
			}
			return Season{}, crerr.Wrapf(err, "register team %q", name)
		}
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Season{}, crerr.Wrap(err, "list teams")
	}

	champ, err := championship.New(teams, s.dice, championship.WithReturnLegSwap(s.opts.SwapReturnLeg))
	if err != nil {
		return Season{}, crerr.Wrap(err, "build championship")
	}

	managed := teams[input.ManagedClub]
	if s.seasonID != "" {
		s.oddsMemo.DeletePrefix(ctx, s.seasonID+"/")
	}
	s.seasonID = seasonID
	s.champ = champ
	s.managedID = managed.ID
	s.coach = input.Coach

	s.log().InfoContext(ctx, "season started",
		"teams", len(teams),
		"fixtures", champ.Len(),
		"managed_team", managed.Name,
		"swap_return_leg", s.opts.SwapReturnLeg,
	)

	return Season{
		ID:       seasonID,
		Coach:    input.Coach,
		Managed:  managed,
		Teams:    teams,
		Fixtures: champ.Len(),
	}, nil
}

func (s *SeasonService) ManagedTeam(ctx context.Context) (*team.Team, error) {
	if _, err := s.championship(); err != nil {
		return nil, err
	}
	return s.getTeam(ctx, s.managedID)
}

// ValidateLineup reports whether indices would be accepted for the team
// without changing anything.
func (s *SeasonService) ValidateLineup(ctx context.Context, teamID int, indices []int) error {
	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	return item.ValidateLineup(indices)
}

func (s *SeasonService) SetLineup(ctx context.Context, teamID int, indices []int) error {
	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if err := item.SetLineup(indices); err != nil {
		s.log().WarnContext(ctx, "lineup rejected", "team_id", teamID, "error", err)
		return err
	}
	// Ratings changed, so earlier estimates for this season are stale.
	s.oddsMemo.DeletePrefix(ctx, s.seasonID+"/")

	s.log().DebugContext(ctx, "lineup set", "team_id", teamID, "lineup", indices)
	return nil
}

func (s *SeasonService) HasNextFixture() bool {
	return s.champ != nil && s.champ.HasNext()
}

// Progress returns how many fixtures have been played out of the total.
func (s *SeasonService) Progress() (played, total int) {
	if s.champ == nil {
		return 0, 0
	}
	return s.champ.Cursor(), s.champ.Len()
}

func (s *SeasonService) PeekFixture(ctx context.Context) (FixtureView, error) {
	champ, err := s.championship()
	if err != nil {
		return FixtureView{}, err
	}

	next, err := champ.Next()
	if err != nil {
		return FixtureView{}, err
	}
	home, away, err := champ.Peek()
	if err != nil {
		return FixtureView{}, err
	}

	return FixtureView{
		Seq:             next.Seq,
		Home:            home,
		Away:            away,
		InvolvesManaged: next.Involves(s.managedID),
	}, nil
}

func (s *SeasonService) PlayNextFixture(ctx context.Context) (string, error) {
	champ, err := s.championship()
	if err != nil {
		return "", err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.PlayNextFixture",
		attribute.String("season.id", s.seasonID),
		attribute.Int("season.cursor", champ.Cursor()),
	)
	defer span.End()

	line, err := champ.Play()
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	s.log().InfoContext(ctx, "fixture played", "result", line, "played", champ.Cursor(), "total", champ.Len())
	return line, nil
}

func (s *SeasonService) Standings(_ context.Context) ([]leaguestanding.Standing, error) {
	champ, err := s.championship()
	if err != nil {
		return nil, err
	}
	return champ.Standings(), nil
}

func (s *SeasonService) Table(_ context.Context) ([]*team.Team, error) {
	champ, err := s.championship()
	if err != nil {
		return nil, err
	}
	return champ.Table(), nil
}

func (s *SeasonService) Results(_ context.Context) ([]string, error) {
	champ, err := s.championship()
	if err != nil {
		return nil, err
	}
	return champ.Log(), nil
}

// TitleOdds estimates each club's chance of finishing first from the current
// point of the season. Estimates are remembered until the next fixture is
// played, so asking twice at the same point costs one simulation.
func (s *SeasonService) TitleOdds(ctx context.Context, runs int) ([]Prediction, error) {
	champ, err := s.championship()
	if err != nil {
		return nil, err
	}
	if s.odds == nil {
		return nil, crerr.New("odds estimator not configured")
	}

	key := fmt.Sprintf("%s/%d/%d", s.seasonID, champ.Cursor(), runs)
	return s.oddsMemo.GetOrLoad(ctx, key, func(ctx context.Context) ([]Prediction, error) {
		return s.odds.ChampionshipOdds(ctx, champ, runs)
	})
}

func (s *SeasonService) championship() (*championship.Championship, error) {
	if s.champ == nil {
		return nil, ErrSeasonNotStarted
	}
	return s.champ, nil
}

func (s *SeasonService) getTeam(ctx context.Context, teamID int) (*team.Team, error) {
	if _, err := s.championship(); err != nil {
		return nil, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, crerr.Wrap(err, "get team by id")
	}
	if !exists {
		return nil, crerr.Wrapf(ErrNotFound, "team=%d", teamID)
	}
	return item, nil
}

func (s *SeasonService) log() *logging.Logger {
	return s.logger.With("season_id", s.seasonID)
}
