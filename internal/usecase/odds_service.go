package usecase

import (
	"context"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/foot-manager/internal/domain/championship"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

// Prediction is one club's estimated chance, in percent, of winning the title.
type Prediction struct {
	TeamID      int
	TeamName    string
	Probability float64
}

// OddsService estimates title chances by playing the remaining fixtures of
// forked championships many times over.
type OddsService struct {
	workers int
	seed    uint64
	logger  *logging.Logger
}

func NewOddsService(workers int, seed uint64, logger *logging.Logger) *OddsService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OddsService{
		workers: workers,
		seed:    seed,
		logger:  logger,
	}
}

// ChampionshipOdds runs runs simulations of the rest of champ. Each run draws
// from its own dice seeded from the service seed, the run number and the
// current cursor, so the estimate for a given point of a season is
// reproducible. champ itself is never modified.
func (s *OddsService) ChampionshipOdds(ctx context.Context, champ *championship.Championship, runs int) ([]Prediction, error) {
	if champ == nil {
		return nil, ErrSeasonNotStarted
	}
	if runs <= 0 {
		return nil, crerr.Wrapf(ErrInvalidInput, "runs must be > 0, got %d", runs)
	}

	teams := champ.Teams()
	if len(teams) == 0 {
		return nil, nil
	}
	slot := make(map[int]int, len(teams))
	for i, t := range teams {
		slot[t.ID] = i
	}
	wins := make([]atomic.Int64, len(teams))

	pool, err := ants.NewPool(min(s.workers, runs))
	if err != nil {
		return nil, crerr.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	base := s.seed ^ uint64(champ.Cursor())<<32

	var workers sync.WaitGroup
	for run := 0; run < runs; run++ {
		if ctx.Err() != nil {
			break
		}

		seed := base + uint64(run)
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}

			fork := champ.Fork(dice.New(seed))
			for fork.HasNext() {
				if _, err := fork.Play(); err != nil {
					return
				}
			}
			leader := fork.Table()[0]
			wins[slot[leader.ID]].Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, crerr.Wrap(err, "submit odds run")
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Prediction, 0, len(teams))
	for i, t := range teams {
		p := float64(wins[i].Load()) / float64(runs) * 100.0
		out = append(out, Prediction{
			TeamID:      t.ID,
			TeamName:    t.Name,
			Probability: math.Round(p*100) / 100,
		})
	}
	slices.SortStableFunc(out, func(a, b Prediction) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		default:
			return 0
		}
	})

	s.logger.DebugContext(ctx, "title odds computed", "runs", runs, "cursor", champ.Cursor(), "leader", out[0].TeamName)
	return out, nil
}
