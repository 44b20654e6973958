package app

import (
	"io"
	"math"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/config"
	"github.com/riskibarqy/foot-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/foot-manager/internal/interfaces/console"
	"github.com/riskibarqy/foot-manager/internal/interfaces/render"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
	idgen "github.com/riskibarqy/foot-manager/internal/platform/id"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
	"github.com/riskibarqy/foot-manager/internal/usecase"
)

func NewGame(cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) (*console.Game, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "env", cfg.AppEnv)

	renderer, err := render.New(cfg.Renderer)
	if err != nil {
		return nil, crerr.Wrap(err, "build table renderer")
	}

	d := dice.NewSeeded(cfg.Seed)
	teamRepo := memory.NewTeamRepository()

	seasonSvc := usecase.NewSeasonService(
		teamRepo,
		d,
		idgen.NewRandomGenerator("season-"),
		logger.Named("season"),
		usecase.SeasonOptions{SwapReturnLeg: cfg.SwapReturnLeg},
	)
	if cfg.OddsRuns > 0 {
		oddsSeed := uint64(d.Roll(0, math.MaxInt32))
		seasonSvc.SetOddsEstimator(usecase.NewOddsService(cfg.OddsWorkers, oddsSeed, logger.Named("odds")))
	}

	game := console.NewGame(in, out, seasonSvc, renderer, console.Options{
		Clubs:       cfg.Clubs,
		ManagedClub: cfg.ManagedClub,
		Coach:       cfg.Coach,
		AutoPlay:    cfg.AutoPlay,
		OddsRuns:    cfg.OddsRuns,
	}, logger.Named("console"))

	return game, nil
}
