package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/interfaces/render"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
	"github.com/riskibarqy/foot-manager/internal/usecase"
)

var ErrInputClosed = crerr.New("input closed")

const separatorWidth = 40

type Options struct {
	Clubs []string
	// ManagedClub and Coach are only read in AutoPlay mode; the interactive
	// game asks for them. ManagedClub is 1-based.
	ManagedClub int
	Coach       string
	AutoPlay    bool
	OddsRuns    int
}

// Game is the text front-end. It owns all prompting and printing; every
// game rule lives behind the season service.
type Game struct {
	in       *bufio.Reader
	out      io.Writer
	season   *usecase.SeasonService
	renderer render.TableRenderer
	opts     Options
	logger   *logging.Logger
}

func NewGame(
	in io.Reader,
	out io.Writer,
	season *usecase.SeasonService,
	renderer render.TableRenderer,
	opts Options,
	logger *logging.Logger,
) *Game {
	if logger == nil {
		logger = logging.Default()
	}
	return &Game{
		in:       bufio.NewReader(in),
		out:      out,
		season:   season,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

func (g *Game) Run(ctx context.Context) error {
	managedIdx, coach, err := g.setup()
	if err != nil {
		return err
	}

	season, err := g.season.Start(ctx, usecase.StartSeasonInput{
		Clubs:       g.opts.Clubs,
		ManagedClub: managedIdx,
		Coach:       coach,
	})
	if err != nil {
		return crerr.Wrap(err, "start season")
	}

	if season.Coach != "" {
		g.printf("Welcome %s! You are in charge of %s.\n", season.Coach, season.Managed.Name)
	} else {
		g.printf("Welcome! You are in charge of %s.\n", season.Managed.Name)
	}
	g.printf("%d clubs, %d fixtures.\n\n", len(season.Teams), season.Fixtures)

	for g.season.HasNextFixture() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.playFixture(ctx, season.Managed); err != nil {
			return err
		}
	}

	return g.finish(ctx, season.Managed)
}

func (g *Game) setup() (int, string, error) {
	if g.opts.AutoPlay {
		return g.opts.ManagedClub - 1, g.opts.Coach, nil
	}

	for i, name := range g.opts.Clubs {
		g.printf("%d %s\n", i+1, name)
	}

	var managedIdx int
	for {
		line, err := g.prompt("Your club: ")
		if err != nil {
			return 0, "", err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(g.opts.Clubs) {
			managedIdx = choice - 1
			break
		}
		g.printf("Pick a number between 1 and %d.\n", len(g.opts.Clubs))
	}

	first, err := g.prompt("Coach first name: ")
	if err != nil {
		return 0, "", err
	}
	last, err := g.prompt("Coach last name: ")
	if err != nil {
		return 0, "", err
	}

	return managedIdx, strings.TrimSpace(first + " " + last), nil
}

func (g *Game) playFixture(ctx context.Context, managed *team.Team) error {
	view, err := g.season.PeekFixture(ctx)
	if err != nil {
		return crerr.Wrap(err, "peek fixture")
	}

	if !g.opts.AutoPlay {
		if view.InvolvesManaged {
			if g.opts.OddsRuns > 0 {
				g.showManagedChance(ctx, managed)
			}
			if err := g.chooseLineup(ctx, managed); err != nil {
				return err
			}
		}
		if _, err := g.prompt(fmt.Sprintf("%s vs %s - press Enter ", view.Home.Name, view.Away.Name)); err != nil {
			return err
		}
	}

	line, err := g.season.PlayNextFixture(ctx)
	if err != nil {
		return crerr.Wrap(err, "play fixture")
	}
	g.printf("Result: %s\n", line)

	if err := g.showTable(ctx, managed); err != nil {
		return err
	}
	if g.opts.OddsRuns > 0 && g.season.HasNextFixture() {
		g.showOdds(ctx)
	}
	g.printf("%s\n", strings.Repeat("=", separatorWidth))

	return nil
}

// chooseLineup lists the squad and asks for eleven 1-based numbers until the
// selection is accepted. An empty answer keeps the current lineup.
func (g *Game) chooseLineup(ctx context.Context, managed *team.Team) error {
	active := make(map[int]struct{}, team.LineupSize)
	for _, idx := range managed.Lineup() {
		active[idx] = struct{}{}
	}
	for i, p := range managed.Players {
		mark := ""
		if _, ok := active[i]; ok {
			mark = " *"
		}
		g.printf("%2d. %-12s %s A:%d D:%d%s\n", i+1, p.Name, p.Position, p.Attack, p.Defense, mark)
	}

	for {
		line, err := g.prompt(fmt.Sprintf("%d numbers (Enter keeps current): ", team.LineupSize))
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		indices, ok := parseIndices(line)
		if !ok {
			g.printf("Numbers only, separated by spaces.\n")
			continue
		}

		err = g.season.SetLineup(ctx, managed.ID, indices)
		switch {
		case err == nil:
			g.printf("Lineup set. Attack %.1f, defense %.1f.\n", managed.AttackRating(), managed.DefenseRating())
			return nil
		case crerr.Is(err, team.ErrInvalidLineup):
			g.printf("You need %d different players, including a GK.\n", team.LineupSize)
		default:
			return crerr.Wrap(err, "set lineup")
		}
	}
}

func parseIndices(line string) ([]int, bool) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, false
		}
		out = append(out, n-1)
	}
	return out, true
}

func (g *Game) showTable(ctx context.Context, managed *team.Team) error {
	rows, err := g.season.Standings(ctx)
	if err != nil {
		return crerr.Wrap(err, "load standings")
	}
	if err := g.renderer.Render(g.out, rows, managed.ID); err != nil {
		return crerr.Wrap(err, "render standings")
	}
	return nil
}

func (g *Game) showOdds(ctx context.Context) {
	odds, err := g.season.TitleOdds(ctx, g.opts.OddsRuns)
	if err != nil {
		g.logger.WarnContext(ctx, "title odds unavailable", "error", err)
		return
	}

	parts := make([]string, 0, len(odds))
	for _, p := range odds {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", p.TeamName, p.Probability))
	}
	g.printf("Title odds: %s\n", strings.Join(parts, ", "))
}

func (g *Game) showManagedChance(ctx context.Context, managed *team.Team) {
	odds, err := g.season.TitleOdds(ctx, g.opts.OddsRuns)
	if err != nil {
		g.logger.WarnContext(ctx, "title odds unavailable", "error", err)
		return
	}
	for _, p := range odds {
		if p.TeamID == managed.ID {
			g.printf("%s title chance: %.1f%%\n", managed.Name, p.Probability)
			return
		}
	}
}

func (g *Game) finish(ctx context.Context, managed *team.Team) error {
	table, err := g.season.Table(ctx)
	if err != nil {
		return crerr.Wrap(err, "load final table")
	}
	if len(table) == 0 {
		return nil
	}

	g.printf("Champion: %s with %d points.\n", table[0].Name, table[0].Stats.Points)
	for i, item := range table {
		if item.ID == managed.ID {
			g.printf("%s finished %d of %d.\n", managed.Name, i+1, len(table))
			break
		}
	}
	return nil
}

func (g *Game) prompt(label string) (string, error) {
	g.printf("%s", label)

	line, err := g.in.ReadString('\n')
	if err != nil {
		if crerr.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if crerr.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", crerr.Wrap(err, "read input")
	}
	return strings.TrimSpace(line), nil
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}
