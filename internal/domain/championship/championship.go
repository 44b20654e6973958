package championship

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/fixture"
	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
	"github.com/riskibarqy/foot-manager/internal/domain/match"
	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
)

var (
	ErrNoFixturesRemaining = crerr.New("no fixtures remaining")
	ErrDuplicateTeam       = crerr.New("duplicate team id")
	ErrUnknownTeam         = crerr.New("unknown team id")
)

type options struct {
	swapReturnLeg bool
}

type Option func(*options)

// WithReturnLegSwap controls the orientation of the second meeting of each
// pair. When enabled (the default) the return leg is played at the other
// ground; when disabled both legs keep the lower-ID team at home.
func WithReturnLegSwap(enabled bool) Option {
	return func(o *options) {
		o.swapReturnLeg = enabled
	}
}

// Championship runs a double round-robin over a fixed set of teams. Teams are
// owned by the championship and referenced from fixtures by ID.
type Championship struct {
	teams    []*team.Team
	index    map[int]int
	fixtures []fixture.Fixture
	cursor   int
	log      []string
	dice     dice.Dice
}

// New registers teams and draws the shuffled schedule using d. d is also the
// random source of every match played later. Teams that were never given an
// ID (all zero, as returned by team.NewRoster) get their slice index as ID;
// otherwise IDs must be distinct.
func New(teams []*team.Team, d dice.Dice, opts ...Option) (*Championship, error) {
	cfg := options{swapReturnLeg: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, t := range teams {
		if t == nil {
			return nil, crerr.Newf("team at position %d is nil", i)
		}
	}
	if unregistered(teams) {
		for i, t := range teams {
			t.ID = i
		}
	}

	index := make(map[int]int, len(teams))
	for i, t := range teams {
		if _, exists := index[t.ID]; exists {
			return nil, crerr.Wrapf(ErrDuplicateTeam, "team=%d", t.ID)
		}
		index[t.ID] = i
	}

	c := &Championship{
		teams: append([]*team.Team(nil), teams...),
		index: index,
		dice:  d,
	}
	c.fixtures = buildFixtures(c.teams, d, cfg.swapReturnLeg)

	return c, nil
}

func unregistered(teams []*team.Team) bool {
	for _, t := range teams {
		if t.ID != 0 {
			return false
		}
	}
	return true
}

func buildFixtures(teams []*team.Team, d dice.Dice, swapReturnLeg bool) []fixture.Fixture {
	n := len(teams)
	pairs := make([][2]int, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{teams[i].ID, teams[j].ID})
		}
	}

	firstLeg := len(pairs)
	for _, p := range pairs[:firstLeg] {
		if swapReturnLeg {
			p[0], p[1] = p[1], p[0]
		}
		pairs = append(pairs, p)
	}

	dice.Shuffle(d, pairs)

	out := make([]fixture.Fixture, len(pairs))
	for i, p := range pairs {
		out[i] = fixture.New(i+1, p[0], p[1])
	}
	return out
}

func (c *Championship) HasNext() bool {
	return c.cursor < len(c.fixtures)
}

func (c *Championship) Cursor() int {
	return c.cursor
}

func (c *Championship) Len() int {
	return len(c.fixtures)
}

// Peek returns the teams of the upcoming fixture without playing it.
func (c *Championship) Peek() (home, away *team.Team, err error) {
	next, err := c.Next()
	if err != nil {
		return nil, nil, err
	}
	return c.teams[c.index[next.HomeID]], c.teams[c.index[next.AwayID]], nil
}

// Next returns the upcoming fixture without playing it.
func (c *Championship) Next() (fixture.Fixture, error) {
	if !c.HasNext() {
		return fixture.Fixture{}, ErrNoFixturesRemaining
	}
	return c.fixtures[c.cursor].Clone(), nil
}

// Play simulates the fixture at the cursor, logs the score line and moves on.
func (c *Championship) Play() (string, error) {
	if !c.HasNext() {
		return "", ErrNoFixturesRemaining
	}

	f := &c.fixtures[c.cursor]
	home := c.teams[c.index[f.HomeID]]
	away := c.teams[c.index[f.AwayID]]

	homeGoals, awayGoals := match.Simulate(home, away, c.dice)
	f.Finish(homeGoals, awayGoals)

	line := match.ScoreLine(home.Name, homeGoals, awayGoals, away.Name)
	c.log = append(c.log, line)
	c.cursor++

	return line, nil
}

// Table returns snapshots of the teams in standings order. It may be called at
// any point of the season; changing the returned teams does not affect it.
func (c *Championship) Table() []*team.Team {
	rows := c.Standings()
	out := make([]*team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, c.teams[c.index[row.TeamID]].Clone())
	}
	return out
}

func (c *Championship) Standings() []leaguestanding.Standing {
	return leaguestanding.Build(c.teams)
}

func (c *Championship) Log() []string {
	return append([]string(nil), c.log...)
}

// Teams returns snapshots of the teams in registration order.
func (c *Championship) Teams() []*team.Team {
	out := make([]*team.Team, len(c.teams))
	for i, t := range c.teams {
		out[i] = t.Clone()
	}
	return out
}

// Team returns the live team so its lineup can be set. Stats must only be
// changed by playing fixtures.
func (c *Championship) Team(teamID int) (*team.Team, error) {
	idx, ok := c.index[teamID]
	if !ok {
		return nil, crerr.Wrapf(ErrUnknownTeam, "team=%d", teamID)
	}
	return c.teams[idx], nil
}

func (c *Championship) Fixtures() []fixture.Fixture {
	return cloneFixtures(c.fixtures)
}

func (c *Championship) Played() []fixture.Fixture {
	return cloneFixtures(c.fixtures[:c.cursor])
}

func (c *Championship) Remaining() []fixture.Fixture {
	return cloneFixtures(c.fixtures[c.cursor:])
}

// Fork returns an independent copy of the season at its current point that
// draws from d. Playing the fork leaves c untouched.
func (c *Championship) Fork(d dice.Dice) *Championship {
	teams := make([]*team.Team, len(c.teams))
	for i, t := range c.teams {
		teams[i] = t.Clone()
	}
	index := make(map[int]int, len(c.index))
	for id, idx := range c.index {
		index[id] = idx
	}

	return &Championship{
		teams:    teams,
		index:    index,
		fixtures: cloneFixtures(c.fixtures),
		cursor:   c.cursor,
		log:      append([]string(nil), c.log...),
		dice:     d,
	}
}

func cloneFixtures(items []fixture.Fixture) []fixture.Fixture {
	out := make([]fixture.Fixture, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
