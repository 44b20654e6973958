package team

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/player"
)

const (
	RosterSize = 16
	LineupSize = 11
)

// Team is a club taking part in a championship. Players are fixed at creation;
// Stats only move when the match engine records a result.
type Team struct {
	ID      int
	Name    string
	Players []player.Player
	Stats   SeasonStats

	lineup []int
}

// SeasonStats holds the cumulative counters of one season.
type SeasonStats struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

func (s SeasonStats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Record applies one finished match from this team's point of view.
func (s *SeasonStats) Record(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded

	switch {
	case scored > conceded:
		s.Won++
		s.Points += 3
	case scored < conceded:
		s.Lost++
	default:
		s.Drawn++
		s.Points++
	}
}

func (t *Team) GoalDifference() int {
	return t.Stats.GoalDifference()
}

// Lineup returns the active roster indices in selection order. Without an
// explicit selection the first eleven players are active.
func (t *Team) Lineup() []int {
	if len(t.lineup) == 0 {
		out := make([]int, LineupSize)
		for i := range out {
			out[i] = i
		}
		return out
	}

	out := make([]int, len(t.lineup))
	copy(out, t.lineup)
	return out
}

func (t *Team) HasCustomLineup() bool {
	return len(t.lineup) > 0
}

func (t *Team) Active() []player.Player {
	indices := t.Lineup()
	out := make([]player.Player, 0, len(indices))
	for _, idx := range indices {
		out = append(out, t.Players[idx])
	}
	return out
}

func (t *Team) AttackRating() float64 {
	return t.rating(func(p player.Player) int { return p.Attack })
}

func (t *Team) DefenseRating() float64 {
	return t.rating(func(p player.Player) int { return p.Defense })
}

func (t *Team) rating(skill func(player.Player) int) float64 {
	active := t.Active()
	if len(active) == 0 {
		return 0
	}

	total := 0
	for _, p := range active {
		total += skill(p)
	}
	return float64(total) / float64(len(active))
}

// Clone returns a deep copy whose players, stats and lineup can change
// independently.
func (t *Team) Clone() *Team {
	out := *t
	out.Players = append([]player.Player(nil), t.Players...)
	if t.lineup != nil {
		out.lineup = append([]int(nil), t.lineup...)
	}
	return &out
}

func (t *Team) Validate() error {
	if t.Name == "" {
		return crerr.New("team name is required")
	}
	if len(t.Players) != RosterSize {
		return crerr.Newf("team %s has %d players, expected %d", t.Name, len(t.Players), RosterSize)
	}

	names := make(map[string]struct{}, len(t.Players))
	for _, p := range t.Players {
		if err := p.Validate(); err != nil {
			return crerr.Wrapf(err, "team %s", t.Name)
		}
		if _, exists := names[p.Name]; exists {
			return crerr.Newf("team %s has duplicate player name %s", t.Name, p.Name)
		}
		names[p.Name] = struct{}{}
	}

	return nil
}
