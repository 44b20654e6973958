package leaguestanding

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
)

// Standing represents a league table row for one team.
type Standing struct {
	TeamID         int
	TeamName       string
	Position       int
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

func FromTeam(t *team.Team) Standing {
	return Standing{
		TeamID:         t.ID,
		TeamName:       t.Name,
		Played:         t.Stats.Played,
		Won:            t.Stats.Won,
		Draw:           t.Stats.Drawn,
		Lost:           t.Stats.Lost,
		GoalsFor:       t.Stats.GoalsFor,
		GoalsAgainst:   t.Stats.GoalsAgainst,
		GoalDifference: t.Stats.GoalDifference(),
		Points:         t.Stats.Points,
	}
}

// Compare orders rows by points, then goal difference, then goals scored,
// all descending. It returns a negative value when a ranks above b.
func Compare(a, b Standing) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalsFor, a.GoalsFor)
}

// Rank sorts a copy of rows and fills Position. Rows that compare equal keep
// their input order.
func Rank(rows []Standing) []Standing {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, Compare)
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// Build derives the ranked table from the teams' current statistics.
func Build(teams []*team.Team) []Standing {
	rows := make([]Standing, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, FromTeam(t))
	}
	return Rank(rows)
}
