package render

import (
	"fmt"
	"io"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
)

// Plain renders fixed-width text.
type Plain struct{}

func (Plain) Render(w io.Writer, rows []leaguestanding.Standing, managedTeamID int) error {
	if _, err := fmt.Fprintf(w, "%-4s %-14s %3s %2s %2s %2s %2s %3s %3s %4s\n",
		"#", "Team", "Pts", "P", "W", "D", "L", "GF", "GA", "GD"); err != nil {
		return crerr.Wrap(err, "write table header")
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-4s %-14s %3d %2d %2d %2d %2d %3d %3d %+4d\n",
			fmt.Sprintf("%d%s", row.Position, marker(row, managedTeamID)),
			row.TeamName,
			row.Points,
			row.Played,
			row.Won,
			row.Draw,
			row.Lost,
			row.GoalsFor,
			row.GoalsAgainst,
			row.GoalDifference,
		); err != nil {
			return crerr.Wrapf(err, "write table row %d", row.Position)
		}
	}

	return nil
}
