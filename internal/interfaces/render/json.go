package render

import (
	"io"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
)

// JSON renders one JSON document per call, for piping into other tools.
type JSON struct{}

type standingRow struct {
	Position       int    `json:"position"`
	TeamID         int    `json:"team_id"`
	Team           string `json:"team"`
	Managed        bool   `json:"managed"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type standingsDocument struct {
	Standings []standingRow `json:"standings"`
}

func (JSON) Render(w io.Writer, rows []leaguestanding.Standing, managedTeamID int) error {
	doc := standingsDocument{Standings: make([]standingRow, 0, len(rows))}
	for _, row := range rows {
		doc.Standings = append(doc.Standings, standingRow{
			Position:       row.Position,
			TeamID:         row.TeamID,
			Team:           row.TeamName,
			Managed:        row.TeamID == managedTeamID,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Draw,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
		})
	}

	payload, err := sonic.Marshal(doc)
	if err != nil {
		return crerr.Wrap(err, "marshal standings")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(payload)
	_ = buf.WriteByte('\n')

	if _, err := w.Write(buf.B); err != nil {
		return crerr.Wrap(err, "write standings json")
	}
	return nil
}
