package render

import (
	"fmt"
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
)

// Rich renders a boxed, colored table with the managed club highlighted.
type Rich struct{}

func (Rich) Render(w io.Writer, rows []leaguestanding.Standing, managedTeamID int) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Standings")
	t.AppendHeader(table.Row{"#", "Team", "Pts", "P", "W", "D", "L", "GF", "GA", "GD"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, Colors: text.Colors{text.Bold}},
		{Number: 10, Align: text.AlignRight},
	})

	for _, row := range rows {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d%s", row.Position, strings.TrimSpace(marker(row, managedTeamID))),
			row.TeamName,
			row.Points,
			row.Played,
			row.Won,
			row.Draw,
			row.Lost,
			row.GoalsFor,
			row.GoalsAgainst,
			fmt.Sprintf("%+d", row.GoalDifference),
		})
	}

	t.SetRowPainter(table.RowPainter(func(row table.Row) text.Colors {
		if len(row) > 0 && strings.HasSuffix(fmt.Sprint(row[0]), "*") {
			return text.Colors{text.FgHiGreen, text.Bold}
		}
		return nil
	}))

	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return crerr.Wrap(err, "write rich table")
	}
	return nil
}
