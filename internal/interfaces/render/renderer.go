package render

import (
	"io"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
)

const (
	KindPlain = "plain"
	KindRich  = "rich"
	KindJSON  = "json"
)

// NoManagedTeam disables highlighting.
const NoManagedTeam = -1

var ErrUnknownRenderer = crerr.New("unknown table renderer")

// TableRenderer writes a standings table. managedTeamID marks the row of the
// user's club.
type TableRenderer interface {
	Render(w io.Writer, rows []leaguestanding.Standing, managedTeamID int) error
}

// New picks the renderer for kind. It is called once at startup.
func New(kind string) (TableRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindPlain:
		return Plain{}, nil
	case KindRich:
		return Rich{}, nil
	case KindJSON:
		return JSON{}, nil
	default:
		return nil, crerr.Wrapf(ErrUnknownRenderer, "%q: valid values are %s, %s, %s", kind, KindPlain, KindRich, KindJSON)
	}
}

func marker(row leaguestanding.Standing, managedTeamID int) string {
	if row.TeamID == managedTeamID {
		return "*"
	}
	return " "
}
