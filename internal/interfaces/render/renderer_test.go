package render

import (
	"bytes"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/foot-manager/internal/domain/leaguestanding"
)

var sampleRows = []leaguestanding.Standing{
	{TeamID: 2, TeamName: "Lyonnais", Position: 1, Played: 2, Won: 2, GoalsFor: 4, GoalsAgainst: 1, GoalDifference: 3, Points: 6},
	{TeamID: 0, TeamName: "Paris FC", Position: 2, Played: 2, Won: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 2, Points: 3},
	{TeamID: 1, TeamName: "Monaco", Position: 3, Played: 2, Lost: 2, GoalsFor: 1, GoalsAgainst: 4, GoalDifference: -3},
}

func TestNew(t *testing.T) {
	t.Parallel()

	for kind, want := range map[string]TableRenderer{
		"":       Plain{},
		"plain":  Plain{},
		" Rich ": Rich{},
		"json":   JSON{},
	} {
		got, err := New(kind)
		require.NoError(t, err, kind)
		assert.IsType(t, want, got, kind)
	}

	_, err := New("html")
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestPlain_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Plain{}.Render(&buf, sampleRows, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
	assert.True(t, strings.HasPrefix(lines[2], "2*"))
	assert.Contains(t, lines[2], "Paris FC")
	assert.Contains(t, lines[1], "+3")
	assert.Contains(t, lines[3], "-3")
}

func TestRich_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Rich{}.Render(&buf, sampleRows, 1))

	out := buf.String()
	assert.Contains(t, out, "Standings")
	assert.Contains(t, out, "3*")
	for _, row := range sampleRows {
		assert.Contains(t, out, row.TeamName)
	}
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, sampleRows, 2))

	var doc standingsDocument
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Standings, 3)
	assert.Equal(t, "Lyonnais", doc.Standings[0].Team)
	assert.True(t, doc.Standings[0].Managed)
	assert.False(t, doc.Standings[1].Managed)
	assert.Equal(t, -3, doc.Standings[2].GoalDifference)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
