package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
)

func TestSimulate_ZeroDrawsExample(t *testing.T) {
	t.Parallel()

	a := flatTeam("A", 80, 70)
	b := flatTeam("B", 70, 70)

	hg, ag := Simulate(a, b, dice.Fixed(0))

	assert.Equal(t, 1, hg)
	assert.Equal(t, 0, ag)
	assert.Equal(t, "A 1-0 B", ScoreLine(a.Name, hg, ag, b.Name))
	assert.Equal(t, 3, a.Stats.Points)
	assert.Equal(t, 0, b.Stats.Points)
	assert.Equal(t, 1, a.Stats.Won)
	assert.Equal(t, 1, b.Stats.Lost)
}

func TestSimulate_DrawOrder(t *testing.T) {
	t.Parallel()

	// home attack +5, away attack -5, home defense 0, away defense -5,
	// home bonus 2, away bonus 1.
	script := &dice.Script{Values: []int{5, -5, 0, -5, 2, 1}}
	a := flatTeam("A", 70, 70)
	b := flatTeam("B", 70, 70)

	hg, ag := Simulate(a, b, script)

	// home: floor((70+5+3 - (70-5))/10) + 2 = floor(1.3) + 2 = 3
	// away: floor((70-5 - 70)/10) + 1 = floor(-0.5) + 1 = 0
	assert.Equal(t, 3, hg)
	assert.Equal(t, 0, ag)
	assert.Equal(t, 6, script.Drawn())
}

func TestSimulate_NegativeMarginFloorsAndClamps(t *testing.T) {
	t.Parallel()

	weak := flatTeam("Weak", 50, 50)
	strong := flatTeam("Strong", 90, 90)

	hg, ag := Simulate(weak, strong, dice.Fixed(0))

	// home: floor((53-90)/10) = -4 -> 0; away: floor((90-50)/10) = 4
	assert.Equal(t, 0, hg)
	assert.Equal(t, 4, ag)
}

func TestSimulate_DrawAwardsOnePointEach(t *testing.T) {
	t.Parallel()

	a := flatTeam("A", 60, 70)
	b := flatTeam("B", 63, 70)

	hg, ag := Simulate(a, b, dice.Fixed(0))

	require.Equal(t, hg, ag)
	assert.Equal(t, 1, a.Stats.Points)
	assert.Equal(t, 1, b.Stats.Points)
	assert.Equal(t, 1, a.Stats.Drawn)
}

func TestSimulate_StatsConsistency(t *testing.T) {
	t.Parallel()

	d := dice.New(99)
	for i := 0; i < 500; i++ {
		home := team.NewRoster("Paris FC", d)
		away := team.NewRoster("Monaco", d)

		hg, ag := Simulate(home, away, d)

		require.GreaterOrEqual(t, hg, 0)
		require.GreaterOrEqual(t, ag, 0)
		require.Equal(t, 1, home.Stats.Played)
		require.Equal(t, 1, away.Stats.Played)
		require.Equal(t, home.Stats.GoalsFor, away.Stats.GoalsAgainst)
		require.Equal(t, away.Stats.GoalsFor, home.Stats.GoalsAgainst)

		total := home.Stats.Points + away.Stats.Points
		if hg == ag {
			require.Equal(t, 2, total)
		} else {
			require.Equal(t, 3, total)
		}
	}
}

func TestSimulate_SeededReplay(t *testing.T) {
	t.Parallel()

	play := func() [][2]int {
		d := dice.New(2024)
		home := team.NewRoster("Paris FC", d)
		away := team.NewRoster("Lyonnais", d)
		out := make([][2]int, 0, 20)
		for i := 0; i < 20; i++ {
			hg, ag := Simulate(home, away, d)
			out = append(out, [2]int{hg, ag})
		}
		return out
	}

	assert.Equal(t, play(), play())
}

// flatTeam gives every player the same attack and defense so the ratings are
// exactly those values.
func flatTeam(name string, attack, defense int) *team.Team {
	item := team.NewRoster(name, dice.Fixed(0))
	for i := range item.Players {
		item.Players[i].Attack = attack
		item.Players[i].Defense = defense
	}
	return item
}
