package team

import (
	"fmt"

	"github.com/riskibarqy/foot-manager/internal/domain/player"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
)

var rosterTemplate = [RosterSize]player.Position{
	player.PositionGoalkeeper,
	player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
	player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
	player.PositionForward, player.PositionForward, player.PositionForward, player.PositionForward, player.PositionForward,
}

// NewRoster builds a club with a generated squad. The returned team has no ID
// until a registry assigns one.
func NewRoster(name string, d dice.Dice) *Team {
	players := make([]player.Player, 0, RosterSize)
	for i, pos := range rosterTemplate {
		players = append(players, player.Player{
			Name:     PlayerName(name, i),
			Position: pos,
			Attack:   d.Roll(player.MinSkill, player.MaxSkill),
			Defense:  d.Roll(player.MinSkill, player.MaxSkill),
		})
	}

	return &Team{Name: name, Players: players}
}

// PlayerName derives the roster name of the player at idx: the first three
// characters of the club name, then P and the 1-based two digit slot.
func PlayerName(teamName string, idx int) string {
	prefix := []rune(teamName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%sP%02d", string(prefix), idx+1)
}
