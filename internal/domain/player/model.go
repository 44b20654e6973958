package player

import (
	crerr "github.com/cockroachdb/errors"
)

// Position is the role a player fills in the squad template.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Skill bounds, inclusive.
const (
	MinSkill = 50
	MaxSkill = 90
)

// Player is a generated squad member. Players never change after creation.
type Player struct {
	Name     string
	Position Position
	Attack   int
	Defense  int
}

func (p Player) Validate() error {
	if p.Name == "" {
		return crerr.New("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return crerr.Newf("invalid player position: %s", p.Position)
	}
	if p.Attack < MinSkill || p.Attack > MaxSkill {
		return crerr.Newf("player %s attack %d outside [%d,%d]", p.Name, p.Attack, MinSkill, MaxSkill)
	}
	if p.Defense < MinSkill || p.Defense > MaxSkill {
		return crerr.Newf("player %s defense %d outside [%d,%d]", p.Name, p.Defense, MinSkill, MaxSkill)
	}

	return nil
}

func (p Player) IsGoalkeeper() bool {
	return p.Position == PositionGoalkeeper
}
