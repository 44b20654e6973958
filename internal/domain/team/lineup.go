package team

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/foot-manager/internal/domain/player"
)

var ErrInvalidLineup = crerr.New("invalid lineup")

// ValidateLineup checks that indices select exactly LineupSize distinct
// players of players, at least one of them a goalkeeper.
func ValidateLineup(players []player.Player, indices []int) error {
	if len(indices) != LineupSize {
		return crerr.Wrapf(ErrInvalidLineup, "expected %d players, got %d", LineupSize, len(indices))
	}

	seen := make(map[int]struct{}, len(indices))
	hasGoalkeeper := false
	for _, idx := range indices {
		if idx < 0 || idx >= len(players) {
			return crerr.Wrapf(ErrInvalidLineup, "index %d out of range [0,%d)", idx, len(players))
		}
		if _, exists := seen[idx]; exists {
			return crerr.Wrapf(ErrInvalidLineup, "duplicate index %d", idx)
		}
		seen[idx] = struct{}{}

		if players[idx].IsGoalkeeper() {
			hasGoalkeeper = true
		}
	}
	if !hasGoalkeeper {
		return crerr.Wrap(ErrInvalidLineup, "no goalkeeper selected")
	}

	return nil
}

func (t *Team) ValidateLineup(indices []int) error {
	return ValidateLineup(t.Players, indices)
}

// SetLineup replaces the active selection. A rejected selection leaves the
// previous one in place.
func (t *Team) SetLineup(indices []int) error {
	if err := t.ValidateLineup(indices); err != nil {
		return err
	}

	t.lineup = append(make([]int, 0, len(indices)), indices...)
	return nil
}

func (t *Team) ResetLineup() {
	t.lineup = nil
}
