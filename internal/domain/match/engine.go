package match

import (
	"fmt"
	"math"

	"github.com/riskibarqy/foot-manager/internal/domain/team"
	"github.com/riskibarqy/foot-manager/internal/platform/dice"
)

const (
	// HomeAdvantage is added to the home side's attack before goals are drawn.
	HomeAdvantage = 3

	formSwing  = 5
	goalBonus  = 2
	goalFactor = 10.0
)

// Simulate plays home against away, records the result on both teams and
// returns the score. It draws six values from d: home attack, away attack,
// home defense, away defense, home bonus, away bonus.
//
// Each call applies a result, so a fixture must be simulated exactly once.
func Simulate(home, away *team.Team, d dice.Dice) (homeGoals, awayGoals int) {
	homeAttack := home.AttackRating() + float64(d.Roll(-formSwing, formSwing)) + HomeAdvantage
	awayAttack := away.AttackRating() + float64(d.Roll(-formSwing, formSwing))
	homeDefense := home.DefenseRating() + float64(d.Roll(-formSwing, formSwing))
	awayDefense := away.DefenseRating() + float64(d.Roll(-formSwing, formSwing))

	homeGoals = goals(homeAttack, awayDefense, d.Roll(0, goalBonus))
	awayGoals = goals(awayAttack, homeDefense, d.Roll(0, goalBonus))

	home.Stats.Record(homeGoals, awayGoals)
	away.Stats.Record(awayGoals, homeGoals)

	return homeGoals, awayGoals
}

func goals(attack, defense float64, bonus int) int {
	return max(0, int(math.Floor((attack-defense)/goalFactor))+bonus)
}

// ScoreLine formats a result as "Home HG-AG Away".
func ScoreLine(homeName string, homeGoals, awayGoals int, awayName string) string {
	return fmt.Sprintf("%s %d-%d %s", homeName, homeGoals, awayGoals, awayName)
}
