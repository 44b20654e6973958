package dice

import (
	"math/rand/v2"
	"time"
)

// Dice draws uniform integers from an inclusive range.
type Dice interface {
	Roll(lo, hi int) int
}

type Rand struct {
	r *rand.Rand
}

func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSeeded uses seed when it is non-zero and the wall clock otherwise.
func NewSeeded(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(uint64(seed))
}

func (d *Rand) Roll(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + d.r.IntN(hi-lo+1)
}

// Shuffle permutes items in place with a Fisher-Yates pass driven by d.
func Shuffle[T any](d Dice, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := d.Roll(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Fixed always lands on value, clamped into the requested range.
type Fixed int

func (f Fixed) Roll(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return max(lo, min(hi, int(f)))
}

// Script replays values in order, clamping each into the requested range.
// Once exhausted it behaves like Fixed(0).
type Script struct {
	Values []int
	pos    int
}

func (s *Script) Roll(lo, hi int) int {
	v := 0
	if s.pos < len(s.Values) {
		v = s.Values[s.pos]
		s.pos++
	}
	return Fixed(v).Roll(lo, hi)
}

// Drawn reports how many scripted values have been consumed.
func (s *Script) Drawn() int {
	return s.pos
}
