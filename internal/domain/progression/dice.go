package progression

import (
	"math/rand"
	"time"
)

// Roller rolls ability scores with the 4d6-drop-lowest method.
type Roller struct {
	rng *rand.Rand
}

func NewRoller() *Roller {
	return &Roller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewRollerWithRng uses a provided random source. This is useful when a test
// wants to control the rolls.
func NewRollerWithRng(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// RollAbilityScore draws four dice in [1,6] and sums the three largest,
// yielding a base score in [3,18].
func (r *Roller) RollAbilityScore() int {
	var dice [4]int
	for i := range dice {
		dice[i] = r.rng.Intn(6) + 1
	}

	return sumDropLowest(dice)
}

func sumDropLowest(dice [4]int) int {
	total := 0
	lowest := dice[0]
	for _, die := range dice {
		total += die
		if die < lowest {
			lowest = die
		}
	}

	return total - lowest
}
