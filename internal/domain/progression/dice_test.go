package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_sumDropLowest(t *testing.T) {
	require.Equal(t, 18, sumDropLowest([4]int{6, 6, 6, 1}))
	require.Equal(t, 3, sumDropLowest([4]int{1, 1, 1, 1}))
	require.Equal(t, 12, sumDropLowest([4]int{2, 3, 4, 5}))
	require.Equal(t, 10, sumDropLowest([4]int{1, 2, 4, 4}))
}

func Test_Roller_RollAbilityScore(t *testing.T) {
	roller := NewRollerWithRng(rand.New(rand.NewSource(42)))

	for i := 0; i < 10000; i++ {
		score := roller.RollAbilityScore()
		require.GreaterOrEqual(t, score, 3)
		require.LessOrEqual(t, score, 18)
	}
}
