package progression

import (
	"testing"

	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_ParseChoice(t *testing.T) {
	choice, err := ParseChoice("all_abilities_plus_one", "", "")
	require.NoError(t, err)
	require.Equal(t, AllAbilitiesPlusOne, choice.Type)

	choice, err = ParseChoice("single_ability_plus_two", "dexterity", "")
	require.NoError(t, err)
	require.Equal(t, SingleAbilityPlusTwo, choice.Type)
	require.Equal(t, Dexterity, choice.Ability)

	choice, err = ParseChoice("grant_feat", "", "feat_tough")
	require.NoError(t, err)
	require.Equal(t, GrantFeat, choice.Type)
	require.Equal(t, "feat_tough", choice.FeatID)
}

func Test_ParseChoice_invalid(t *testing.T) {
	var errx errorx.Error

	_, err := ParseChoice("double_abilities", "", "")
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = ParseChoice("single_ability_plus_two", "luck", "")
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = ParseChoice("grant_feat", "", "")
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_AllowedSkill(t *testing.T) {
	require.True(t, AllowedSkill("Wizard", "Arcana"))
	require.False(t, AllowedSkill("Wizard", "Athletics"))

	// A class absent from the table may take any skill.
	require.True(t, AllowedSkill("Bard", "Athletics"))
	require.True(t, AllowedSkill("", "Athletics"))
}
