package progression

import (
	"github.com/tavernsheet/backend/pkg/enum"
	"github.com/tavernsheet/backend/pkg/errorx"
)

type ChoiceType string

var (
	AllAbilitiesPlusOne  = enum.New(ChoiceType("all_abilities_plus_one"))
	SingleAbilityPlusTwo = enum.New(ChoiceType("single_ability_plus_two"))
	GrantFeat            = enum.New(ChoiceType("grant_feat"))
)

// Choice is an advancement selection. Ability is set only for
// SingleAbilityPlusTwo, FeatID only for GrantFeat.
type Choice struct {
	Type    ChoiceType
	Ability Ability
	FeatID  string
}

// ParseChoice validates the wire form of an advancement selection.
func ParseChoice(choiceType, ability, featID string) (*Choice, error) {
	parsedType, err := enum.ToEnum[ChoiceType](choiceType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid level-up choice %s", choiceType)
	}

	choice := &Choice{Type: parsedType}
	switch parsedType {
	case SingleAbilityPlusTwo:
		parsedAbility, err := enum.ToEnum[Ability](ability)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid ability %s", ability)
		}
		choice.Ability = parsedAbility

	case GrantFeat:
		if featID == "" {
			return nil, errorx.New(errorx.BadRequest, "Not found feat id in level-up choice")
		}
		choice.FeatID = featID
	}

	return choice, nil
}
