package progression

import "github.com/tavernsheet/backend/pkg/enum"

type Ability string

var (
	Strength     = enum.New(Ability("strength"))
	Dexterity    = enum.New(Ability("dexterity"))
	Constitution = enum.New(Ability("constitution"))
	Intelligence = enum.New(Ability("intelligence"))
	Wisdom       = enum.New(Ability("wisdom"))
	Charisma     = enum.New(Ability("charisma"))
)
