package model

import (
	"github.com/tavernsheet/backend/internal/entity"
)

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:   user.ID,
		Name: user.Name,
		Role: string(user.Role),
	}
}

func ConvertRace(race *entity.Race) Race {
	if race == nil {
		return Race{}
	}

	return Race{
		ID:                race.ID,
		Name:              race.Name,
		Description:       race.Description,
		StrengthBonus:     race.StrengthBonus,
		DexterityBonus:    race.DexterityBonus,
		ConstitutionBonus: race.ConstitutionBonus,
		IntelligenceBonus: race.IntelligenceBonus,
		WisdomBonus:       race.WisdomBonus,
		CharismaBonus:     race.CharismaBonus,
	}
}

func ConvertClass(class *entity.Class) Class {
	if class == nil {
		return Class{}
	}

	return Class{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		HitDie:      class.HitDie,
	}
}

func ConvertBackground(background *entity.Background) Background {
	if background == nil {
		return Background{}
	}

	return Background{
		ID:          background.ID,
		Name:        background.Name,
		Description: background.Description,
	}
}

func ConvertSkill(skill *entity.Skill) Skill {
	if skill == nil {
		return Skill{}
	}

	return Skill{
		ID:                  skill.ID,
		Name:                skill.Name,
		Description:         skill.Description,
		AssociatedAttribute: skill.AssociatedAttribute,
	}
}

func ConvertSkills(skills []entity.Skill) []Skill {
	result := []Skill{}
	for i := range skills {
		result = append(result, ConvertSkill(&skills[i]))
	}
	return result
}

func ConvertFeat(feat *entity.Feat) Feat {
	if feat == nil {
		return Feat{}
	}

	return Feat{
		ID:          feat.ID,
		Name:        feat.Name,
		Description: feat.Description,
	}
}

func ConvertFeats(feats []entity.Feat) []Feat {
	result := []Feat{}
	for i := range feats {
		result = append(result, ConvertFeat(&feats[i]))
	}
	return result
}

func ConvertSpell(spell *entity.Spell) Spell {
	if spell == nil {
		return Spell{}
	}

	return Spell{
		ID:          spell.ID,
		Name:        spell.Name,
		Description: spell.Description,
		Level:       spell.Level,
		School:      spell.School,
	}
}

func ConvertSpells(spells []entity.Spell) []Spell {
	result := []Spell{}
	for i := range spells {
		result = append(result, ConvertSpell(&spells[i]))
	}
	return result
}

func ConvertEquipment(item *entity.Equipment) Equipment {
	if item == nil {
		return Equipment{}
	}

	return Equipment{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		ItemType:    item.ItemType,
		DamageDice:  item.DamageDice,
		DamageType:  item.DamageType,
		ArmorClass:  item.ArmorClass,
	}
}

func ConvertEquipments(items []entity.Equipment) []Equipment {
	result := []Equipment{}
	for i := range items {
		result = append(result, ConvertEquipment(&items[i]))
	}
	return result
}

func ConvertCharacter(character *entity.Character) Character {
	if character == nil {
		return Character{}
	}

	var lastUpdatedLevel *int
	if character.LastUpdatedLevel.Valid {
		value := int(character.LastUpdatedLevel.Int64)
		lastUpdatedLevel = &value
	}

	var background *Background
	if character.BackgroundID.Valid {
		converted := ConvertBackground(&character.Background)
		background = &converted
	}

	return Character{
		ID:                 character.ID,
		UserID:             character.UserID,
		Name:               character.Name,
		Age:                character.Age,
		Alignment:          character.Alignment,
		HP:                 character.HP,
		Level:              character.Level,
		LastUpdatedLevel:   lastUpdatedLevel,
		Strength:           character.Strength,
		Dexterity:          character.Dexterity,
		Constitution:       character.Constitution,
		Intelligence:       character.Intelligence,
		Wisdom:             character.Wisdom,
		Charisma:           character.Charisma,
		DeathSaveSuccesses: character.DeathSaveSuccesses,
		DeathSaveFailures:  character.DeathSaveFailures,
		CopperPieces:       character.CopperPieces,
		SilverPieces:       character.SilverPieces,
		GoldPieces:         character.GoldPieces,
		PlatinumPieces:     character.PlatinumPieces,
		PortraitURL:        character.PortraitURL,
		Race:               ConvertRace(&character.Race),
		Class:              ConvertClass(&character.Class),
		Background:         background,
		Proficiencies:      ConvertSkills(character.Proficiencies),
		Inventory:          ConvertEquipments(character.Inventory),
		Feats:              ConvertFeats(character.Feats),
		Spells:             ConvertSpells(character.Spells),
		CreatedAt:          character.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertShortCharacter(character *entity.Character) ShortCharacter {
	if character == nil {
		return ShortCharacter{}
	}

	return ShortCharacter{
		ID:          character.ID,
		Name:        character.Name,
		Level:       character.Level,
		PortraitURL: character.PortraitURL,
		Race:        character.Race.Name,
		Class:       character.Class.Name,
	}
}
