package main

import (
	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/common"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) seed(*cli.Context) error {
	s.loadConfig()
	s.loadDatabase()
	s.loadRedisClient()
	s.loadRepos()

	races, err := s.raceRepo.GetAll(s.ctx)
	if err != nil {
		return err
	}

	if len(races) > 0 {
		xcontext.Logger(s.ctx).Infof("Database already seeded, skipping")
		return nil
	}

	if err := s.seedRaces(); err != nil {
		return err
	}

	if err := s.seedClasses(); err != nil {
		return err
	}

	if err := s.seedBackgrounds(); err != nil {
		return err
	}

	if err := s.seedSkills(); err != nil {
		return err
	}

	if err := s.seedFeats(); err != nil {
		return err
	}

	if err := s.seedSpells(); err != nil {
		return err
	}

	if err := s.seedEquipment(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Database seeding complete")
	return nil
}

func (s *srv) seedRaces() error {
	races := []entity.Race{
		{
			Name:              "Human",
			Description:       "A versatile and ambitious race.",
			StrengthBonus:     1,
			DexterityBonus:    1,
			ConstitutionBonus: 1,
			IntelligenceBonus: 1,
			WisdomBonus:       1,
			CharismaBonus:     1,
		},
		{
			Name:              "Elf",
			Description:       "Graceful and long-lived.",
			DexterityBonus:    2,
			IntelligenceBonus: 1,
		},
		{
			Name:              "Dwarf",
			Description:       "Bold and hardy, known as skilled warriors and miners.",
			ConstitutionBonus: 2,
		},
		{
			Name:           "Halfling",
			Description:    "Practical wanderers with an uncanny knack for luck.",
			DexterityBonus: 2,
		},
	}

	for i := range races {
		races[i].ID = uuid.NewString()
		if err := s.raceRepo.Create(s.ctx, &races[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedClasses() error {
	classes := []entity.Class{
		{Name: "Barbarian", Description: "A fierce warrior of primitive fury.", HitDie: 12},
		{Name: "Bard", Description: "An inspiring magician whose power echoes music.", HitDie: 8},
		{Name: "Cleric", Description: "A priestly champion wielding divine magic.", HitDie: 8},
		{Name: "Druid", Description: "A priest of the Old Faith, wielding the powers of nature.", HitDie: 8},
		{Name: "Fighter", Description: "A master of combat.", HitDie: 10},
		{Name: "Monk", Description: "A master of martial arts, harnessing inner power.", HitDie: 8},
		{Name: "Paladin", Description: "A holy warrior bound to a sacred oath.", HitDie: 10},
		{Name: "Ranger", Description: "A warrior who combats threats on the edges of civilization.", HitDie: 10},
		{Name: "Rogue", Description: "A scoundrel who uses stealth and trickery.", HitDie: 8},
		{Name: "Sorcerer", Description: "A spellcaster who draws on inborn magic.", HitDie: 6},
		{Name: "Warlock", Description: "A wielder of magic derived from an otherworldly pact.", HitDie: 8},
		{Name: "Wizard", Description: "A student of arcane magic.", HitDie: 6},
	}

	for i := range classes {
		classes[i].ID = uuid.NewString()
		if err := s.classRepo.Create(s.ctx, &classes[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedBackgrounds() error {
	backgrounds := []entity.Background{
		{Name: "Acolyte", Description: "Serving a deity and a temple."},
		{Name: "Criminal", Description: "An experienced lawbreaker with underworld contacts."},
		{Name: "Sage", Description: "A scholar of arcane lore and forgotten history."},
		{Name: "Soldier", Description: "A veteran of war, trained in battle tactics."},
	}

	for i := range backgrounds {
		backgrounds[i].ID = uuid.NewString()
		if err := s.backgroundRepo.Create(s.ctx, &backgrounds[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedSkills() error {
	skills := map[string]string{
		"Athletics":       "strength",
		"Acrobatics":      "dexterity",
		"Sleight of Hand": "dexterity",
		"Stealth":         "dexterity",
		"Arcana":          "intelligence",
		"History":         "intelligence",
		"Investigation":   "intelligence",
		"Nature":          "intelligence",
		"Religion":        "intelligence",
		"Animal Handling": "wisdom",
		"Insight":         "wisdom",
		"Medicine":        "wisdom",
		"Perception":      "wisdom",
		"Survival":        "wisdom",
		"Deception":       "charisma",
		"Intimidation":    "charisma",
		"Performance":     "charisma",
		"Persuasion":      "charisma",
	}

	for _, name := range common.MapKeys(skills) {
		skill := entity.Skill{
			Name:                name,
			AssociatedAttribute: skills[name],
		}
		skill.ID = uuid.NewString()
		if err := s.skillRepo.Create(s.ctx, &skill); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedFeats() error {
	feats := []entity.Feat{
		{Name: "Alert", Description: "Always on the lookout for danger, you gain a bonus to initiative."},
		{Name: "Great Weapon Master", Description: "You can trade accuracy for devastating blows with heavy weapons."},
		{Name: "Lucky", Description: "You have inexplicable luck that can save you at the last moment."},
		{Name: "Tough", Description: "Your hit point maximum increases for every level you have."},
	}

	for i := range feats {
		feats[i].ID = uuid.NewString()
		if err := s.featRepo.Create(s.ctx, &feats[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedSpells() error {
	spells := []entity.Spell{
		{Name: "Fire Bolt", Description: "You hurl a mote of fire at a creature or object.", Level: 0, School: "Evocation"},
		{Name: "Mage Hand", Description: "A spectral floating hand appears and carries out simple tasks.", Level: 0, School: "Conjuration"},
		{Name: "Cure Wounds", Description: "A creature you touch regains hit points.", Level: 1, School: "Evocation"},
		{Name: "Magic Missile", Description: "Three glowing darts of magical force strike their targets unerringly.", Level: 1, School: "Evocation"},
		{Name: "Shield", Description: "An invisible barrier of magical force protects you.", Level: 1, School: "Abjuration"},
		{Name: "Sleep", Description: "This spell sends creatures into a magical slumber.", Level: 1, School: "Enchantment"},
		{Name: "Fireball", Description: "A bright streak blossoms into an explosion of flame.", Level: 3, School: "Evocation"},
	}

	for i := range spells {
		spells[i].ID = uuid.NewString()
		if err := s.spellRepo.Create(s.ctx, &spells[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) seedEquipment() error {
	equipment := []entity.Equipment{
		{Name: "Longsword", Description: "A classic one-handed sword.", ItemType: "Weapon", DamageDice: "1d8", DamageType: "Slashing"},
		{Name: "Dagger", Description: "A light blade, easily concealed.", ItemType: "Weapon", DamageDice: "1d4", DamageType: "Piercing"},
		{Name: "Shortbow", Description: "A simple ranged weapon.", ItemType: "Weapon", DamageDice: "1d6", DamageType: "Piercing"},
		{Name: "Quarterstaff", Description: "A sturdy wooden staff.", ItemType: "Weapon", DamageDice: "1d6", DamageType: "Bludgeoning"},
		{Name: "Shield", Description: "Provides protection.", ItemType: "Armor", ArmorClass: 2},
		{Name: "Leather Armor", Description: "Light armor made of supple leather.", ItemType: "Armor", ArmorClass: 11},
		{Name: "Chain Mail", Description: "Heavy armor of interlocking metal rings.", ItemType: "Armor", ArmorClass: 16},
	}

	for i := range equipment {
		equipment[i].ID = uuid.NewString()
		if err := s.equipmentRepo.Create(s.ctx, &equipment[i]); err != nil {
			return err
		}
	}

	return nil
}
