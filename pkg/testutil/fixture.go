package testutil

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/repository"
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertRaces(ctx)
	InsertClasses(ctx)
	InsertSkills(ctx)
	InsertFeats(ctx)
	InsertSpells(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	err := userRepo.Create(ctx, &entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "user1",
		Role: entity.RoleUser,
	})
	if err != nil {
		panic(err)
	}

	err = userRepo.Create(ctx, &entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "user2",
		Role: entity.RoleUser,
	})
	if err != nil {
		panic(err)
	}

	err = userRepo.Create(ctx, &entity.User{
		Base: entity.Base{ID: "admin"},
		Name: "admin",
		Role: entity.RoleAdmin,
	})
	if err != nil {
		panic(err)
	}
}

func InsertRaces(ctx context.Context) {
	raceRepo := repository.NewRaceRepository(&MockRedisClient{})

	err := raceRepo.Create(ctx, &entity.Race{
		Base:          entity.Base{ID: "race_human"},
		Name:          "Human",
		StrengthBonus: 1, DexterityBonus: 1, ConstitutionBonus: 1,
		IntelligenceBonus: 1, WisdomBonus: 1, CharismaBonus: 1,
	})
	if err != nil {
		panic(err)
	}

	err = raceRepo.Create(ctx, &entity.Race{
		Base:           entity.Base{ID: "race_elf"},
		Name:           "Elf",
		DexterityBonus: 2,
	})
	if err != nil {
		panic(err)
	}
}

func InsertClasses(ctx context.Context) {
	classRepo := repository.NewClassRepository(&MockRedisClient{})

	err := classRepo.Create(ctx, &entity.Class{
		Base:   entity.Base{ID: "class_wizard"},
		Name:   "Wizard",
		HitDie: 6,
	})
	if err != nil {
		panic(err)
	}

	err = classRepo.Create(ctx, &entity.Class{
		Base:   entity.Base{ID: "class_bard"},
		Name:   "Bard",
		HitDie: 8,
	})
	if err != nil {
		panic(err)
	}
}

func InsertSkills(ctx context.Context) {
	skillRepo := repository.NewSkillRepository()

	skills := []entity.Skill{
		{Base: entity.Base{ID: "skill_arcana"}, Name: "Arcana", AssociatedAttribute: "intelligence"},
		{Base: entity.Base{ID: "skill_history"}, Name: "History", AssociatedAttribute: "intelligence"},
		{Base: entity.Base{ID: "skill_athletics"}, Name: "Athletics", AssociatedAttribute: "strength"},
	}
	for i := range skills {
		if err := skillRepo.Create(ctx, &skills[i]); err != nil {
			panic(err)
		}
	}
}

func InsertFeats(ctx context.Context) {
	featRepo := repository.NewFeatRepository()

	err := featRepo.Create(ctx, &entity.Feat{
		Base: entity.Base{ID: "feat_tough"},
		Name: "Tough",
	})
	if err != nil {
		panic(err)
	}

	err = featRepo.Create(ctx, &entity.Feat{
		Base: entity.Base{ID: "feat_lucky"},
		Name: "Lucky",
	})
	if err != nil {
		panic(err)
	}
}

func InsertSpells(ctx context.Context) {
	spellRepo := repository.NewSpellRepository()

	spells := []entity.Spell{
		{Base: entity.Base{ID: "spell_firebolt"}, Name: "Fire Bolt", Level: 0, School: "Evocation"},
		{Base: entity.Base{ID: "spell_shield"}, Name: "Shield", Level: 1, School: "Abjuration"},
		{Base: entity.Base{ID: "spell_sleep"}, Name: "Sleep", Level: 1, School: "Enchantment"},
	}
	for i := range spells {
		if err := spellRepo.Create(ctx, &spells[i]); err != nil {
			panic(err)
		}
	}
}
