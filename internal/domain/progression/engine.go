package progression

import (
	"context"
	"errors"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Engine applies character progression: rolling ability scores for a new
// character and leveling an existing one up.
type Engine struct {
	characterRepo repository.CharacterRepository
	raceRepo      repository.RaceRepository
	classRepo     repository.ClassRepository
	featRepo      repository.FeatRepository
	skillRepo     repository.SkillRepository
	spellRepo     repository.SpellRepository

	roller *Roller
}

func NewEngine(
	characterRepo repository.CharacterRepository,
	raceRepo repository.RaceRepository,
	classRepo repository.ClassRepository,
	featRepo repository.FeatRepository,
	skillRepo repository.SkillRepository,
	spellRepo repository.SpellRepository,
	roller *Roller,
) *Engine {
	return &Engine{
		characterRepo: characterRepo,
		raceRepo:      raceRepo,
		classRepo:     classRepo,
		featRepo:      featRepo,
		skillRepo:     skillRepo,
		spellRepo:     spellRepo,
		roller:        roller,
	}
}

// RollAbilityScores rolls the six ability scores of character with
// 4d6-drop-lowest, then adds its race bonuses. The character must reference a
// race. Either all six scores are written or none.
func (e *Engine) RollAbilityScores(ctx context.Context, character *entity.Character) error {
	if character.RaceID == "" {
		return errorx.New(errorx.PreconditionFailed, "Character has no race")
	}

	race := &character.Race
	if race.ID == "" {
		var err error
		race, err = e.raceRepo.GetByID(ctx, character.RaceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.New(errorx.PreconditionFailed, "Character has no race")
			}

			xcontext.Logger(ctx).Errorf("Cannot get race: %v", err)
			return errorx.Unknown
		}
	}

	rolls := make([]int, 6)
	for i := range rolls {
		rolls[i] = e.roller.RollAbilityScore()
	}

	character.Strength = rolls[0] + race.StrengthBonus
	character.Dexterity = rolls[1] + race.DexterityBonus
	character.Constitution = rolls[2] + race.ConstitutionBonus
	character.Intelligence = rolls[3] + race.IntelligenceBonus
	character.Wisdom = rolls[4] + race.WisdomBonus
	character.Charisma = rolls[5] + race.CharismaBonus

	return nil
}

// ApplyLevelUp moves character to newLevel. An ability or feat advancement is
// granted only when newLevel is a multiple of four not yet consumed by a
// previous call. Skill proficiencies are replaced with skillIDs when non-nil,
// spells in spellIDs are merged additively. All validation happens before any
// mutation.
func (e *Engine) ApplyLevelUp(
	ctx context.Context,
	character *entity.Character,
	newLevel int,
	choice *Choice,
	skillIDs []string,
	spellIDs []string,
) error {
	if newLevel < character.Level {
		return errorx.New(errorx.BadRequest, "Cannot level a character down")
	}

	advancementDue := newLevel >= 4 && newLevel%4 == 0 &&
		!(character.LastUpdatedLevel.Valid && character.LastUpdatedLevel.Int64 == int64(newLevel))

	var grantedFeat *entity.Feat
	if advancementDue && choice != nil && choice.Type == GrantFeat {
		feat, err := e.featRepo.GetByID(ctx, choice.FeatID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.New(errorx.NotFound, "Not found feat")
			}

			xcontext.Logger(ctx).Errorf("Cannot get feat: %v", err)
			return errorx.Unknown
		}
		grantedFeat = feat
	}

	var replacedSkills []entity.Skill
	if skillIDs != nil {
		skills, err := e.loadEligibleSkills(ctx, character, skillIDs)
		if err != nil {
			return err
		}
		replacedSkills = skills
	}

	var mergedSpells []entity.Spell
	if len(spellIDs) > 0 {
		spells, err := e.mergeSpells(ctx, character, spellIDs)
		if err != nil {
			return err
		}
		mergedSpells = spells
	}

	if advancementDue && choice != nil {
		switch choice.Type {
		case AllAbilitiesPlusOne:
			character.Strength++
			character.Dexterity++
			character.Constitution++
			character.Intelligence++
			character.Wisdom++
			character.Charisma++

		case SingleAbilityPlusTwo:
			switch choice.Ability {
			case Strength:
				character.Strength += 2
			case Dexterity:
				character.Dexterity += 2
			case Constitution:
				character.Constitution += 2
			case Intelligence:
				character.Intelligence += 2
			case Wisdom:
				character.Wisdom += 2
			case Charisma:
				character.Charisma += 2
			default:
				return errorx.New(errorx.BadRequest, "Invalid ability %s", choice.Ability)
			}

		case GrantFeat:
			if !e.hasFeat(character, grantedFeat.ID) {
				if err := e.characterRepo.AppendFeat(ctx, character, grantedFeat); err != nil {
					xcontext.Logger(ctx).Errorf("Cannot append feat: %v", err)
					return errorx.Unknown
				}
			}

		default:
			return errorx.New(errorx.BadRequest, "Invalid level-up choice %s", choice.Type)
		}

		character.LastUpdatedLevel.Valid = true
		character.LastUpdatedLevel.Int64 = int64(newLevel)
	}

	if replacedSkills != nil {
		if err := e.characterRepo.ReplaceProficiencies(ctx, character, replacedSkills); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot replace proficiencies: %v", err)
			return errorx.Unknown
		}
	}

	if mergedSpells != nil {
		if err := e.characterRepo.ReplaceSpells(ctx, character, mergedSpells); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot merge spells: %v", err)
			return errorx.Unknown
		}
	}

	character.Level = newLevel
	if err := e.characterRepo.Save(ctx, character); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save character: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (e *Engine) loadEligibleSkills(
	ctx context.Context, character *entity.Character, skillIDs []string,
) ([]entity.Skill, error) {
	skills, err := e.skillRepo.GetByIDs(ctx, skillIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	if len(skills) != len(unique(skillIDs)) {
		return nil, errorx.New(errorx.NotFound, "Not found some skills")
	}

	className := character.Class.Name
	if className == "" && character.ClassID != "" {
		class, err := e.classRepo.GetByID(ctx, character.ClassID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get class: %v", err)
			return nil, errorx.Unknown
		}
		className = class.Name
	}

	for _, skill := range skills {
		if !AllowedSkill(className, skill.Name) {
			return nil, errorx.New(errorx.BadRequest,
				"Skill %s is not available to class %s", skill.Name, className)
		}
	}

	return skills, nil
}

func (e *Engine) mergeSpells(
	ctx context.Context, character *entity.Character, spellIDs []string,
) ([]entity.Spell, error) {
	added, err := e.spellRepo.GetByIDs(ctx, spellIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spells: %v", err)
		return nil, errorx.Unknown
	}

	if len(added) != len(unique(spellIDs)) {
		return nil, errorx.New(errorx.NotFound, "Not found some spells")
	}

	known := map[string]bool{}
	merged := []entity.Spell{}
	for _, spell := range character.Spells {
		known[spell.ID] = true
		merged = append(merged, spell)
	}

	for _, spell := range added {
		if !known[spell.ID] {
			known[spell.ID] = true
			merged = append(merged, spell)
		}
	}

	return merged, nil
}

func (e *Engine) hasFeat(character *entity.Character, featID string) bool {
	for _, feat := range character.Feats {
		if feat.ID == featID {
			return true
		}
	}

	return false
}

func unique(ids []string) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}
