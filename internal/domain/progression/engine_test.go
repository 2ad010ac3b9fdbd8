package progression

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(
		repository.NewCharacterRepository(),
		repository.NewRaceRepository(&testutil.MockRedisClient{}),
		repository.NewClassRepository(&testutil.MockRedisClient{}),
		repository.NewFeatRepository(),
		repository.NewSkillRepository(),
		repository.NewSpellRepository(),
		NewRollerWithRng(rand.New(rand.NewSource(1))),
	)
}

func Test_Engine_RollAbilityScores(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	// Every Human bonus is +1, so base scores must land in [4,21] after the
	// bonus. Repeat to cover the dice range.
	for i := 0; i < 100; i++ {
		character := &entity.Character{RaceID: "race_human"}
		require.NoError(t, engine.RollAbilityScores(ctx, character))

		for _, score := range []int{
			character.Strength, character.Dexterity, character.Constitution,
			character.Intelligence, character.Wisdom, character.Charisma,
		} {
			require.GreaterOrEqual(t, score-1, 3)
			require.LessOrEqual(t, score-1, 18)
		}
	}
}

func Test_Engine_RollAbilityScores_raceBonus(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	rngA := rand.New(rand.NewSource(7))
	rngB := rand.New(rand.NewSource(7))
	engineElf := NewEngine(
		repository.NewCharacterRepository(),
		repository.NewRaceRepository(&testutil.MockRedisClient{}),
		repository.NewClassRepository(&testutil.MockRedisClient{}),
		repository.NewFeatRepository(),
		repository.NewSkillRepository(),
		repository.NewSpellRepository(),
		NewRollerWithRng(rngA),
	)
	engineHuman := NewEngine(
		repository.NewCharacterRepository(),
		repository.NewRaceRepository(&testutil.MockRedisClient{}),
		repository.NewClassRepository(&testutil.MockRedisClient{}),
		repository.NewFeatRepository(),
		repository.NewSkillRepository(),
		repository.NewSpellRepository(),
		NewRollerWithRng(rngB),
	)

	// Identical seeds produce identical base rolls, so the difference between
	// the two characters is exactly the difference of race bonuses.
	elf := &entity.Character{RaceID: "race_elf"}
	require.NoError(t, engineElf.RollAbilityScores(ctx, elf))

	human := &entity.Character{RaceID: "race_human"}
	require.NoError(t, engineHuman.RollAbilityScores(ctx, human))

	require.Equal(t, human.Strength-1, elf.Strength)
	require.Equal(t, human.Dexterity+1, elf.Dexterity)
	require.Equal(t, human.Constitution-1, elf.Constitution)
	require.Equal(t, human.Intelligence-1, elf.Intelligence)
	require.Equal(t, human.Wisdom-1, elf.Wisdom)
	require.Equal(t, human.Charisma-1, elf.Charisma)
}

func Test_Engine_RollAbilityScores_missingRace(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	err := engine.RollAbilityScores(ctx, &entity.Character{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PreconditionFailed, errx.Code)
}

func Test_Engine_ApplyLevelUp_gating(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 4})
	require.NoError(t, err)

	// Level 5 is not a multiple of four. The level changes, the scores do not.
	choice := &Choice{Type: AllAbilitiesPlusOne}
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 5, choice, nil, nil))
	require.Equal(t, 5, character.Level)
	require.Equal(t, 10, character.Strength)
	require.False(t, character.LastUpdatedLevel.Valid)

	// Level 8 grants the advancement.
	character.Level = 7
	character.LastUpdatedLevel = sql.NullInt64{Valid: true, Int64: 4}
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 8, choice, nil, nil))
	require.Equal(t, 8, character.Level)
	require.Equal(t, 11, character.Strength)
	require.Equal(t, 11, character.Charisma)
	require.Equal(t, int64(8), character.LastUpdatedLevel.Int64)
}

func Test_Engine_ApplyLevelUp_resubmissionGuard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 7})
	require.NoError(t, err)

	choice := &Choice{Type: AllAbilitiesPlusOne}
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 8, choice, nil, nil))
	require.Equal(t, 11, character.Strength)

	// The second submission at the same level must not increment again.
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 8, choice, nil, nil))
	require.Equal(t, 11, character.Strength)
	require.Equal(t, int64(8), character.LastUpdatedLevel.Int64)
}

func Test_Engine_ApplyLevelUp_singleAbility(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 3})
	require.NoError(t, err)

	choice := &Choice{Type: SingleAbilityPlusTwo, Ability: Wisdom}
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 4, choice, nil, nil))
	require.Equal(t, 12, character.Wisdom)
	require.Equal(t, 10, character.Strength)
}

func Test_Engine_ApplyLevelUp_invalidInput(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 3})
	require.NoError(t, err)

	// Unknown ability.
	choice := &Choice{Type: SingleAbilityPlusTwo, Ability: Ability("luck")}
	err = engine.ApplyLevelUp(ctx, &character, 4, choice, nil, nil)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
	require.Equal(t, 10, character.Wisdom)

	// Level regression.
	err = engine.ApplyLevelUp(ctx, &character, 2, nil, nil, nil)
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
	require.Equal(t, 3, character.Level)
}

func Test_Engine_ApplyLevelUp_grantFeat(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()
	characterRepo := repository.NewCharacterRepository()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 3})
	require.NoError(t, err)

	choice := &Choice{Type: GrantFeat, FeatID: "feat_tough"}
	require.NoError(t, engine.ApplyLevelUp(ctx, &character, 4, choice, nil, nil))

	reloaded, err := characterRepo.GetByID(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Feats, 1)
	require.Equal(t, "feat_tough", reloaded.Feats[0].ID)

	// Granting the same feat again at the next threshold is a no-op.
	require.NoError(t, engine.ApplyLevelUp(ctx, reloaded, 8, choice, nil, nil))
	reloaded, err = characterRepo.GetByID(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Feats, 1)
}

func Test_Engine_ApplyLevelUp_missingFeat(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 3})
	require.NoError(t, err)

	choice := &Choice{Type: GrantFeat, FeatID: "feat_unknown"}
	err = engine.ApplyLevelUp(ctx, &character, 4, choice, nil, nil)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_Engine_ApplyLevelUp_skillReplacementAndSpellMerge(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()
	characterRepo := repository.NewCharacterRepository()

	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 1})
	require.NoError(t, err)

	// First call sets the proficiencies and learns two spells.
	err = engine.ApplyLevelUp(ctx, &character, 2, nil,
		[]string{"skill_arcana", "skill_history"}, []string{"spell_firebolt", "spell_shield"})
	require.NoError(t, err)

	reloaded, err := characterRepo.GetByID(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Proficiencies, 2)
	require.Len(t, reloaded.Spells, 2)

	// Skills are replaced wholesale, spells merge without duplicates.
	err = engine.ApplyLevelUp(ctx, reloaded, 3, nil,
		[]string{"skill_arcana"}, []string{"spell_shield", "spell_sleep"})
	require.NoError(t, err)

	reloaded, err = characterRepo.GetByID(ctx, character.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Proficiencies, 1)
	require.Equal(t, "skill_arcana", reloaded.Proficiencies[0].ID)
	require.Len(t, reloaded.Spells, 3)
}

func Test_Engine_ApplyLevelUp_skillNotAllowedForClass(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	engine := newTestEngine()

	// A Wizard may not take Athletics.
	character, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 1})
	require.NoError(t, err)

	err = engine.ApplyLevelUp(ctx, &character, 2, nil, []string{"skill_athletics"}, nil)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// A Bard is absent from the rule table and may take anything.
	bard, err := testutil.SampleCharacter(ctx, &entity.Character{Level: 1, ClassID: "class_bard"})
	require.NoError(t, err)
	require.NoError(t, engine.ApplyLevelUp(ctx, &bard, 2, nil, []string{"skill_athletics"}, nil))
}
