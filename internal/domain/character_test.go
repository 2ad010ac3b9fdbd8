package domain

import (
	"math/rand"
	"testing"

	"github.com/tavernsheet/backend/internal/domain/progression"
	"github.com/tavernsheet/backend/internal/model"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/testutil"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestCharacterDomain() CharacterDomain {
	characterRepo := repository.NewCharacterRepository()
	raceRepo := repository.NewRaceRepository(&testutil.MockRedisClient{})
	classRepo := repository.NewClassRepository(&testutil.MockRedisClient{})
	engine := progression.NewEngine(
		characterRepo,
		raceRepo,
		classRepo,
		repository.NewFeatRepository(),
		repository.NewSkillRepository(),
		repository.NewSpellRepository(),
		progression.NewRollerWithRng(rand.New(rand.NewSource(1))),
	)

	return NewCharacterDomain(
		characterRepo,
		raceRepo,
		classRepo,
		repository.NewBackgroundRepository(),
		repository.NewEquipmentRepository(),
		engine,
		&testutil.MockStorage{},
	)
}

func Test_characterDomain_Create_rolled(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	resp, err := characterDomain.Create(ctx, &model.CreateCharacterRequest{
		Name:          "Elminster",
		RaceID:        "race_human",
		ClassID:       "class_wizard",
		RollAbilities: true,
		SkillIDs:      []string{"skill_arcana"},
		SpellIDs:      []string{"spell_firebolt"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Character.Level)
	require.Equal(t, "user1", resp.Character.UserID)

	// Human bonus is +1 everywhere, base roll is within [3,18].
	for _, score := range []int{
		resp.Character.Strength, resp.Character.Dexterity, resp.Character.Constitution,
		resp.Character.Intelligence, resp.Character.Wisdom, resp.Character.Charisma,
	} {
		require.GreaterOrEqual(t, score, 4)
		require.LessOrEqual(t, score, 19)
	}

	require.Len(t, resp.Character.Proficiencies, 1)
	require.Len(t, resp.Character.Spells, 1)
}

func Test_characterDomain_Create_manualScores(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	resp, err := characterDomain.Create(ctx, &model.CreateCharacterRequest{
		Name:    "Drizzt",
		RaceID:  "race_elf",
		ClassID: "class_bard",
		Abilities: &model.AbilityScores{
			Strength: 13, Dexterity: 17, Constitution: 12,
			Intelligence: 14, Wisdom: 11, Charisma: 10,
		},
	})
	require.NoError(t, err)
	require.Equal(t, 17, resp.Character.Dexterity)

	// Manual creation without scores is rejected.
	_, err = characterDomain.Create(ctx, &model.CreateCharacterRequest{
		Name:    "Nameless",
		RaceID:  "race_elf",
		ClassID: "class_bard",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_characterDomain_Get_ownerGating(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	character, err := testutil.SampleCharacter(ctx, nil)
	require.NoError(t, err)

	_, err = characterDomain.Get(
		xcontext.WithRequestUserID(ctx, "user2"),
		&model.GetCharacterRequest{ID: character.ID},
	)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	resp, err := characterDomain.Get(
		xcontext.WithRequestUserID(ctx, "user1"),
		&model.GetCharacterRequest{ID: character.ID},
	)
	require.NoError(t, err)
	require.Equal(t, character.ID, resp.Character.ID)
}

func Test_characterDomain_Update_levelUpFunnel(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	character, err := testutil.SampleCharacter(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	resp, err := characterDomain.Update(ctx, &model.UpdateCharacterRequest{
		ID:       character.ID,
		Name:     character.Name,
		Age:      character.Age,
		HP:       22,
		NewLevel: 4,
		Choice:   &model.LevelUpChoice{Type: "all_abilities_plus_one"},
	})
	require.NoError(t, err)
	require.Equal(t, 4, resp.Character.Level)
	require.Equal(t, 22, resp.Character.HP)
	require.Equal(t, 11, resp.Character.Strength)
	require.NotNil(t, resp.Character.LastUpdatedLevel)
	require.Equal(t, 4, *resp.Character.LastUpdatedLevel)

	// An unknown choice never reaches the engine.
	_, err = characterDomain.Update(ctx, &model.UpdateCharacterRequest{
		ID:       character.ID,
		NewLevel: 8,
		Choice:   &model.LevelUpChoice{Type: "everything_plus_ten"},
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_characterDomain_DeleteAndGetMy(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	first, err := testutil.SampleCharacter(ctx, nil)
	require.NoError(t, err)
	second, err := testutil.SampleCharacter(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	list, err := characterDomain.GetMy(ctx, &model.GetMyCharactersRequest{})
	require.NoError(t, err)
	require.Len(t, list.Characters, 2)

	_, err = characterDomain.Delete(ctx, &model.DeleteCharacterRequest{ID: first.ID})
	require.NoError(t, err)

	list, err = characterDomain.GetMy(ctx, &model.GetMyCharactersRequest{})
	require.NoError(t, err)
	require.Len(t, list.Characters, 1)
	require.Equal(t, second.ID, list.Characters[0].ID)

	_, err = characterDomain.Get(ctx, &model.GetCharacterRequest{ID: first.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_characterDomain_Export(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	characterDomain := newTestCharacterDomain()

	character, err := testutil.SampleCharacter(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	exported, err := characterDomain.Export(ctx, &model.ExportCharacterRequest{ID: character.ID})
	require.NoError(t, err)
	require.Equal(t, character.ID, exported.Character.ID)
	require.Equal(t, "Human", exported.Character.Race.Name)

	pdf, err := characterDomain.ExportPDF(ctx, &model.ExportCharacterPDFRequest{ID: character.ID})
	require.NoError(t, err)
	require.NotEmpty(t, pdf.Data)
	require.Equal(t, "%PDF", string(pdf.Data[:4]))
}
