package domain

import (
	"testing"

	"github.com/tavernsheet/backend/internal/model"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/testutil"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestReferenceDomain() ReferenceDomain {
	return NewReferenceDomain(
		repository.NewRaceRepository(&testutil.MockRedisClient{}),
		repository.NewClassRepository(&testutil.MockRedisClient{}),
		repository.NewBackgroundRepository(),
		repository.NewSkillRepository(),
		repository.NewFeatRepository(),
		repository.NewSpellRepository(),
		repository.NewEquipmentRepository(),
		repository.NewUserRepository(),
	)
}

func Test_referenceDomain_adminGating(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referenceDomain := newTestReferenceDomain()

	req := &model.CreateFeatRequest{Name: "Alert"}

	_, err := referenceDomain.CreateFeat(xcontext.WithRequestUserID(ctx, "user1"), req)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	resp, err := referenceDomain.CreateFeat(xcontext.WithRequestUserID(ctx, "admin"), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	feats, err := referenceDomain.GetFeats(ctx, &model.GetFeatsRequest{})
	require.NoError(t, err)
	require.Len(t, feats.Feats, 3)
}

func Test_referenceDomain_publicReads(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referenceDomain := newTestReferenceDomain()

	races, err := referenceDomain.GetRaces(ctx, &model.GetRacesRequest{})
	require.NoError(t, err)
	require.Len(t, races.Races, 2)

	classes, err := referenceDomain.GetClasses(ctx, &model.GetClassesRequest{})
	require.NoError(t, err)
	require.Len(t, classes.Classes, 2)

	spells, err := referenceDomain.GetSpells(ctx, &model.GetSpellsRequest{})
	require.NoError(t, err)
	require.Len(t, spells.Spells, 3)

	// Spells are sorted by level before name.
	require.Equal(t, "Fire Bolt", spells.Spells[0].Name)
}
