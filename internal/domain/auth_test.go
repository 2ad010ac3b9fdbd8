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

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "gandalf",
		Password: "you-shall-not-pass",
	})
	require.NoError(t, err)

	// The username is now taken.
	_, err = authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "gandalf",
		Password: "another",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// Wrong password.
	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Name:     "gandalf",
		Password: "wrong",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	resp, err := authDomain.Login(ctx, &model.LoginRequest{
		Name:     "gandalf",
		Password: "you-shall-not-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "gandalf", resp.User.Name)

	var token model.AccessToken
	require.NoError(t, xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &token))
	require.Equal(t, resp.User.ID, token.ID)

	me, err := authDomain.GetMe(xcontext.WithRequestUserID(ctx, resp.User.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, "gandalf", me.Name)
}

func Test_authDomain_Register_emptyPassword(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := NewAuthDomain(repository.NewUserRepository())

	_, err := authDomain.Register(ctx, &model.RegisterRequest{Name: "frodo"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
