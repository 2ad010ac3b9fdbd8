package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/model"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/crypto"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, req *model.LogoutRequest) (*model.LogoutResponse, error)
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) AuthDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Name == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty username or password")
	}

	_, err := d.userRepo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This username is already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.Create(ctx, &entity.User{
		Base:         entity.Base{ID: uuid.NewString()},
		Name:         req.Name,
		PasswordHash: hashed,
		Role:         entity.RoleUser,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration,
		model.AccessToken{
			ID:   user.ID,
			Name: user.Name,
			Role: string(user.Role),
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		User:        model.ConvertUser(user),
		AccessToken: token,
	}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	return &model.LogoutResponse{}, nil
}

func (d *authDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMeResponse(model.ConvertUser(user))
	return &resp, nil
}
