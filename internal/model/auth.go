package model

import (
	"context"
	"net/http"
	"time"

	"github.com/tavernsheet/backend/pkg/xcontext"
)

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct{}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

func (r LoginResponse) CookieInfo(ctx context.Context) []http.Cookie {
	return []http.Cookie{
		{
			Name:     xcontext.Configs(ctx).Auth.AccessToken.Name,
			Value:    r.AccessToken,
			Path:     "/",
			Domain:   "",
			Expires:  time.Now().Add(xcontext.Configs(ctx).Auth.AccessToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		},
	}
}

func (r LoginResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.User.ID}
}

type LogoutRequest struct{}

type LogoutResponse struct{}

func (r LogoutResponse) CookieInfo(ctx context.Context) []http.Cookie {
	return []http.Cookie{
		{
			Name:    xcontext.Configs(ctx).Auth.AccessToken.Name,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		},
	}
}

type GetMeRequest struct{}

type GetMeResponse User
