package middleware

import (
	"context"
	"net/http"

	"github.com/tavernsheet/backend/pkg/router"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type CookieResponse interface {
	CookieInfo(ctx context.Context) []http.Cookie
}

func HandleSetCookies() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		cookieResp, ok := xcontext.GetResponse(ctx).(CookieResponse)
		if ok {
			for _, cookie := range cookieResp.CookieInfo(ctx) {
				cookie := cookie
				http.SetCookie(xcontext.HTTPWriter(ctx), &cookie)
			}
		}

		return nil, nil
	}
}
