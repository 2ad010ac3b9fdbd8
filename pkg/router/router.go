package router

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/cors"
	"github.com/tavernsheet/backend/config"
	"github.com/tavernsheet/backend/pkg/authenticator"
	"github.com/tavernsheet/backend/pkg/logger"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after a handler. It can derive a new context
// which is passed to the next middleware and the handler.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc always runs at the end of a request, even if a middleware or the
// handler failed.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db           *gorm.DB
	cfg          config.Configs
	logger       logger.Logger
	tokenEngine  authenticator.TokenEngine
	sessionStore sessions.Store

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	r := &Router{
		mux:          http.NewServeMux(),
		db:           db,
		cfg:          cfg,
		logger:       logger,
		tokenEngine:  authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
		sessionStore: sessions.NewCookieStore([]byte(cfg.Session.Secret)),
	}

	r.AddCloser(handleResponse())
	return r
}

// Branch returns a new Router sharing the same mux and a copy of the current
// middleware chain, so route groups can add their own middlewares without
// affecting each other.
func (r *Router) Branch() *Router {
	branch := &Router{
		mux:          r.mux,
		db:           r.db,
		cfg:          r.cfg,
		logger:       r.logger,
		tokenEngine:  r.tokenEngine,
		sessionStore: r.sessionStore,
	}

	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Static(pattern, root string) {
	r.mux.Handle(pattern, http.FileServer(http.Dir(root)))
}

func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   r.cfg.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, r.sessionStore)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithRoundTrip(ctx)

		defer func() {
			for _, closer := range r.closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			xcontext.SetError(ctx, errMethodNotSupported)
			return
		}

		for _, before := range r.befores {
			newCtx, err := before(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		var body Request
		if err := bindRequest(req, &body); err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		resp, err := handler(ctx, &body)
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		xcontext.SetResponse(ctx, resp)

		for _, after := range r.afters {
			newCtx, err := after(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}
	}
}
