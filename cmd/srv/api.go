package main

import (
	"fmt"
	"net/http"

	"github.com/tavernsheet/backend/internal/middleware"
	"github.com/tavernsheet/backend/pkg/router"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedisClient()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := s.configs.ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on %s:%s", cfg.Host, cfg.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(xcontext.DB(s.ctx), s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetCookies())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
	}

	// These following APIs need authentication with Access Token.
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	needAuthRouter := s.router.Branch()
	needAuthRouter.Before(authVerifier.Middleware())
	{
		router.GET(needAuthRouter, "/getMe", s.authDomain.GetMe)

		// Character API
		router.POST(needAuthRouter, "/createCharacter", s.characterDomain.Create)
		router.GET(needAuthRouter, "/getCharacter", s.characterDomain.Get)
		router.GET(needAuthRouter, "/getMyCharacters", s.characterDomain.GetMy)
		router.POST(needAuthRouter, "/updateCharacter", s.characterDomain.Update)
		router.POST(needAuthRouter, "/deleteCharacter", s.characterDomain.Delete)
		router.GET(needAuthRouter, "/exportCharacter", s.characterDomain.Export)
		router.GET(needAuthRouter, "/exportCharacterPDF", s.characterDomain.ExportPDF)
		router.POST(needAuthRouter, "/uploadPortrait", s.characterDomain.UploadPortrait)

		// Reference data API (create only by admins, checked in domain).
		router.POST(needAuthRouter, "/createRace", s.referenceDomain.CreateRace)
		router.POST(needAuthRouter, "/createClass", s.referenceDomain.CreateClass)
		router.POST(needAuthRouter, "/createBackground", s.referenceDomain.CreateBackground)
		router.POST(needAuthRouter, "/createSkill", s.referenceDomain.CreateSkill)
		router.POST(needAuthRouter, "/createFeat", s.referenceDomain.CreateFeat)
		router.POST(needAuthRouter, "/createSpell", s.referenceDomain.CreateSpell)
		router.POST(needAuthRouter, "/createEquipment", s.referenceDomain.CreateEquipment)
	}

	// Logout clears the cookie even without a valid token.
	logoutRouter := s.router.Branch()
	logoutRouter.After(middleware.HandleSetCookies())
	router.POST(logoutRouter, "/logout", s.authDomain.Logout)

	// Public API.
	router.GET(s.router, "/getRaces", s.referenceDomain.GetRaces)
	router.GET(s.router, "/getClasses", s.referenceDomain.GetClasses)
	router.GET(s.router, "/getBackgrounds", s.referenceDomain.GetBackgrounds)
	router.GET(s.router, "/getSkills", s.referenceDomain.GetSkills)
	router.GET(s.router, "/getFeats", s.referenceDomain.GetFeats)
	router.GET(s.router, "/getSpells", s.referenceDomain.GetSpells)
	router.GET(s.router, "/getEquipment", s.referenceDomain.GetEquipment)
}
