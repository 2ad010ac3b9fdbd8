package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/tavernsheet/backend/config"
	"github.com/tavernsheet/backend/internal/domain"
	"github.com/tavernsheet/backend/internal/domain/progression"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/logger"
	"github.com/tavernsheet/backend/pkg/router"
	"github.com/tavernsheet/backend/pkg/storage"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/tavernsheet/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	ctx context.Context

	userRepo       repository.UserRepository
	characterRepo  repository.CharacterRepository
	raceRepo       repository.RaceRepository
	classRepo      repository.ClassRepository
	backgroundRepo repository.BackgroundRepository
	skillRepo      repository.SkillRepository
	featRepo       repository.FeatRepository
	spellRepo      repository.SpellRepository
	equipmentRepo  repository.EquipmentRepository

	authDomain      domain.AuthDomain
	characterDomain domain.CharacterDomain
	referenceDomain domain.ReferenceDomain

	engine *progression.Engine

	router *router.Router

	configs     config.Configs
	logger      logger.Logger
	storage     storage.Storage
	redisClient xredis.Client

	server *http.Server
}

func (s *srv) loadConfig() {
	s.configs = config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "mysql"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "tavernsheet"),
			Password: getEnv("MYSQL_PASSWORD", "tavernsheet"),
			Database: getEnv("MYSQL_DATABASE", "tavernsheet"),
			LogLevel: getEnv("DATABASE_LOG_LEVEL", "error"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			Cert:         getEnv("SERVER_CERT", "cert"),
			Key:          getEnv("SERVER_KEY", "key"),
			AllowCORS:    []string{getEnv("ALLOW_CORS", "http://localhost:3000")},
			DefaultLimit: parseInt(getEnv("API_DEFAULT_LIMIT", "10")),
			MaxLimit:     parseInt(getEnv("API_MAX_LIMIT", "50")),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "24h")),
			},
		},
		Session: config.SessionConfigs{
			Secret: getEnv("AUTH_SESSION_SECRET", "session_secret"),
			Name:   "auth_session",
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			SSLDisabled:    parseBool(getEnv("STORAGE_SSL_DISABLE", "true")),
		},
		File: config.FileConfigs{
			MaxSize: int64(parseInt(getEnv("MAX_UPLOAD_FILE_SIZE", "2097152"))),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
	}

	s.logger = logger.NewLogger(logLevel(s.configs.Env))

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.characterRepo = repository.NewCharacterRepository()
	s.raceRepo = repository.NewRaceRepository(s.redisClient)
	s.classRepo = repository.NewClassRepository(s.redisClient)
	s.backgroundRepo = repository.NewBackgroundRepository()
	s.skillRepo = repository.NewSkillRepository()
	s.featRepo = repository.NewFeatRepository()
	s.spellRepo = repository.NewSpellRepository()
	s.equipmentRepo = repository.NewEquipmentRepository()
}

func (s *srv) loadDomains() {
	s.engine = progression.NewEngine(
		s.characterRepo,
		s.raceRepo,
		s.classRepo,
		s.featRepo,
		s.skillRepo,
		s.spellRepo,
		progression.NewRoller(),
	)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.characterDomain = domain.NewCharacterDomain(
		s.characterRepo,
		s.raceRepo,
		s.classRepo,
		s.backgroundRepo,
		s.equipmentRepo,
		s.engine,
		s.storage,
	)
	s.referenceDomain = domain.NewReferenceDomain(
		s.raceRepo,
		s.classRepo,
		s.backgroundRepo,
		s.skillRepo,
		s.featRepo,
		s.spellRepo,
		s.equipmentRepo,
		s.userRepo,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}

	return n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}

	return b
}

func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return d
}

func logLevel(env string) int {
	if env == "local" {
		return logger.DEBUG
	}

	return logger.INFO
}
