package main

import (
	"context"
	"time"

	"github.com/abhishek622/hirewizard/internal/auth"
	"github.com/abhishek622/hirewizard/internal/cache"
	"github.com/abhishek622/hirewizard/internal/config"
	"github.com/abhishek622/hirewizard/internal/database"
	"github.com/abhishek622/hirewizard/internal/fetcher"
	"github.com/abhishek622/hirewizard/internal/groq"
	"github.com/abhishek622/hirewizard/internal/handler"
	"github.com/abhishek622/hirewizard/internal/logger"
	"github.com/abhishek622/hirewizard/internal/repository"
	"github.com/abhishek622/hirewizard/internal/session"
	"github.com/abhishek622/hirewizard/internal/wizard"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
	Sweeper    *session.Sweeper
}

func main() {
	cfg := config.MustLoad()

	log, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infow("config loaded", "config", cfg.String())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if cfg.DB.AutoMigrate {
		applied, err := repo.Migrate(ctx)
		if err != nil {
			sugar.Fatal(err)
		}
		sugar.Infow("database migrations applied", "count", applied)
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
	}

	var sessions session.Store
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			sugar.Fatal(err)
		}
		defer rdb.Close()
		app.Redis = rdb
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
		sugar.Info("wizard sessions stored in redis")
	} else {
		mem := session.NewMemoryStore(cfg.Session.TTL)
		app.Sweeper = session.NewSweeper(mem, cfg.Session.SweepSpec, log)
		if err := app.Sweeper.Start(); err != nil {
			sugar.Fatal(err)
		}
		defer app.Sweeper.Stop()
		sessions = mem
		sugar.Info("wizard sessions stored in memory")
	}

	h := &handler.Handler{
		Logger:          log,
		Repository:      repo,
		Sessions:        sessions,
		TokenMaker:      auth.NewJWTMaker(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL),
		Links:           wizard.NewLinkGenerator(cfg.Interview.BaseURL),
		Fetcher:         fetcher.NewFetcher(),
		GenerateTimeout: cfg.Groq.Timeout,
		SearchDebounce:  cfg.Interview.SearchDebounce,
	}
	if cfg.Groq.APIKey != "" {
		h.Generator = groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.Timeout)
	} else {
		sugar.Warn("GROQ_API_KEY not set, AI question generation disabled")
	}
	app.Handler = h

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
