package main

import (
	"log/slog"
	"net/http"
	"os"

	"issue-tracker/internal/auth"
	authh "issue-tracker/internal/http/handlers/auth"
	issueh "issue-tracker/internal/http/handlers/issue"
	statsh "issue-tracker/internal/http/handlers/stats"
	teamh "issue-tracker/internal/http/handlers/team"

	"issue-tracker/internal/http/handlers"
	mw "issue-tracker/internal/http/middleware"
	"issue-tracker/internal/lib/config"
	"issue-tracker/internal/lib/sl"
	repo "issue-tracker/internal/repository"
	authsvc "issue-tracker/internal/service/auth"
	issuesvc "issue-tracker/internal/service/issue"
	"issue-tracker/internal/service/stats"
	"issue-tracker/internal/service/team"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Mini Issue Tracker API", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	memberRepo := repo.NewMemberRepo(db, trmsqlx.DefaultCtxGetter)
	issueRepo := repo.NewIssueRepo(db, trmsqlx.DefaultCtxGetter)
	statsRepo := repo.NewStatisticsRepo(db)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTManager(jwtSecret, cfg.Auth.TokenTTL)

	authService := authsvc.NewAuthService(trManager, userRepo, teamRepo, memberRepo, hasher, tokens)
	teamService := team.NewTeamService(trManager, memberRepo)
	issueService := issuesvc.NewIssueService(trManager, issueRepo)
	statsService := stats.NewStatsService(statsRepo)

	authHandler := authh.NewAuthHandler(log, authService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	issueHandler := issueh.NewIssueHandler(log, issueService)
	statsHandler := statsh.NewStatsHandler(log, statsService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// authenticated methods
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(tokens, userRepo))

		r.Route("/api/issues", func(r chi.Router) {
			r.Get("/", issueHandler.List)
			r.Post("/", issueHandler.Create)
			r.Get("/stats", statsHandler.Get)
			r.Get("/{id}", issueHandler.Get)
			r.Put("/{id}", issueHandler.Update)
			r.Delete("/{id}", issueHandler.Delete)
		})

		r.Post("/invite", teamHandler.Invite)
		r.Get("/team", teamHandler.List)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
