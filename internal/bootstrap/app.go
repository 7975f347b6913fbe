package bootstrap

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"recruitment-backend/internal/applications"
	"recruitment-backend/internal/auth"
	"recruitment-backend/internal/files"
	"recruitment-backend/internal/jobs"
	"recruitment-backend/internal/screening"
	sharedauth "recruitment-backend/internal/shared/auth"
	"recruitment-backend/internal/shared/config"
	"recruitment-backend/internal/shared/server"
	"recruitment-backend/internal/shared/storage/db"
	localstore "recruitment-backend/internal/shared/storage/object/local"
	"recruitment-backend/internal/shared/telemetry"
	"recruitment-backend/internal/users"
)

// App is the fully wired application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Build wires repositories, services and handlers. With no DATABASE_URL, or
// when the database is unreachable, everything runs on in-memory repositories
// and a seeded admin account for local development.
func Build(ctx context.Context, cfg config.Config) *App {
	sqlDB := openDatabase(ctx, cfg)

	var (
		userRepo users.Repo
		jobRepo  jobs.Repo
		appRepo  applications.Repo
		fileRepo files.Repo
	)
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		jobRepo = &jobs.PGRepo{DB: sqlDB}
		appRepo = &applications.PGRepo{DB: sqlDB}
		fileRepo = &files.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
		fileRepo = files.NewMemoryRepo()
	}

	store := localstore.New(cfg.LocalStoreDir)

	usersSvc := users.NewService(userRepo, cfg.DefaultPassword)
	jobsSvc := jobs.NewService(jobRepo)
	filesSvc := files.NewService(store, fileRepo)
	appsSvc := applications.NewService(appRepo, jobsSvc, filesSvc, screening.KeywordScorer{})

	signer := sharedauth.NewSigner(cfg.JWTSecret, 24*time.Hour)
	sessions := auth.NewSessionStore(cfg.SessionTTL)
	authSvc := auth.NewService(usersSvc, signer, sessions)

	if sqlDB == nil && cfg.Env != "production" {
		seedAdmin(ctx, usersSvc)
	}

	router := server.NewRouter(cfg, server.Deps{
		Tokens:       signer,
		Sessions:     sessions,
		Auth:         auth.NewHandler(authSvc),
		Users:        users.NewHandler(usersSvc),
		Jobs:         jobs.NewHandler(jobsSvc, usersSvc, appsSvc),
		Applications: applications.NewHandler(appsSvc, usersSvc),
		Files:        files.NewHandler(filesSvc),
	})

	return &App{Router: router, DB: sqlDB}
}

func openDatabase(ctx context.Context, cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		telemetry.Info("bootstrap.memory_mode", map[string]any{"reason": "no DATABASE_URL"})
		return nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Warn("bootstrap.db_unreachable", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Warn("bootstrap.migrations_failed", map[string]any{"error": err.Error()})
		sqlDB.Close()
		return nil
	}
	return sqlDB
}

// seedAdmin creates the dev admin account so a fresh memory-mode instance is
// immediately usable. Login with admin@local / the default password.
func seedAdmin(ctx context.Context, usersSvc *users.Service) {
	admin, err := usersSvc.Create(ctx, "admin", "admin@local", users.RoleAdmin)
	if err != nil {
		telemetry.Warn("bootstrap.seed_admin_failed", map[string]any{"error": err.Error()})
		return
	}
	telemetry.Info("bootstrap.seed_admin", map[string]any{"email": admin.Email})
}
