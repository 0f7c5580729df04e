package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/reports"
	"resume-dashboard/internal/requestlog"
	"resume-dashboard/internal/services/health"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/server"
	"resume-dashboard/internal/shared/storage/db"
	"resume-dashboard/internal/shared/storage/object"
	localstore "resume-dashboard/internal/shared/storage/object/local"
	s3store "resume-dashboard/internal/shared/storage/object/s3"
	"resume-dashboard/internal/shared/telemetry"
	"resume-dashboard/internal/web"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Redis    *redis.Client
	Store    object.Store
	Analyzer *analyzer.Client
	Sessions sessions.Store
	Requests requestlog.Repo
	Reports  *reports.Service
	Health   *health.Service
	Handler  *web.Handler
}

// Build prepares dependencies and the router. Dev-like environments fall back to
// in-memory stores when Postgres or Redis are unavailable.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	client, err := BuildAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Store:    store,
		Analyzer: client,
		Health:   health.NewService(),
	}
	app.Sessions, app.Redis, err = buildSessions(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	if sqlDB != nil {
		app.Requests = &requestlog.PGRepo{DB: sqlDB}
	} else {
		app.Requests = requestlog.NewMemoryRepo()
	}
	app.Reports = reports.NewService(client, store, cfg.ReportArchive)

	app.Health.Register("analysis_api", client.Health)
	if sqlDB != nil {
		app.Health.Register("database", sqlDB.PingContext)
	}
	if app.Redis != nil {
		app.Health.Register("redis", func(ctx context.Context) error {
			return app.Redis.Ping(ctx).Err()
		})
	}

	app.Handler = &web.Handler{
		Analyzer:       client,
		Reports:        app.Reports,
		Sessions:       app.Sessions,
		Progress:       sessions.NewProgress(),
		Requests:       app.Requests,
		Inspect:        cfg.InspectUploads,
		ExposeRequests: cfg.IsDevLike(),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Web:    app.Handler,
		Health: app.Health,
	})

	return app, nil
}

// BuildAnalyzer constructs the analysis API client from configuration.
func BuildAnalyzer(cfg config.Config) (*analyzer.Client, error) {
	opts := analyzer.Options{
		BaseURL: cfg.AnalysisAPIURL,
		APIKey:  cfg.AnalysisAPIKey,
		Timeout: cfg.AnalysisAPITimeout,
	}
	if strings.TrimSpace(cfg.AnalysisOAuthTokenURL) != "" {
		opts.OAuth = &analyzer.OAuthOptions{
			TokenURL:     cfg.AnalysisOAuthTokenURL,
			ClientID:     cfg.AnalysisOAuthClientID,
			ClientSecret: cfg.AnalysisOAuthClientSecret,
		}
	}
	return analyzer.New(opts)
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.db_fallback", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	defaults := db.DefaultServerOptions()
	if db.IsLambdaRuntime() {
		defaults = db.DefaultLambdaOptions()
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(defaults))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{"err": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildSessions uses Redis when REDIS_ADDR is set. An unreachable Redis is
// fatal outside dev-like environments.
func buildSessions(ctx context.Context, cfg config.Config) (sessions.Store, *redis.Client, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return sessions.NewMemoryStore(cfg.SessionTTL, nil), nil, nil
	}
	client := sessions.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	store := sessions.NewRedisStore(client, cfg.SessionTTL)
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		if !cfg.IsDevLike() {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		telemetry.Warn("bootstrap.redis_fallback", map[string]any{"addr": cfg.RedisAddr, "err": err})
		return sessions.NewMemoryStore(cfg.SessionTTL, nil), nil, nil
	}
	return store, client, nil
}

func closeDB(sqlDB *sql.DB) {
	if sqlDB != nil {
		_ = sqlDB.Close()
	}
}
