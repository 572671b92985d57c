package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/api/routes"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database"
	"teampulse-backend/internal/repository"
	"teampulse-backend/internal/service"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var infraModule = fx.Options(
	fx.Invoke(initSentry),
	fx.Provide(provideDB),
	fx.Provide(provideRevocation),
)

var repositoryModule = fx.Provide(
	provideUserRepo,
	provideTeamRepo,
	provideMoodRepo,
	provideWorkloadRepo,
	providePulseLogRepo,
	provideFeedbackRepo,
	provideEventLogRepo,
)

var serviceModule = fx.Options(
	fx.Provide(service.NewValidator),
	fx.Provide(provideAuthService),
	fx.Provide(service.NewEventLogService),
	fx.Provide(
		provideEventRecorder,
		provideUserService,
		provideTeamService,
		provideMoodService,
		provideWorkloadService,
		providePulseLogService,
		provideFeedbackService,
		provideEventLogService,
	),
)

var handlerModule = fx.Options(
	fx.Provide(provideAuthMiddleware),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(handlers.NewHealthHandler),
	fx.Provide(
		handlers.NewAccountHandler,
		handlers.NewUserHandler,
		handlers.NewTeamHandler,
		handlers.NewMoodHandler,
		handlers.NewWorkloadHandler,
		handlers.NewPulseLogHandler,
		handlers.NewFeedbackHandler,
		handlers.NewEventLogHandler,
	),
)

var serverModule = fx.Options(
	fx.Provide(provideRouter),
	fx.Invoke(startServer),
)

func initSentry(lc fx.Lifecycle, cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     "teampulse-backend@" + handlers.Version,
	}); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
	return nil
}

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{AutoMigrate: true})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

// provideRevocation picks the refresh token revocation store. The pinger is nil
// unless redis backs the store.
func provideRevocation(lc fx.Lifecycle, cfg *config.Config) (auth.RevocationStore, handlers.Pinger) {
	if !cfg.RedisEnabled {
		logrus.Info("Redis disabled, revoked refresh tokens are kept in memory")
		return auth.NewMemoryRevocationStore(), nil
	}

	store := auth.NewRedisRevocationStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Redis is not reachable yet")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, store
}

func provideUserRepo(db *gorm.DB) repository.UserRepositoryInterface {
	return repository.NewUserRepository(db)
}

func provideTeamRepo(db *gorm.DB) repository.TeamRepositoryInterface {
	return repository.NewTeamRepository(db)
}

func provideMoodRepo(db *gorm.DB) repository.MoodRepositoryInterface {
	return repository.NewMoodRepository(db)
}

func provideWorkloadRepo(db *gorm.DB) repository.WorkloadRepositoryInterface {
	return repository.NewWorkloadRepository(db)
}

func providePulseLogRepo(db *gorm.DB) repository.PulseLogRepositoryInterface {
	return repository.NewPulseLogRepository(db)
}

func provideFeedbackRepo(db *gorm.DB) repository.FeedbackRepositoryInterface {
	return repository.NewFeedbackRepository(db)
}

func provideEventLogRepo(db *gorm.DB) repository.EventLogRepositoryInterface {
	return repository.NewEventLogRepository(db)
}

func provideAuthService(cfg *config.Config, store auth.RevocationStore) (*auth.AuthService, error) {
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	return auth.NewAuthService(authConfig, store)
}

func provideEventRecorder(events *service.EventLogService) service.EventRecorder {
	return events
}

func provideEventLogService(events *service.EventLogService) service.EventLogServiceInterface {
	return events
}

func provideUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, tokens *auth.AuthService, events service.EventRecorder, v *validator.Validate) service.UserServiceInterface {
	return service.NewUserService(repo, teamRepo, tokens, events, v)
}

func provideTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, events service.EventRecorder, v *validator.Validate) service.TeamServiceInterface {
	return service.NewTeamService(repo, userRepo, events, v)
}

func provideMoodService(repo repository.MoodRepositoryInterface, v *validator.Validate) service.MoodServiceInterface {
	return service.NewMoodService(repo, v)
}

func provideWorkloadService(repo repository.WorkloadRepositoryInterface, v *validator.Validate) service.WorkloadServiceInterface {
	return service.NewWorkloadService(repo, v)
}

func providePulseLogService(repo repository.PulseLogRepositoryInterface, teamRepo repository.TeamRepositoryInterface, v *validator.Validate) service.PulseLogServiceInterface {
	return service.NewPulseLogService(repo, teamRepo, v)
}

func provideFeedbackService(repo repository.FeedbackRepositoryInterface, teamRepo repository.TeamRepositoryInterface, v *validator.Validate) service.FeedbackServiceInterface {
	return service.NewFeedbackService(repo, teamRepo, v)
}

func provideAuthMiddleware(authService *auth.AuthService, users repository.UserRepositoryInterface) *auth.AuthMiddleware {
	return auth.NewAuthMiddleware(authService, users)
}

type routerParams struct {
	fx.In

	Config         *config.Config
	AuthMiddleware *auth.AuthMiddleware
	Health         *handlers.HealthHandler
	Token          *auth.AuthHandler
	Account        *handlers.AccountHandler
	User           *handlers.UserHandler
	Team           *handlers.TeamHandler
	Mood           *handlers.MoodHandler
	Workload       *handlers.WorkloadHandler
	PulseLog       *handlers.PulseLogHandler
	Feedback       *handlers.FeedbackHandler
	EventLog       *handlers.EventLogHandler
}

func provideRouter(p routerParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return routes.SetupRoutes(p.Config, p.AuthMiddleware, routes.Handlers{
		Health:   p.Health,
		Token:    p.Token,
		Account:  p.Account,
		User:     p.User,
		Team:     p.Team,
		Mood:     p.Mood,
		Workload: p.Workload,
		PulseLog: p.PulseLog,
		Feedback: p.Feedback,
		EventLog: p.EventLog,
	})
}

func startServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logrus.Infof("Starting server on port %s", cfg.Port)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.WithError(err).Fatal("Server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
