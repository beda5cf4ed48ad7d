package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-portal/internal/api/http"
	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/config"
	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/observability"
	"github.com/spec-kit/employee-portal/internal/persistence"
	"github.com/spec-kit/employee-portal/internal/repository"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	timesheetRepo := repository.NewTimesheetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	revocationList := auth.NewRedisRevocationList(redis.Client)

	authzService := service.NewAuthorizationService(roleRepo)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		ProfileRepo:    profileRepo,
		RevocationList: revocationList,
	})
	profileService := service.NewProfileService(profileRepo, authzService)
	leaveService := service.NewLeaveService(service.LeaveDependencies{
		LeaveRepo:  leaveRepo,
		Authorizer: authzService,
		Dispatcher: dispatcher,
	})
	timesheetService := service.NewTimesheetService(service.TimesheetDependencies{
		TimesheetRepo: timesheetRepo,
		Authorizer:    authzService,
		Dispatcher:    dispatcher,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		Authorizer:    authzService,
		ProfileRepo:   profileRepo,
		LeaveRepo:     leaveRepo,
		TimesheetRepo: timesheetRepo,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), profileRepo, revocationList)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Profiles:       handlers.NewProfileHandler(profileService),
		Leaves:         handlers.NewLeavesHandler(leaveService),
		Timesheets:     handlers.NewTimesheetsHandler(timesheetService, leaveService),
		Admin:          handlers.NewAdminHandler(adminService, leaveService, timesheetService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
