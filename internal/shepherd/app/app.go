package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	httpapi "github.com/aussiebroadwan/shepherd/internal/shepherd/http"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/rbac"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/service"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store/drivers/sqlite"
	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the store, signing keys, services and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         *sqlite.Store
	keyManager *jwtx.KeyManager

	accessService       *service.AccessService
	tokenService        *service.TokenService
	userService         *service.UserService
	rolesService        *service.RolesService
	bootstrapService    *service.BootstrapService
	memberService       *service.MemberService
	eventService        *service.EventService
	attendanceService   *service.AttendanceService
	discipleshipService *service.DiscipleshipService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "shepherd",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New opens the database, applies migrations, seeds the role catalog and
// builds the HTTP server. Nothing listens until Run.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	db, err := OpenStore(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	catalog, err := loadCatalog(cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	keyManager, err := InitKeys(app.cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices(catalog)

	ctx := slogx.WithContext(context.Background(), app.logger)
	res, err := app.rolesService.Initialize(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed role catalog: %w", err)
	}
	app.logger.Info("role catalog seeded", "created", res.Created, "updated", res.Updated)

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if err := app.housekeepingService.Start(); err != nil {
		return fmt.Errorf("failed to start housekeeping: %w", err)
	}

	app.logger.Info("shepherd starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down shepherd...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("shepherd stopped")
	return nil
}

// OpenStore opens the SQLite database named by cfg and applies pending
// migrations.
func OpenStore(cfg Config, logger *slog.Logger) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, dirty, err := db.MigrationVersion()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info("database migrations applied successfully", "version", version, "dirty", dirty)
	return db, nil
}

// loadCatalog returns the role catalog override, or nil for the predefined
// catalog.
func loadCatalog(cfg Config) ([]domain.Role, error) {
	if cfg.RoleCatalogFile == "" {
		return nil, nil
	}
	roles, err := rbac.LoadCatalog(cfg.RoleCatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load role catalog %s: %w", cfg.RoleCatalogFile, err)
	}
	return roles, nil
}

func (app *Application) initServices(catalog []domain.Role) {
	app.accessService = &service.AccessService{Store: app.db}
	app.tokenService = &service.TokenService{
		KeyManager: app.keyManager,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.rolesService = &service.RolesService{Store: app.db, Catalog: catalog}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Roles: app.rolesService,
		Token: app.cfg.BootstrapToken,
	}
	app.memberService = &service.MemberService{Store: app.db}
	app.eventService = &service.EventService{Store: app.db, Issuer: app.cfg.Issuer}
	app.attendanceService = &service.AttendanceService{Store: app.db}
	app.discipleshipService = &service.DiscipleshipService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingSchedule,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AccessService = app.accessService
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.RolesService = app.rolesService
	router.BootstrapService = app.bootstrapService
	router.MemberService = app.memberService
	router.EventService = app.eventService
	router.AttendanceService = app.attendanceService
	router.DiscipleshipService = app.discipleshipService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
