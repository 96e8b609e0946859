// Package cli wires configuration, storage and the layout engine for the
// dumbed commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/cli/styles"
	"github.com/bnema/dumbed/internal/domain/build"
	"github.com/bnema/dumbed/internal/domain/repository"
	"github.com/bnema/dumbed/internal/infrastructure/config"
	"github.com/bnema/dumbed/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbed/internal/infrastructure/telemetry"
	"github.com/bnema/dumbed/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sqlite.LazyDB
	Layouts repository.LayoutStateRepository

	// Use cases
	SaveLayoutUC    *usecase.SaveLayoutUseCase
	RestoreLayoutUC *usecase.RestoreLayoutUseCase
	ListLayoutsUC   *usecase.ListLayoutsUseCase
	DeleteLayoutUC  *usecase.DeleteLayoutUseCase
	ConfigSchemaUC  *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx               context.Context
	shutdownTelemetry telemetry.ShutdownFunc
}

// NewApp loads the configuration and builds every dependency. The database
// is opened on first use.
func NewApp(info build.Info) (*App, error) {
	cfg, cfgErr := loadConfig()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     info.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutStateRepository(lazyDB)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("layout store configured")

	return &App{
		Config:            cfg,
		Theme:             styles.NewTheme(),
		BuildInfo:         info,
		db:                lazyDB,
		Layouts:           layouts,
		SaveLayoutUC:      usecase.NewSaveLayoutUseCase(layouts),
		RestoreLayoutUC:   usecase.NewRestoreLayoutUseCase(layouts),
		ListLayoutsUC:     usecase.NewListLayoutsUseCase(layouts),
		DeleteLayoutUC:    usecase.NewDeleteLayoutUseCase(layouts),
		ConfigSchemaUC:    usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:               ctx,
		shutdownTelemetry: shutdown,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.shutdownTelemetry != nil {
		if err := a.shutdownTelemetry(a.ctx); err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig initializes the global configuration. On failure it returns the
// defaults together with the error.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		cfg := config.DefaultConfig()
		if dbPath, pathErr := config.GetDatabaseFile(); pathErr == nil {
			cfg.Database.Path = dbPath
		}
		return cfg, err
	}
	return config.Get(), nil
}
