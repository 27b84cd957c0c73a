// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/accessible-ui/tabs/internal/application/usecase"
	"github.com/accessible-ui/tabs/internal/cli/styles"
	"github.com/accessible-ui/tabs/internal/domain/build"
	"github.com/accessible-ui/tabs/internal/infrastructure/config"
	"github.com/accessible-ui/tabs/internal/infrastructure/persistence/sqlite"
	"github.com/accessible-ui/tabs/internal/logging"
)

const (
	dataDirPerm = 0o755
	logFilePerm = 0o644
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	db            *sqlite.LazyDB

	// Use cases
	TabState *usecase.TabStateUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// An empty configDir selects the XDG config directory.
func NewApp(configDir string) (*App, error) {
	mgr, err := config.NewManager(configDir)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	// The TUI owns the terminal, so logs go to a file.
	out, logCleanup, err := openLogFile(cfg.Logging.File)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     out,
	})
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	if cfg.Database.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), dataDirPerm); err != nil {
			logCleanup()
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		// Opened on first use so commands that never touch state stay fast.
		app.db = sqlite.NewLazyDB(cfg.Database.Path)
		app.TabState = usecase.NewTabStateUseCase(sqlite.NewActiveTabRepository(app.db))
		logger.Debug().Str("db_path", cfg.Database.Path).Msg("tab state persistence enabled")
	}

	return app, nil
}

func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		defaultPath, err := config.GetLogFile()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log file: %w", err)
		}
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), dataDirPerm); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
