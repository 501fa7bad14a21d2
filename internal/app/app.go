package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/syamace/syaOS/internal/shell"
	"github.com/syamace/syaOS/internal/window"
)

// App struct
type App struct {
	ctx context.Context

	windows *window.Registry
	shell   *shell.Service
	log     logger.Logger

	// remote is the address the primary window is pointed at. Overridden
	// in tests.
	remote string
}

// New creates a new App application struct.
func New(shellSvc *shell.Service, log logger.Logger) *App {
	return &App{
		windows: window.NewRegistry(),
		shell:   shellSvc,
		log:     log,
		remote:  RemoteURL,
	}
}

// Startup is called once, after the host windows exist and before the event
// loop accepts input. A setup failure aborts the application.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.windows.Register(window.Main, window.FromContext(ctx))
	a.shell.Startup(ctx)

	if err := a.setup(); err != nil {
		// Nothing is recoverable at this layer; Fatal exits non-zero.
		a.log.Fatal("startup failed: " + err.Error())
	}
}

// setup points the primary window at the hosted application with no title
// bar text. A missing primary window is skipped, not an error.
func (a *App) setup() error {
	win, ok := a.windows.Get(window.Main)
	if !ok {
		return nil
	}

	u, err := url.Parse(a.remote)
	if err != nil {
		return fmt.Errorf("parse remote address: %w", err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("remote address %q is not absolute", a.remote)
	}
	if err := win.SetTitle(""); err != nil {
		return fmt.Errorf("clear window title: %w", err)
	}
	if err := win.Navigate(u); err != nil {
		return fmt.Errorf("navigate to %s: %w", u, err)
	}
	return nil
}

// Shutdown is called at application termination.
func (a *App) Shutdown(ctx context.Context) {
	a.shell.Cleanup()
}
