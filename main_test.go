package main

import (
	"testing"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/syamace/syaOS/internal/app"
	"github.com/syamace/syaOS/internal/config"
	"github.com/syamace/syaOS/internal/shell"
)

// Verifies the wiring main performs without starting the event loop.
func TestServicesConstruct(t *testing.T) {
	log := logger.NewDefaultLogger()

	shellSvc := shell.NewService(config.DefaultScope(), log)
	if shellSvc == nil {
		t.Fatal("failed to create shell service")
	}

	a := app.New(shellSvc, log)
	if a == nil {
		t.Fatal("failed to create app instance")
	}
}
