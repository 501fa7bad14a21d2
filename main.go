// Package main is the desktop entrypoint for syaOS.
//
// The window itself shows the hosted web application; this process only
// provides the native shell and the command capability the page may call.
package main

import (
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/syamace/syaOS/internal/app"
	"github.com/syamace/syaOS/internal/config"
	"github.com/syamace/syaOS/internal/shell"
)

// Loading page shown until startup navigates to the hosted application.
//
//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log := logger.NewDefaultLogger()

	scope, err := config.NewManager().Load()
	if err != nil {
		log.Fatal("invalid capability configuration: " + err.Error())
	}

	shellSvc := shell.NewService(scope, log)
	a := app.New(shellSvc, log)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "syaOS",
		Width:  1280,
		Height: 800,

		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		Logger: log,

		OnStartup:  a.Startup,
		OnShutdown: a.Shutdown,

		Bind: []interface{}{
			a,
			shellSvc,
		},
	})

	if err != nil {
		log.Fatal("error while running application: " + err.Error())
	}
}
