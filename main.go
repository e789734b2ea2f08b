package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ytget/social-downloader/internal/api"
	"github.com/ytget/social-downloader/internal/config"
	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/metrics"
	"github.com/ytget/social-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.social-downloader"
	AppName = "Social Downloader"

	WindowWidth  = 720
	WindowHeight = 640
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Environment wins over stored preferences
	settings := config.NewSettings(myApp)
	env, err := config.LoadEnv()
	if err != nil {
		log.Printf("Ignoring environment file: %v", err)
	}
	settings.ApplyEnv(env)

	client := api.NewClient(api.ClientConfig{BaseURL: settings.GetAPIBaseURL()})
	controller := download.NewController(client)

	registry := prometheus.NewRegistry()
	controller.SetObserver(metrics.NewRecorder(registry))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if addr := settings.GetMetricsAddr(); addr != "" {
		go metrics.Serve(ctx, metrics.NewServer(addr, registry))
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, controller, settings, client)

	log.Printf("Using backend %s", client.BaseURL())
	myWindow.ShowAndRun()
}
