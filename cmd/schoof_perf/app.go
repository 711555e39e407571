package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx      context.Context
	settings settings
	view     *ChartView
}

// NewApp creates the viewer backend around an already computed view.
func NewApp(s settings, view *ChartView) *App {
	return &App{settings: s, view: view}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.WindowSetTitle(a.ctx, fmt.Sprintf("Schoof Perf - %s", a.settings.InputPath))
}

func (a *App) sendStatus(message string) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "statusUpdate", message)
	}
	log.Info(message)
}

// GetChart returns the chart computed at launch.
func (a *App) GetChart() (*ChartView, error) {
	if a.view == nil {
		return a.Reload()
	}
	return a.view, nil
}

// Reload re-reads the input file and redraws the chart.
// On failure the previous chart stays on screen.
func (a *App) Reload() (*ChartView, error) {
	a.sendStatus(fmt.Sprintf("Reloading %s", a.settings.InputPath))
	view, err := buildView(a.settings)
	if err != nil {
		errMsg := fmt.Sprintf("Reload failed: %v", err)
		a.sendStatus(errMsg)
		return nil, err
	}
	a.view = view
	a.sendStatus(fmt.Sprintf("Plotted %d points, slope %.4f", view.Points, view.Slope))
	return view, nil
}
