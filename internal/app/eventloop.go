package app

import (
	"time"

	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/renderer/backend"
)

// eventLoop is the main application loop. Key presses arrive from the
// backend's polling goroutine; save results are polled once per frame.
func (app *Application) eventLoop() error {
	frameTicker := time.NewTicker(app.frame)
	defer frameTicker.Stop()

	var updates <-chan config.Config
	var reloadErrs <-chan error
	if app.reloads != nil {
		updates = app.reloads.Updates()
		reloadErrs = app.reloads.Errors()
	}

	events := app.backend.Events()
	app.render()

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				return err
			}
			app.render()

		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			app.applyConfig(cfg)

		case err, ok := <-reloadErrs:
			if !ok {
				reloadErrs = nil
				continue
			}
			app.logger.WithComponent("config").Warn("reload failed: %v", err)
			app.machine.Session().SetStatus(statusError + err.Error())

		case <-frameTicker.C:
			if err := app.pollSaves(); err != nil {
				return err
			}
			app.render()
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		intent := app.machine.HandleKey(ev.Key)
		return app.handleIntent(intent)
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		return nil
	default:
		return nil
	}
}
