package client

import (
	"context"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/internal/tui"
	"github.com/pkazancev/gamideck/internal/workers"
)

// App is the composition root of the client process: restore the persisted
// session, start the background workers, hand control to the UI, and drain
// everything on the way out.
type App struct {
	session *session.Store
	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(sessionStore *session.Store, ui *tui.TUI, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{
		session: sessionStore,
		ui:      ui,
		workers: workers,
		logger:  logger,
	}
}

// Run implements [Client]. A failed session restore is not fatal: the UI
// simply starts on the sign-in page.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.session.Init(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("starting without a restored session")
	}

	a.workers.Run(ctx)

	err := a.ui.Run(ctx)

	// Stop the workers and any in-flight resync before reporting back.
	cancel()
	a.session.Wait()

	return err
}
