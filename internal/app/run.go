package app

import (
	"context"

	"github.com/vk/rtstart/internal/ctxlog"
)

// Run reports the resolved settings. Nothing is scheduled from them yet.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run started.")

	s := a.config.Settings
	logger.Debug("Startup settings resolved.",
		"settings", s,
		"interval", s.Interval(),
		"log_threshold", s.LogThreshold(),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug("App.Run finished.")
	return nil
}
