package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/rtstart/internal/app"
	"github.com/vk/rtstart/internal/cli"
	"github.com/vk/rtstart/internal/ctxlog"
)

// main is the entrypoint for rtstart.
func main() {
	// Bootstrap logger for argument parsing, before the App builds its own.
	bootstrap := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(bootstrap)

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run writes the greeting, parses args and runs the App. It is split from
// main so tests can drive it without exiting the process.
func run(outW, logW io.Writer, args []string) error {
	if err := app.Greet(outW); err != nil {
		return err
	}

	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	settings, err := cli.Parse(ctx, args)
	if err != nil {
		return err
	}

	cfg := app.DefaultConfig()
	cfg.Settings = settings
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return app.NewApp(logW, appConfig).Run(ctx)
}
