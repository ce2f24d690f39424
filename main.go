package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dharshanroshanth/snake/internal/cli"
	"github.com/dharshanroshanth/snake/internal/config"
	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/web"
)

// main serves the game to browsers.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse("snek", args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(opts.LogLevel, opts.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Address != "" {
		cfg.Server.Address = opts.Address
	}

	return web.NewServer(ctx, *cfg).Run(ctx)
}
