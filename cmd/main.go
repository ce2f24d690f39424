package main

import (
	"bytes"
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
)

// main plays the game locally, in the terminal or in a desktop window.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
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
	opts, shouldExit, err := cli.Parse("snek-play", args, outW, cli.FrontendTerm, cli.FrontendDesktop)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The terminal frontend owns the screen while it runs, so its logs are
	// held back and written out afterwards.
	var held bytes.Buffer
	logTarget := logW
	if opts.Frontend == cli.FrontendTerm {
		logTarget = &held
		defer func() { held.WriteTo(logW) }()
	}
	ctx = ctxlog.WithLogger(ctx, ctxlog.New(opts.LogLevel, opts.LogFormat, logTarget))

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	return play(ctx, opts.Frontend, *cfg)
}
