package main

import (
	"context"
	"fmt"

	"github.com/dharshanroshanth/snake/internal/cli"
	"github.com/dharshanroshanth/snake/internal/config"
	"github.com/dharshanroshanth/snake/internal/desktop"
	"github.com/dharshanroshanth/snake/internal/term"
	"github.com/gdamore/tcell/v2"
)

// play hands the game to the chosen frontend.
func play(ctx context.Context, frontend string, cfg config.Config) error {
	switch frontend {
	case cli.FrontendTerm:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		defer screen.Fini()
		return term.Run(ctx, screen, cfg.Game)
	case cli.FrontendDesktop:
		return desktop.Run(ctx, cfg)
	}
	return fmt.Errorf("unknown frontend %q", frontend)
}
