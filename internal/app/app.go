// Package app assembles the file manager: configuration, logging, theme,
// directory watcher and the bubbletea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"zeta/internal/config"
	"zeta/internal/logging"
	"zeta/internal/theme"
	"zeta/internal/ui"
	"zeta/internal/watch"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("zeta must be run in an interactive terminal")

// Run starts the UI on in/out and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, in, out *os.File) (err error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}
	if err := logging.Configure(logging.DefaultPath(), os.Getenv("ZETA_DEBUG") != ""); err != nil {
		fmt.Fprintf(os.Stderr, "zeta: logging disabled: %v\n", err)
	}
	defer logging.Close()
	defer func() {
		if r := recover(); r != nil {
			logging.L().Error().Interface("panic", r).Msg("crashed")
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.L().Info().Str("left", cfg.LeftDir).Str("right", cfg.RightDir).Str("log", cfg.LogPath).Msg("starting")

	th, err := theme.Load(cfg.ThemePath)
	if err != nil {
		logging.L().Warn().Err(err).Str("path", cfg.ThemePath).Msg("theme fallback")
	}

	opts := ui.Options{
		LeftDir:  cfg.LeftDir,
		RightDir: cfg.RightDir,
		Theme:    th,
		Context:  ctx,
	}
	w, err := watch.New(watch.DefaultWindow)
	if err != nil {
		logging.L().Warn().Err(err).Msg("directory watcher unavailable")
	} else {
		defer w.Close()
		opts.Watch = w.Watch
	}

	p := tea.NewProgram(ui.New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if w != nil {
		pumpCtx, stop := context.WithCancel(ctx)
		defer stop()
		go pump(pumpCtx, w.Changes(), p.Send)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	logging.L().Info().Msg("exiting")
	return nil
}

// pump forwards directory changes to the program until ctx ends or changes
// is closed.
func pump(ctx context.Context, changes <-chan string, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case dir, ok := <-changes:
			if !ok {
				return
			}
			send(ui.DirChangedMsg{Dir: dir})
		}
	}
}
