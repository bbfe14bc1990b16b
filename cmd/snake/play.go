package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	platformterm "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	theme, err := cfg.ToTheme()
	if err != nil {
		return fmt.Errorf("config %s: %w", cfg.Source, err)
	}

	backend := chooseBackend(flagBackend, cfg.Backend)
	if !registry.Exists(backend) {
		return fmt.Errorf("unknown backend %q (run 'snake backends')", backend)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	rules := snake.DefaultRules()
	width, height := terminalSize()
	if width < rules.Width || height < rules.Height {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the field needs %dx%d\n",
			width, height, rules.Width, rules.Height)
		logger.Warn("terminal smaller than field", "width", width, "height", height)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "backend", backend, "config", cfg.Source, "seed", seed)

	surface, err := registry.Create(backend)
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}

	game, err := snake.NewGame(surface, snake.Options{
		Rules:  rules,
		Seed:   seed,
		Theme:  theme,
		Logger: logger,
	})
	if err != nil {
		_ = surface.Close()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := snake.NewSession(game, surface, tui.DefaultKeyMap()).Run(ctx)
	if err := surface.Close(); err != nil {
		logger.Warn("could not restore terminal", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("game aborted: %w", runErr)
	}

	return showGameOver(res, width, height, logger)
}

// chooseBackend prefers the flag, then the config, then the built-in default.
func chooseBackend(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return platformterm.DefaultBackend
}

// terminalSize returns the size of stdout, or the field size when stdout is
// not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		rules := snake.DefaultRules()
		return rules.Width, rules.Height
	}
	return w, h
}

// showGameOver shows the end screen. If it cannot run, the result is printed
// instead; the game itself has already finished normally.
func showGameOver(res snake.Result, width, height int, logger *log.Logger) error {
	if err := tui.RunGameOver(res, width, height); err != nil {
		logger.Warn("game over screen failed", "error", err)
		fmt.Printf("%s\nScore: %d  Length: %d\n", tui.LoserMessage, res.Score, res.Length)
	}
	return nil
}
