package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/tui/demo"
)

var errNotInteractive = errors.New("the demo needs an interactive terminal")

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "close log: %v\n", cerr)
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotInteractive
	}

	m, err := demo.New(cfg, log, func() (*config.Config, error) {
		return loadConfig(flags)
	})
	if err != nil {
		return err
	}

	log.Info("starting demo")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo failed")
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// openLogger creates the diagnostics logger. Without a log file, output is
// discarded since the terminal belongs to the UI.
func openLogger(cfg config.LogConfig) (*logger.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	log, err := logger.New(cfg.LoggerOptions(w))
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}
