package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"

	"github.com/iw2rmb/hecto/editor"
	"github.com/iw2rmb/hecto/internal/log"
	"github.com/iw2rmb/hecto/terminal"
)

func run(opts options, out io.Writer) error {
	if opts.debug {
		cleanup, err := log.Init(opts.logFile)
		if err != nil {
			return err
		}
		defer cleanup()
		log.SetMinLevel(opts.logLevel)
	}
	log.Info(log.CatCLI, "starting", "ui", opts.ui, "path", opts.path, "debug", opts.debug)

	cfg := editor.Config{
		Path:             opts.path,
		Fs:               afero.NewOsFs(),
		Out:              out,
		FatalInputErrors: opts.debug,
	}

	var err error
	switch opts.ui {
	case uiTea:
		err = runTea(cfg, out)
	default:
		err = runTcell(cfg)
	}
	if err != nil {
		log.ErrorErr(log.CatCLI, "exit", err)
	}
	return err
}

func runTcell(cfg editor.Config) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	cfg.Terminal = screen
	cfg.Events = screen

	ed, err := editor.New(cfg)
	if err != nil {
		return err
	}
	return ed.Run()
}

func runTea(cfg editor.Config, out io.Writer) error {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	p, err := editor.NewProgram(cfg, editor.DefaultStyle())
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(editor.Program); ok && m.Editor().Quitting() {
		_, _ = io.WriteString(out, editor.Farewell)
	}
	return nil
}
