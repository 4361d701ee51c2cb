// Package tui implements the interactive terminal interface: a welcome
// menu, single-number analysis, and range analysis with scatter, histogram,
// and table views of the results.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/686f6c6/goldbach/internal/config"
	"github.com/686f6c6/goldbach/internal/logging"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	log     *logging.Logger
}

// New creates a new TUI application.
func New(cfg *config.Config, log *logging.Logger) *App {
	return &App{
		model: NewModel(cfg, log),
		log:   log,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit message so the terminal is
	// restored before the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
