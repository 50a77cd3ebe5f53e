package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/config"
	"github.com/Veraticus/paisa/internal/upi"
)

// Run starts the dashboard TUI and blocks until the user quits.
func Run(cfg config.Config) error {
	client := api.NewClient(cfg.APIBaseURL, cfg.AuthToken, time.Duration(cfg.TimeoutSec)*time.Second)

	// The TUI owns the terminal; stray log lines would corrupt it.
	common.SilenceLogger(io.Discard, slog.LevelError)

	m := newModel(cfg, client, upi.OSLauncher{})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
