package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/paisa/internal/api"
	"github.com/Veraticus/paisa/internal/config"
	"github.com/Veraticus/paisa/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive budget dashboard",
		Long:  `Launch the full-screen dashboard for browsing balances, editing categories, and paying expenses.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return tui.Run(cfg)
		},
	}
}

// newAPIClient builds the budget API client from the active config.
func newAPIClient() (*api.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	client := api.NewClient(cfg.APIBaseURL, cfg.AuthToken, time.Duration(cfg.TimeoutSec)*time.Second)
	return client, cfg, nil
}
