// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/paisa/internal/common"
)

// Defaults for settings the config file may omit.
const (
	DefaultCurrency   = "INR"
	DefaultPaymentApp = "net.one97.paytm"
	DefaultTimeoutSec = 10
)

// Config holds everything the client needs to talk to the budget API and
// hand off to the external payment application.
type Config struct {
	APIBaseURL string
	AuthToken  string
	PaymentApp string
	Currency   string
	TimeoutSec int
}

// Load reads the active viper configuration into a Config and validates
// the required fields.
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL: strings.TrimRight(viper.GetString("api.base_url"), "/"),
		AuthToken:  viper.GetString("api.token"),
		PaymentApp: viper.GetString("payment.app"),
		Currency:   viper.GetString("payment.currency"),
		TimeoutSec: viper.GetInt("api.timeout_seconds"),
	}

	if cfg.PaymentApp == "" {
		cfg.PaymentApp = DefaultPaymentApp
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = DefaultTimeoutSec
	}

	if cfg.APIBaseURL == "" {
		return Config{}, common.ErrMissingConfig
	}

	return cfg, nil
}

// ExpandPath resolves ~ and $VAR references in a configured file path.
// An unresolvable home directory leaves the tilde in place.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
