// Package cmd implements the nw command line client of the net worth service.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/etnz/networth/agent"
	"github.com/etnz/networth/api"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands, in the order of the help message.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&networthCmd{},
	&historyCmd{},
	&healthCmd{},
	&assetsCmd{},
	&addAssetCmd{},
	&editAssetCmd{},
	&deleteAssetCmd{},
	&debtsCmd{},
	&addDebtCmd{},
	&editDebtCmd{},
	&deleteDebtCmd{},
	&exportCmd{},
	&importCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	apiURL  = flag.String("api-url", "", "Base URL of the service. Defaults to $NW_API_URL, then "+api.DefaultBaseURL)
	timeout = flag.String("timeout", "", "Request timeout, 0 to wait forever. Defaults to $NW_TIMEOUT, then "+api.DefaultTimeout.String())
	verbose = flag.Bool("v", false, "Log debug messages, every request included")
)

// Config is the resolved configuration of a run.
type Config struct {
	APIURL  string
	Timeout time.Duration
	Model   string
	Verbose bool
}

// LoadEnv loads the .env file of the current directory, if any. Variables
// already set in the environment are kept.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfig applies flags over the environment over the defaults.
func resolveConfig(url, timeout string, verbose bool, getenv func(string) string) (Config, error) {
	cfg := Config{
		APIURL:  firstNonEmpty(url, getenv("NW_API_URL"), api.DefaultBaseURL),
		Timeout: api.DefaultTimeout,
		Model:   firstNonEmpty(getenv("NW_GEMINI_MODEL"), agent.DefaultModel),
		Verbose: verbose,
	}
	if t := firstNonEmpty(timeout, getenv("NW_TIMEOUT")); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return cfg, fmt.Errorf("invalid timeout %q: %w", t, err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("invalid timeout %q: must not be negative", t)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// loadConfig resolves the configuration from the command line and the
// environment, and sets up the default logger accordingly.
func loadConfig() (Config, error) {
	cfg, err := resolveConfig(*apiURL, *timeout, *verbose, os.Getenv)
	if err != nil {
		return cfg, err
	}
	slog.SetDefault(newLogger(cfg.Verbose))
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(lockedWriter{stderr}, &slog.HandlerOptions{Level: level}))
}

// newClient returns a client for the configured service.
func newClient() (*api.Client, Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	return api.New(cfg.APIURL, api.WithTimeout(cfg.Timeout), api.WithLogger(slog.Default())), cfg, nil
}
