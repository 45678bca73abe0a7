package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/diogo/mindmate/internal/api"
	"github.com/diogo/mindmate/internal/config"
	"github.com/diogo/mindmate/internal/preference"
	"github.com/diogo/mindmate/internal/render"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	endpoint string
	timeout  time.Duration
	verbose  bool
}

// app is the per-invocation state resolved from flags, environment and config
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	deps    *Dependencies
	storage preference.Storage

	client  api.ChatClient
	closers []func() error
}

// resolveConfig loads .env, the config file and environment overrides, then
// applies the flags on top
func (o *globalOptions) resolveConfig() (config.Config, []error) {
	var warnings []error
	if err := config.LoadDotEnv(); err != nil {
		warnings = append(warnings, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		warnings = append(warnings, err)
	}

	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	if o.timeout > 0 {
		cfg.TimeoutSeconds = int(o.timeout.Round(time.Second) / time.Second)
		if cfg.TimeoutSeconds < 1 {
			cfg.TimeoutSeconds = 1
		}
	}
	if o.verbose {
		cfg.Verbose = true
	}
	return cfg, warnings
}

// open prepares logging, storage and theme for a command run
func (o *globalOptions) open(deps *Dependencies) (*app, error) {
	cfg, warnings := o.resolveConfig()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, deps: deps, closers: []func() error{closeLog}}

	for _, w := range warnings {
		logger.Warn("configuration problem, using defaults", "error", w)
	}

	if cfg.DarkPalette != "" && !render.SetDarkPalette(cfg.DarkPalette) {
		logger.Warn("unknown dark palette", "name", cfg.DarkPalette, "available", render.DarkPaletteNames())
	}

	a.storage = deps.Storage
	if a.storage == nil {
		path, err := config.GetStoragePath()
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to locate preference storage: %w", err)
		}
		a.storage = preference.NewFileStorage(path)
	}

	logger.Debug("configuration resolved",
		"endpoint", cfg.Endpoint,
		"timeout", cfg.Timeout(),
		"version", Version,
	)
	return a, nil
}

// chatClient returns the injected client or builds one from the config
func (a *app) chatClient() (api.ChatClient, error) {
	if a.client != nil {
		return a.client, nil
	}
	if a.deps.Client != nil {
		a.client = a.deps.Client
		return a.client, nil
	}

	client, err := api.NewClient(
		api.WithEndpoint(a.cfg.Endpoint),
		api.WithTimeout(a.cfg.Timeout()),
		api.WithLogger(a.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	a.closers = append(a.closers, func() error {
		client.Close()
		return nil
	})
	a.client = client
	return client, nil
}

// Close releases the client and the log file
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}
