// config_watcher.go: hot-reload of the harness configuration via Argus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/argus"
)

// ConfigWatcherOptions tunes the Argus watcher behind a ConfigWatcher.
type ConfigWatcherOptions struct {
	// PollInterval is how often Argus checks the file for changes.
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`

	// CacheTTL is the Argus stat-cache lifetime.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// DefaultConfigWatcherOptions returns conservative watcher defaults suited to
// a config file that changes rarely.
func DefaultConfigWatcherOptions() ConfigWatcherOptions {
	return ConfigWatcherOptions{
		PollInterval: 2 * time.Second,
		CacheTTL:     time.Second,
	}
}

// ConfigWatcher keeps a harness Config synchronized with a file on disk.
//
// The watcher loads the file on Start, then swaps in a freshly validated
// Config whenever Argus reports a change. A change that fails to parse or
// validate is logged and skipped; the last good configuration stays current.
// Runs already in flight are never affected: Current is read at Run entry,
// matching the harness's no-shared-mutable-state rule.
type ConfigWatcher struct {
	path     string
	watcher  *argus.Watcher
	logger   Logger
	onChange func(Config)

	current  atomic.Pointer[Config]
	enabled  int32
	stopped  atomic.Bool
	stopOnce sync.Once
	mu       sync.Mutex
}

// NewConfigWatcher creates a watcher for the configuration file at path.
// onChange may be nil; when set it is invoked with every successfully
// reloaded configuration.
func NewConfigWatcher(path string, options ConfigWatcherOptions, logger Logger, onChange func(Config)) *ConfigWatcher {
	if logger == nil {
		logger = DefaultLogger()
	}
	logger = logger.With("component", "config-watcher")

	argusConfig := argus.Config{
		PollInterval:         options.PollInterval,
		CacheTTL:             options.CacheTTL,
		MaxWatchedFiles:      1,
		OptimizationStrategy: argus.OptimizationSingleEvent,
		ErrorHandler: func(err error, filepath string) {
			logger.Error("Argus file watching error", "error", err, "file", filepath)
		},
	}

	return &ConfigWatcher{
		path:     path,
		watcher:  argus.New(argusConfig),
		logger:   logger,
		onChange: onChange,
	}
}

// Start loads the initial configuration and begins watching the file.
func (cw *ConfigWatcher) Start() error {
	if cw.stopped.Load() {
		return NewConfigWatcherError("watcher has been stopped and cannot be restarted", nil)
	}

	cw.mu.Lock()
	defer cw.mu.Unlock()

	if !atomic.CompareAndSwapInt32(&cw.enabled, 0, 1) {
		return NewConfigWatcherError("watcher is already running", nil)
	}

	initial, err := LoadConfigFromFile(cw.path)
	if err != nil {
		atomic.StoreInt32(&cw.enabled, 0)
		return err
	}
	cw.current.Store(&initial)

	if err := cw.watcher.Watch(cw.path, cw.handleChange); err != nil {
		atomic.StoreInt32(&cw.enabled, 0)
		return NewConfigWatcherError("failed to watch config file", err)
	}
	if err := cw.watcher.Start(); err != nil {
		atomic.StoreInt32(&cw.enabled, 0)
		return NewConfigWatcherError("failed to start Argus watcher", err)
	}

	cw.logger.Info("Configuration watcher started", "config_path", cw.path)
	return nil
}

// Stop halts watching. It is safe to call concurrently; only the first call
// stops the underlying Argus watcher.
func (cw *ConfigWatcher) Stop() error {
	if cw.stopped.Load() {
		return NewConfigWatcherError("watcher is already stopped", nil)
	}

	var stopErr error
	cw.stopOnce.Do(func() {
		cw.mu.Lock()
		defer cw.mu.Unlock()

		if !atomic.CompareAndSwapInt32(&cw.enabled, 1, 0) {
			stopErr = NewConfigWatcherError("watcher is not running", nil)
			return
		}
		cw.stopped.Store(true)

		if err := cw.watcher.Stop(); err != nil {
			stopErr = NewConfigWatcherError("failed to stop Argus watcher", err)
			return
		}
		cw.logger.Info("Configuration watcher stopped")
	})
	return stopErr
}

// Current returns the most recently loaded valid configuration, or nil before
// a successful Start.
func (cw *ConfigWatcher) Current() *Config {
	return cw.current.Load()
}

// handleChange processes file-change events from Argus.
func (cw *ConfigWatcher) handleChange(event argus.ChangeEvent) {
	cw.logger.Info("Configuration file change detected",
		"path", event.Path,
		"is_create", event.IsCreate,
		"is_delete", event.IsDelete,
		"is_modify", event.IsModify)

	if event.IsDelete {
		cw.logger.Warn("Configuration file was deleted, keeping last good config", "path", event.Path)
		return
	}

	newConfig, err := LoadConfigFromFile(event.Path)
	if err != nil {
		cw.logger.Error("Failed to reload configuration, keeping last good config",
			"error", err, "path", event.Path)
		return
	}

	cw.current.Store(&newConfig)
	if cw.onChange != nil {
		cw.onChange(newConfig)
	}
	cw.logger.Info("Configuration reload completed",
		"sample_rates", newConfig.SampleRates,
		"channel_counts", newConfig.ChannelCounts)
}
