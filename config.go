// config.go: harness configuration, defaults, validation, and file loading
//
// The conformance matrix is fixed configuration, not runtime input: the
// default values below reproduce the reference matrix exactly, and loading a
// config file exists only as an extensibility point for other plugins and
// matrices.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"encoding/json"
	"os"
	"time"

	"github.com/agilira/argus"
	"gopkg.in/yaml.v3"
)

// Default matrix constants. These mirror the reference conformance suite:
// two standard sample rates, mono/stereo/quad layouts, 50ms of audio per
// case, and stereo as the layout the plugin under test must reject.
const (
	// DefaultDuration is the synthesized buffer length per test case.
	DefaultDuration = 50 * time.Millisecond
)

// DefaultSampleRates returns the ordered sample-rate sequence of the
// reference matrix.
func DefaultSampleRates() []int { return []int{44100, 48000} }

// DefaultChannelCounts returns the ordered channel-count sequence of the
// reference matrix.
func DefaultChannelCounts() []int { return []int{1, 2, 4} }

// DefaultRejectChannels returns the channel counts the plugin under test is
// expected to reject.
func DefaultRejectChannels() []int { return []int{2} }

// Config holds the complete harness configuration.
//
// Iteration order is semantic: the runner walks SampleRates in declared order
// and, for each, ChannelCounts in declared order, so failure reports are
// deterministic across runs.
type Config struct {
	// PluginPath is the filesystem path of the plugin artifact handed to the
	// host's Load. The path is configuration, never discovered.
	PluginPath string `json:"plugin_path" yaml:"plugin_path"`

	// SampleRates is the ordered sample-rate sequence in Hz.
	SampleRates []int `json:"sample_rates" yaml:"sample_rates"`

	// ChannelCounts is the ordered channel-count sequence.
	ChannelCounts []int `json:"channel_counts" yaml:"channel_counts"`

	// Duration is the synthesized buffer length per case. Frame counts are
	// derived as floor(sample_rate * duration).
	Duration time.Duration `json:"duration" yaml:"duration"`

	// RejectChannels lists the channel counts the plugin must reject with the
	// invalid-channel-layout error kind.
	RejectChannels []int `json:"reject_channels" yaml:"reject_channels"`
}

// DefaultConfig returns a Config carrying the reference matrix. PluginPath is
// left empty and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		SampleRates:    DefaultSampleRates(),
		ChannelCounts:  DefaultChannelCounts(),
		Duration:       DefaultDuration,
		RejectChannels: DefaultRejectChannels(),
	}
}

// ApplyDefaults fills unset matrix fields with the reference values.
//
// PluginPath has no default; RejectChannels is only defaulted when the whole
// matrix was absent, because an explicitly empty reject set is a legitimate
// policy (a plugin that supports every layout).
func (c *Config) ApplyDefaults() {
	if len(c.SampleRates) == 0 {
		c.SampleRates = DefaultSampleRates()
	}
	if len(c.ChannelCounts) == 0 {
		c.ChannelCounts = DefaultChannelCounts()
		if c.RejectChannels == nil {
			c.RejectChannels = DefaultRejectChannels()
		}
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
}

// Validate checks the configuration's structural and business rules.
func (c *Config) Validate() error {
	if c.PluginPath == "" {
		return NewConfigValidationError("plugin_path is required", nil)
	}
	if len(c.SampleRates) == 0 {
		return NewConfigValidationError("at least one sample rate is required", nil)
	}
	for _, sr := range c.SampleRates {
		if sr <= 0 {
			return NewConfigValidationError("sample rates must be positive", nil)
		}
	}
	if len(c.ChannelCounts) == 0 {
		return NewConfigValidationError("at least one channel count is required", nil)
	}
	for _, ch := range c.ChannelCounts {
		if ch <= 0 {
			return NewConfigValidationError("channel counts must be positive", nil)
		}
	}
	if c.Duration <= 0 {
		return NewConfigValidationError("duration must be positive", nil)
	}
	for _, ch := range c.RejectChannels {
		if ch <= 0 {
			return NewConfigValidationError("reject channels must be positive", nil)
		}
	}
	return nil
}

// Cases expands the matrix into its ordered cross product: outer loop over
// sample rates, inner loop over channel counts, both in declared order.
func (c *Config) Cases() []TestCase {
	cases := make([]TestCase, 0, len(c.SampleRates)*len(c.ChannelCounts))
	for _, sr := range c.SampleRates {
		for _, ch := range c.ChannelCounts {
			cases = append(cases, TestCase{SampleRate: sr, ChannelCount: ch})
		}
	}
	return cases
}

// LoadConfigFromFile loads a harness configuration with multi-format support.
//
// Format is detected from the file path by Argus. YAML goes through
// gopkg.in/yaml.v3 for full spec support; JSON, TOML and the remaining Argus
// formats are parsed by Argus and bound through a JSON round trip. The loaded
// configuration has defaults applied and is validated before being returned.
func LoadConfigFromFile(path string) (Config, error) {
	var config Config

	configBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, NewConfigNotFoundError(path)
		}
		return config, NewConfigParseError(path, err)
	}

	format := argus.DetectFormat(path)
	if err := parseConfigWithHybridStrategy(configBytes, format, &config); err != nil {
		return config, NewConfigParseError(path, err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// parseConfigWithHybridStrategy uses Argus for simple formats but a
// specialized parser for YAML, mirroring the format split Argus itself
// recommends: Argus gives format detection and watching, yaml.v3 gives full
// YAML spec coverage.
func parseConfigWithHybridStrategy(configBytes []byte, format argus.ConfigFormat, config *Config) error {
	switch format {
	case argus.FormatYAML:
		return yaml.Unmarshal(configBytes, config)
	default:
		configMap, err := argus.ParseConfig(configBytes, format)
		if err != nil {
			return err
		}
		return bindConfig(configMap, config)
	}
}

// bindConfig converts an Argus-parsed map into a Config via a JSON round
// trip, keeping one set of field tags authoritative for every format.
func bindConfig(configMap map[string]interface{}, config *Config) error {
	jsonBytes, err := json.Marshal(configMap)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, config)
}
