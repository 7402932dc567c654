// errors.go: structured error definitions for the conformance harness
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"github.com/agilira/go-errors"
)

// Error codes for the audioconform harness
const (
	// Host and plugin lifecycle errors (1000-1099)
	ErrCodePluginLoadFailed = "HOST_1001"
	ErrCodePluginClosed     = "HOST_1002"
	ErrCodeNilHost          = "HOST_1003"

	// Processing errors (1100-1199)
	//
	// ErrCodeInvalidChannelLayout is the documented "invalid input
	// configuration" kind: the one error a conforming plugin raises for an
	// unsupported channel layout. Everything else under PROCESS_* is an
	// internal plugin fault.
	ErrCodeInvalidChannelLayout = "PROCESS_1101"
	ErrCodeProcessingFailed     = "PROCESS_1102"

	// Conformance violations (1200-1299)
	ErrCodeUnexpectedSuccess   = "CONFORM_1201"
	ErrCodeUnexpectedRejection = "CONFORM_1202"
	ErrCodeShapeMismatch       = "CONFORM_1203"

	// Buffer construction errors (1300-1399)
	ErrCodeInvalidChannelCount = "BUFFER_1301"
	ErrCodeInvalidFrameCount   = "BUFFER_1302"

	// Configuration errors (1700-1799)
	ErrCodeConfigNotFound        = "CONFIG_1701"
	ErrCodeConfigParseError      = "CONFIG_1702"
	ErrCodeConfigValidationError = "CONFIG_1703"
	ErrCodeConfigWatcherError    = "CONFIG_1704"
)

// Host and lifecycle error constructors

func NewPluginLoadFailedError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodePluginLoadFailed, "Plugin load failed").
		WithUserMessage("The plugin artifact could not be loaded").
		WithContext("plugin_path", path).
		WithSeverity("error")
}

func NewPluginClosedError() *errors.Error {
	return errors.New(ErrCodePluginClosed, "Plugin instance closed").
		WithUserMessage("The plugin instance has been closed and cannot process audio").
		WithSeverity("error")
}

func NewNilHostError() *errors.Error {
	return errors.New(ErrCodeNilHost, "Nil plugin host").
		WithUserMessage("A plugin host capability is required").
		WithSeverity("error")
}

// Processing error constructors
//
// These are raised by PluginHost implementations, not by the harness itself.
// The harness only discriminates them by code.

func NewInvalidChannelLayoutError(channels int) *errors.Error {
	return errors.New(ErrCodeInvalidChannelLayout, "Invalid channel layout").
		WithUserMessage("The plugin does not support this channel layout").
		WithContext("channel_count", channels).
		WithSeverity("warning")
}

func NewProcessingFailedError(cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeProcessingFailed, "Processing failed").
		WithUserMessage("The plugin failed while processing the buffer").
		WithSeverity("error")
}

// Conformance violation constructors
//
// Each violation identifies the offending (sample_rate, channel_count) pair so
// a failing run can be diagnosed from the error alone.

func NewUnexpectedSuccessError(tc TestCase) *errors.Error {
	return errors.New(ErrCodeUnexpectedSuccess, "Unexpected success").
		WithUserMessage("The plugin accepted a channel layout it must reject").
		WithContext("sample_rate", tc.SampleRate).
		WithContext("channel_count", tc.ChannelCount).
		WithSeverity("error")
}

func NewUnexpectedRejectionError(tc TestCase, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeUnexpectedRejection, "Unexpected rejection").
		WithUserMessage("The plugin rejected a configuration it must accept").
		WithContext("sample_rate", tc.SampleRate).
		WithContext("channel_count", tc.ChannelCount).
		WithSeverity("error")
}

func NewShapeMismatchError(tc TestCase, want, got Shape) *errors.Error {
	return errors.New(ErrCodeShapeMismatch, "Shape mismatch").
		WithUserMessage("The plugin returned a buffer with a different shape than its input").
		WithContext("sample_rate", tc.SampleRate).
		WithContext("channel_count", tc.ChannelCount).
		WithContext("want_shape", want.String()).
		WithContext("got_shape", got.String()).
		WithSeverity("error")
}

// Buffer error constructors

func NewInvalidChannelCountError(channels int) *errors.Error {
	return errors.New(ErrCodeInvalidChannelCount, "Invalid channel count").
		WithUserMessage("Channel count must be a positive integer").
		WithContext("channel_count", channels).
		WithSeverity("error")
}

func NewInvalidFrameCountError(frames int) *errors.Error {
	return errors.New(ErrCodeInvalidFrameCount, "Invalid frame count").
		WithUserMessage("Frame count must be a positive integer").
		WithContext("frame_count", frames).
		WithSeverity("error")
}

// Configuration error constructors

func NewConfigNotFoundError(path string) *errors.Error {
	return errors.New(ErrCodeConfigNotFound, "Configuration file not found").
		WithUserMessage("The configuration file could not be found").
		WithContext("config_path", path).
		WithSeverity("error")
}

func NewConfigParseError(path string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeConfigParseError, "Configuration parse error").
		WithUserMessage("Failed to parse configuration file").
		WithContext("config_path", path).
		WithSeverity("error")
}

func NewConfigValidationError(message string, cause error) *errors.Error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeConfigValidationError, "Configuration validation error: "+message).
			WithUserMessage("Configuration validation failed").
			WithSeverity("error")
	}
	return errors.New(ErrCodeConfigValidationError, "Configuration validation error: "+message).
		WithUserMessage("Configuration validation failed").
		WithSeverity("error")
}

func NewConfigWatcherError(message string, cause error) *errors.Error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeConfigWatcherError, "Configuration watcher error: "+message).
			WithUserMessage("Configuration monitoring failed").
			WithSeverity("error")
	}
	return errors.New(ErrCodeConfigWatcherError, "Configuration watcher error: "+message).
		WithUserMessage("Configuration monitoring failed").
		WithSeverity("error")
}
