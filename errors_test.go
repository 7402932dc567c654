// errors_test.go: test coverage for structured error definitions
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"fmt"
	"testing"

	"github.com/agilira/go-errors"
)

// TestHostErrorConstructors tests host and lifecycle error constructors
func TestHostErrorConstructors(t *testing.T) {
	t.Run("NewPluginLoadFailedError", func(t *testing.T) {
		cause := fmt.Errorf("no such file")
		err := NewPluginLoadFailedError("plugins/effect.vst3", cause)

		if err.ErrorCode() != errors.ErrorCode(ErrCodePluginLoadFailed) {
			t.Errorf("Expected error code %s, got %s", ErrCodePluginLoadFailed, err.ErrorCode())
		}
		if err.Context["plugin_path"] != "plugins/effect.vst3" {
			t.Errorf("Expected plugin_path context, got %v", err.Context["plugin_path"])
		}
		if err.Severity != "error" {
			t.Errorf("Expected severity error, got %q", err.Severity)
		}
	})

	t.Run("NewNilHostError", func(t *testing.T) {
		err := NewNilHostError()
		if err.ErrorCode() != errors.ErrorCode(ErrCodeNilHost) {
			t.Errorf("Expected error code %s, got %s", ErrCodeNilHost, err.ErrorCode())
		}
	})
}

// TestProcessingErrorConstructors tests the error kinds a host raises
func TestProcessingErrorConstructors(t *testing.T) {
	t.Run("NewInvalidChannelLayoutError", func(t *testing.T) {
		err := NewInvalidChannelLayoutError(2)

		if err.ErrorCode() != errors.ErrorCode(ErrCodeInvalidChannelLayout) {
			t.Errorf("Expected error code %s, got %s", ErrCodeInvalidChannelLayout, err.ErrorCode())
		}
		if err.Context["channel_count"] != 2 {
			t.Errorf("Expected channel_count context 2, got %v", err.Context["channel_count"])
		}
		if err.Severity != "warning" {
			t.Errorf("Expected severity warning, got %q", err.Severity)
		}
	})

	t.Run("NewProcessingFailedError", func(t *testing.T) {
		cause := fmt.Errorf("dsp kernel panic")
		err := NewProcessingFailedError(cause)
		if err.ErrorCode() != errors.ErrorCode(ErrCodeProcessingFailed) {
			t.Errorf("Expected error code %s, got %s", ErrCodeProcessingFailed, err.ErrorCode())
		}
	})
}

// TestViolationErrorConstructors verifies every violation carries the
// offending pair so a failed run is diagnosable from the error alone.
func TestViolationErrorConstructors(t *testing.T) {
	tc := TestCase{SampleRate: 48000, ChannelCount: 2}

	t.Run("NewUnexpectedSuccessError", func(t *testing.T) {
		err := NewUnexpectedSuccessError(tc)

		if err.ErrorCode() != errors.ErrorCode(ErrCodeUnexpectedSuccess) {
			t.Errorf("Expected error code %s, got %s", ErrCodeUnexpectedSuccess, err.ErrorCode())
		}
		if err.Context["sample_rate"] != 48000 {
			t.Errorf("Expected sample_rate context 48000, got %v", err.Context["sample_rate"])
		}
		if err.Context["channel_count"] != 2 {
			t.Errorf("Expected channel_count context 2, got %v", err.Context["channel_count"])
		}
	})

	t.Run("NewUnexpectedRejectionError", func(t *testing.T) {
		cause := fmt.Errorf("resource exhausted")
		err := NewUnexpectedRejectionError(TestCase{SampleRate: 44100, ChannelCount: 1}, cause)

		if err.ErrorCode() != errors.ErrorCode(ErrCodeUnexpectedRejection) {
			t.Errorf("Expected error code %s, got %s", ErrCodeUnexpectedRejection, err.ErrorCode())
		}
		if err.Context["sample_rate"] != 44100 {
			t.Errorf("Expected sample_rate context 44100, got %v", err.Context["sample_rate"])
		}
	})

	t.Run("NewShapeMismatchError", func(t *testing.T) {
		want := Shape{Channels: 4, Frames: 2205}
		got := Shape{Channels: 2, Frames: 2205}
		err := NewShapeMismatchError(TestCase{SampleRate: 44100, ChannelCount: 4}, want, got)

		if err.ErrorCode() != errors.ErrorCode(ErrCodeShapeMismatch) {
			t.Errorf("Expected error code %s, got %s", ErrCodeShapeMismatch, err.ErrorCode())
		}
		if err.Context["want_shape"] != "(4, 2205)" {
			t.Errorf("Expected want_shape context, got %v", err.Context["want_shape"])
		}
		if err.Context["got_shape"] != "(2, 2205)" {
			t.Errorf("Expected got_shape context, got %v", err.Context["got_shape"])
		}
	})
}

// TestIsInvalidChannelLayout tests the error-kind discriminator the policy
// relies on.
func TestIsInvalidChannelLayout(t *testing.T) {
	t.Run("MatchesInvalidLayout", func(t *testing.T) {
		if !IsInvalidChannelLayout(NewInvalidChannelLayoutError(2)) {
			t.Error("Invalid-channel-layout error must be recognized")
		}
	})

	t.Run("RejectsOtherStructuredErrors", func(t *testing.T) {
		if IsInvalidChannelLayout(NewProcessingFailedError(fmt.Errorf("boom"))) {
			t.Error("Processing failure must not be mistaken for an expected rejection")
		}
	})

	t.Run("RejectsPlainErrors", func(t *testing.T) {
		if IsInvalidChannelLayout(fmt.Errorf("some error")) {
			t.Error("Unstructured errors carry no code and must not match")
		}
	})

	t.Run("RejectsNil", func(t *testing.T) {
		if IsInvalidChannelLayout(nil) {
			t.Error("nil is not an error")
		}
	})

	t.Run("MatchesWrappedLayout", func(t *testing.T) {
		wrapped := fmt.Errorf("host: %w", NewInvalidChannelLayoutError(2))
		if !IsInvalidChannelLayout(wrapped) {
			t.Error("Wrapped invalid-channel-layout error must still be recognized")
		}
	})
}

// TestConfigErrorConstructors tests configuration error constructors
func TestConfigErrorConstructors(t *testing.T) {
	t.Run("NewConfigNotFoundError", func(t *testing.T) {
		err := NewConfigNotFoundError("harness.yaml")
		if err.ErrorCode() != errors.ErrorCode(ErrCodeConfigNotFound) {
			t.Errorf("Expected error code %s, got %s", ErrCodeConfigNotFound, err.ErrorCode())
		}
		if err.Context["config_path"] != "harness.yaml" {
			t.Errorf("Expected config_path context, got %v", err.Context["config_path"])
		}
	})

	t.Run("NewConfigValidationErrorWithoutCause", func(t *testing.T) {
		err := NewConfigValidationError("duration must be positive", nil)
		if err.ErrorCode() != errors.ErrorCode(ErrCodeConfigValidationError) {
			t.Errorf("Expected error code %s, got %s", ErrCodeConfigValidationError, err.ErrorCode())
		}
	})

	t.Run("NewConfigValidationErrorWithCause", func(t *testing.T) {
		cause := fmt.Errorf("parse failure")
		err := NewConfigValidationError("bad matrix", cause)
		if err.ErrorCode() != errors.ErrorCode(ErrCodeConfigValidationError) {
			t.Errorf("Expected error code %s, got %s", ErrCodeConfigValidationError, err.ErrorCode())
		}
	})
}
