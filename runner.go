// runner.go: the conformance runner driving the test matrix
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"context"
	"time"

	"github.com/agilira/go-timecache"
)

// Runner executes the conformance matrix against one plugin artifact.
//
// The run is strictly sequential and single-threaded: sample rates in
// declared order, channel counts nested in declared order, one fresh plugin
// instance and one fresh silent buffer per combination, no state shared
// across iterations. A Runner is safe to reuse for repeated runs; runs are
// deterministic for a deterministic plugin.
type Runner struct {
	config Config
	host   PluginHost
	policy *Policy
	logger Logger
}

// NewRunner creates a runner for the given configuration and host capability.
// Pass a nil logger for silent operation. The configuration is validated up
// front so a misconfigured matrix never reaches the plugin.
func NewRunner(config Config, host PluginHost, logger Logger) (*Runner, error) {
	if host == nil {
		return nil, NewNilHostError()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = DefaultLogger()
	}
	return &Runner{
		config: config,
		host:   host,
		policy: NewPolicy(config.RejectChannels),
		logger: logger.With("component", "conformance-runner"),
	}, nil
}

// Run executes every test case in matrix order and returns the run report.
//
// The error return is non-nil in exactly two situations:
//   - a plugin load failure, which is an environment error and aborts the run
//     before the offending case produces a conformance result
//   - a policy violation, in which case the report's Violation field carries
//     the same case and the error identifies the pair and the violation kind
//
// An expected rejection (invalid channel layout on a reject-listed channel
// count) is the only plugin error Run swallows; everything else surfaces.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		PluginPath: r.config.PluginPath,
		StartedAt:  timecache.CachedTime(),
	}

	r.logger.Info("Conformance run started",
		"plugin_path", r.config.PluginPath,
		"sample_rates", r.config.SampleRates,
		"channel_counts", r.config.ChannelCounts,
		"duration", r.config.Duration)

	for _, tc := range r.config.Cases() {
		if err := ctx.Err(); err != nil {
			report.CompletedAt = timecache.CachedTime()
			return report, err
		}

		result, err := r.runCase(ctx, tc)
		report.Cases = append(report.Cases, result)
		if err != nil {
			report.CompletedAt = timecache.CachedTime()
			if result.State == CasePending {
				// Environment error (load failure): fatal, but not a
				// conformance result.
				r.logger.Error("Run aborted before case produced an outcome",
					"sample_rate", tc.SampleRate,
					"channel_count", tc.ChannelCount,
					"error", err)
				return report, err
			}
			report.Violation = &report.Cases[len(report.Cases)-1]
			r.logger.Error("Conformance violation",
				"sample_rate", tc.SampleRate,
				"channel_count", tc.ChannelCount,
				"state", result.State.String(),
				"error", err)
			return report, err
		}

		r.logger.Debug("Case passed",
			"sample_rate", tc.SampleRate,
			"channel_count", tc.ChannelCount,
			"state", result.State.String())
	}

	report.CompletedAt = timecache.CachedTime()
	r.logger.Info("Conformance run passed", "cases", len(report.Cases))
	return report, nil
}

// runCase executes a single test case: fresh buffer, fresh instance, one
// Process call, policy evaluation. The returned error is nil exactly when the
// case ended in a passing state.
func (r *Runner) runCase(ctx context.Context, tc TestCase) (CaseResult, error) {
	start := timecache.CachedTime()
	result := CaseResult{
		Case:  tc,
		Input: Shape{Channels: tc.ChannelCount, Frames: tc.FrameCount(r.config.Duration)},
		State: CasePending,
	}

	input, err := NewSilentBuffer(result.Input.Channels, result.Input.Frames)
	if err != nil {
		// Unreachable with a validated config; surfaced as fatal anyway.
		result.Elapsed = time.Since(start)
		result.Err = err
		return result, err
	}

	instance, err := r.host.Load(r.config.PluginPath)
	if err != nil {
		result.Elapsed = time.Since(start)
		result.Err = NewPluginLoadFailedError(r.config.PluginPath, err)
		return result, result.Err
	}
	defer func() {
		if closeErr := instance.Close(); closeErr != nil {
			r.logger.Warn("Plugin instance close failed",
				"sample_rate", tc.SampleRate,
				"channel_count", tc.ChannelCount,
				"error", closeErr)
		}
	}()

	output, procErr := instance.Process(ctx, input, tc.SampleRate)
	result.State = r.policy.Evaluate(tc, result.Input, output, procErr)
	result.Elapsed = time.Since(start)

	switch result.State {
	case CaseAcceptedOK, CaseRejectedExpected:
		return result, nil
	case CaseAcceptedBadShape:
		if r.policy.MustReject(tc.ChannelCount) {
			result.Err = NewUnexpectedSuccessError(tc)
		} else {
			result.Err = NewShapeMismatchError(tc, result.Input, output.Shape())
		}
	case CaseRejectedUnexpected:
		result.Err = NewUnexpectedRejectionError(tc, procErr)
	}
	return result, result.Err
}
