// policy.go: per-case outcome policy for the conformance matrix
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"errors"
	"time"

	goerrors "github.com/agilira/go-errors"
)

// TestCase is one (sample rate, channel count) combination from the matrix.
// Cases are generated transiently from the cross product of the configured
// sample-rate and channel-count sequences and are never persisted.
type TestCase struct {
	SampleRate   int `json:"sample_rate"`
	ChannelCount int `json:"channel_count"`
}

// FrameCount returns the number of frames a buffer for this case must hold at
// the given duration.
func (tc TestCase) FrameCount(duration time.Duration) int {
	return FrameCount(tc.SampleRate, duration)
}

// CaseState is the terminal state of one executed test case.
//
// A case starts in CasePending and transitions to exactly one terminal state:
//   - CaseAcceptedOK: processing succeeded and the output shape matches the
//     input shape exactly (pass for supported layouts)
//   - CaseAcceptedBadShape: processing succeeded but the output shape differs
//     from the input shape, or the plugin accepted a layout it must reject
//   - CaseRejectedExpected: processing failed with the invalid-channel-layout
//     error kind on a layout the policy requires to be rejected (pass)
//   - CaseRejectedUnexpected: processing failed where it must succeed, or
//     failed with the wrong error kind where rejection was required
//
// Only CaseAcceptedOK and CaseRejectedExpected are passing states.
type CaseState int

const (
	CasePending CaseState = iota
	CaseAcceptedOK
	CaseAcceptedBadShape
	CaseRejectedExpected
	CaseRejectedUnexpected
)

// String returns a human-readable representation of the case state.
func (s CaseState) String() string {
	switch s {
	case CaseAcceptedOK:
		return "accepted_ok"
	case CaseAcceptedBadShape:
		return "accepted_bad_shape"
	case CaseRejectedExpected:
		return "rejected_expected"
	case CaseRejectedUnexpected:
		return "rejected_unexpected"
	default:
		return "pending"
	}
}

// Passed reports whether the state is a passing terminal state.
func (s CaseState) Passed() bool {
	return s == CaseAcceptedOK || s == CaseRejectedExpected
}

// IsInvalidChannelLayout reports whether err carries the invalid-channel-layout
// error code. This is how the policy tells a documented rejection apart from a
// genuine plugin fault; any other error kind is never an expected outcome.
func IsInvalidChannelLayout(err error) bool {
	if err == nil {
		return false
	}
	var structured *goerrors.Error
	if errors.As(err, &structured) {
		return structured.Code == ErrCodeInvalidChannelLayout
	}
	return false
}

// Policy decides which outcome each test case must produce.
//
// The reject set is the list of channel counts the plugin under test is
// documented NOT to support; processing those must fail with the
// invalid-channel-layout error kind, every other layout must succeed with the
// input shape preserved.
type Policy struct {
	rejectChannels map[int]bool
}

// NewPolicy builds a policy that expects rejection for the given channel
// counts.
func NewPolicy(rejectChannels []int) *Policy {
	reject := make(map[int]bool, len(rejectChannels))
	for _, ch := range rejectChannels {
		reject[ch] = true
	}
	return &Policy{rejectChannels: reject}
}

// MustReject reports whether the policy requires the given channel count to be
// rejected by the plugin.
func (p *Policy) MustReject(channelCount int) bool {
	return p.rejectChannels[channelCount]
}

// Evaluate maps one processing outcome onto its terminal case state.
//
// input is the shape that was handed to the plugin; output and procErr are the
// two legal results of the Process call (exactly one is meaningful). The
// function is pure: it neither logs nor constructs violation errors, that is
// the runner's job.
func (p *Policy) Evaluate(tc TestCase, input Shape, output Buffer, procErr error) CaseState {
	if p.MustReject(tc.ChannelCount) {
		if procErr == nil {
			// Accepting an unsupported layout is a violation regardless of
			// the returned shape.
			return CaseAcceptedBadShape
		}
		if IsInvalidChannelLayout(procErr) {
			return CaseRejectedExpected
		}
		// Wrong error kind: the plugin broke, it did not reject.
		return CaseRejectedUnexpected
	}

	if procErr != nil {
		return CaseRejectedUnexpected
	}
	if !output.wellFormed() || !output.Shape().Equal(input) {
		return CaseAcceptedBadShape
	}
	return CaseAcceptedOK
}
