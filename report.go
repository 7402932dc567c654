// report.go: conformance run results and human-readable reporting
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"fmt"
	"strings"
	"time"
)

// CaseResult records the terminal outcome of one executed test case.
type CaseResult struct {
	Case    TestCase      `json:"case"`
	Input   Shape         `json:"input_shape"`
	State   CaseState     `json:"state"`
	Elapsed time.Duration `json:"elapsed"`

	// Err is the violation error for failing states, or nil. For
	// CaseRejectedExpected it is nil: the expected rejection is the one error
	// the harness swallows.
	Err error `json:"-"`
}

// Passed reports whether this case ended in a passing state.
func (r CaseResult) Passed() bool {
	return r.State.Passed()
}

// Report is the outcome of a full conformance run.
//
// Cases holds every executed case in matrix order. When a violation aborts
// the run, Violation points at the offending entry (which is also the last
// element of Cases) and any remaining matrix combinations were never
// executed.
type Report struct {
	PluginPath  string       `json:"plugin_path"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Cases       []CaseResult `json:"cases"`
	Violation   *CaseResult  `json:"violation,omitempty"`
}

// Passed reports whether the run completed the whole matrix without a policy
// violation. A run aborted by an environment error (plugin load failure,
// cancellation) has no Violation but still does not pass.
func (r *Report) Passed() bool {
	if r.Violation != nil {
		return false
	}
	for _, cr := range r.Cases {
		if !cr.Passed() {
			return false
		}
	}
	return true
}

// Summary renders the human-readable run confirmation: one line per executed
// case plus a closing verdict.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "conformance run for %s\n", r.PluginPath)
	for _, cr := range r.Cases {
		verdict := "PASS"
		if !cr.Passed() {
			verdict = "FAIL"
		}
		fmt.Fprintf(&b, "  %s  %6d Hz  %d ch  shape %s  %s\n",
			verdict, cr.Case.SampleRate, cr.Case.ChannelCount, cr.Input, cr.State)
	}
	switch {
	case r.Passed():
		fmt.Fprintf(&b, "all %d cases passed\n", len(r.Cases))
	case r.Violation != nil:
		v := r.Violation
		fmt.Fprintf(&b, "violation at %d Hz / %d ch: %s\n",
			v.Case.SampleRate, v.Case.ChannelCount, v.State)
		if v.Err != nil {
			fmt.Fprintf(&b, "  %v\n", v.Err)
		}
	default:
		fmt.Fprintln(&b, "run aborted before completing the matrix")
	}
	return b.String()
}
