// Package audioconform provides a conformance-test harness for audio-processing
// plugins. It validates a plugin's shape and error-path behavior across a matrix
// of sample rates and channel layouts without inspecting signal content.
//
// For every (sample rate, channel count) pair in the configured matrix the
// harness synthesizes a silent buffer, loads a fresh plugin instance through a
// PluginHost capability, invokes processing once, and checks the outcome
// against a fixed policy: unsupported channel layouts must be rejected with the
// invalid-channel-layout error kind, every other layout must succeed with the
// input shape preserved exactly.
//
// Key Features:
//   - Fixed, deterministic test matrix with configurable extension points
//   - Per-case plugin isolation (fresh instance per combination)
//   - Structured error taxonomy distinguishing expected rejections from bugs
//   - First-violation abort with full case context for diagnosis
//   - Hot-reloadable harness configuration via Argus file watching
//   - Pluggable structured logging
//
// Basic Usage:
//
//	cfg := audioconform.DefaultConfig()
//	cfg.PluginPath = "target/bundled/effect.vst3"
//
//	runner, err := audioconform.NewRunner(cfg, host, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	report, err := runner.Run(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Summary())
//
// The plugin itself is an external collaborator: the harness consumes the
// PluginHost capability (load by path, process a buffer at a sample rate) and
// never implements or packages plugins.
//
// Copyright (c) 2025 AGILira - A. Giordano
// SPDX-License-Identifier: MPL-2.0
package audioconform
