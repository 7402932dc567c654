// host.go: the plugin host capability consumed by the harness
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"context"
)

// PluginInfo contains metadata about a loaded plugin instance.
//
// Hosts populate what they know; every field is optional. The harness logs
// this metadata but never branches on it.
type PluginInfo struct {
	Name     string            `json:"name"`
	Version  string            `json:"version"`
	Vendor   string            `json:"vendor,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PluginInstance is one loaded, stateful occurrence of a plugin.
//
// The harness creates a fresh instance per test case and never reuses one
// across (sample rate, channel count) combinations, isolating whatever state
// the plugin retains internally.
type PluginInstance interface {
	// Info returns metadata about the plugin
	Info() PluginInfo

	// Process runs the plugin over buf at the given sample rate and returns
	// the processed buffer. A conforming host fails with the
	// invalid-channel-layout error kind when the plugin does not support the
	// buffer's channel layout, and with other error kinds for internal
	// faults. Context should be honored for cancellation.
	Process(ctx context.Context, buf Buffer, sampleRate int) (Buffer, error)

	// Close releases the instance's resources.
	// Should be idempotent (safe to call multiple times)
	Close() error
}

// PluginHost is the capability the harness consumes to obtain plugin
// instances. It is treated as a black box: loading mechanics (dynamic
// libraries, subprocesses, in-process adapters) are the host's concern.
//
// Load fails with a load error when the artifact at path is missing, corrupt,
// or incompatible with the host. Load failures are environment errors, never
// conformance results.
type PluginHost interface {
	Load(path string) (PluginInstance, error)
}

// HostFunc adapts a plain load function to the PluginHost interface, the same
// way http.HandlerFunc adapts handlers. Useful for in-process hosts and tests.
type HostFunc func(path string) (PluginInstance, error)

// Load implements PluginHost.
func (f HostFunc) Load(path string) (PluginInstance, error) {
	return f(path)
}
