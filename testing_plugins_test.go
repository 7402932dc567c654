// testing_plugins_test.go: in-process plugin hosts used across harness tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"context"
	"sync/atomic"
)

// processFunc is the behavior of a stub plugin instance.
type processFunc func(ctx context.Context, buf Buffer, sampleRate int) (Buffer, error)

// stubInstance is a scriptable PluginInstance recording its lifecycle.
type stubInstance struct {
	name    string
	process processFunc
	closed  atomic.Int32
}

func (s *stubInstance) Info() PluginInfo {
	return PluginInfo{Name: s.name, Version: "0.0.0-test"}
}

func (s *stubInstance) Process(ctx context.Context, buf Buffer, sampleRate int) (Buffer, error) {
	return s.process(ctx, buf, sampleRate)
}

func (s *stubInstance) Close() error {
	s.closed.Add(1)
	return nil
}

// stubHost serves fresh stubInstance values and counts loads so tests can
// assert per-case instance isolation.
type stubHost struct {
	process   processFunc
	loads     atomic.Int32
	instances []*stubInstance
}

func newStubHost(process processFunc) *stubHost {
	return &stubHost{process: process}
}

func (h *stubHost) Load(path string) (PluginInstance, error) {
	h.loads.Add(1)
	inst := &stubInstance{name: "stub", process: h.process}
	h.instances = append(h.instances, inst)
	return inst, nil
}

// conformingProcess mirrors the reference effect's contract: stereo layouts
// are rejected with the invalid-channel-layout kind, everything else comes
// back silent with the input shape preserved. Content is irrelevant to the
// harness, so silence is as good as processed audio.
func conformingProcess(_ context.Context, buf Buffer, _ int) (Buffer, error) {
	shape := buf.Shape()
	if shape.Channels == 2 {
		return nil, NewInvalidChannelLayoutError(shape.Channels)
	}
	out, err := NewSilentBuffer(shape.Channels, shape.Frames)
	if err != nil {
		return nil, NewProcessingFailedError(err)
	}
	return out, nil
}

// passthrough returns the input buffer itself, shape trivially preserved.
func passthrough(_ context.Context, buf Buffer, _ int) (Buffer, error) {
	return buf, nil
}
