// buffer.go: multi-channel audio buffers and shape arithmetic
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package audioconform

import (
	"fmt"
	"time"
)

// Buffer is a channel-major block of 32-bit float samples: Buffer[ch][frame].
//
// The harness only ever inspects a buffer's shape, never its content. All
// buffers it synthesizes are silent; a plugin is free to write anything into
// the buffer it returns as long as the shape is preserved.
type Buffer [][]float32

// Shape describes the dimensions of a Buffer: how many channels it carries and
// how many frames (sample slots per channel) each channel holds.
type Shape struct {
	Channels int `json:"channels"`
	Frames   int `json:"frames"`
}

// String returns the shape in (channels, frames) notation.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Channels, s.Frames)
}

// Equal reports whether two shapes match exactly in both dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.Channels == other.Channels && s.Frames == other.Frames
}

// Shape returns the buffer's dimensions. A ragged buffer reports the frame
// count of its first channel; shape comparison against a well-formed input
// will still catch raggedness because ragged output is a plugin defect the
// policy surfaces as a shape mismatch.
func (b Buffer) Shape() Shape {
	if len(b) == 0 {
		return Shape{}
	}
	return Shape{Channels: len(b), Frames: len(b[0])}
}

// wellFormed reports whether every channel has the same frame count.
func (b Buffer) wellFormed() bool {
	if len(b) == 0 {
		return true
	}
	for _, ch := range b[1:] {
		if len(ch) != len(b[0]) {
			return false
		}
	}
	return true
}

// NewSilentBuffer allocates an all-zero buffer of the given shape.
//
// Channel and frame counts must both be positive; the harness never produces
// degenerate buffers and refuses to construct them.
func NewSilentBuffer(channels, frames int) (Buffer, error) {
	if channels <= 0 {
		return nil, NewInvalidChannelCountError(channels)
	}
	if frames <= 0 {
		return nil, NewInvalidFrameCountError(frames)
	}

	buf := make(Buffer, channels)
	for ch := range buf {
		buf[ch] = make([]float32, frames)
	}
	return buf, nil
}

// FrameCount computes the number of frames covered by duration at the given
// sample rate, truncating toward zero. Truncation (not rounding) is part of
// the harness contract: 44100 Hz at 50ms is exactly 2205 frames, 48000 Hz is
// 2400.
func FrameCount(sampleRate int, duration time.Duration) int {
	return int(float64(sampleRate) * duration.Seconds())
}
