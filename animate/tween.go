// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"image/color"
	"time"

	"cogentcore.org/core/math32"
)

// Tween is a [Task] that linearly interpolates from From to To over
// Duration, writing each step through Set.
type Tween[T any] struct {

	// From is the value at the start of the tween.
	From T

	// To is the value at the end of the tween.
	To T

	// Rest is the value written by [Tween.Snap].
	Rest T

	// Duration is the total length of the tween.
	// A zero duration finishes on the first step.
	Duration time.Duration

	// Lerp interpolates between two values by t in [0, 1].
	Lerp func(a, b T, t float32) T

	// Set writes the value to the target.
	Set func(v T)

	elapsed time.Duration
}

// NewTween returns a new tween whose resting value is To.
func NewTween[T any](from, to T, dur time.Duration, lerp func(a, b T, t float32) T, set func(v T)) *Tween[T] {
	return &Tween[T]{From: from, To: to, Rest: to, Duration: dur, Lerp: lerp, Set: set}
}

// Progress returns how far along the tween is, in [0, 1].
func (tw *Tween[T]) Progress() float32 {
	if tw.Duration <= 0 {
		return 1
	}
	return math32.Clamp(float32(tw.elapsed)/float32(tw.Duration), 0, 1)
}

func (tw *Tween[T]) Step(dt time.Duration) bool {
	tw.elapsed += dt
	if tw.elapsed >= tw.Duration {
		tw.Set(tw.To)
		return true
	}
	tw.Set(tw.Lerp(tw.From, tw.To, tw.Progress()))
	return false
}

func (tw *Tween[T]) Snap() {
	tw.elapsed = tw.Duration
	tw.Set(tw.Rest)
}

// LerpVector3 interpolates between two vectors.
func LerpVector3(a, b math32.Vector3, t float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// LerpQuat spherically interpolates between two rotations.
func LerpQuat(a, b math32.Quat, t float32) math32.Quat {
	a.Slerp(b, t)
	return a
}

// LerpRGBA interpolates each channel of two colors.
func LerpRGBA(a, b color.RGBA, t float32) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math32.Round(math32.Lerp(float32(x), float32(y), t)))
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A)}
}
