// Package animation defines the animation hint payload that accompanies
// reactive change notifications.
//
// The bridge treats animations as opaque: a hint is constructed natively,
// attached to a value change, and carried across the boundary unchanged for
// the host's renderer to interpret. No interpolation or timing happens here.
package animation

import "time"

// Curve names the easing applied to an animated change.
type Curve string

const (
	// CurveDefault lets the host renderer pick its platform default.
	CurveDefault Curve = "default"
	// CurveLinear applies no easing.
	CurveLinear Curve = "linear"
	// CurveEaseIn starts slowly and accelerates.
	CurveEaseIn Curve = "ease-in"
	// CurveEaseOut starts quickly and decelerates.
	CurveEaseOut Curve = "ease-out"
	// CurveEaseInOut starts and ends slowly with acceleration in the middle.
	CurveEaseInOut Curve = "ease-in-out"
	// CurveSpring requests a physics-based spring transition.
	CurveSpring Curve = "spring"
)

// DefaultDuration is used when a hint is constructed without an explicit
// duration.
const DefaultDuration = 250 * time.Millisecond

// Animation is a suggested transition for a single value change.
//
// A hint is immutable once attached to a change; watchers may read it during
// the notification but must not retain it past the callback.
type Animation struct {
	// Curve is the easing to apply.
	Curve Curve `json:"curve"`
	// Duration is the suggested transition length.
	Duration time.Duration `json:"duration"`
	// Delay postpones the start of the transition.
	Delay time.Duration `json:"delay,omitempty"`
	// Damping is the spring damping fraction in (0, 1]. Only meaningful
	// for CurveSpring; zero means the host default.
	Damping float64 `json:"damping,omitempty"`
}

// Default returns the platform-default transition hint.
func Default() *Animation {
	return &Animation{Curve: CurveDefault, Duration: DefaultDuration}
}

// Linear returns a linear transition of the given duration.
func Linear(d time.Duration) *Animation {
	return &Animation{Curve: CurveLinear, Duration: d}
}

// EaseIn returns an ease-in transition of the given duration.
func EaseIn(d time.Duration) *Animation {
	return &Animation{Curve: CurveEaseIn, Duration: d}
}

// EaseOut returns an ease-out transition of the given duration.
func EaseOut(d time.Duration) *Animation {
	return &Animation{Curve: CurveEaseOut, Duration: d}
}

// EaseInOut returns an ease-in-out transition of the given duration.
func EaseInOut(d time.Duration) *Animation {
	return &Animation{Curve: CurveEaseInOut, Duration: d}
}

// Spring returns a spring transition with the given damping fraction.
func Spring(damping float64) *Animation {
	return &Animation{Curve: CurveSpring, Duration: DefaultDuration, Damping: damping}
}

// WithDelay returns a copy of the hint with the given start delay.
func (a *Animation) WithDelay(d time.Duration) *Animation {
	c := *a
	c.Delay = d
	return &c
}
