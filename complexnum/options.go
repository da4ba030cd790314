// SPDX-License-Identifier: MIT

// Package complexnum: functional options for coordinate conversion.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults are constants.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package complexnum

import "fmt"

// PhaseMode selects how the phase of a Polar value is computed.
type PhaseMode int

const (
	// PhasePrincipal computes atan(y/x). The result lies in [−π/2, π/2],
	// points in the left half-plane alias their mirror image through the
	// origin, and x == 0 yields ±π/2 or NaN.
	PhasePrincipal PhaseMode = iota

	// PhaseFullQuadrant computes atan2(y, x) with range (−π, π].
	PhaseFullQuadrant
)

// DefaultPhaseMode is the phase formula used when no option is given.
const DefaultPhaseMode = PhasePrincipal

// String returns the mode name.
func (m PhaseMode) String() string {
	switch m {
	case PhasePrincipal:
		return "principal"
	case PhaseFullQuadrant:
		return "full-quadrant"
	default:
		return fmt.Sprintf("PhaseMode(%d)", int(m))
	}
}

// PolarOption configures a Cartesian → Polar conversion.
type PolarOption func(*polarOptions)

type polarOptions struct {
	phase PhaseMode
}

// WithPhaseMode selects the phase formula explicitly.
// Panics if m is not a known PhaseMode.
func WithPhaseMode(m PhaseMode) PolarOption {
	if m != PhasePrincipal && m != PhaseFullQuadrant {
		panic(fmt.Sprintf("complexnum: WithPhaseMode(%d): unknown phase mode", int(m)))
	}

	return func(o *polarOptions) { o.phase = m }
}

// WithPhasePrincipal selects atan(y/x). This is the default.
func WithPhasePrincipal() PolarOption { return WithPhaseMode(PhasePrincipal) }

// WithPhaseFullQuadrant selects atan2(y, x).
func WithPhaseFullQuadrant() PolarOption { return WithPhaseMode(PhaseFullQuadrant) }

// gatherPolarOptions applies opts over the defaults; last writer wins.
func gatherPolarOptions(opts ...PolarOption) polarOptions {
	o := polarOptions{phase: DefaultPhaseMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
