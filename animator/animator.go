// Package animator runs the canvas and ASCII cube renderers on a frame scheduler.
//
// Both animators are small state machines over the same Controls. They differ
// in what happens when the surface goes inactive: the canvas falls back to a
// static frame at time zero while the ASCII overlay stops and keeps its text.
package animator

import (
	"github.com/smasonuk/matrixcube"
)

// Controls is the imperative interface shared by both animators.
type Controls interface {
	Start()
	Stop()
	RenderStatic()
}

// State is where an animator's loop stands.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateStatic
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateStatic:
		return "static"
	}
	return "unknown"
}

// Runtime is what the host tells an animator about its surroundings.
type Runtime struct {
	IsActive      bool
	QualityTier   matrixcube.QualityTier
	ReducedMotion bool
	// RenderCube defaults to true when nil. Only the canvas reads it.
	RenderCube *bool
}

func (r Runtime) renderCube() bool {
	return r.RenderCube == nil || *r.RenderCube
}

// Bool returns a pointer to v, for Runtime.RenderCube.
func Bool(v bool) *bool {
	return &v
}

// applyActivity moves c to the state runtime asks for. inactive handles the
// case where the surface is neither reduced-motion nor active.
func applyActivity(c Controls, rt Runtime, inactive func()) {
	switch {
	case rt.ReducedMotion:
		c.RenderStatic()
	case rt.IsActive:
		c.Start()
	default:
		inactive()
	}
}
