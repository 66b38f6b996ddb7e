// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motion composes independent per-frame motion behaviors onto an
// entity pose. Each behavior is a tagged descriptor; an entity holds any
// number of them simultaneously and they do not interfere except on the
// transform channels they deliberately share.
//
// Behaviors that set absolute values (oscillation, pulsation, orbit, path
// following) are functions of elapsed time, not of accumulated per-frame
// deltas, so they are drift-free over arbitrarily long runs.
package motion

import (
	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/scene"
)

// Application phases: position-affecting descriptors run before any that
// derive orientation from position, so facing reflects the frame's final
// position rather than the previous frame's.
const (
	phaseTransform = iota
	phaseOrient
)

// Motion is one independent, composable rule governing how an entity's
// transform changes over time.
type Motion interface {

	// phase returns the application phase of this descriptor.
	phase() int

	// apply updates the pose for one frame. dt is the (already clamped)
	// frame delta and elapsed is the monotonic animation time, both in
	// seconds.
	apply(pose *scene.Pose, st *State, dt, elapsed float32)
}

// State is the per-entity animation state mutated by the composer. It is
// exclusively owned by its entity and never shared.
type State struct {

	// Anchor is the position captured at attach time, the zero-reference
	// for oscillation.
	Anchor math32.Vector3

	// PathIndex is the current waypoint index for path following.
	PathIndex int

	// PathProgress is the interpolation fraction in [0, 1) along the
	// current path segment.
	PathProgress float32
}

// Rotate applies a continuous angular velocity, incremented per frame
// scaled by the frame delta (frame-rate independent).
type Rotate struct {

	// Speed is the angular velocity in radians/sec per Euler axis.
	Speed math32.Vector3
}

func (r Rotate) phase() int { return phaseTransform }

func (r Rotate) apply(pose *scene.Pose, st *State, dt, elapsed float32) {
	pose.Rot.SetAdd(r.Speed.MulScalar(dt))
}

// Oscillate displaces one position axis sinusoidally around the anchor
// position captured at attach time. The axis value is set absolutely each
// frame, so long runs cannot drift.
type Oscillate struct {

	// Axis is the position axis displaced.
	Axis math32.Dims

	// Speed is the oscillation rate in radians/sec.
	Speed float32

	// Amplitude is the maximum displacement from the anchor.
	Amplitude float32
}

func (o Oscillate) phase() int { return phaseTransform }

func (o Oscillate) apply(pose *scene.Pose, st *State, dt, elapsed float32) {
	v := st.Anchor.Dim(o.Axis) + math32.Sin(elapsed*o.Speed)*o.Amplitude
	pose.Pos.SetDim(o.Axis, v)
}

// Pulsate sets a uniform scale factor oscillating between Min and Max,
// absolute per frame.
type Pulsate struct {

	// Speed is the pulsation rate in radians/sec.
	Speed float32

	// Min and Max bound the uniform scale factor.
	Min, Max float32
}

func (p Pulsate) phase() int { return phaseTransform }

func (p Pulsate) apply(pose *scene.Pose, st *State, dt, elapsed float32) {
	s := p.Min + ((math32.Sin(elapsed*p.Speed)+1)/2)*(p.Max-p.Min)
	pose.SetUniformScale(s)
}

// Plane selects one of the three principal planes for orbital motion.
type Plane int32

const (
	// PlaneXZ is the horizontal plane (the usual orbital plane).
	PlaneXZ Plane = iota

	// PlaneXY is the vertical screen-facing plane.
	PlaneXY

	// PlaneYZ is the vertical side plane.
	PlaneYZ
)

// Orbit places the entity on a circle around Center in one of the three
// principal planes and reorients it to face the orbit center. Position is
// a function of elapsed time only.
type Orbit struct {

	// Center is the orbit center point.
	Center math32.Vector3

	// Radius is the orbit radius.
	Radius float32

	// Speed is the angular rate in radians/sec.
	Speed float32

	// Plane is the principal plane of the orbit.
	Plane Plane
}

func (o Orbit) phase() int { return phaseOrient }

func (o Orbit) apply(pose *scene.Pose, st *State, dt, elapsed float32) {
	a := elapsed * o.Speed
	u := math32.Cos(a) * o.Radius
	v := math32.Sin(a) * o.Radius
	switch o.Plane {
	case PlaneXY:
		pose.Pos = o.Center.Add(math32.Vec3(u, v, 0))
	case PlaneYZ:
		pose.Pos = o.Center.Add(math32.Vec3(0, u, v))
	default:
		pose.Pos = o.Center.Add(math32.Vec3(u, 0, v))
	}
	pose.LookAt(o.Center)
}

// lookAheadEpsilon is how far ahead of the current path progress the
// facing target is sampled, avoiding a degenerate look direction at
// progress exactly 0 or 1.
const lookAheadEpsilon = 0.01

// FollowPath interpolates the entity position along a sequence of
// waypoints. With Loop set, the path wraps from the last waypoint back to
// the first; otherwise the entity freezes at the final waypoint. A path
// with fewer than two waypoints is a no-op: a single point has no
// direction.
type FollowPath struct {

	// Points are the waypoints, in traversal order.
	Points []math32.Vector3

	// Speed is the traversal rate in segments/sec.
	Speed float32

	// Loop wraps traversal from the last waypoint back to the first.
	Loop bool
}

func (f FollowPath) phase() int { return phaseOrient }

func (f FollowPath) apply(pose *scene.Pose, st *State, dt, elapsed float32) {
	n := len(f.Points)
	if n < 2 {
		return
	}
	if !f.Loop && st.PathIndex >= n-1 {
		// Frozen at the end; hold exactly at the final waypoint.
		st.PathIndex = n - 1
		st.PathProgress = 0
		pose.Pos = f.Points[n-1]
		return
	}

	st.PathProgress += dt * f.Speed
	for st.PathProgress >= 1 {
		st.PathProgress--
		st.PathIndex++
		if !f.Loop && st.PathIndex >= n-1 {
			st.PathIndex = n - 1
			st.PathProgress = 0
			pose.Pos = f.Points[n-1]
			return
		}
		if st.PathIndex >= n {
			st.PathIndex = 0
		}
	}

	cur := f.Points[st.PathIndex]
	next := f.Points[(st.PathIndex+1)%n]
	pose.Pos = cur.Lerp(next, st.PathProgress)

	ahead := math32.Min(st.PathProgress+lookAheadEpsilon, 1)
	target := cur.Lerp(next, ahead)
	// Near-zero segments give no defined facing; keep last orientation.
	if target.DistanceToSquared(pose.Pos) > 1e-12 {
		pose.LookAt(target)
	}
}
