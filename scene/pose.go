// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the spatial transform (Pose) of scene entities and
// the composition glue that places generated content and ticks per-frame
// animation.
package scene

import (
	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// Pose contains the full specification of position and orientation of a
// scene entity. Rotation is stored as Euler angles in radians, which is
// the representation the motion descriptors write directly; no GPU matrix
// composition happens in this module.
type Pose struct {

	// Pos is the position of the center of the entity.
	Pos math32.Vector3

	// Rot is the rotation in Euler angles (radians).
	Rot math32.Vector3

	// Scale is the per-axis scale factor.
	Scale math32.Vector3
}

// Defaults sets default values: unit scale.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.SetScalar(1)
	}
}

// SetUniformScale sets all scale axes to the given factor.
func (ps *Pose) SetUniformScale(s float32) {
	ps.Scale.SetScalar(s)
}

// UniformScale returns the X scale axis, which carries the uniform scale
// for entities animated by scale pulsation.
func (ps *Pose) UniformScale() float32 {
	return ps.Scale.X
}

// LookAt orients the pose to face the given target point, deriving yaw
// and pitch from the facing vector (Y up, roll zeroed). A target at
// (or within epsilon of) the current position leaves the rotation
// unchanged, as there is no defined facing direction.
func (ps *Pose) LookAt(target math32.Vector3) {
	dir := target.Sub(ps.Pos)
	if dir.LengthSquared() < 1e-12 {
		return
	}
	yaw := math32.Atan2(dir.X, dir.Z)
	pitch := math32.Atan2(-dir.Y, math32.Sqrt(dir.X*dir.X+dir.Z*dir.Z))
	ps.Rot = math32.Vec3(pitch, yaw, 0)
}
