// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"math"
	"testing"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/scene"
	"github.com/stretchr/testify/assert"
)

func newPose(pos math32.Vector3) *scene.Pose {
	ps := &scene.Pose{Pos: pos}
	ps.Defaults()
	return ps
}

func TestRotateFrameRateIndependence(t *testing.T) {
	// Same total time in different step sizes must give the same result.
	run := func(steps int, dt float32) math32.Vector3 {
		pose := newPose(math32.Vec3(0, 0, 0))
		c := NewComposer(pose, Rotate{Speed: math32.Vec3(1, 2, 3)})
		elapsed := float32(0)
		for i := 0; i < steps; i++ {
			elapsed += dt
			c.Advance(pose, dt, elapsed)
		}
		return pose.Rot
	}
	coarse := run(10, 0.1)
	fine := run(100, 0.01)
	assert.InDelta(t, float64(coarse.X), float64(fine.X), 1e-4)
	assert.InDelta(t, float64(coarse.Y), float64(fine.Y), 1e-4)
	assert.InDelta(t, float64(coarse.Z), float64(fine.Z), 1e-4)
}

func TestOscillateDriftFree(t *testing.T) {
	anchor := math32.Vec3(5, 10, -3)
	pose := newPose(anchor)
	c := NewComposer(pose, Oscillate{Axis: math32.Y, Speed: 2, Amplitude: 1.5})

	// Arbitrarily long run: displacement from the anchor never exceeds
	// the amplitude, regardless of elapsed time.
	for elapsed := float32(0); elapsed < 10000; elapsed += 13.7 {
		c.Advance(pose, 0.016, elapsed)
		assert.LessOrEqual(t, math32.Abs(pose.Pos.Y-anchor.Y), float32(1.5)+1e-4)
		assert.Equal(t, anchor.X, pose.Pos.X)
		assert.Equal(t, anchor.Z, pose.Pos.Z)
	}
}

func TestOscillateUsesAnchorNotOrigin(t *testing.T) {
	pose := newPose(math32.Vec3(100, 50, 0))
	c := NewComposer(pose, Oscillate{Axis: math32.X, Speed: 1, Amplitude: 2})
	c.Advance(pose, 0.016, math32.Pi/2) // sin = 1
	assert.InDelta(t, 102, float64(pose.Pos.X), 1e-3)
}

func TestPulsateBounds(t *testing.T) {
	pose := newPose(math32.Vec3(0, 0, 0))
	c := NewComposer(pose, Pulsate{Speed: 3, Min: 0.5, Max: 2})
	for elapsed := float32(0); elapsed < 100; elapsed += 0.37 {
		c.Advance(pose, 0.016, elapsed)
		s := pose.UniformScale()
		assert.GreaterOrEqual(t, s, float32(0.5)-1e-5)
		assert.LessOrEqual(t, s, float32(2)+1e-5)
	}
	// sin(+1)/2 = 1 at elapsed*speed = pi/2: max scale.
	c.Advance(pose, 0.016, math32.Pi/2/3)
	assert.InDelta(t, 2, float64(pose.UniformScale()), 1e-3)
}

func TestOrbitRadiusAndFacing(t *testing.T) {
	center := math32.Vec3(10, 0, -4)
	pose := newPose(math32.Vec3(0, 0, 0))
	c := NewComposer(pose, Orbit{Center: center, Radius: 7, Speed: 0.9, Plane: PlaneXZ})

	for elapsed := float32(0); elapsed < 20; elapsed += 0.25 {
		c.Advance(pose, 0.016, elapsed)
		assert.InDelta(t, 7, float64(pose.Pos.DistanceTo(center)), 1e-3)
		assert.Equal(t, center.Y, pose.Pos.Y)
	}

	// Facing the center: the yaw of the pose must equal the yaw of the
	// center-pointing direction.
	dir := center.Sub(pose.Pos)
	wantYaw := math32.Atan2(dir.X, dir.Z)
	assert.InDelta(t, float64(wantYaw), float64(pose.Rot.Y), 1e-4)
}

func TestOrbitPlanes(t *testing.T) {
	center := math32.Vec3(0, 0, 0)
	for _, tc := range []struct {
		plane Plane
		check func(p math32.Vector3) float32
	}{
		{PlaneXZ, func(p math32.Vector3) float32 { return p.Y }},
		{PlaneXY, func(p math32.Vector3) float32 { return p.Z }},
		{PlaneYZ, func(p math32.Vector3) float32 { return p.X }},
	} {
		pose := newPose(math32.Vec3(1, 1, 1))
		c := NewComposer(pose, Orbit{Center: center, Radius: 3, Speed: 1, Plane: tc.plane})
		c.Advance(pose, 0.016, 1.3)
		assert.Zero(t, tc.check(pose.Pos), "plane %v", tc.plane)
	}
}

func pathSquare() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(10, 0, 0),
		math32.Vec3(10, 0, 10),
		math32.Vec3(0, 0, 10),
	}
}

func TestFollowPathLoopContinuity(t *testing.T) {
	pts := pathSquare()
	pose := newPose(pts[0])
	const speed = 0.5
	c := NewComposer(pose, FollowPath{Points: pts, Speed: speed, Loop: true})

	// Run for exactly waypointCount/speed seconds: one full lap.
	total := float32(len(pts)) / speed
	const dt = 0.01
	elapsed := float32(0)
	for elapsed < total-dt/2 {
		elapsed += dt
		c.Advance(pose, dt, elapsed)
	}
	assert.InDelta(t, 0, float64(pose.Pos.DistanceTo(pts[0])), 0.2)
}

func TestFollowPathClampAtEnd(t *testing.T) {
	pts := pathSquare()
	pose := newPose(pts[0])
	c := NewComposer(pose, FollowPath{Points: pts, Speed: 2, Loop: false})

	// Run far past the total duration: position holds exactly at the
	// final waypoint, no extrapolation.
	elapsed := float32(0)
	for i := 0; i < 500; i++ {
		elapsed += 0.05
		c.Advance(pose, 0.05, elapsed)
	}
	assert.Equal(t, pts[len(pts)-1], pose.Pos)
	assert.Equal(t, len(pts)-1, c.State.PathIndex)
	assert.Zero(t, c.State.PathProgress)

	// Further frames keep it frozen.
	c.Advance(pose, 0.05, elapsed+0.05)
	assert.Equal(t, pts[len(pts)-1], pose.Pos)
}

func TestFollowPathTooFewPoints(t *testing.T) {
	start := math32.Vec3(3, 4, 5)
	pose := newPose(start)
	c := NewComposer(pose, FollowPath{Points: []math32.Vector3{{X: 1}}, Speed: 1, Loop: true})
	c.Advance(pose, 0.1, 0.1)
	assert.Equal(t, start, pose.Pos)
}

func TestAdvanceClampsBadDelta(t *testing.T) {
	pose := newPose(math32.Vec3(0, 0, 0))
	c := NewComposer(pose, Rotate{Speed: math32.Vec3(1, 1, 1)})

	c.Advance(pose, float32(math.NaN()), 1)
	assert.False(t, math32.IsNaN(pose.Rot.X))
	assert.Zero(t, pose.Rot.X)

	c.Advance(pose, float32(math.Inf(1)), 2)
	assert.Zero(t, pose.Rot.X)

	c.Advance(pose, -5, 3)
	assert.Zero(t, pose.Rot.X)
}

func TestOrientationFollowsFinalPosition(t *testing.T) {
	// An oscillating orbiter must face the center from its final
	// position this frame, not from where the transform pass left it.
	center := math32.Vec3(0, 0, 0)
	pose := newPose(math32.Vec3(5, 0, 0))
	c := NewComposer(pose,
		Orbit{Center: center, Radius: 5, Speed: 1, Plane: PlaneXZ},
		Rotate{Speed: math32.Vec3(0, 3, 0)},
	)
	c.Advance(pose, 0.016, 2.1)

	dir := center.Sub(pose.Pos)
	wantYaw := math32.Atan2(dir.X, dir.Z)
	assert.InDelta(t, float64(wantYaw), float64(pose.Rot.Y), 1e-4)
}

func TestComposerMultipleIndependent(t *testing.T) {
	anchor := math32.Vec3(0, 2, 0)
	pose := newPose(anchor)
	c := NewComposer(pose,
		Rotate{Speed: math32.Vec3(0, 1, 0)},
		Oscillate{Axis: math32.Y, Speed: 1, Amplitude: 1},
		Pulsate{Speed: 1, Min: 1, Max: 3},
	)
	c.Advance(pose, 0.5, 0.5)

	assert.InDelta(t, 0.5, float64(pose.Rot.Y), 1e-5)
	assert.InDelta(t, float64(anchor.Y+math32.Sin(0.5)), float64(pose.Pos.Y), 1e-5)
	assert.InDelta(t, float64(1+((math32.Sin(0.5)+1)/2)*2), float64(pose.UniformScale()), 1e-5)
}

func TestSceneAdvanceTicksEntities(t *testing.T) {
	sc := &scene.Scene{}
	e := scene.NewEntity("probe", math32.Vec3(0, 0, 0))
	e.Anim = NewComposer(&e.Pose, Rotate{Speed: math32.Vec3(0, 2, 0)})
	sc.Add(e)

	for i := 0; i < 10; i++ {
		sc.Advance(0.1)
	}
	assert.InDelta(t, 2.0, float64(e.Pose.Rot.Y), 1e-4)
	assert.InDelta(t, 1.0, float64(sc.Elapsed), 1e-5)
}
