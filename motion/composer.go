// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motion

import (
	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/scene"
)

// Composer holds an entity's active motion descriptors and its animation
// state, and applies them once per frame. It satisfies [scene.Animator].
type Composer struct {

	// Motions is the active descriptor set.
	Motions []Motion

	// State is the per-entity animation state.
	State State
}

// NewComposer returns a composer bound to the given pose, capturing the
// pose's current position as the oscillation anchor.
func NewComposer(pose *scene.Pose, motions ...Motion) *Composer {
	c := &Composer{Motions: motions}
	c.State.Anchor = pose.Pos
	return c
}

// Add appends a descriptor to the active set.
func (c *Composer) Add(m Motion) *Composer {
	c.Motions = append(c.Motions, m)
	return c
}

// Rebind re-captures the oscillation anchor from the pose's current
// position, for entities that have been moved externally.
func (c *Composer) Rebind(pose *scene.Pose) {
	c.State.Anchor = pose.Pos
}

// Advance applies all active descriptors for one frame. Position and
// scale descriptors run first, then those that derive orientation from
// position (orbit, path following), so facing reflects this frame's
// final position. Non-finite or negative deltas are clamped to zero for
// the frame rather than propagated into pose state.
func (c *Composer) Advance(pose *scene.Pose, deltaTime, elapsed float32) {
	if math32.IsNaN(deltaTime) || math32.IsInf(deltaTime, 0) || deltaTime < 0 {
		deltaTime = 0
	}
	for _, m := range c.Motions {
		if m.phase() == phaseTransform {
			m.apply(pose, &c.State, deltaTime, elapsed)
		}
	}
	for _, m := range c.Motions {
		if m.phase() == phaseOrient {
			m.apply(pose, &c.State, deltaTime, elapsed)
		}
	}
}
