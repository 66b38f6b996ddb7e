// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/shape"
)

// Animator advances an entity's pose by one frame. Implemented by
// motion.Composer; defined here as an interface so scene does not depend
// on the motion package.
type Animator interface {

	// Advance updates the pose for one frame given the frame delta and
	// the monotonic elapsed time supplied by the render loop.
	Advance(pose *Pose, deltaTime, elapsed float32)
}

// Entity is one placed object in a scene: a pose plus optional generated
// content and an optional animator. Content references are already
// resident; the scene never blocks a frame waiting on them.
type Entity struct {

	// Name identifies the entity within its scene.
	Name string

	// Pose is the entity's spatial transform, mutated by Anim each frame.
	Pose Pose

	// Anim, if non-nil, is ticked once per frame by [Scene.Advance].
	// Dropping the entity (or setting Anim to nil) stops its updates.
	Anim Animator

	// Mesh is optional generated geometry for the entity.
	Mesh *shape.TriMesh

	// Texture is optional generated raster content for the entity,
	// consumed by the rendering pipeline as a texture upload.
	Texture *image.RGBA
}

// NewEntity returns a named entity with a default (unit-scale) pose at
// the given position.
func NewEntity(name string, pos math32.Vector3) *Entity {
	e := &Entity{Name: name}
	e.Pose.Pos = pos
	e.Pose.Defaults()
	return e
}

// Scene owns a set of entities and the authoritative animation clock.
// All updates are synchronous and single-threaded: one Advance call per
// rendered frame, completing before the frame is presented.
type Scene struct {

	// Entities in the scene, in addition order.
	Entities []*Entity

	// Elapsed is the accumulated monotonic animation time in seconds.
	Elapsed float32
}

// Add appends an entity to the scene and returns it.
func (sc *Scene) Add(e *Entity) *Entity {
	sc.Entities = append(sc.Entities, e)
	return e
}

// EntityByName returns the first entity with the given name, or nil.
func (sc *Scene) EntityByName(name string) *Entity {
	for _, e := range sc.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Advance ticks every animated entity by deltaTime seconds. Non-finite
// or negative deltas are clamped to zero for the frame so a stalled or
// broken clock cannot corrupt entity state.
func (sc *Scene) Advance(deltaTime float32) {
	if math32.IsNaN(deltaTime) || math32.IsInf(deltaTime, 0) || deltaTime < 0 {
		deltaTime = 0
	}
	sc.Elapsed += deltaTime
	for _, e := range sc.Entities {
		if e.Anim != nil {
			e.Anim.Advance(&e.Pose, deltaTime, sc.Elapsed)
		}
	}
}
