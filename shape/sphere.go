// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// MaxSubdivision is the highest icosphere subdivision level accepted.
// Level 6 is already ~164k triangles, past the point of visible benefit
// for an asteroid-sized body.
const MaxSubdivision = 6

// icosahedron base geometry: 12 vertices, 20 faces, t = golden ratio.
var (
	icoT = (1 + math32.Sqrt(5)) / 2

	icoVerts = []math32.Vector3{
		{X: -1, Y: icoT, Z: 0}, {X: 1, Y: icoT, Z: 0}, {X: -1, Y: -icoT, Z: 0}, {X: 1, Y: -icoT, Z: 0},
		{X: 0, Y: -1, Z: icoT}, {X: 0, Y: 1, Z: icoT}, {X: 0, Y: -1, Z: -icoT}, {X: 0, Y: 1, Z: -icoT},
		{X: icoT, Y: 0, Z: -1}, {X: icoT, Y: 0, Z: 1}, {X: -icoT, Y: 0, Z: -1}, {X: -icoT, Y: 0, Z: 1},
	}

	icoFaces = []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
)

// Icosphere returns a unit-radius icosphere mesh produced by subdividing
// the icosahedron the given number of times. Shared edge midpoints are
// deduplicated so the result is watertight. level must be in
// [0, MaxSubdivision].
func Icosphere(level int) (*TriMesh, error) {
	if level < 0 || level > MaxSubdivision {
		return nil, fmt.Errorf("%w: subdivision level %d not in [0, %d]", ErrInvalidParameter, level, MaxSubdivision)
	}
	m := &TriMesh{
		Vertex: make([]math32.Vector3, len(icoVerts)),
		Index:  make([]uint32, len(icoFaces)),
	}
	for i, v := range icoVerts {
		m.Vertex[i] = v.Normal()
	}
	copy(m.Index, icoFaces)

	for s := 0; s < level; s++ {
		subdivide(m)
	}

	m.Normal = make([]math32.Vector3, len(m.Vertex))
	m.TexCoord = make([]math32.Vector2, len(m.Vertex))
	for i, v := range m.Vertex {
		m.Normal[i] = v
		m.TexCoord[i] = sphereUV(v)
	}
	return m, nil
}

// subdivide splits every triangle into four, reusing midpoint vertices
// across shared edges and projecting new vertices onto the unit sphere.
func subdivide(m *TriMesh) {
	mids := map[[2]uint32]uint32{}
	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if a > b {
			key = [2]uint32{b, a}
		}
		if idx, ok := mids[key]; ok {
			return idx
		}
		mid := m.Vertex[a].Add(m.Vertex[b]).MulScalar(0.5).Normal()
		m.Vertex = append(m.Vertex, mid)
		idx := uint32(len(m.Vertex) - 1)
		mids[key] = idx
		return idx
	}

	next := make([]uint32, 0, len(m.Index)*4)
	for i := 0; i+2 < len(m.Index); i += 3 {
		a, b, c := m.Index[i], m.Index[i+1], m.Index[i+2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)
		next = append(next,
			a, ab, ca,
			b, bc, ab,
			c, ca, bc,
			ab, bc, ca)
	}
	m.Index = next
}

// sphereUV maps a unit sphere point to equirectangular texture coordinates.
func sphereUV(v math32.Vector3) math32.Vector2 {
	u := 0.5 + math32.Atan2(v.Z, v.X)/(2*math32.Pi)
	w := math32.Acos(math32.Clamp(v.Y, -1, 1)) / math32.Pi
	return math32.Vec2(u, w)
}
