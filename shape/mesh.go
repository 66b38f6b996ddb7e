// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds and deforms the triangle meshes used for
// procedurally generated bodies (asteroids and similar irregular
// spheroids). Meshes are plain value holders of vertex, normal, texture
// coordinate and index buffers; rendering/upload is a consumer concern.
package shape

import (
	"errors"

	"github.com/goodsmash/GalaxyHopping-sub001/math32"
)

// ErrInvalidParameter indicates a caller-supplied parameter outside the
// valid range (negative subdivision level, etc.). It is returned eagerly,
// never silently coerced.
var ErrInvalidParameter = errors.New("shape: invalid parameter")

// TriMesh is an indexed triangle mesh. Index entries refer to positions in
// Vertex/Normal/TexCoord, three per triangle.
type TriMesh struct {
	Vertex   []math32.Vector3
	Normal   []math32.Vector3
	TexCoord []math32.Vector2
	Index    []uint32
}

// NumVertex returns the number of vertices in the mesh.
func (m *TriMesh) NumVertex() int {
	return len(m.Vertex)
}

// NumTri returns the number of triangles in the mesh.
func (m *TriMesh) NumTri() int {
	return len(m.Index) / 3
}

// ComputeNormals recomputes all vertex normals from the face geometry,
// accumulating each face's normal onto its three vertices and normalizing
// the result. Call after any modification of vertex positions.
func (m *TriMesh) ComputeNormals() {
	if len(m.Normal) != len(m.Vertex) {
		m.Normal = make([]math32.Vector3, len(m.Vertex))
	}
	for i := range m.Normal {
		m.Normal[i] = math32.Vector3{}
	}
	for i := 0; i+2 < len(m.Index); i += 3 {
		ia, ib, ic := m.Index[i], m.Index[i+1], m.Index[i+2]
		a, b, c := m.Vertex[ia], m.Vertex[ib], m.Vertex[ic]
		fn := b.Sub(a).Cross(c.Sub(a))
		m.Normal[ia].SetAdd(fn)
		m.Normal[ib].SetAdd(fn)
		m.Normal[ic].SetAdd(fn)
	}
	for i := range m.Normal {
		m.Normal[i] = m.Normal[i].Normal()
	}
}

// Clone returns a deep copy of the mesh.
func (m *TriMesh) Clone() *TriMesh {
	nm := &TriMesh{
		Vertex:   make([]math32.Vector3, len(m.Vertex)),
		Normal:   make([]math32.Vector3, len(m.Normal)),
		TexCoord: make([]math32.Vector2, len(m.TexCoord)),
		Index:    make([]uint32, len(m.Index)),
	}
	copy(nm.Vertex, m.Vertex)
	copy(nm.Normal, m.Normal)
	copy(nm.TexCoord, m.TexCoord)
	copy(nm.Index, m.Index)
	return nm
}
