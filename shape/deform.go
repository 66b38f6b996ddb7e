// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/goodsmash/GalaxyHopping-sub001/prand"
)

// Noise draw offsets and weights for the three displacement octaves.
// Each vertex draws at index, index+octaveStride and index+2*octaveStride
// so the octaves never alias for meshes under octaveStride vertices per
// subdivision step; weights sum to 0.35, bounding total displacement.
const (
	octaveStride = 100

	octaveWeight0 = 0.2
	octaveWeight1 = 0.1
	octaveWeight2 = 0.05
)

// MaxDisplacement is the bound on per-vertex radial displacement from the
// unit sphere: the sum of the octave weights. The silhouette stays
// recognizably spheroidal within it.
const MaxDisplacement = octaveWeight0 + octaveWeight1 + octaveWeight2

// DeformSphere returns a unit icosphere at the given subdivision level
// with every vertex displaced along its pre-normalization direction by a
// seeded noise magnitude, emulating an irregular asteroid surface.
// Topology is untouched: the index buffer is identical to the base
// icosphere's, so the mesh stays watertight. Normals are recomputed from
// the displaced faces. The same seed and level always produce the same
// mesh.
func DeformSphere(seed float64, level int) (*TriMesh, error) {
	m, err := Icosphere(level)
	if err != nil {
		return nil, err
	}
	Displace(m, seed)
	return m, nil
}

// Displace perturbs the vertices of a spheroidal mesh in place along their
// radial directions using three octave-weighted draws per vertex, then
// recomputes normals. It assumes vertices are positioned around the origin.
func Displace(m *TriMesh, seed float64) {
	for i, v := range m.Vertex {
		fi := float64(i)
		noise := prand.Draw(seed, fi, -1, 1)*octaveWeight0 +
			prand.Draw(seed, fi+octaveStride, -1, 1)*octaveWeight1 +
			prand.Draw(seed, fi+2*octaveStride, -1, 1)*octaveWeight2
		dir := v.Normal()
		m.Vertex[i] = dir.MulScalar(1 + float32(noise))
	}
	m.ComputeNormals()
}
