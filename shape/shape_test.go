// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcosphereCounts(t *testing.T) {
	// Each subdivision quadruples triangle count; vertex count follows
	// V = E - F + 2 with shared midpoints deduplicated.
	tests := []struct {
		level   int
		numTri  int
		numVert int
	}{
		{0, 20, 12},
		{1, 80, 42},
		{2, 320, 162},
		{3, 1280, 642},
	}
	for _, tc := range tests {
		m, err := Icosphere(tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.numTri, m.NumTri(), "level %d tris", tc.level)
		assert.Equal(t, tc.numVert, m.NumVertex(), "level %d verts", tc.level)
		assert.Equal(t, m.NumVertex(), len(m.Normal))
		assert.Equal(t, m.NumVertex(), len(m.TexCoord))
	}
}

func TestIcosphereUnitRadius(t *testing.T) {
	m, err := Icosphere(2)
	require.NoError(t, err)
	for _, v := range m.Vertex {
		assert.InDelta(t, 1.0, float64(v.Length()), 1e-5)
	}
}

func TestIcosphereLevelValidation(t *testing.T) {
	_, err := Icosphere(-1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Icosphere(MaxSubdivision + 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDeformSpherePreservesTopology(t *testing.T) {
	base, err := Icosphere(2)
	require.NoError(t, err)
	m, err := DeformSphere(42, 2)
	require.NoError(t, err)

	assert.Equal(t, base.NumVertex(), m.NumVertex())
	assert.Equal(t, base.NumTri(), m.NumTri())
	assert.Equal(t, base.Index, m.Index)
}

func TestDeformSphereDisplacementBound(t *testing.T) {
	m, err := DeformSphere(42, 3)
	require.NoError(t, err)
	for _, v := range m.Vertex {
		r := float64(v.Length())
		assert.GreaterOrEqual(t, r, 1-MaxDisplacement-1e-5)
		assert.LessOrEqual(t, r, 1+MaxDisplacement+1e-5)
	}
}

func TestDeformSphereUnitNormals(t *testing.T) {
	m, err := DeformSphere(7, 2)
	require.NoError(t, err)
	for _, n := range m.Normal {
		assert.InDelta(t, 1.0, float64(n.Length()), 1e-4)
	}
}

func TestDeformSphereDeterminism(t *testing.T) {
	a, err := DeformSphere(123, 2)
	require.NoError(t, err)
	b, err := DeformSphere(123, 2)
	require.NoError(t, err)
	assert.Equal(t, a.Vertex, b.Vertex)
	assert.Equal(t, a.Normal, b.Normal)

	c, err := DeformSphere(124, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Vertex, c.Vertex)
}

func TestComputeNormalsPointOutward(t *testing.T) {
	m, err := DeformSphere(42, 2)
	require.NoError(t, err)
	outward := 0
	for i, n := range m.Normal {
		if n.Dot(m.Vertex[i]) > 0 {
			outward++
		}
	}
	// All normals of a displaced spheroid should face away from the center.
	assert.Equal(t, m.NumVertex(), outward)
}
