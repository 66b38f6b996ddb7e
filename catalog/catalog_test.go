// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExact(t *testing.T) {
	e, ok := Resolve("mars")
	assert.True(t, ok)
	assert.Equal(t, "mars", e.Name)

	e, ok = Resolve("  GAS-GIANT ")
	assert.True(t, ok)
	assert.Equal(t, "gas-giant", e.Name)
}

func TestResolveSubstringDeclarationOrder(t *testing.T) {
	// "world" matches ice-world, lava-world and alien-world; the first
	// declared entry must win, every time.
	for i := 0; i < 5; i++ {
		e, ok := Resolve("world")
		assert.True(t, ok)
		assert.Equal(t, "ice-world", e.Name)
	}

	// Query longer than the entry name matches by containment too.
	e, ok := Resolve("giant-red-dwarf-star")
	assert.True(t, ok)
	assert.Equal(t, "red-dwarf", e.Name)
}

func TestResolveMiss(t *testing.T) {
	_, ok := Resolve("wormhole")
	assert.False(t, ok)
	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestResolveModelFallbackChain(t *testing.T) {
	available := map[string]string{
		"planet_gas": "models/gas.glb",
	}
	resolver := func(key string) (string, bool) {
		ref, ok := available[key]
		return ref, ok
	}

	// Own asset resolves.
	ref, ok := ResolveModel("gas-giant", resolver)
	assert.True(t, ok)
	assert.Equal(t, "models/gas.glb", ref)

	// Own asset missing: first declared same-kind entry with an
	// available asset is used.
	ref, ok = ResolveModel("mars", resolver)
	assert.True(t, ok)
	assert.Equal(t, "models/gas.glb", ref)

	// No asset of the kind available at all.
	_, ok = ResolveModel("nebula", resolver)
	assert.False(t, ok)

	// Nil resolver never resolves.
	_, ok = ResolveModel("mars", nil)
	assert.False(t, ok)
}
