// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog declares the object types a scene can be populated
// with and resolves type names (including partial names from external
// selection UIs) to catalog entries and model assets.
//
// Resolution is fully deterministic: entries are held in declaration
// order, and substring fallback picks the first declared match, never an
// incidental map order. Model asset lookup goes through a caller-supplied
// Resolver so there is no global cache or hidden fallback side-channel.
package catalog

import "strings"

// Kind is the broad category of a catalog entry.
type Kind int32

const (
	KindStar Kind = iota
	KindPlanet
	KindAsteroid
	KindNebula
	KindStation
)

// Entry describes one object type: its identity, display name, category,
// nominal scale, the texture recipe kind used when no authored asset is
// available, and the key of its preferred model asset.
type Entry struct {
	Name      string
	Display   string
	Kind      Kind
	BaseScale float32

	// TextureKind names the procedural recipe used for fallback
	// rendering ("star", "nebula", or a planet kind name).
	TextureKind string

	// AssetKey is the key of the preferred authored model, resolved via
	// a [Resolver]; empty means always procedural.
	AssetKey string
}

// Table is the ordered catalog declaration. Order matters: substring
// fallback resolution picks the first match declared here.
var Table = []Entry{
	{Name: "sun", Display: "Sun", Kind: KindStar, BaseScale: 20, TextureKind: "star"},
	{Name: "red-dwarf", Display: "Red Dwarf", Kind: KindStar, BaseScale: 8, TextureKind: "star"},
	{Name: "earth", Display: "Earth-like Planet", Kind: KindPlanet, BaseScale: 5, TextureKind: "earth", AssetKey: "planet_earth"},
	{Name: "mars", Display: "Mars-like Planet", Kind: KindPlanet, BaseScale: 4, TextureKind: "mars", AssetKey: "planet_mars"},
	{Name: "gas-giant", Display: "Gas Giant", Kind: KindPlanet, BaseScale: 12, TextureKind: "gas-giant", AssetKey: "planet_gas"},
	{Name: "ice-world", Display: "Ice World", Kind: KindPlanet, BaseScale: 4, TextureKind: "ice", AssetKey: "planet_ice"},
	{Name: "lava-world", Display: "Lava World", Kind: KindPlanet, BaseScale: 4, TextureKind: "lava", AssetKey: "planet_lava"},
	{Name: "alien-world", Display: "Alien World", Kind: KindPlanet, BaseScale: 5, TextureKind: "alien", AssetKey: "planet_alien"},
	{Name: "asteroid", Display: "Asteroid", Kind: KindAsteroid, BaseScale: 1, AssetKey: "asteroid_rock"},
	{Name: "nebula", Display: "Nebula", Kind: KindNebula, BaseScale: 60, TextureKind: "nebula"},
	{Name: "station", Display: "Orbital Station", Kind: KindStation, BaseScale: 3, AssetKey: "station_ring"},
}

// Resolve returns the catalog entry for the given type name. Exact
// (case-insensitive) matches win; otherwise the first declared entry
// whose name contains the query, or whose name the query contains, is
// returned. The second result reports whether any entry matched.
func Resolve(name string) (Entry, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return Entry{}, false
	}
	for _, e := range Table {
		if e.Name == q {
			return e, true
		}
	}
	for _, e := range Table {
		if strings.Contains(e.Name, q) || strings.Contains(q, e.Name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolver maps a model asset key to a loadable model reference. It is
// supplied by the caller (asset loading is outside this module); a false
// result means the asset is unavailable and the caller should render the
// procedural fallback.
type Resolver func(assetKey string) (string, bool)

// ResolveModel resolves the model asset for the named object type:
// the entry's own asset key first, then, if that asset is unavailable,
// the first declared entry of the same kind whose asset resolves.
// A false result means no model is available and the procedural recipe
// (Entry.TextureKind) should be used instead.
func ResolveModel(name string, resolve Resolver) (string, bool) {
	e, ok := Resolve(name)
	if !ok || resolve == nil {
		return "", false
	}
	if e.AssetKey != "" {
		if ref, ok := resolve(e.AssetKey); ok {
			return ref, true
		}
	}
	for _, alt := range Table {
		if alt.Kind != e.Kind || alt.AssetKey == "" || alt.Name == e.Name {
			continue
		}
		if ref, ok := resolve(alt.AssetKey); ok {
			return ref, true
		}
	}
	return "", false
}
