// Copyright (c) 2026, Galaxy Hopping Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command galaxyhop generates a space scene headlessly: it synthesizes
// the procedural textures and asteroid geometry described by a TOML
// config, writes the rasters out as PNGs, then runs the motion composer
// for a fixed number of frames and reports the final entity transforms.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/goodsmash/GalaxyHopping-sub001/catalog"
	"github.com/goodsmash/GalaxyHopping-sub001/field"
	"github.com/goodsmash/GalaxyHopping-sub001/math32"
	"github.com/goodsmash/GalaxyHopping-sub001/motion"
	"github.com/goodsmash/GalaxyHopping-sub001/scene"
	"github.com/goodsmash/GalaxyHopping-sub001/shape"
	"github.com/goodsmash/GalaxyHopping-sub001/texture"
)

// Config is the TOML scene description.
type Config struct {
	Seed        float64 `toml:"seed"`
	TextureSize int     `toml:"texture_size"`

	Field struct {
		Count   int     `toml:"count"`
		Radius  float32 `toml:"radius"`
		MinSize float32 `toml:"min_size"`
		MaxSize float32 `toml:"max_size"`
	} `toml:"field"`

	Run struct {
		Frames    int     `toml:"frames"`
		DeltaTime float32 `toml:"delta_time"`
	} `toml:"run"`
}

func defaultConfig() Config {
	var c Config
	c.Seed = 42
	c.TextureSize = 256
	c.Field.Count = 50
	c.Field.Radius = 100
	c.Field.MinSize = 1
	c.Field.MaxSize = 5
	c.Run.Frames = 600
	c.Run.DeltaTime = 1.0 / 60
	return c
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		slog.Error("galaxyhop failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "TOML scene config (defaults used if empty)")
	outDir := flag.String("out", "out", "output directory for generated PNGs")
	flag.Parse()

	cfg := defaultConfig()
	if *cfgPath != "" {
		data, err := os.ReadFile(*cfgPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	header := out.String("galaxyhop").Bold().Foreground(out.Color("39"))
	fmt.Fprintf(out, "%s seed=%v\n", header, cfg.Seed)

	if err := writeTextures(cfg, *outDir, out); err != nil {
		return err
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Run.Frames; i++ {
		sc.Advance(cfg.Run.DeltaTime)
	}
	fmt.Fprintf(out, "%s %d entities, %d frames at dt=%v\n",
		out.String("animated").Foreground(out.Color("42")),
		len(sc.Entities), cfg.Run.Frames, cfg.Run.DeltaTime)
	for _, e := range sc.Entities {
		fmt.Fprintf(out, "  %-10s pos=%v rot=%v scale=%v\n", e.Name, e.Pose.Pos, e.Pose.Rot, e.Pose.Scale)
	}
	return nil
}

// writeTextures synthesizes one of each texture kind and saves them.
func writeTextures(cfg Config, dir string, out *termenv.Output) error {
	recipes := map[string]texture.Recipe{
		"star":   texture.Star{Size: cfg.TextureSize, Color: colorNRGBA(255, 240, 200), Intensity: 1},
		"nebula": texture.Nebula{Size: cfg.TextureSize, Primary: colorNRGBA(120, 40, 180), Secondary: colorNRGBA(60, 120, 220), Density: 1, Seed: cfg.Seed},
	}
	for _, kind := range []texture.PlanetKind{texture.Earth, texture.Mars, texture.GasGiant, texture.Ice, texture.Lava, texture.Alien} {
		recipes["planet-"+kind.String()] = texture.Planet{Size: cfg.TextureSize, Kind: kind, Seed: cfg.Seed}
	}

	// Deterministic write order for reproducible logs.
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r, err := texture.Synthesize(recipes[name])
		if err != nil {
			return fmt.Errorf("synthesizing %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, r.RGBA); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("texture written", "name", name, "path", path, "size", cfg.TextureSize)
	}
	fmt.Fprintf(out, "%s %d textures -> %s\n",
		out.String("generated").Foreground(out.Color("42")), len(names), dir)
	return nil
}

// buildScene assembles the demo scene: an asteroid field with deformed
// meshes, an oscillating star, an orbiting planet and a patrolling probe.
func buildScene(cfg Config) (*scene.Scene, error) {
	sc := &scene.Scene{}

	insts, err := field.Generate(cfg.Seed, cfg.Field.Count, math32.Vec3(0, 0, 0),
		cfg.Field.Radius, cfg.Field.MinSize, cfg.Field.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("generating field: %w", err)
	}
	for i, in := range insts {
		mesh, err := shape.DeformSphere(in.Seed, 2)
		if err != nil {
			return nil, fmt.Errorf("deforming asteroid %d: %w", i, err)
		}
		e := scene.NewEntity(fmt.Sprintf("asteroid%03d", i), in.Position)
		e.Pose.Rot = in.Rotation
		e.Pose.SetUniformScale(in.Scale)
		e.Mesh = mesh
		e.Anim = motion.NewComposer(&e.Pose, motion.Rotate{Speed: in.RotationSpeed})
		sc.Add(e)
	}

	star := scene.NewEntity("star", math32.Vec3(0, 0, 0))
	star.Anim = motion.NewComposer(&star.Pose,
		motion.Pulsate{Speed: 0.8, Min: 0.95, Max: 1.05},
		motion.Oscillate{Axis: math32.Y, Speed: 0.2, Amplitude: 2},
	)
	sc.Add(star)

	entry, ok := catalog.Resolve("gas-giant")
	if !ok {
		return nil, fmt.Errorf("unknown catalog entry %q", "gas-giant")
	}
	planet := scene.NewEntity(entry.Name, math32.Vec3(cfg.Field.Radius*1.5, 0, 0))
	planet.Pose.SetUniformScale(entry.BaseScale)
	planet.Anim = motion.NewComposer(&planet.Pose,
		motion.Orbit{Center: math32.Vec3(0, 0, 0), Radius: cfg.Field.Radius * 1.5, Speed: 0.1, Plane: motion.PlaneXZ},
		motion.Rotate{Speed: math32.Vec3(0, 0.3, 0)},
	)
	sc.Add(planet)

	probe := scene.NewEntity("probe", math32.Vec3(0, 10, 0))
	probe.Anim = motion.NewComposer(&probe.Pose,
		motion.FollowPath{
			Points: []math32.Vector3{
				math32.Vec3(0, 10, 0),
				math32.Vec3(40, 15, 0),
				math32.Vec3(40, 10, 40),
				math32.Vec3(0, 5, 40),
			},
			Speed: 0.25,
			Loop:  true,
		},
	)
	sc.Add(probe)

	return sc, nil
}

func colorNRGBA(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
