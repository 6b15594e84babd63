// Package config loads and validates growth configuration for the
// bonzai viewer: either a named schedule preset or an explicit per-depth
// level table, plus seed, budget and window settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/JosefAlbers/bonzai/geom"
	"github.com/JosefAlbers/bonzai/tree"
)

// Level is one depth entry of the growth table. Angles are degrees in
// config files; they become radians on the way into the generator.
type Level struct {
	Angle     [2]float32 `toml:"angle"`
	Length    [2]float32 `toml:"length"`
	Branching [2]int     `toml:"branching"`
}

// Window holds viewer window settings.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Config is everything one viewer run needs. An explicit Levels table
// wins over Preset; with neither, the default preset applies.
type Config struct {
	// Seed drives the random source; 0 picks a clock-derived seed at
	// startup, any other value reproduces the same first tree.
	Seed       int64   `toml:"seed"`
	MaxDepth   int     `toml:"max_depth"`
	TrunkWidth float32 `toml:"trunk_width"`

	// WidthDecay overrides the schedule's per-level width falloff when
	// nonzero. Zero inherits the preset's.
	WidthDecay  float32 `toml:"width_decay"`
	MaxElements int     `toml:"max_elements"`
	Preset      string  `toml:"preset"`
	Levels      []Level `toml:"levels"`

	Window Window `toml:"window"`
}

var presets = map[string]func() tree.Schedule{
	"default": tree.DefaultSchedule,
	"conifer": tree.ConiferSchedule,
	"willow":  tree.WillowSchedule,
}

// Default returns the stock configuration: the default preset at depth 6,
// sized to stay in the low thousands of elements.
func Default() Config {
	return Config{
		MaxDepth:    6,
		TrunkWidth:  0.35,
		MaxElements: tree.DefaultMaxElements,
		Preset:      "default",
		Window: Window{
			Width:  1280,
			Height: 800,
			Title:  "bonzai",
		},
	}
}

// Load reads a TOML config file over Default values and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) presetName() string {
	if c.Preset == "" {
		return "default"
	}
	return c.Preset
}

// Validate rejects structurally broken configs. Single-point ranges are
// fine; the generator treats them as fixed values.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return errors.New("max_depth must be >= 0")
	}
	if c.TrunkWidth <= 0 {
		return errors.New("trunk_width must be > 0")
	}
	if c.WidthDecay < 0 || c.WidthDecay >= 1 {
		return errors.New("width_decay must be in (0,1), or 0 to inherit the preset's")
	}
	if c.MaxElements < 0 {
		return errors.New("max_elements must be >= 0")
	}
	if len(c.Levels) == 0 {
		if _, ok := presets[c.presetName()]; !ok {
			return fmt.Errorf("unknown preset %q", c.Preset)
		}
	}
	for i, lv := range c.Levels {
		if lv.Angle[0] > lv.Angle[1] {
			return fmt.Errorf("level %d: angle min %v > max %v", i, lv.Angle[0], lv.Angle[1])
		}
		if lv.Length[0] <= 0 || lv.Length[1] <= 0 {
			return fmt.Errorf("level %d: lengths must be > 0", i)
		}
		if lv.Length[0] > lv.Length[1] {
			return fmt.Errorf("level %d: length min %v > max %v", i, lv.Length[0], lv.Length[1])
		}
		if lv.Branching[0] < 0 {
			return fmt.Errorf("level %d: branching must be >= 0", i)
		}
		if lv.Branching[0] > lv.Branching[1] {
			return fmt.Errorf("level %d: branching min %d > max %d", i, lv.Branching[0], lv.Branching[1])
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// Schedule builds the generator's schedule from the level table or the
// named preset, with the config's width decay applied on top.
func (c Config) Schedule() (tree.Schedule, error) {
	var s tree.Schedule
	if len(c.Levels) > 0 {
		for _, lv := range c.Levels {
			s.Angles = append(s.Angles, tree.Range{
				Min: geom.DegToRad(lv.Angle[0]),
				Max: geom.DegToRad(lv.Angle[1]),
			})
			s.Lengths = append(s.Lengths, tree.Range{Min: lv.Length[0], Max: lv.Length[1]})
			s.Branching = append(s.Branching, tree.IntRange{Min: lv.Branching[0], Max: lv.Branching[1]})
		}
	} else {
		preset, ok := presets[c.presetName()]
		if !ok {
			return tree.Schedule{}, fmt.Errorf("unknown preset %q", c.Preset)
		}
		s = preset()
	}

	if c.WidthDecay > 0 {
		s.WidthDecay = c.WidthDecay
	}
	return s, nil
}

// Generator assembles the tree generator this config describes.
func (c Config) Generator() (tree.Generator, error) {
	s, err := c.Schedule()
	if err != nil {
		return tree.Generator{}, err
	}
	return tree.Generator{
		Trunk:       s.Trunk(c.TrunkWidth),
		MaxDepth:    c.MaxDepth,
		Schedule:    s,
		MaxElements: c.MaxElements,
	}, nil
}
