// seehuhn.de/go/mesearch - motion estimation search patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads search schedules from YAML files.
//
// A schedule lists the search stages to run, in order.  Each stage names a
// pattern kind and its parameters; the search window can be given once for
// the whole schedule and overridden per stage:
//
//	window: {top: -16, right: 16, bottom: 16, left: -16}
//	stages:
//	  - pattern: hexagon
//	    center: [0, 0]
//	    exponent: 1
//	    max_exponent: 4
//	  - pattern: rood
//	    center: [3, -2]
//	  - pattern: raster
//	    stride: 4
//	    window: {top: -8, right: 8, bottom: 8, left: -8}
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/mesearch"
)

// Pattern kinds.
const (
	PatternRood    = "rood"
	PatternRaster  = "raster"
	PatternHexagon = "hexagon"
)

var (
	ErrNoStages       = errors.New("schedule has no stages")
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrEmptyWindow    = errors.New("search window is empty")
	ErrInvalidCenter  = errors.New("center must have two coordinates")
)

// DefaultWindow is the search window used when a schedule gives none.
var DefaultWindow = Window{Top: -16, Right: 16, Bottom: 16, Left: -16}

// Config is a search schedule.
type Config struct {
	Window Window  `yaml:"window" json:"window"`
	Stages []Stage `yaml:"stages" json:"stages"`
}

// Window is the YAML form of mesearch.Window.
type Window struct {
	Top    int `yaml:"top" json:"top"`
	Right  int `yaml:"right" json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Left   int `yaml:"left" json:"left"`
}

// Search converts w to a search window.
func (w Window) Search() mesearch.Window {
	return mesearch.Window{Top: w.Top, Right: w.Right, Bottom: w.Bottom, Left: w.Left}
}

// Stage is one step of a schedule.
type Stage struct {
	Name    string  `yaml:"name,omitempty" json:"name,omitempty"`
	Pattern string  `yaml:"pattern" json:"pattern"`
	Window  *Window `yaml:"window,omitempty" json:"window,omitempty"`

	// Center is [x, y].  Used by rood and hexagon stages, defaults to the
	// origin.
	Center []int `yaml:"center,omitempty" json:"center,omitempty"`

	// Stride is the grid spacing of raster stages, defaults to 1.
	Stride int `yaml:"stride,omitempty" json:"stride,omitempty"`

	// Exponent is the step exponent of hexagon stages.  If MaxExponent is
	// set, the stage is run once for every exponent from Exponent to
	// MaxExponent.
	Exponent    int  `yaml:"exponent,omitempty" json:"exponent,omitempty"`
	MaxExponent *int `yaml:"max_exponent,omitempty" json:"max_exponent,omitempty"`
}

// Load reads and validates the schedule in the named file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a schedule.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Window: DefaultWindow}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Stages {
		s := &c.Stages[i]
		if s.Pattern == PatternRaster && s.Stride == 0 {
			s.Stride = 1
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s-%d", s.Pattern, i+1)
		}
	}
}

// Validate checks the schedule for errors.
func (c *Config) Validate() error {
	if len(c.Stages) == 0 {
		return ErrNoStages
	}
	for i := range c.Stages {
		if err := c.Stages[i].validate(c.Window); err != nil {
			return fmt.Errorf("stage %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Stage) validate(def Window) error {
	if s.window(def).Search().Empty() {
		return ErrEmptyWindow
	}
	if s.Center != nil && len(s.Center) != 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidCenter, len(s.Center))
	}

	switch s.Pattern {
	case PatternRood:
	case PatternRaster:
		if s.Stride < 1 {
			return fmt.Errorf("stride must be positive, got %d", s.Stride)
		}
	case PatternHexagon:
		last := s.lastExponent()
		if s.Exponent < 0 || last > mesearch.MaxExponent {
			return fmt.Errorf("exponent must be between 0 and %d", mesearch.MaxExponent)
		}
		if last < s.Exponent {
			return fmt.Errorf("max_exponent %d is smaller than exponent %d", last, s.Exponent)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownPattern, s.Pattern)
	}
	return nil
}

func (s *Stage) window(def Window) Window {
	if s.Window != nil {
		return *s.Window
	}
	return def
}

func (s *Stage) center() mesearch.Point {
	if len(s.Center) != 2 {
		return mesearch.Point{}
	}
	return mesearch.Point{X: s.Center[0], Y: s.Center[1]}
}

func (s *Stage) lastExponent() int {
	if s.MaxExponent != nil {
		return *s.MaxExponent
	}
	return s.Exponent
}

// Step is a configured search pattern, ready to be produced.
type Step struct {
	Name    string
	Pattern mesearch.Pattern
}

// Steps returns the patterns of the schedule, in order.  Hexagon stages
// with a maximum exponent contribute one step per exponent.
// The schedule must be valid.
func (c *Config) Steps() []Step {
	var steps []Step
	for _, s := range c.Stages {
		w := s.window(c.Window).Search()
		switch s.Pattern {
		case PatternRood:
			p := mesearch.NewRood(s.center())
			p.Window = w
			steps = append(steps, Step{Name: s.Name, Pattern: p})
		case PatternRaster:
			steps = append(steps, Step{Name: s.Name, Pattern: mesearch.NewRaster(s.Stride, w)})
		case PatternHexagon:
			for e := s.Exponent; e <= s.lastExponent(); e++ {
				p := mesearch.NewHexagon(e, s.center())
				p.Window = w
				name := s.Name
				if s.MaxExponent != nil {
					name = fmt.Sprintf("%s/s=%d", s.Name, e)
				}
				steps = append(steps, Step{Name: name, Pattern: p})
			}
		}
	}
	return steps
}
